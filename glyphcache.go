package raster2d

import (
	"sync"

	"github.com/inkpath/raster2d/internal/arena"
	"github.com/inkpath/raster2d/internal/config"
	"golang.org/x/image/math/fixed"
)

// Typeface is the external collaborator spec.md §4.7 describes: something
// that can hand back an outline and metrics for a glyph id in font units.
// Platform font loading (FreeType, DirectWrite, CoreText, ...) lives above
// this package; only the cache and dispatch logic are this module's job.
type Typeface interface {
	UniqueID() uint32
	UnitsPerEm() int32
	Outline(glyphID uint16) *Path
	AdvanceWidth(glyphID uint16) float64
	Metrics() FontMetrics
	HasColorTable() bool
}

// FontMetrics mirrors internal/font.FontMetrics's fields, re-declared here
// so this package does not need to import internal/font for a 4-float
// struct.
type FontMetrics struct {
	Ascent, Descent, Leading float64
}

// ScalerContextDesc is the glyph cache key of spec.md §4.7: everything that
// determines how a typeface's outlines are scaled and rendered, bundled so
// it can be used as a Go map key directly (all fields comparable).
type ScalerContextDesc struct {
	TypefaceID uint32
	Size       float64
	ScaleX     float64
	SkewX      float64
	Transform  [4]float64 // row-major 2x2, applied ahead of Size/ScaleX/SkewX
	ContextScale float64
	StrokeWidth  float64
	MiterLimit   float64
	Cap          Cap
	Join         Join
	Embolden     bool
}

// GlyphData is spec.md §4.7's per-glyph cache value: metrics, flattened
// path, and rendered bitmap, each lazily filled and independently cached.
// All three fields are guarded by the owning scalerContextContainer's
// mutex, not a lock of their own, per spec.md §5's "per-glyph work holds
// only the container's mutex".
type GlyphData struct {
	hasMetrics bool
	advance    fixed.Int26_6
	bounds     Rect

	hasPath bool
	path    *Path

	hasBitmap bool
	bitmap    *Pixmap
	originX   int
	originY   int

	hasSDF bool
	sdf    *sdfField
}

// scalerContextContainer is the cache value spec.md §4.7 calls a
// "container": one FontMetrics plus a glyphId → GlyphData map, its own
// mutex guarding the map (spec.md §5).
type scalerContextContainer struct {
	mu       sync.Mutex
	desc     ScalerContextDesc
	typeface Typeface
	metrics  FontMetrics
	glyphs   map[uint16]*GlyphData

	// arena backs this container's glyph bitmaps, so a page of text
	// doesn't hand the allocator one tiny buffer per glyph. It is
	// reclaimed wholesale when the container falls out of the LRU.
	arena *arena.Arena
}

// Metrics returns the FontMetrics captured when this container was built
// from the typeface (once per distinct ScalerContextDesc).
func (ct *scalerContextContainer) Metrics() FontMetrics { return ct.metrics }

func (ct *scalerContextContainer) glyphData(id uint16) *GlyphData {
	ct.mu.Lock()
	defer ct.mu.Unlock()
	gd, ok := ct.glyphs[id]
	if !ok {
		gd = &GlyphData{}
		ct.glyphs[id] = gd
	}
	return gd
}

// scale returns the font-units-to-device scale this descriptor implies: a
// simple uniform scale derived from Size/ScaleX/ContextScale, ignoring skew
// for bounds/advance purposes (full transform is applied when the path is
// built, not when measuring).
func (d *ScalerContextDesc) scale(unitsPerEm int32) float64 {
	if unitsPerEm <= 0 {
		unitsPerEm = 1000
	}
	s := d.Size / float64(unitsPerEm)
	if d.ScaleX != 0 {
		s *= d.ScaleX
	}
	if d.ContextScale != 0 {
		s *= d.ContextScale
	}
	return s
}

func (ct *scalerContextContainer) ensureMetrics(gd *GlyphData, id uint16) {
	if gd.hasMetrics {
		return
	}
	adv := ct.typeface.AdvanceWidth(id) * ct.desc.scale(ct.typeface.UnitsPerEm())
	gd.advance = fixed.Int26_6(adv * 64)
	gd.hasMetrics = true
}

// ensurePath lazily flattens and scales the glyph's outline into device
// units at this descriptor's scale, caching the result on gd.
func (ct *scalerContextContainer) ensurePath(gd *GlyphData, id uint16) *Path {
	if gd.hasPath {
		return gd.path
	}
	ct.ensureMetrics(gd, id)
	outline := ct.typeface.Outline(id)
	s := ct.desc.scale(ct.typeface.UnitsPerEm())
	scaled := NewPath()
	if outline != nil {
		scaled = outline.transformedCopy(s, ct.desc.SkewX*s, 0, s)
	}
	gd.path = scaled
	gd.hasPath = true
	x0, y0, x1, y1 := scaled.bounds()
	gd.bounds = Rect{X1: x0, Y1: y0, X2: x1, Y2: y1}
	return gd.path
}

// Bounds reports gd's device-space bounding box, valid once its path or
// bitmap has been built.
func (gd *GlyphData) Bounds() Rect { return gd.bounds }

// Advance reports gd's horizontal advance in device units, valid once its
// metrics have been built.
func (gd *GlyphData) Advance() float64 { return float64(gd.advance) / 64 }

// ensureBitmap lazily rasterizes the already-scaled glyph path into a
// tightly-bounded A8 Pixmap, for the direct glyph-bitmap render mode.
func (ct *scalerContextContainer) ensureBitmap(gd *GlyphData, id uint16) (*Pixmap, int, int) {
	if gd.hasBitmap {
		return gd.bitmap, gd.originX, gd.originY
	}
	path := ct.ensurePath(gd, id)
	x0, y0, x1, y1 := rectToPixelBounds(outsetRect(gd.bounds, 1, 1))
	w, h := x1-x0, y1-y0
	if w <= 0 || h <= 0 {
		gd.hasBitmap = true
		return nil, 0, 0
	}
	stride := w // ColorTypeA8 is one byte per pixel
	buf := ct.arena.Alloc(stride * h)
	pm, err := NewPixmapWithStride(buf, w, h, stride, ColorTypeA8, AlphaTypePremul)
	if err != nil {
		gd.hasBitmap = true
		return nil, 0, 0
	}
	bm := NewBitmap(pm)
	canvas := newCanvasInternal(bm)
	canvas.top().ctm.Translate(-float64(x0), -float64(y0))
	p := NewPaint()
	p.Color = Color{A: 1}
	p.BlendMode = BlendSrc
	canvas.DrawPath(path, p)
	gd.bitmap, gd.originX, gd.originY = pm, x0, y0
	gd.hasBitmap = true
	return gd.bitmap, gd.originX, gd.originY
}

// ensureSDF lazily builds a signed distance field from the glyph's
// rasterized A8 bitmap (coverage >= 128 treated as inside the glyph), for
// the SDF render mode of spec.md §4.7. No-op (leaves gd.sdf nil) if the
// glyph has no bitmap (empty glyph, e.g. space).
func (ct *scalerContextContainer) ensureSDF(gd *GlyphData) {
	if gd.hasSDF {
		return
	}
	gd.hasSDF = true
	if gd.bitmap == nil {
		return
	}
	w, h := gd.bitmap.Width(), gd.bitmap.Height()
	mask := make([]bool, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			mask[y*w+x] = gd.bitmap.GetPMColor(x, y).A >= 128
		}
	}
	gd.sdf = newSDFField(mask, w, h)
}

// glyphCacheEntry is one node of globalGlyphCache's intrusive
// doubly-linked LRU list, per spec.md §9's "model as a map plus an
// intrusive doubly-linked list of entries".
type glyphCacheEntry struct {
	key        ScalerContextDesc
	container  *scalerContextContainer
	prev, next *glyphCacheEntry
}

// glyphLRUCache is the process-wide, capacity-bounded cache of spec.md
// §4.7 ("Global LRU cache with capacity 2048 entries; eviction is LRU on
// access order") and §5 ("Lookups hold the global mutex only long enough
// to retrieve the container shared pointer").
type glyphLRUCache struct {
	mu         sync.Mutex
	capacity   int
	entries    map[ScalerContextDesc]*glyphCacheEntry
	head, tail *glyphCacheEntry // sentinels; head.next is most-recently-used
}

func newGlyphLRUCache(capacity int) *glyphLRUCache {
	head, tail := &glyphCacheEntry{}, &glyphCacheEntry{}
	head.next, tail.prev = tail, head
	return &glyphLRUCache{capacity: capacity, entries: make(map[ScalerContextDesc]*glyphCacheEntry), head: head, tail: tail}
}

var globalGlyphCache = newGlyphLRUCache(config.DefaultGlyphCacheCapacity)

func (c *glyphLRUCache) unlink(e *glyphCacheEntry) {
	e.prev.next = e.next
	e.next.prev = e.prev
}

func (c *glyphLRUCache) pushFront(e *glyphCacheEntry) {
	e.next = c.head.next
	e.prev = c.head
	c.head.next.prev = e
	c.head.next = e
}

// containerFor returns the container for desc, creating it (via tf) on a
// miss and evicting the least-recently-used entry if that pushes the
// cache over capacity.
func (c *glyphLRUCache) containerFor(desc ScalerContextDesc, tf Typeface) *scalerContextContainer {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[desc]; ok {
		c.unlink(e)
		c.pushFront(e)
		return e.container
	}

	container := &scalerContextContainer{
		desc:     desc,
		typeface: tf,
		metrics:  tf.Metrics(),
		glyphs:   make(map[uint16]*GlyphData),
		arena:    arena.New(config.ArenaBlockSize()),
	}
	e := &glyphCacheEntry{key: desc, container: container}
	c.entries[desc] = e
	c.pushFront(e)

	if len(c.entries) > c.capacity {
		lru := c.tail.prev
		c.unlink(lru)
		delete(c.entries, lru.key)
	}
	return container
}
