package raster2d

import (
	"github.com/inkpath/raster2d/internal/config"
	"golang.org/x/sync/errgroup"
)

// Font binds a Typeface to the scale/skew/transform parameters that
// together form a ScalerContextDesc, the per-draw-call unit spec.md §4.2's
// drawGlyphs/drawTextBlob take.
type Font struct {
	Typeface Typeface
	Size     float64

	ScaleX       float64
	SkewX        float64
	Transform    [4]float64 // row-major 2x2, identity if zero value
	ContextScale float64

	StrokeWidth float64
	MiterLimit  float64
	Cap         Cap
	Join        Join
	Embolden    bool
}

// NewFont returns a Font for tf at the given point size with identity
// scale/skew/transform.
func NewFont(tf Typeface, size float64) *Font {
	return &Font{
		Typeface:     tf,
		Size:         size,
		ScaleX:       1,
		ContextScale: 1,
		Transform:    [4]float64{1, 0, 0, 1},
		MiterLimit:   4,
	}
}

func (f *Font) descriptor() ScalerContextDesc {
	transform := f.Transform
	if transform == ([4]float64{}) {
		transform = [4]float64{1, 0, 0, 1}
	}
	scaleX := f.ScaleX
	if scaleX == 0 {
		scaleX = 1
	}
	contextScale := f.ContextScale
	if contextScale == 0 {
		contextScale = 1
	}
	return ScalerContextDesc{
		TypefaceID:   f.Typeface.UniqueID(),
		Size:         f.Size,
		ScaleX:       scaleX,
		SkewX:        f.SkewX,
		Transform:    transform,
		ContextScale: contextScale,
		StrokeWidth:  f.StrokeWidth,
		MiterLimit:   f.MiterLimit,
		Cap:          f.Cap,
		Join:         f.Join,
		Embolden:     f.Embolden,
	}
}

// Metrics returns f's FontMetrics, populated from the typeface the first
// time f's descriptor is looked up in the glyph cache.
func (f *Font) Metrics() FontMetrics {
	container := globalGlyphCache.containerFor(f.descriptor(), f.Typeface)
	return container.Metrics()
}

// textRenderMode is spec.md §4.7's text render dispatcher decision: direct
// glyph-bitmap rendering, SDF rendering for very large sizes, or path
// rendering, chosen once per drawGlyphs/drawTextBlob call (not per glyph —
// a single call uses one Font, hence one decision).
type textRenderMode int

const (
	textRenderBitmap textRenderMode = iota
	textRenderSDF
	textRenderPath
)

// chooseTextRenderMode implements spec.md §4.7's dispatcher: a typeface
// with embedded color glyphs (emoji fonts) must always render its native
// bitmap, since neither an outline nor a distance field exists for those
// glyphs; otherwise very large sizes prefer SDF (amortizing the one-time
// distance-field build over many pixels), and everything else uses direct
// glyph bitmaps.
func chooseTextRenderMode(font *Font) textRenderMode {
	if font.Typeface.HasColorTable() {
		return textRenderBitmap
	}
	if font.Size >= config.SDFMinTextSize() {
		return textRenderSDF
	}
	return textRenderBitmap
}

// DrawGlyphs draws count glyphs at the given baseline positions (posX[i],
// posY[i] are local, pre-CTM coordinates of each glyph's origin), per
// spec.md §4.2's `drawGlyphs(count, glyphs, pos_x, pos_y, font, paint)`.
func (c *Canvas) DrawGlyphs(glyphs []uint16, posX, posY []float64, font *Font, paint *Paint) {
	if font == nil || font.Typeface == nil || len(glyphs) == 0 {
		return
	}
	desc := font.descriptor()
	container := globalGlyphCache.containerFor(desc, font.Typeface)
	mode := chooseTextRenderMode(font)

	prewarmGlyphs(container, glyphs, mode)

	for i, id := range glyphs {
		if i >= len(posX) || i >= len(posY) {
			return
		}
		c.drawOneGlyph(container, id, posX[i], posY[i], mode, paint)
	}
}

// prewarmGlyphs builds every distinct glyph's cached path/bitmap/SDF data
// concurrently before the sequential draw loop runs. This is safe because
// each glyph's lazy-fill only ever touches its own GlyphData under the
// container's single mutex (spec.md §5: "per-glyph work holds only the
// container's mutex") — unlike the draw loop itself, which must stay
// single-threaded against this Canvas per spec.md §5's Canvas contract.
func prewarmGlyphs(container *scalerContextContainer, glyphs []uint16, mode textRenderMode) {
	if len(glyphs) < 2 || mode == textRenderPath {
		return
	}
	seen := make(map[uint16]bool, len(glyphs))
	var g errgroup.Group
	for _, id := range glyphs {
		if seen[id] {
			continue
		}
		seen[id] = true
		id := id
		g.Go(func() error {
			gd := container.glyphData(id)
			container.ensureBitmap(gd, id)
			if mode == textRenderSDF {
				container.ensureSDF(gd)
			}
			return nil
		})
	}
	_ = g.Wait()
}

// DrawTextBlob draws a shaped run of glyphs sharing one Font, with
// position (x, y) added to each glyph's already-shaped local offset, per
// spec.md §4.2's `drawTextBlob(blob, x, y, paint)`.
func (c *Canvas) DrawTextBlob(blob *TextBlob, x, y float64, paint *Paint) {
	if blob == nil {
		return
	}
	posX := make([]float64, len(blob.Glyphs))
	posY := make([]float64, len(blob.Glyphs))
	for i := range blob.Glyphs {
		posX[i] = x + blob.OffsetX[i]
		posY[i] = y + blob.OffsetY[i]
	}
	c.DrawGlyphs(blob.Glyphs, posX, posY, blob.Font, paint)
}

// TextBlob is an immutable, pre-shaped run of glyphs at fixed relative
// offsets, the object spec.md §4.2's drawTextBlob consumes — shaping
// (character-to-glyph mapping, kerning, bidi) is an external collaborator's
// job; this type only carries the already-shaped result.
type TextBlob struct {
	Font    *Font
	Glyphs  []uint16
	OffsetX []float64
	OffsetY []float64
}

// NewTextBlob bundles glyphs and their shaped offsets under font.
func NewTextBlob(font *Font, glyphs []uint16, offsetX, offsetY []float64) *TextBlob {
	return &TextBlob{Font: font, Glyphs: glyphs, OffsetX: offsetX, OffsetY: offsetY}
}

func (c *Canvas) drawOneGlyph(container *scalerContextContainer, id uint16, x, y float64, mode textRenderMode, paint *Paint) {
	gd := container.glyphData(id)

	if mode == textRenderPath {
		path := container.ensurePath(gd, id)
		if path == nil {
			return
		}
		p := paint
		if p == nil {
			p = NewPaint()
		}
		c.Save()
		c.Translate(x, y)
		c.DrawPath(path, p)
		c.Restore()
		return
	}

	bitmap, ox, oy := container.ensureBitmap(gd, id)
	if bitmap == nil {
		return
	}

	if mode == textRenderSDF {
		container.ensureSDF(gd)
		if gd.sdf != nil {
			c.blitSDFGlyph(gd, x, y, paint)
			return
		}
	}

	px, py := int(x)+ox, int(y)+oy
	img := NewImage(bitmap)
	glyphPaint := Paint{BlendMode: BlendSrcOver, Alpha: 255}
	if paint != nil {
		glyphPaint.BlendMode = paint.BlendMode
		glyphPaint.Alpha = paint.effectiveAlpha()
		glyphPaint.ColorFilter = NewBlendColorFilter(paint.Color, BlendSrcIn)
	}
	c.blitImage(img, px, py, &glyphPaint)
}

// blitSDFGlyph composites a cached signed-distance-field glyph at (x, y),
// reconstructing anti-aliased coverage per pixel via sdfField.sampleCoverage
// and tinting with paint's color, per spec.md §4.7's SDF render mode.
func (c *Canvas) blitSDFGlyph(gd *GlyphData, x, y float64, paint *Paint) {
	field := gd.sdf
	ox, oy := int(x)+gd.originX, int(y)+gd.originY
	spans := rectSpans(ox, oy, ox+field.width, oy+field.height)
	clipped := c.top().clip.performClip(spans)

	col := Color{A: 1}
	alpha := uint8(255)
	mode := BlendSrcOver
	if paint != nil {
		col = paint.Color
		alpha = paint.effectiveAlpha()
		mode = paint.BlendMode
	}
	solid := col.Premultiply()

	for _, sp := range clipped {
		colors := make([]PMColor, sp.Len)
		covers := make([]uint8, sp.Len)
		for i := 0; i < sp.Len; i++ {
			fx, fy := sp.X+i-ox, sp.Y-oy
			covers[i] = mulDiv255Round(mulDiv255Round(field.sampleCoverage(fx, fy), sp.Cover), alpha)
			colors[i] = solid
		}
		blendSpan(c.bitmap.Pixmap(), sp.X, sp.Y, sp.Len, colors, covers, mode)
	}
}
