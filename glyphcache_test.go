package raster2d

import "testing"

// fakeTypeface is a minimal Typeface for exercising the glyph cache without
// a real font backend.
type fakeTypeface struct {
	id         uint32
	colorTable bool
}

func (f *fakeTypeface) UniqueID() uint32     { return f.id }
func (f *fakeTypeface) UnitsPerEm() int32    { return 1000 }
func (f *fakeTypeface) HasColorTable() bool  { return f.colorTable }
func (f *fakeTypeface) Metrics() FontMetrics { return FontMetrics{Ascent: 800, Descent: -200} }
func (f *fakeTypeface) AdvanceWidth(glyphID uint16) float64 { return 500 }
func (f *fakeTypeface) Outline(glyphID uint16) *Path {
	p := NewPath()
	p.AddRect(0, 0, 400, 600)
	return p
}

func TestScalerContextDescIsComparable(t *testing.T) {
	a := ScalerContextDesc{TypefaceID: 1, Size: 12}
	b := ScalerContextDesc{TypefaceID: 1, Size: 12}
	c := ScalerContextDesc{TypefaceID: 1, Size: 14}
	if a != b {
		t.Error("expected identical descriptors to compare equal")
	}
	if a == c {
		t.Error("expected differing descriptors to compare unequal")
	}
}

func TestGlyphLRUCacheReturnsSameContainerForSameDesc(t *testing.T) {
	cache := newGlyphLRUCache(4)
	tf := &fakeTypeface{id: 1}
	desc := ScalerContextDesc{TypefaceID: 1, Size: 12, ScaleX: 1, ContextScale: 1}
	c1 := cache.containerFor(desc, tf)
	c2 := cache.containerFor(desc, tf)
	if c1 != c2 {
		t.Error("expected the same container for the same descriptor")
	}
}

func TestGlyphLRUCacheEvictsLeastRecentlyUsed(t *testing.T) {
	cache := newGlyphLRUCache(2)
	tf := &fakeTypeface{id: 1}
	d1 := ScalerContextDesc{TypefaceID: 1, Size: 10}
	d2 := ScalerContextDesc{TypefaceID: 1, Size: 11}
	d3 := ScalerContextDesc{TypefaceID: 1, Size: 12}

	c1 := cache.containerFor(d1, tf)
	cache.containerFor(d2, tf)
	cache.containerFor(d3, tf) // evicts d1 (least recently used)

	if _, ok := cache.entries[d1]; ok {
		t.Error("expected d1 to be evicted once capacity is exceeded")
	}
	if got := cache.containerFor(d1, tf); got == c1 {
		t.Error("expected a fresh container to be built after eviction")
	}
}

func TestGlyphLRUCacheTouchProtectsFromEviction(t *testing.T) {
	cache := newGlyphLRUCache(2)
	tf := &fakeTypeface{id: 1}
	d1 := ScalerContextDesc{TypefaceID: 1, Size: 10}
	d2 := ScalerContextDesc{TypefaceID: 1, Size: 11}
	d3 := ScalerContextDesc{TypefaceID: 1, Size: 12}

	c1 := cache.containerFor(d1, tf)
	cache.containerFor(d2, tf)
	cache.containerFor(d1, tf) // touch d1, making d2 the LRU entry
	cache.containerFor(d3, tf) // should evict d2, not d1

	if _, ok := cache.entries[d2]; ok {
		t.Error("expected d2 to be evicted, not the recently touched d1")
	}
	if got := cache.containerFor(d1, tf); got != c1 {
		t.Error("expected d1's container to survive since it was touched")
	}
}

func TestEnsurePathCachesResult(t *testing.T) {
	cache := newGlyphLRUCache(4)
	tf := &fakeTypeface{id: 1}
	desc := ScalerContextDesc{TypefaceID: 1, Size: 1000, ScaleX: 1, ContextScale: 1}
	container := cache.containerFor(desc, tf)
	gd := container.glyphData(5)

	p1 := container.ensurePath(gd, 5)
	p2 := container.ensurePath(gd, 5)
	if p1 != p2 {
		t.Error("expected ensurePath to cache and return the same *Path")
	}
	if !gd.hasPath {
		t.Error("expected hasPath to be set after ensurePath")
	}
}

func TestEnsurePathScalesByDescriptor(t *testing.T) {
	cache := newGlyphLRUCache(4)
	tf := &fakeTypeface{id: 1}
	// Size == UnitsPerEm means scale factor 1: outline bounds pass through
	// unchanged modulo the transformedCopy linear map.
	desc := ScalerContextDesc{TypefaceID: 1, Size: 1000, ScaleX: 1, ContextScale: 1}
	container := cache.containerFor(desc, tf)
	gd := container.glyphData(1)
	container.ensurePath(gd, 1)
	b := gd.Bounds()
	if b.X2 != 400 || b.Y2 != 600 {
		t.Errorf("expected bounds to match outline at scale 1, got %+v", b)
	}
}

func TestEnsureMetricsSetsAdvance(t *testing.T) {
	cache := newGlyphLRUCache(4)
	tf := &fakeTypeface{id: 1}
	desc := ScalerContextDesc{TypefaceID: 1, Size: 1000, ScaleX: 1, ContextScale: 1}
	container := cache.containerFor(desc, tf)
	gd := container.glyphData(1)
	container.ensurePath(gd, 1) // pulls in ensureMetrics
	if !gd.hasMetrics {
		t.Error("expected hasMetrics to be set")
	}
	if gd.Advance() != 500 {
		t.Errorf("expected advance 500 at scale 1, got %v", gd.Advance())
	}
}

func TestChooseTextRenderModeColorTypefaceAlwaysBitmap(t *testing.T) {
	font := NewFont(&fakeTypeface{id: 1, colorTable: true}, 1000)
	if mode := chooseTextRenderMode(font); mode != textRenderBitmap {
		t.Errorf("expected bitmap mode for a color typeface, got %v", mode)
	}
}

func TestChooseTextRenderModeLargeSizePrefersSDF(t *testing.T) {
	font := NewFont(&fakeTypeface{id: 2}, 1000)
	if mode := chooseTextRenderMode(font); mode != textRenderSDF {
		t.Errorf("expected SDF mode above the size threshold, got %v", mode)
	}
}

func TestChooseTextRenderModeSmallSizeUsesBitmap(t *testing.T) {
	font := NewFont(&fakeTypeface{id: 3}, 12)
	if mode := chooseTextRenderMode(font); mode != textRenderBitmap {
		t.Errorf("expected bitmap mode below the size threshold, got %v", mode)
	}
}

func TestFontDescriptorDefaultsToIdentity(t *testing.T) {
	font := &Font{Typeface: &fakeTypeface{id: 4}, Size: 12}
	desc := font.descriptor()
	if desc.ScaleX != 1 || desc.ContextScale != 1 {
		t.Errorf("expected zero-valued ScaleX/ContextScale to default to 1, got %+v", desc)
	}
	if desc.Transform != ([4]float64{1, 0, 0, 1}) {
		t.Errorf("expected zero-valued Transform to default to identity, got %v", desc.Transform)
	}
}
