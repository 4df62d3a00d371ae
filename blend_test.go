package raster2d

import "testing"

func TestCompositePixelClearAlwaysZeroesRegardlessOfSource(t *testing.T) {
	pm, _ := NewPixmap(1, 1, ColorTypeRGBA8, AlphaTypePremul)
	pm.SetPMColor(0, 0, PMColor{R: 200, G: 200, B: 200, A: 255})
	compositePixel(pm, 0, 0, PMColor{R: 10, G: 10, B: 10, A: 10}, 255, BlendClear)
	if pm.GetPMColor(0, 0) != (Transparent) {
		t.Errorf("expected transparent after BlendClear, got %+v", pm.GetPMColor(0, 0))
	}
}

func TestCompositePixelSrcOverTransparentSourceIsNoop(t *testing.T) {
	pm, _ := NewPixmap(1, 1, ColorTypeRGBA8, AlphaTypePremul)
	before := PMColor{R: 50, G: 60, B: 70, A: 80}
	pm.SetPMColor(0, 0, before)
	compositePixel(pm, 0, 0, Transparent, 255, BlendSrcOver)
	if pm.GetPMColor(0, 0) != before {
		t.Errorf("expected no-op for transparent src, got %+v", pm.GetPMColor(0, 0))
	}
}

func TestCompositePixelDstInFullOpaqueCoverIsNoop(t *testing.T) {
	pm, _ := NewPixmap(1, 1, ColorTypeRGBA8, AlphaTypePremul)
	before := PMColor{R: 50, G: 60, B: 70, A: 80}
	pm.SetPMColor(0, 0, before)
	compositePixel(pm, 0, 0, PMColor{R: 255, G: 255, B: 255, A: 255}, 255, BlendDstIn)
	if pm.GetPMColor(0, 0) != before {
		t.Errorf("expected no-op for opaque full-cover DstIn, got %+v", pm.GetPMColor(0, 0))
	}
}

func TestCompositePixelDstInTransparentSourceClears(t *testing.T) {
	pm, _ := NewPixmap(1, 1, ColorTypeRGBA8, AlphaTypePremul)
	pm.SetPMColor(0, 0, PMColor{R: 50, G: 60, B: 70, A: 80})
	compositePixel(pm, 0, 0, Transparent, 255, BlendDstIn)
	if pm.GetPMColor(0, 0) != (Transparent) {
		t.Errorf("expected transparent dst for transparent-source DstIn, got %+v", pm.GetPMColor(0, 0))
	}
}

func TestCompositePixelDstOutFullOpaqueCoverClears(t *testing.T) {
	pm, _ := NewPixmap(1, 1, ColorTypeRGBA8, AlphaTypePremul)
	pm.SetPMColor(0, 0, PMColor{R: 50, G: 60, B: 70, A: 80})
	compositePixel(pm, 0, 0, PMColor{R: 255, G: 255, B: 255, A: 255}, 255, BlendDstOut)
	if pm.GetPMColor(0, 0) != (Transparent) {
		t.Errorf("expected transparent dst for opaque full-cover DstOut, got %+v", pm.GetPMColor(0, 0))
	}
}

func TestCompositePixelZeroCoverIsNoop(t *testing.T) {
	pm, _ := NewPixmap(1, 1, ColorTypeRGBA8, AlphaTypePremul)
	before := PMColor{R: 1, G: 2, B: 3, A: 4}
	pm.SetPMColor(0, 0, before)
	compositePixel(pm, 0, 0, PMColor{R: 255, G: 255, B: 255, A: 255}, 0, BlendSrc)
	if pm.GetPMColor(0, 0) != before {
		t.Errorf("expected no-op at zero cover, got %+v", pm.GetPMColor(0, 0))
	}
}

func TestCompositePixelSrcReplacesOpaqueDst(t *testing.T) {
	pm, _ := NewPixmap(1, 1, ColorTypeRGBA8, AlphaTypePremul)
	pm.SetPMColor(0, 0, PMColor{R: 1, G: 2, B: 3, A: 4})
	src := PMColor{R: 100, G: 150, B: 200, A: 255}
	compositePixel(pm, 0, 0, src, 255, BlendSrc)
	if pm.GetPMColor(0, 0) != src {
		t.Errorf("got %+v, want %+v", pm.GetPMColor(0, 0), src)
	}
}

func TestCompositePixelOutOfBoundsIsNoop(t *testing.T) {
	pm, _ := NewPixmap(1, 1, ColorTypeRGBA8, AlphaTypePremul)
	compositePixel(pm, 5, 5, PMColor{R: 1, G: 1, B: 1, A: 1}, 255, BlendSrc)
	for _, b := range pm.Bytes() {
		if b != 0 {
			t.Fatal("out-of-bounds composite should be a no-op")
		}
	}
}

func TestCompositePixelA8FallsBackToSrcOver(t *testing.T) {
	pm, _ := NewPixmap(1, 1, ColorTypeA8, AlphaTypePremul)
	pm.SetPMColor(0, 0, PMColor{A: 100})
	compositePixel(pm, 0, 0, PMColor{R: 255, G: 255, B: 255, A: 200}, 255, BlendMultiply)
	got := pm.GetPMColor(0, 0)
	if got.A <= 100 {
		t.Errorf("expected SrcOver-style alpha accumulation on A8 target, got %d", got.A)
	}
}

func TestBlendSpanUniformColor(t *testing.T) {
	pm, _ := NewPixmap(4, 1, ColorTypeRGBA8, AlphaTypePremul)
	colors := []PMColor{{R: 10, G: 20, B: 30, A: 255}}
	covers := []uint8{255, 255, 255, 255}
	blendSpan(pm, 0, 0, 4, colors, covers, BlendSrc)
	for x := 0; x < 4; x++ {
		if pm.GetPMColor(x, 0) != colors[0] {
			t.Errorf("pixel %d: got %+v, want %+v", x, pm.GetPMColor(x, 0), colors[0])
		}
	}
}

func TestToCompOpModulateAndMultiplyShareFormula(t *testing.T) {
	if toCompOp(BlendModulate) != toCompOp(BlendMultiply) {
		t.Error("expected BlendModulate and BlendMultiply to map to the same CompOp")
	}
}
