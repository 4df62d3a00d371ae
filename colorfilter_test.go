package raster2d

import (
	"math"
	"testing"
)

func TestNewBlendColorFilterElidesDegenerateCases(t *testing.T) {
	if f := NewBlendColorFilter(NewColor(1, 0, 0, 1), BlendDst); f != nil {
		t.Error("expected nil filter for BlendDst")
	}
	if f := NewBlendColorFilter(NewColor(1, 0, 0, 1), BlendDstIn); f != nil {
		t.Error("expected nil filter for BlendDstIn with opaque color")
	}
	if f := NewBlendColorFilter(NewColor(1, 0, 0, 0.5), BlendDstIn); f == nil {
		t.Error("expected non-nil filter for BlendDstIn with translucent color")
	}
}

func TestBlendColorFilterSrcOver(t *testing.T) {
	f := NewBlendColorFilter(NewColor(1, 0, 0, 1), BlendSrcOver)
	got := f.filterColor(NewColor(0, 1, 0, 1))
	if got.R < 0.99 || got.G > 0.01 {
		t.Errorf("expected fully-opaque src to replace dst, got %+v", got)
	}
}

func TestMatrixColorFilterIdentityIsNil(t *testing.T) {
	if f := NewMatrixColorFilter(IdentityMatrix4x5); f != nil {
		t.Error("expected nil filter for identity matrix")
	}
}

func TestMatrixColorFilterSwapsChannels(t *testing.T) {
	swapRG := Matrix4x5{
		0, 1, 0, 0, 0,
		1, 0, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 1, 0,
	}
	f := NewMatrixColorFilter(swapRG)
	got := f.filterColor(NewColor(1, 0, 0, 1))
	if got.R > 0.01 || got.G < 0.99 {
		t.Errorf("expected R/G swapped, got %+v", got)
	}
}

func TestGammaRoundTrip(t *testing.T) {
	toSRGB := NewLinearToSRGBGammaColorFilter()
	toLinear := NewSRGBToLinearGammaColorFilter()
	c := NewColor(0.5, 0.2, 0.8, 1)
	back := toLinear.filterColor(toSRGB.filterColor(c))
	if math.Abs(back.R-c.R) > 1e-6 || math.Abs(back.G-c.G) > 1e-6 || math.Abs(back.B-c.B) > 1e-6 {
		t.Errorf("gamma round trip mismatch: got %+v, want %+v", back, c)
	}
}

func TestGammaPreservesAlpha(t *testing.T) {
	f := NewLinearToSRGBGammaColorFilter()
	got := f.filterColor(NewColor(0.5, 0.5, 0.5, 0.3))
	if got.A != 0.3 {
		t.Errorf("expected alpha untouched, got %v", got.A)
	}
}

func TestComposeColorFilterElidesNilSides(t *testing.T) {
	f := NewLinearToSRGBGammaColorFilter()
	if got := NewComposeColorFilter(nil, f); got != f {
		t.Error("expected nil outer to elide to inner")
	}
	if got := NewComposeColorFilter(f, nil); got != f {
		t.Error("expected nil inner to elide to outer")
	}
}

func TestComposeColorFilterAppliesInnerFirst(t *testing.T) {
	inner := NewMatrixColorFilter(Matrix4x5{
		0, 1, 0, 0, 0,
		1, 0, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 1, 0,
	})
	outer := NewLinearToSRGBGammaColorFilter()
	composed := NewComposeColorFilter(outer, inner)
	c := NewColor(1, 0, 0, 1)
	want := outer.filterColor(inner.filterColor(c))
	got := composed.filterColor(c)
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
