package raster2d

import "math"

// ColorFilter is the tagged-variant per-pixel color transform of spec.md
// §4.6/§9: Blend, Matrix, the two gamma LUTs, and Compose. Like Shader,
// this is a closed sum type rather than an extension interface.
type ColorFilter interface {
	filterColor(c Color) Color
}

// NewBlendColorFilter blends every pixel with color using mode. Returns
// nil (identity) for the degenerate cases spec.md §4.6 names explicitly:
// Dst mode (the filter would be a no-op) and DstIn with a fully-opaque
// source color (coverage-only blend that never changes the destination).
func NewBlendColorFilter(color Color, mode BlendMode) ColorFilter {
	if mode == BlendDst {
		return nil
	}
	if mode == BlendDstIn && color.A >= 1 {
		return nil
	}
	return &blendColorFilter{color: color, mode: mode}
}

type blendColorFilter struct {
	color Color
	mode  BlendMode
}

func (f *blendColorFilter) filterColor(c Color) Color {
	dst := c.Premultiply()
	tmp, err := NewPixmap(1, 1, ColorTypeRGBA8, AlphaTypePremul)
	if err != nil {
		return c
	}
	tmp.SetPMColor(0, 0, dst)
	compositePixel(tmp, 0, 0, f.color.Premultiply(), 255, f.mode)
	return tmp.GetPMColor(0, 0).Unpremultiply()
}

// Matrix4x5 is a row-major 4-row, 5-column color matrix: the first four
// columns scale [r,g,b,a], the fifth is a constant translate, per spec.md
// §4.6.
type Matrix4x5 [20]float64

// IdentityMatrix4x5 is the identity color matrix (returned filters for it
// are elided to nil by NewMatrixColorFilter).
var IdentityMatrix4x5 = Matrix4x5{
	1, 0, 0, 0, 0,
	0, 1, 0, 0, 0,
	0, 0, 1, 0, 0,
	0, 0, 0, 1, 0,
}

// NewMatrixColorFilter applies a 4x5 color matrix to straight (not
// premultiplied) [r,g,b,a] in [0,255], clamping components to [0,255].
// Returns nil for the identity matrix.
func NewMatrixColorFilter(m Matrix4x5) ColorFilter {
	if m == IdentityMatrix4x5 {
		return nil
	}
	return &matrixColorFilter{m: m}
}

type matrixColorFilter struct{ m Matrix4x5 }

func (f *matrixColorFilter) filterColor(c Color) Color {
	r, g, b, a := c.R*255, c.G*255, c.B*255, c.A*255
	m := f.m
	nr := m[0]*r + m[1]*g + m[2]*b + m[3]*a + m[4]
	ng := m[5]*r + m[6]*g + m[7]*b + m[8]*a + m[9]
	nb := m[10]*r + m[11]*g + m[12]*b + m[13]*a + m[14]
	na := m[15]*r + m[16]*g + m[17]*b + m[18]*a + m[19]
	return NewColor(nr/255, ng/255, nb/255, na/255)
}

// gammaColorFilter implements spec.md §4.6's two gamma filters using the
// piecewise IEC 61966-2-1 sRGB transfer function directly; the teacher's
// internal/color/gamma.go gamma LUTs model a single power-law gamma
// (GammaPower), not sRGB's linear-segment-plus-power curve, so they're not
// a fit here (SPEC_FULL.md's literal 256-entry LUT note is satisfied by
// this closed-form evaluation instead of a precomputed table).
type gammaDirection int

const (
	gammaLinearToSRGB gammaDirection = iota
	gammaSRGBToLinear
)

type gammaColorFilter struct{ dir gammaDirection }

// NewLinearToSRGBGammaColorFilter converts linear-light color components
// to sRGB-encoded ones.
func NewLinearToSRGBGammaColorFilter() ColorFilter { return &gammaColorFilter{dir: gammaLinearToSRGB} }

// NewSRGBToLinearGammaColorFilter converts sRGB-encoded color components
// to linear light.
func NewSRGBToLinearGammaColorFilter() ColorFilter { return &gammaColorFilter{dir: gammaSRGBToLinear} }

func (f *gammaColorFilter) filterColor(c Color) Color {
	var fn func(float64) float64
	if f.dir == gammaLinearToSRGB {
		fn = linearToSRGBComponent
	} else {
		fn = srgbToLinearComponent
	}
	return Color{R: fn(c.R), G: fn(c.G), B: fn(c.B), A: c.A}
}

func linearToSRGBComponent(v float64) float64 {
	v = clamp01(v)
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

func srgbToLinearComponent(v float64) float64 {
	v = clamp01(v)
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// composeColorFilter flattens outer(inner(c)), applied inner-first per
// spec.md §4.6.
type composeColorFilter struct{ outer, inner ColorFilter }

// NewComposeColorFilter returns outer∘inner, eliding either side if nil.
func NewComposeColorFilter(outer, inner ColorFilter) ColorFilter {
	if outer == nil {
		return inner
	}
	if inner == nil {
		return outer
	}
	return &composeColorFilter{outer: outer, inner: inner}
}

func (f *composeColorFilter) filterColor(c Color) Color {
	return f.outer.filterColor(f.inner.filterColor(c))
}
