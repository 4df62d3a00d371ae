package raster2d

import (
	"github.com/inkpath/raster2d/internal/effects"
	"github.com/inkpath/raster2d/internal/transform"
)

// ImageFilter is the tagged-variant per-layer transform of spec.md §4.6:
// Blur, DropShadow, Dilate/Erode, Matrix, ColorFilter, Compose.
type ImageFilter interface {
	// apply runs the filter over src (premultiplied RGBA8/BGRA8), returning
	// a newly allocated result Pixmap.
	apply(src *Pixmap) *Pixmap
	// computeFastBounds outsets bounds by the filter's effective radius
	// plus any offset, per spec.md §4.6.
	computeFastBounds(bounds Rect) Rect
}

// BlurImageFilter blurs src with per-axis Gaussian-like radii, approximated
// via the same StackBlur channel-plane adapter MaskFilter uses, run
// independently over R, G, B and A.
type BlurImageFilter struct{ Sx, Sy float64 }

func NewBlurImageFilter(sx, sy float64) *BlurImageFilter { return &BlurImageFilter{Sx: sx, Sy: sy} }

func (f *BlurImageFilter) apply(src *Pixmap) *Pixmap {
	out := clonePixmap(src)
	rx := int(f.Sx + 0.5)
	ry := int(f.Sy + 0.5)
	if rx < 1 && ry < 1 {
		return out
	}
	bpp := bytesPerPixel(out.colorType)
	for ch := 0; ch < bpp && ch < 4; ch++ {
		plane := channelPlane{pix: out.pix, width: out.width, height: out.height, stride: out.stride, chanOffset: ch, bpp: bpp}
		effects.StackBlurGray8[channelPlane](plane, rx, ry)
	}
	return out
}

func (f *BlurImageFilter) computeFastBounds(bounds Rect) Rect {
	return outsetRect(bounds, f.Sx*3, f.Sy*3)
}

// DropShadowImageFilter renders a blurred, offset, recolored copy of src's
// alpha behind src itself.
type DropShadowImageFilter struct {
	Dx, Dy   float64
	Sx, Sy   float64
	Color    Color
	Input    ImageFilter // may be nil (identity input)
	CropToInput bool
}

func NewDropShadowImageFilter(dx, dy, sx, sy float64, color Color, input ImageFilter, cropToInput bool) *DropShadowImageFilter {
	return &DropShadowImageFilter{Dx: dx, Dy: dy, Sx: sx, Sy: sy, Color: color, Input: input, CropToInput: cropToInput}
}

func (f *DropShadowImageFilter) apply(src *Pixmap) *Pixmap {
	in := src
	if f.Input != nil {
		in = f.Input.apply(src)
	}
	shadow := clonePixmap(in)
	recolor := f.Color.Premultiply()
	for y := 0; y < shadow.height; y++ {
		for x := 0; x < shadow.width; x++ {
			a := shadow.GetPMColor(x, y).A
			shadow.SetPMColor(x, y, PMColor{
				R: mulDiv255Round(recolor.R, a),
				G: mulDiv255Round(recolor.G, a),
				B: mulDiv255Round(recolor.B, a),
				A: a,
			})
		}
	}
	blur := NewBlurImageFilter(f.Sx, f.Sy)
	shadow = blur.apply(shadow)

	out, err := NewPixmap(in.width, in.height, in.colorType, in.alphaType)
	if err != nil {
		return in
	}
	for y := 0; y < out.height; y++ {
		for x := 0; x < out.width; x++ {
			sx, sy := x-int(f.Dx), y-int(f.Dy)
			if shadow.contains(sx, sy) {
				compositePixel(out, x, y, shadow.GetPMColor(sx, sy), 255, BlendSrcOver)
			}
		}
	}
	for y := 0; y < out.height; y++ {
		for x := 0; x < out.width; x++ {
			compositePixel(out, x, y, in.GetPMColor(x, y), 255, BlendSrcOver)
		}
	}
	return out
}

func (f *DropShadowImageFilter) computeFastBounds(bounds Rect) Rect {
	out := outsetRect(bounds, f.Sx*3, f.Sy*3)
	out.X1 += f.Dx
	out.X2 += f.Dx
	out.Y1 += f.Dy
	out.Y2 += f.Dy
	if bounds.X1 < out.X1 {
		out.X1 = bounds.X1
	}
	if bounds.Y1 < out.Y1 {
		out.Y1 = bounds.Y1
	}
	if bounds.X2 > out.X2 {
		out.X2 = bounds.X2
	}
	if bounds.Y2 > out.Y2 {
		out.Y2 = bounds.Y2
	}
	return out
}

// DilateImageFilter/ErodeImageFilter grow or shrink the alpha coverage by
// taking the max/min alpha over an (rx,ry) window, the standard
// morphological filter pair.
type morphImageFilter struct {
	rx, ry int
	dilate bool
}

func NewDilateImageFilter(rx, ry int) ImageFilter { return &morphImageFilter{rx: rx, ry: ry, dilate: true} }
func NewErodeImageFilter(rx, ry int) ImageFilter  { return &morphImageFilter{rx: rx, ry: ry, dilate: false} }

func (f *morphImageFilter) apply(src *Pixmap) *Pixmap {
	out := clonePixmap(src)
	for y := 0; y < src.height; y++ {
		for x := 0; x < src.width; x++ {
			best := src.GetPMColor(x, y)
			for dy := -f.ry; dy <= f.ry; dy++ {
				for dx := -f.rx; dx <= f.rx; dx++ {
					if !src.contains(x+dx, y+dy) {
						continue
					}
					c := src.GetPMColor(x+dx, y+dy)
					if (f.dilate && c.A > best.A) || (!f.dilate && c.A < best.A) {
						best = c
					}
				}
			}
			out.SetPMColor(x, y, best)
		}
	}
	return out
}

func (f *morphImageFilter) computeFastBounds(bounds Rect) Rect {
	return outsetRect(bounds, float64(f.rx), float64(f.ry))
}

// MatrixImageFilter applies a local matrix to the layer before subsequent
// compositing (resampling is the canvas's job at draw time via its own
// CTM; this filter only records the extra transform for bounds purposes).
type MatrixImageFilter struct{ Matrix *transform.TransAffine }

func NewMatrixImageFilter(m *transform.TransAffine) *MatrixImageFilter {
	return &MatrixImageFilter{Matrix: m}
}

func (f *MatrixImageFilter) apply(src *Pixmap) *Pixmap { return src }

func (f *MatrixImageFilter) computeFastBounds(bounds Rect) Rect { return bounds }

// ColorFilterImageFilter applies a ColorFilter to every pixel of a layer.
type ColorFilterImageFilter struct{ Filter ColorFilter }

func NewColorFilterImageFilter(cf ColorFilter) *ColorFilterImageFilter {
	return &ColorFilterImageFilter{Filter: cf}
}

func (f *ColorFilterImageFilter) apply(src *Pixmap) *Pixmap {
	out := clonePixmap(src)
	if f.Filter == nil {
		return out
	}
	for y := 0; y < out.height; y++ {
		for x := 0; x < out.width; x++ {
			c := out.GetPMColor(x, y).Unpremultiply()
			out.SetPMColor(x, y, f.Filter.filterColor(c).Premultiply())
		}
	}
	return out
}

func (f *ColorFilterImageFilter) computeFastBounds(bounds Rect) Rect { return bounds }

// ComposeImageFilter flattens outer(inner(src)), applied inner-first.
type ComposeImageFilter struct{ Outer, Inner ImageFilter }

func NewComposeImageFilter(outer, inner ImageFilter) *ComposeImageFilter {
	return &ComposeImageFilter{Outer: outer, Inner: inner}
}

func (f *ComposeImageFilter) apply(src *Pixmap) *Pixmap {
	mid := src
	if f.Inner != nil {
		mid = f.Inner.apply(src)
	}
	if f.Outer != nil {
		return f.Outer.apply(mid)
	}
	return mid
}

func (f *ComposeImageFilter) computeFastBounds(bounds Rect) Rect {
	b := bounds
	if f.Inner != nil {
		b = f.Inner.computeFastBounds(b)
	}
	if f.Outer != nil {
		b = f.Outer.computeFastBounds(b)
	}
	return b
}

func clonePixmap(src *Pixmap) *Pixmap {
	out, err := NewPixmap(src.width, src.height, src.colorType, src.alphaType)
	if err != nil {
		return src
	}
	copy(out.pix, src.pix)
	return out
}

func outsetRect(r Rect, dx, dy float64) Rect {
	r.Normalize()
	return Rect{X1: r.X1 - dx, Y1: r.Y1 - dy, X2: r.X2 + dx, Y2: r.Y2 + dy}
}
