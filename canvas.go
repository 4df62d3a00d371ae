package raster2d

import (
	"github.com/inkpath/raster2d/internal/basics"
	"github.com/inkpath/raster2d/internal/conv"
	"github.com/inkpath/raster2d/internal/rasterizer"
	"github.com/inkpath/raster2d/internal/scanline"
	"github.com/inkpath/raster2d/internal/transform"
)

// rasterizerT is the concrete instantiation of the teacher's generic
// scanline rasterizer this package drives: integer coordinates, the
// integer conversion policy, and the no-clip clipper (Canvas does its own
// clipping downstream via Clip, so the rasterizer's own clip box is only
// ever set to the bitmap bounds as a cheap early-out).
type rasterizerT = rasterizer.RasterizerScanlineAA[int, rasterizer.RasConvInt, *rasterizer.RasterizerSlNoClip]

// rasScanlineAdapter bridges scanline.ScanlineU8 (uint cover) to
// rasterizer.ScanlineInterface (uint32 cover), the same shim
// internal/agg2d/adapters.go uses to connect the two packages.
type rasScanlineAdapter struct{ sl *scanline.ScanlineU8 }

func (a *rasScanlineAdapter) ResetSpans()                 { a.sl.ResetSpans() }
func (a *rasScanlineAdapter) AddCell(x int, cover uint32)  { a.sl.AddCell(x, uint(cover)) }
func (a *rasScanlineAdapter) Finalize(y int)               { a.sl.Finalize(y) }
func (a *rasScanlineAdapter) NumSpans() int                { return a.sl.NumSpans() }
func (a *rasScanlineAdapter) AddSpan(x, length int, cover uint32) {
	a.sl.AddSpan(x, length, uint(cover))
}

// Canvas is the retained-mode drawing surface of spec.md §4.2: a pixel
// buffer plus a stack of States (CTM + clip), driving the teacher's
// RasterizerScanlineAA + ScanlineU8 pipeline underneath.
type Canvas struct {
	bitmap *Bitmap
	states []*State

	ras *rasterizerT
	sl  *scanline.ScanlineU8
}

// NewCanvas returns a Canvas drawing into bitmap, or nil if bitmap is nil
// or empty, per spec.md §4.2's construction invariant.
func NewCanvas(bitmap *Bitmap) *Canvas {
	if bitmap == nil || bitmap.Empty() {
		return nil
	}
	return newCanvasInternal(bitmap)
}

func newCanvasInternal(bitmap *Bitmap) *Canvas {
	clipper := rasterizer.NewRasterizerSlNoClip()
	ras := rasterizer.NewRasterizerScanlineAA[int, rasterizer.RasConvInt, *rasterizer.RasterizerSlNoClip](rasterizer.RasConvInt{}, clipper)
	ras.ClipBox(0, 0, float64(bitmap.Width()), float64(bitmap.Height()))
	c := &Canvas{
		bitmap: bitmap,
		ras:    ras,
		sl:     scanline.NewScanlineU8(),
	}
	c.states = []*State{newIdentityState()}
	return c
}

// Flush is a no-op for this CPU-only backend; it exists for API parity
// with spec.md §4.2's surface (GPU backends would submit queued commands
// here).
func (c *Canvas) Flush() {}

// DrawPaint fills the entire current clip with paint, per spec.md §4.2.
func (c *Canvas) DrawPaint(paint *Paint) {
	spans := rectSpans(0, 0, c.bitmap.Width(), c.bitmap.Height())
	clipped := c.top().clip.performClip(spans)
	c.paintSpans(clipped, paint)
}

// DrawRect fills/strokes an axis-aligned rectangle, per spec.md §4.2.
func (c *Canvas) DrawRect(rect Rect, paint *Paint) {
	p := NewPath()
	rect.Normalize()
	p.AddRect(rect.X1, rect.Y1, rect.X2, rect.Y2)
	c.DrawPath(p, paint)
}

// DrawRRect fills/strokes a rounded rectangle.
func (c *Canvas) DrawRRect(rect Rect, rx, ry float64, paint *Paint) {
	p := NewPath()
	rect.Normalize()
	p.AddRoundRect(rect.X1, rect.Y1, rect.X2, rect.Y2, rx, ry)
	c.DrawPath(p, paint)
}

// DrawOval fills/strokes an ellipse inscribed in rect.
func (c *Canvas) DrawOval(rect Rect, paint *Paint) {
	p := NewPath()
	rect.Normalize()
	p.AddOval(rect.X1, rect.Y1, rect.X2, rect.Y2)
	c.DrawPath(p, paint)
}

// DrawCircle fills/strokes a circle centered at (cx, cy).
func (c *Canvas) DrawCircle(cx, cy, r float64, paint *Paint) {
	p := NewPath()
	p.AddCircle(cx, cy, r)
	c.DrawPath(p, paint)
}

// DrawLine strokes a single segment, ignoring paint.Style (a line has no
// interior to fill).
func (c *Canvas) DrawLine(x0, y0, x1, y1 float64, paint *Paint) {
	p := NewPath()
	p.MoveTo(x0, y0)
	p.LineTo(x1, y1)
	lp := *paint
	lp.Style = StyleStroke
	c.drawPathStyled(p, &lp)
}

// DrawPath fills/strokes path per paint.Style, per spec.md §4.2's "Draws
// to a stroked style invoke the stroker on the path, then rasterize the
// produced outline as a filled path. Fill+stroke rasterizes fill first,
// stroke second (blended over)."
func (c *Canvas) DrawPath(path *Path, paint *Paint) { c.drawPathStyled(path, paint) }

func (c *Canvas) drawPathStyled(path *Path, paint *Paint) {
	switch paint.Style {
	case StyleStroke:
		spans := c.rasterizePath(path, StyleStroke, paint)
		c.paintSpans(c.top().clip.performClip(spans), paint)
	case StyleFillAndStroke:
		fillSpans := c.rasterizePath(path, StyleFill, paint)
		c.paintSpans(c.top().clip.performClip(fillSpans), paint)
		strokeSpans := c.rasterizePath(path, StyleStroke, paint)
		c.paintSpans(c.top().clip.performClip(strokeSpans), paint)
	default: // StyleFill
		spans := c.rasterizePath(path, StyleFill, paint)
		c.paintSpans(c.top().clip.performClip(spans), paint)
	}
}

// rasterizePath walks path through transform → curve-flatten → (for
// strokes) dash → stroke, then sweeps the result through the rasterizer,
// coalescing per-pixel AA coverage into Spans (spec.md §4.1's
// SpanBuilder coalescing rule: adjacent equal-alpha pixels merge,
// zero-alpha pixels produce no span — ScanlineU8 already performs this
// coalescing internally and hands back runs of distinct Covers, which
// coalesceCovers folds further into uniform-cover Spans).
func (c *Canvas) rasterizePath(path *Path, style Style, paint *Paint) []Span {
	ctm := c.top().ctm
	transformed := conv.NewConvTransform[convVertexSource, *transform.TransAffine](path.asConvVertexSource(), ctm)
	curved := conv.NewConvCurve(transformed)

	c.ras.Reset()
	if style == StyleStroke && paint != nil {
		var strokeSrc conv.VertexSource = curved
		if len(paint.DashIntervals) > 0 {
			dash := conv.NewConvDash(curved)
			for i := 0; i+1 < len(paint.DashIntervals); i += 2 {
				dash.AddDash(paint.DashIntervals[i], paint.DashIntervals[i+1])
			}
			dash.DashStart(paint.DashPhase)
			strokeSrc = dash
		}
		stroke := conv.NewConvStroke(strokeSrc)
		stroke.SetWidth(paint.StrokeWidth)
		stroke.SetLineCap(paint.Cap)
		stroke.SetLineJoin(paint.Join)
		stroke.SetMiterLimit(paint.MiterLimit)
		c.ras.FillingRule(basics.FillNonZero)
		c.ras.AddPath(rasterizerVertexSource[*conv.ConvStroke]{src: stroke}, 0)
	} else {
		if path.FillType() == FillTypeEvenOdd {
			c.ras.FillingRule(basics.FillEvenOdd)
		} else {
			c.ras.FillingRule(basics.FillNonZero)
		}
		c.ras.AddPath(rasterizerVertexSource[*conv.ConvCurve]{src: curved}, 0)
	}

	return c.sweepToSpans()
}

func (c *Canvas) sweepToSpans() []Span {
	if !c.ras.RewindScanlines() {
		return nil
	}
	c.sl.Reset(c.ras.MinX(), c.ras.MaxX())
	adapter := &rasScanlineAdapter{sl: c.sl}
	var out []Span
	for c.ras.SweepScanline(adapter) {
		y := c.sl.Y()
		for _, s := range c.sl.Spans() {
			out = append(out, coalesceCovers(int(s.X), y, s.Covers)...)
		}
	}
	return out
}

// coalesceCovers folds a run of per-pixel coverage values into one or
// more uniform-cover Spans, merging adjacent equal-alpha pixels and
// dropping zero-alpha ones, per spec.md §4.1's coalescing rule.
func coalesceCovers(x0, y int, covers []uint8) []Span {
	var out []Span
	i := 0
	for i < len(covers) {
		if covers[i] == 0 {
			i++
			continue
		}
		j := i + 1
		for j < len(covers) && covers[j] == covers[i] {
			j++
		}
		out = append(out, Span{X: x0 + i, Y: y, Len: j - i, Cover: covers[i]})
		i = j
	}
	return out
}

// blitImage composites img 1:1 onto the canvas at device-pixel offset
// (x0, y0), honoring the current clip and paint, with no resampling.
// Used both by SaveLayer's Restore-time composite and as the fast path
// for an identity-mapped DrawImage.
func (c *Canvas) blitImage(img *Image, x0, y0 int, paint *Paint) {
	w, h := img.Width(), img.Height()
	spans := rectSpans(x0, y0, x0+w, y0+h)
	clipped := c.top().clip.performClip(spans)
	alpha := uint8(255)
	if paint != nil {
		alpha = paint.effectiveAlpha()
	}
	mode := BlendSrcOver
	if paint != nil {
		mode = paint.BlendMode
	}
	var cf ColorFilter
	if paint != nil {
		cf = paint.ColorFilter
	}
	for _, sp := range clipped {
		colors := make([]PMColor, sp.Len)
		for i := 0; i < sp.Len; i++ {
			px, py := sp.X+i-x0, sp.Y-y0
			col := img.pixmap.GetPMColor(px, py)
			if cf != nil {
				col = cf.filterColor(col.Unpremultiply()).Premultiply()
			}
			colors[i] = col
		}
		covers := make([]uint8, sp.Len)
		for i := range covers {
			covers[i] = mulDiv255Round(sp.Cover, alpha)
		}
		blendSpan(c.bitmap.Pixmap(), sp.X, sp.Y, sp.Len, colors, covers, mode)
	}
}

// paintSpans is the brush of spec.md §4.4: for each clipped span it
// computes per-pixel source color via paint's Shader (or its flat Color
// if no Shader is set), applies the ColorFilter, modulates by cover and
// global alpha, and blends into the destination. When paint carries a
// MaskFilter or ImageFilter, the geometry is instead rendered into a
// scratch layer first and the filter chain applied to that layer as a
// whole, per spec.md §4.6's "intermediate bitmap" application order.
func (c *Canvas) paintSpans(spans []Span, paint *Paint) {
	if len(spans) == 0 {
		return
	}
	if paint.MaskFilter != nil || paint.ImageFilter != nil {
		c.paintSpansFiltered(spans, paint)
		return
	}
	c.paintSpansDirect(c.bitmap.Pixmap(), spans, paint)
}

func (c *Canvas) paintSpansDirect(dst *Pixmap, spans []Span, paint *Paint) {
	alpha := paint.effectiveAlpha()
	shader := paint.Shader
	solid := PMColor{}
	pureColor := true
	if shader != nil {
		solid, pureColor = shader.pureColor()
	} else {
		solid = paint.Color.Premultiply()
	}
	if paint.ColorFilter != nil && pureColor {
		solid = paint.ColorFilter.filterColor(solid.Unpremultiply()).Premultiply()
	}

	for _, sp := range spans {
		var colors []PMColor
		if pureColor {
			colors = []PMColor{solid}
		} else {
			colors = make([]PMColor, sp.Len)
			shader.shadeSpan(sp.X, sp.Y, sp.Len, colors)
			if paint.ColorFilter != nil {
				for i := range colors {
					colors[i] = paint.ColorFilter.filterColor(colors[i].Unpremultiply()).Premultiply()
				}
			}
		}
		covers := make([]uint8, sp.Len)
		for i := range covers {
			covers[i] = mulDiv255Round(sp.Cover, alpha)
		}
		blendSpan(dst, sp.X, sp.Y, sp.Len, colors, covers, paint.BlendMode)
	}
}

// paintSpansFiltered renders the geometry at full coverage (mask/image
// filters disabled) into a scratch Pixmap sized to the spans' bounds,
// applies paint's MaskFilter/ImageFilter to that scratch layer, then
// blits the result back through blitImage (which honors BlendMode,
// ColorFilter and global alpha).
func (c *Canvas) paintSpansFiltered(spans []Span, paint *Paint) {
	x0, y0, x1, y1 := spansBounds(spans)
	if paint.ImageFilter != nil {
		bounds := paint.ImageFilter.computeFastBounds(Rect{X1: float64(x0), Y1: float64(y0), X2: float64(x1), Y2: float64(y1)})
		x0, y0, x1, y1 = rectToPixelBounds(bounds)
	}
	x0, y0 = maxInt(x0, 0), maxInt(y0, 0)
	x1, y1 = minInt(x1, c.bitmap.Width()), minInt(y1, c.bitmap.Height())
	w, h := x1-x0, y1-y0
	if w <= 0 || h <= 0 {
		return
	}

	scratch, err := NewPixmap(w, h, c.bitmap.Pixmap().ColorType(), AlphaTypePremul)
	if err != nil {
		return
	}
	local := make([]Span, len(spans))
	for i, sp := range spans {
		local[i] = Span{X: sp.X - x0, Y: sp.Y - y0, Len: sp.Len, Cover: sp.Cover}
	}
	unfiltered := *paint
	unfiltered.MaskFilter = nil
	unfiltered.ImageFilter = nil
	c.paintSpansDirect(scratch, local, &unfiltered)

	if paint.MaskFilter != nil {
		paint.MaskFilter.Apply(scratch)
	}
	img := NewImage(scratch)
	if paint.ImageFilter != nil {
		img = NewImage(paint.ImageFilter.apply(scratch))
	}
	blit := Paint{BlendMode: paint.BlendMode, Alpha: paint.Alpha}
	c.blitImage(img, x0, y0, &blit)
}

func spansBounds(spans []Span) (x0, y0, x1, y1 int) {
	if len(spans) == 0 {
		return 0, 0, 0, 0
	}
	x0, y0 = spans[0].X, spans[0].Y
	x1, y1 = spans[0].X+spans[0].Len, spans[0].Y+1
	for _, s := range spans[1:] {
		if s.X < x0 {
			x0 = s.X
		}
		if s.X+s.Len > x1 {
			x1 = s.X + s.Len
		}
		if s.Y < y0 {
			y0 = s.Y
		}
		if s.Y+1 > y1 {
			y1 = s.Y + 1
		}
	}
	return
}

// DrawImage draws img at local point (x, y) with no resampling beyond
// what the CTM itself implies, per spec.md §4.2.
func (c *Canvas) DrawImage(img *Image, x, y float64, paint *Paint) {
	if img == nil {
		return
	}
	w, h := float64(img.Width()), float64(img.Height())
	c.DrawImageRect(img, Rect{X1: 0, Y1: 0, X2: w, Y2: h}, Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}, FilterNearest, paint)
}

// DrawImageRect samples src (in image pixel space) into dst (in local,
// pre-CTM coordinates), per spec.md §4.2/§4.4. A nil img is ignored,
// per spec.md's "Null image to drawImage is ignored."
func (c *Canvas) DrawImageRect(img *Image, src, dst Rect, sampling FilterMode, paint *Paint) {
	if img == nil {
		return
	}
	src.Normalize()
	dst.Normalize()
	srcW, srcH := src.X2-src.X1, src.Y2-src.Y1
	if srcW <= 0 || srcH <= 0 {
		return
	}
	dstW, dstH := dst.X2-dst.X1, dst.Y2-dst.Y1

	m := transform.NewTransAffine()
	m.Translate(-src.X1, -src.Y1)
	m.ScaleXY(dstW/srcW, dstH/srcH)
	m.Translate(dst.X1, dst.Y1)
	m.Multiply(c.top().ctm)

	shader := NewImageShader(img, TileClamp, TileClamp, sampling, m)
	p := NewPath()
	p.AddRect(dst.X1, dst.Y1, dst.X2, dst.Y2)

	dp := Paint{Style: StyleFill, AntiAlias: true, Color: Color{A: 1}, BlendMode: BlendSrcOver, Alpha: 255}
	if paint != nil {
		dp = *paint
		dp.Style = StyleFill
	}
	dp.Shader = shader
	c.DrawPath(p, &dp)
}
