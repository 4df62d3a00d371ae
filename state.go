package raster2d

import "github.com/inkpath/raster2d/internal/transform"

// State is a per-Save record, per spec.md §3: the CTM, the clip in effect,
// and (when this state was opened by SaveLayer) the pending layer to
// composite back on the matching Restore.
type State struct {
	ctm   *transform.TransAffine
	clip  *Clip
	layer *layerState
}

// layerState is spec.md §3's LayerState: an offscreen Bitmap, the child
// Canvas bound to it, the device-pixel offset of the layer relative to
// the parent, and the Paint captured at SaveLayer time.
type layerState struct {
	offsetX, offsetY int
	bitmap           *Bitmap
	canvas           *Canvas
	paint            Paint
}

func newIdentityState() *State {
	return &State{ctm: transform.NewTransAffine(), clip: NewClip()}
}

func (s *State) clone() *State {
	return &State{ctm: s.ctm.Copy(), clip: s.clip.Clone()}
}

func (c *Canvas) top() *State { return c.states[len(c.states)-1] }

// Save pushes a copy of the top state and returns the new stack depth,
// per spec.md §4.2.
func (c *Canvas) Save() int {
	c.states = append(c.states, c.top().clone())
	return len(c.states)
}

// SaveCount reports the current state stack depth (always ≥ 1).
func (c *Canvas) SaveCount() int { return len(c.states) }

// SaveLayer begins routing subsequent draws to an offscreen layer sized to
// the CTM-mapped, paint-inflated bounds, per spec.md §4.2. bounds may be
// nil to use the full canvas. The layer is composited back into the
// parent on the matching Restore via drawImage with the captured Paint,
// so mask/image/color filters on paint apply to the whole layer at once.
func (c *Canvas) SaveLayer(bounds *Rect, paint *Paint) int {
	top := c.top()
	var local Rect
	if bounds != nil {
		local = *bounds
	} else {
		local = Rect{X1: 0, Y1: 0, X2: float64(c.bitmap.Width()), Y2: float64(c.bitmap.Height())}
	}
	dev := transformRect(top.ctm, local)
	var p Paint
	if paint != nil {
		p = *paint
		if p.ImageFilter != nil {
			dev = p.ImageFilter.computeFastBounds(dev)
		}
	} else {
		p = *NewPaint()
	}

	x0, y0, x1, y1 := rectToPixelBounds(dev)
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > c.bitmap.Width() {
		x1 = c.bitmap.Width()
	}
	if y1 > c.bitmap.Height() {
		y1 = c.bitmap.Height()
	}
	w, h := x1-x0, y1-y0
	if w <= 0 || h <= 0 {
		w, h = 1, 1
		x0, y0 = 0, 0
	}

	pm, err := NewPixmap(w, h, c.bitmap.Pixmap().ColorType(), AlphaTypePremul)
	if err != nil {
		c.states = append(c.states, top.clone())
		return len(c.states)
	}
	layerBitmap := NewBitmap(pm)
	childCTM := top.ctm.Copy()
	childCTM.Translate(-float64(x0), -float64(y0))

	child := newCanvasInternal(layerBitmap)
	child.states[0].ctm = childCTM

	next := &State{
		ctm:  top.ctm.Copy(),
		clip: top.clip.Clone(),
		layer: &layerState{
			offsetX: x0, offsetY: y0,
			bitmap: layerBitmap,
			canvas: child,
			paint:  p,
		},
	}
	c.states = append(c.states, next)
	return len(c.states)
}

// Restore pops the top state; if it was opened by SaveLayer, the layer is
// composited back into what is now the top state first. A depth-1 stack
// is never popped (spec.md §4.2's "depth ≥ 1 always").
func (c *Canvas) Restore() {
	if len(c.states) <= 1 {
		return
	}
	popped := c.states[len(c.states)-1]
	c.states = c.states[:len(c.states)-1]
	if popped.layer != nil {
		c.compositeLayer(popped.layer)
	}
}

// RestoreToCount pops states until the stack depth equals n; n below 1 is
// a no-op per spec.md §4.2.
func (c *Canvas) RestoreToCount(n int) {
	if n < 1 {
		return
	}
	for len(c.states) > n {
		c.Restore()
	}
}

func (c *Canvas) compositeLayer(l *layerState) {
	img := NewImage(l.bitmap.Pixmap())
	src := l.paint
	if src.ImageFilter != nil {
		img = NewImage(src.ImageFilter.apply(img.Pixmap()))
	}
	c.blitImage(img, l.offsetX, l.offsetY, &src)
}

// Canvas-local matrix ops, per spec.md §4.2: all operate on the top
// state's CTM using the same this-then-op composition TransAffine itself
// uses, so repeated calls compose in call order.

func (c *Canvas) Translate(dx, dy float64) { c.top().ctm.Translate(dx, dy) }
func (c *Canvas) Scale(sx, sy float64)     { c.top().ctm.ScaleXY(sx, sy) }
func (c *Canvas) Rotate(radians float64)   { c.top().ctm.Rotate(radians) }

// Skew applies a shear with the given x/y factors.
func (c *Canvas) Skew(shx, shy float64) {
	skew := transform.NewTransAffineFromValues(1, shy, shx, 1, 0, 0)
	c.top().ctm.Multiply(skew)
}

// Concat appends m to the current CTM (this-then-m).
func (c *Canvas) Concat(m *transform.TransAffine) { c.top().ctm.Multiply(m) }

// SetMatrix replaces the current CTM outright.
func (c *Canvas) SetMatrix(m *transform.TransAffine) { c.top().ctm = m.Copy() }

// ResetMatrix restores the CTM to identity.
func (c *Canvas) ResetMatrix() { c.top().ctm = transform.NewTransAffine() }

// Matrix returns a copy of the current CTM.
func (c *Canvas) Matrix() *transform.TransAffine { return c.top().ctm.Copy() }

// ClipRect intersects or subtracts an axis-aligned rectangle (in local,
// pre-CTM coordinates) from the current clip, per spec.md §4.3.
func (c *Canvas) ClipRect(rect Rect, op ClipOp) {
	dev := transformRect(c.top().ctm, rect)
	c.top().clip.ClipRect(dev, op)
}

// ClipPath rasterizes path under the current CTM and combines the result
// into the current clip, per spec.md §4.3.
func (c *Canvas) ClipPath(path *Path, op ClipOp) {
	spans := c.rasterizePath(path, StyleFill, nil)
	c.top().clip.ClipSpans(spans, op)
}

// transformRect maps a local rect through m into device space, producing
// the axis-aligned bounding box of the (possibly rotated) transformed
// corners.
func transformRect(m *transform.TransAffine, r Rect) Rect {
	r.Normalize()
	xs := [4]float64{r.X1, r.X2, r.X1, r.X2}
	ys := [4]float64{r.Y1, r.Y1, r.Y2, r.Y2}
	for i := range xs {
		m.Transform(&xs[i], &ys[i])
	}
	out := Rect{X1: xs[0], Y1: ys[0], X2: xs[0], Y2: ys[0]}
	for i := 1; i < 4; i++ {
		if xs[i] < out.X1 {
			out.X1 = xs[i]
		}
		if xs[i] > out.X2 {
			out.X2 = xs[i]
		}
		if ys[i] < out.Y1 {
			out.Y1 = ys[i]
		}
		if ys[i] > out.Y2 {
			out.Y2 = ys[i]
		}
	}
	return out
}
