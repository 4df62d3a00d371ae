package raster2d

import (
	"math"

	"github.com/inkpath/raster2d/internal/basics"
	"github.com/inkpath/raster2d/internal/path"
	"github.com/inkpath/raster2d/internal/shapes"
)

// FillType selects how the rasterizer resolves overlapping/self-intersecting
// contours, per spec.md §4.1's fill rule: evenOdd toggles on parity of the
// winding counter, winding treats any non-zero accumulation as inside.
type FillType int

const (
	FillTypeWinding FillType = iota
	FillTypeEvenOdd
)

// Path is an immutable-once-submitted sequence of subpaths built from
// move/line/quad/cubic/conic/close verbs, per spec.md §3. The zero value
// is not usable; construct with NewPath.
//
// base is the teacher's slice-backed vertex/command storage
// (path.PathStorageStl, itself a PathBase[*VertexStlStorage[float64]]
// alias), reused as-is.
type Path struct {
	base     *path.PathStorageStl
	fillType FillType
}

// NewPath returns an empty Path builder with the default winding fill rule.
func NewPath() *Path {
	return &Path{
		base:     path.NewPathStorageStl(),
		fillType: FillTypeWinding,
	}
}

// SetFillType selects the fill rule used when this Path is rasterized.
func (p *Path) SetFillType(ft FillType) { p.fillType = ft }

// FillType reports the fill rule currently set on p.
func (p *Path) FillType() FillType { return p.fillType }

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) { p.base.MoveTo(x, y) }

// LineTo appends a straight segment to (x, y).
func (p *Path) LineTo(x, y float64) { p.base.LineTo(x, y) }

// QuadTo appends a quadratic Bezier segment with control point (cx, cy)
// ending at (x, y).
func (p *Path) QuadTo(cx, cy, x, y float64) { p.base.Curve3(cx, cy, x, y) }

// CubicTo appends a cubic Bezier segment with control points (c1x, c1y),
// (c2x, c2y) ending at (x, y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.base.Curve4(c1x, c1y, c2x, c2y, x, y)
}

// ConicTo appends a conic (rational quadratic Bezier) segment with control
// point (cx, cy), weight w, ending at (x, y).
//
// Neither the path storage nor the rasterizer's curve converter carries a
// native conic verb (only Curve3/Curve4 from AGG's inheritance), so the
// conic is flattened here into a polyline by direct evaluation of the
// rational quadratic parametrization:
//
//	P(t) = ((1-t)^2*P0 + 2*(1-t)*t*w*P1 + t^2*P2) / ((1-t)^2 + 2*(1-t)*t*w + t^2)
//
// The step count is picked from the chord length of the control polygon so
// flat conics (small glyph corners) get few segments and large ones (e.g.
// circular arcs represented as conics, w = sqrt(2)/2) stay smooth.
func (p *Path) ConicTo(cx, cy, x, y, w float64) {
	if w <= 0 {
		p.LineTo(x, y)
		return
	}
	x0, y0 := p.base.LastX(), p.base.LastY()
	chord := math.Hypot(cx-x0, cy-y0) + math.Hypot(x-cx, y-cy)
	steps := int(chord/3.0) + 4
	if steps < 4 {
		steps = 4
	}
	if steps > 32 {
		steps = 32
	}
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		mt := 1 - t
		wNum := mt*mt + 2*mt*t*w + t*t
		px := (mt*mt*x0 + 2*mt*t*w*cx + t*t*x) / wNum
		py := (mt*mt*y0 + 2*mt*t*w*cy + t*t*y) / wNum
		p.LineTo(px, py)
	}
}

// Close closes the current subpath back to its starting point.
func (p *Path) Close() { p.base.ClosePolygon(basics.PathFlagsClose) }

// AddRect appends a closed rectangular subpath.
func (p *Path) AddRect(x0, y0, x1, y1 float64) {
	p.MoveTo(x0, y0)
	p.LineTo(x1, y0)
	p.LineTo(x1, y1)
	p.LineTo(x0, y1)
	p.Close()
}

// AddCircle appends a closed circular subpath centered at (cx, cy).
func (p *Path) AddCircle(cx, cy, r float64) {
	p.AddOval(cx-r, cy-r, cx+r, cy+r)
}

// AddOval appends a closed elliptical subpath inscribed in the rectangle
// (x0, y0)-(x1, y1).
func (p *Path) AddOval(x0, y0, x1, y1 float64) {
	cx := (x0 + x1) / 2
	cy := (y0 + y1) / 2
	rx := math.Abs(x1-x0) / 2
	ry := math.Abs(y1-y0) / 2
	e := shapes.NewEllipse()
	e.Init(cx, cy, rx, ry, 0, false)
	appendShape(p.base, e)
}

// AddRoundRect appends a closed rounded-rectangle subpath with corner radii
// (rx, ry).
func (p *Path) AddRoundRect(x0, y0, x1, y1, rx, ry float64) {
	rr := shapes.NewRoundedRectEmpty()
	rr.SetRect(x0, y0, x1, y1)
	rr.SetRadiusXY(rx, ry)
	rr.NormalizeRadius()
	appendShape(p.base, rr)
}

// vertexEmitter is the AGG-style generator convention shared by
// shapes.Ellipse and shapes.RoundedRect: pointer-output vertices driven by
// Rewind/Vertex, distinct from the conv/rasterizer VertexSource shapes
// used elsewhere in this package.
type vertexEmitter interface {
	Rewind(pathID uint32)
	Vertex(x, y *float64) basics.PathCommand
}

// appendShape drains a vertexEmitter generator directly into dst, translating
// its move/line/close commands into PathBase calls.
func appendShape(dst *path.PathStorageStl, shape vertexEmitter) {
	shape.Rewind(0)
	var x, y float64
	for {
		cmd := shape.Vertex(&x, &y)
		if basics.IsStop(cmd) {
			break
		}
		switch {
		case basics.IsMoveTo(cmd):
			dst.MoveTo(x, y)
		case basics.IsLineTo(cmd):
			dst.LineTo(x, y)
		}
		if basics.IsClose(uint32(cmd)) {
			dst.ClosePolygon(basics.PathFlagsClose)
		}
	}
}

// transformedCopy returns a new Path with every vertex mapped through the
// 2x2 linear transform [a b; c d] (no translation), preserving move/line/
// curve/close structure. Used by the glyph cache to scale a typeface's
// font-unit outline into device units once per ScalerContextDesc.
func (p *Path) transformedCopy(a, b, c, d float64) *Path {
	out := NewPath()
	out.fillType = p.fillType
	p.base.Rewind(0)
	for {
		x, y, cmd := p.base.NextVertex()
		pc := basics.PathCommand(cmd)
		if basics.IsStop(pc) {
			break
		}
		tx, ty := a*x+b*y, c*x+d*y
		switch {
		case basics.IsMoveTo(pc):
			out.base.MoveTo(tx, ty)
		case basics.IsLineTo(pc):
			out.base.LineTo(tx, ty)
		case basics.IsCurve(pc):
			out.base.LineTo(tx, ty)
		}
		if basics.IsClose(uint32(pc)) {
			out.base.ClosePolygon(basics.PathFlagsClose)
		}
	}
	return out
}

// bounds returns the axis-aligned bounding box of every vertex in p, or a
// degenerate box at the origin if p is empty.
func (p *Path) bounds() (x0, y0, x1, y1 float64) {
	first := true
	p.base.Rewind(0)
	for {
		x, y, cmd := p.base.NextVertex()
		pc := basics.PathCommand(cmd)
		if basics.IsStop(pc) {
			break
		}
		if !basics.IsVertex(pc) {
			continue
		}
		if first {
			x0, y0, x1, y1 = x, y, x, y
			first = false
			continue
		}
		if x < x0 {
			x0 = x
		}
		if x > x1 {
			x1 = x
		}
		if y < y0 {
			y0 = y
		}
		if y > y1 {
			y1 = y
		}
	}
	return
}

// rewind/vertex drive the three VertexSource shapes the raster pipeline
// needs from a Path: conv's tuple style (feeding ConvTransform/ConvCurve),
// rasterizer's pointer style (feeding AddPath directly for already-flat
// paths), and path's own NextVertex style (for ConcatPath/JoinPath use by
// other Paths). PathBase already implements the latter natively via
// Rewind/NextVertex; the first two get thin adapters below.

// convVertexSource adapts a *path.PathBase to the conv package's
// Rewind(uint)/Vertex() (x, y float64, cmd basics.PathCommand) convention.
type convVertexSource struct {
	base *path.PathStorageStl
}

func (v convVertexSource) Rewind(pathID uint) { v.base.Rewind(pathID) }

func (v convVertexSource) Vertex() (x, y float64, cmd basics.PathCommand) {
	x, y, c := v.base.NextVertex()
	return x, y, basics.PathCommand(c)
}

// asConvVertexSource exposes p as a conv.VertexSource.
func (p *Path) asConvVertexSource() convVertexSource {
	return convVertexSource{base: p.base}
}

// rasterizerVertexSource adapts a tuple-style conv.VertexSource chain to the
// rasterizer package's pointer-output Rewind(uint32)/Vertex(*float64,
// *float64) uint32 convention, so its output can be fed straight into
// RasterizerScanlineAA.AddPath.
type rasterizerVertexSource[VS interface {
	Rewind(pathID uint)
	Vertex() (x, y float64, cmd basics.PathCommand)
}] struct {
	src VS
}

func (r rasterizerVertexSource[VS]) Rewind(pathID uint32) {
	r.src.Rewind(uint(pathID))
}

func (r rasterizerVertexSource[VS]) Vertex(x, y *float64) uint32 {
	vx, vy, cmd := r.src.Vertex()
	*x, *y = vx, vy
	return uint32(cmd)
}
