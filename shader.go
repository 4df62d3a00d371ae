package raster2d

import (
	"math"
	"sort"

	"github.com/inkpath/raster2d/internal/transform"
)

// TileMode selects how a shader's 1-D or 2-D parameter is remapped once it
// leaves [0,1], per spec.md §3/§4.4.
type TileMode int

const (
	TileClamp TileMode = iota
	TileRepeat
	TileMirror
	TileDecal
)

// FilterMode selects the resampling kernel an image shader uses.
type FilterMode int

const (
	FilterNearest FilterMode = iota
	FilterLinear
)

// Shader is the tagged-variant brush source of spec.md §4.4/§9: solid,
// image, or one of the four gradient kinds. Concrete types below are the
// only implementations; the interface exists so Paint and the span-brush
// pipeline can hold any of them uniformly, not as an extension point for
// caller-defined shaders (AGG's own generator-interface style would invite
// that; this spec explicitly wants a closed sum type instead).
type Shader interface {
	// pureColor reports a single color valid for an entire span, and true,
	// when this shader is constant (only Solid).
	pureColor() (PMColor, bool)
	// shadeSpan fills out[:length] with the shader's color at each device
	// pixel (x+i, y), i in [0,length).
	shadeSpan(x, y, length int, out []PMColor)
}

// SolidShader is a Shader that always returns one premultiplied color.
type SolidShader struct{ Color PMColor }

// NewSolidShader wraps c.
func NewSolidShader(c Color) *SolidShader { return &SolidShader{Color: c.Premultiply()} }

func (s *SolidShader) pureColor() (PMColor, bool) { return s.Color, true }

func (s *SolidShader) shadeSpan(x, y, length int, out []PMColor) {
	for i := 0; i < length; i++ {
		out[i] = s.Color
	}
}

// applyTile remaps a 1-D gradient parameter t per mode. For TileDecal the
// caller is responsible for checking the returned ok flag and emitting
// transparent when false.
func applyTile(t float64, mode TileMode) (float64, bool) {
	switch mode {
	case TileClamp:
		return clamp01(t), true
	case TileRepeat:
		f := t - math.Floor(t)
		return f, true
	case TileMirror:
		f := t - 2*math.Floor(t/2)
		if f > 1 {
			f = 2 - f
		}
		return f, true
	case TileDecal:
		if t < 0 || t > 1 {
			return 0, false
		}
		return t, true
	default:
		return clamp01(t), true
	}
}

// gradientStops holds the color/position pairs shared by all gradient
// shader kinds, plus the linear-search lookup spec.md §4.4 describes:
// "interpolate color stops by linear search... Gradient color
// interpolation uses the provided color_offsets if present... otherwise
// implicit uniform spacing. At the boundaries, return the extremal color."
type gradientStops struct {
	colors  []Color
	offsets []float64 // len(offsets) == len(colors); nil means uniform spacing
}

func newGradientStops(colors []Color, offsets []float64) gradientStops {
	g := gradientStops{colors: colors}
	if offsets != nil {
		g.offsets = append([]float64(nil), offsets...)
		sort.Float64s(g.offsets)
	}
	return g
}

func (g gradientStops) offsetAt(i int) float64 {
	if g.offsets != nil {
		return g.offsets[i]
	}
	if len(g.colors) <= 1 {
		return 0
	}
	return float64(i) / float64(len(g.colors)-1)
}

// colorAt resolves color stops at parameter t via linear search, per
// spec.md §4.4.
func (g gradientStops) colorAt(t float64) PMColor {
	n := len(g.colors)
	if n == 0 {
		return Transparent
	}
	if n == 1 || t <= g.offsetAt(0) {
		return g.colors[0].Premultiply()
	}
	if t >= g.offsetAt(n-1) {
		return g.colors[n-1].Premultiply()
	}
	for i := 1; i < n; i++ {
		hi := g.offsetAt(i)
		if t <= hi {
			lo := g.offsetAt(i - 1)
			span := hi - lo
			local := 0.0
			if span > 0 {
				local = (t - lo) / span
			}
			return lerpColor(g.colors[i-1], g.colors[i], local)
		}
	}
	return g.colors[n-1].Premultiply()
}

// pointsToUnit is the forward device-pixel-to-gradient-parameter-space
// transform spec.md §4.4 calls "preprocessing builds pointsToUnit": the
// gradient's own local-to-unit transform, composed after the inverse of
// the shader's localMatrix (local-to-device). Built once at shader
// construction.
type pointsToUnit struct {
	fwd *transform.TransAffine
}

// newPointsToUnit composes localMatrix⁻¹ (device→local) with unit
// (local→unit-space), i.e. "apply localMatrix⁻¹ first, then unit" in this
// package's this-then-m Multiply convention.
func newPointsToUnit(localMatrix, unit *transform.TransAffine) pointsToUnit {
	fwd := localMatrix.Copy().Invert()
	fwd.Multiply(unit)
	return pointsToUnit{fwd: fwd}
}

func (p pointsToUnit) apply(x, y float64) (float64, float64) {
	p.fwd.Transform(&x, &y)
	return x, y
}

// LinearGradientShader implements spec.md §4.4's linear gradient: t is the
// projection of the device pixel onto the axis from p0 to p1.
type LinearGradientShader struct {
	stops  gradientStops
	tile   TileMode
	toUnit pointsToUnit
}

// NewLinearGradientShader builds a linear gradient between p0 and p1,
// mapped through localMatrix (local-to-device); pass
// transform.NewTransAffine() if the gradient has no local transform.
func NewLinearGradientShader(p0, p1 Point, colors []Color, offsets []float64, tile TileMode, localMatrix *transform.TransAffine) *LinearGradientShader {
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	length := math.Hypot(dx, dy)
	unit := transform.NewTransAffine()
	unit.Translate(-p0.X, -p0.Y)
	if length > 0 {
		// Rotate so (p0,p1) maps onto the unit x-axis, then scale by 1/length.
		angle := math.Atan2(dy, dx)
		unit.Rotate(-angle)
		unit.Scale(1 / length)
	}
	return &LinearGradientShader{
		stops:  newGradientStops(colors, offsets),
		tile:   tile,
		toUnit: newPointsToUnit(localMatrix, unit),
	}
}

func (s *LinearGradientShader) pureColor() (PMColor, bool) { return PMColor{}, false }

func (s *LinearGradientShader) shadeSpan(x, y, length int, out []PMColor) {
	for i := 0; i < length; i++ {
		px, _ := s.toUnit.apply(float64(x+i)+0.5, float64(y)+0.5)
		t, ok := applyTile(px, s.tile)
		if !ok {
			out[i] = Transparent
			continue
		}
		out[i] = s.stops.colorAt(t)
	}
}

// RadialGradientShader implements spec.md §4.4's radial gradient:
// t = |pointsToUnit · p|, where pointsToUnit maps center→origin,
// radius→1.
type RadialGradientShader struct {
	stops  gradientStops
	tile   TileMode
	toUnit pointsToUnit
}

// NewRadialGradientShader builds a radial gradient centered at center with
// the given radius.
func NewRadialGradientShader(center Point, radius float64, colors []Color, offsets []float64, tile TileMode, localMatrix *transform.TransAffine) *RadialGradientShader {
	unit := transform.NewTransAffine()
	unit.Translate(-center.X, -center.Y)
	if radius > 0 {
		unit.Scale(1 / radius)
	}
	return &RadialGradientShader{
		stops:  newGradientStops(colors, offsets),
		tile:   tile,
		toUnit: newPointsToUnit(localMatrix, unit),
	}
}

func (s *RadialGradientShader) pureColor() (PMColor, bool) { return PMColor{}, false }

func (s *RadialGradientShader) shadeSpan(x, y, length int, out []PMColor) {
	for i := 0; i < length; i++ {
		px, py := s.toUnit.apply(float64(x+i)+0.5, float64(y)+0.5)
		t, ok := applyTile(math.Hypot(px, py), s.tile)
		if !ok {
			out[i] = Transparent
			continue
		}
		out[i] = s.stops.colorAt(t)
	}
}

// SweepGradientShader implements spec.md §4.4's sweep (conic/angular)
// gradient: t = (atan2(-p.y, -p.x)/(2π) + 0.5 + bias) * scale.
type SweepGradientShader struct {
	stops  gradientStops
	tile   TileMode
	bias   float64
	scale  float64
	toUnit pointsToUnit
}

// NewSweepGradientShader builds a sweep gradient centered at center.
// startAngle/endAngle are in radians and set bias/scale so t=0 at
// startAngle and t=1 at endAngle; pass (0, 2π) for a full sweep.
func NewSweepGradientShader(center Point, startAngle, endAngle float64, colors []Color, offsets []float64, tile TileMode, localMatrix *transform.TransAffine) *SweepGradientShader {
	unit := transform.NewTransAffine()
	unit.Translate(-center.X, -center.Y)
	sweep := endAngle - startAngle
	scale := 1.0
	if sweep != 0 {
		scale = (2 * math.Pi) / sweep
	}
	bias := -startAngle / (2 * math.Pi)
	return &SweepGradientShader{
		stops:  newGradientStops(colors, offsets),
		tile:   tile,
		bias:   bias,
		scale:  scale,
		toUnit: newPointsToUnit(localMatrix, unit),
	}
}

func (s *SweepGradientShader) pureColor() (PMColor, bool) { return PMColor{}, false }

func (s *SweepGradientShader) shadeSpan(x, y, length int, out []PMColor) {
	for i := 0; i < length; i++ {
		px, py := s.toUnit.apply(float64(x+i)+0.5, float64(y)+0.5)
		raw := (math.Atan2(-py, -px)/(2*math.Pi) + 0.5 + s.bias) * s.scale
		t, ok := applyTile(raw, s.tile)
		if !ok {
			out[i] = Transparent
			continue
		}
		out[i] = s.stops.colorAt(t)
	}
}

// ConicalGradientShader implements spec.md §4.4's general two-point
// conical gradient (Skia's closed form), documented further in
// SPEC_FULL.md §C item 1.
type ConicalGradientShader struct {
	stops  gradientStops
	tile   TileMode
	toUnit pointsToUnit

	// Degenerate-case flags precomputed at construction.
	isRadial bool // |C1 - C0| ≈ 0: falls back to a plain radial gradient
	isStrip  bool // |r1 - r0| ≈ 0: falls back to a linear "strip" gradient

	r0, r1 float64
	fx     float64 // focal x in the unit-circle space, = r0/(r0-r1)
}

// NewConicalGradientShader builds a two-point conical gradient between
// circles (c0, r0) and (c1, r1).
func NewConicalGradientShader(c0 Point, r0 float64, c1 Point, r1 float64, colors []Color, offsets []float64, tile TileMode, localMatrix *transform.TransAffine) *ConicalGradientShader {
	const eps = 1e-9
	dx, dy := c1.X-c0.X, c1.Y-c0.Y
	centerDist := math.Hypot(dx, dy)

	s := &ConicalGradientShader{
		stops: newGradientStops(colors, offsets),
		tile:  tile,
		r0:    r0,
		r1:    r1,
	}

	switch {
	case centerDist < eps:
		// Concentric circles: reduces to a radial gradient keyed on r1
		// (or r0 if r1 is degenerate too).
		s.isRadial = true
		radius := r1
		if radius <= eps {
			radius = r0
		}
		unit := transform.NewTransAffine()
		unit.Translate(-c0.X, -c0.Y)
		if radius > eps {
			unit.Scale(1 / radius)
		}
		s.toUnit = newPointsToUnit(localMatrix, unit)
	case math.Abs(r1-r0) < eps:
		// Equal radii: the iso-t lines are a family of parallel strips
		// perpendicular to the c0→c1 axis, i.e. a linear gradient along
		// that axis with a constant radius band — reduce directly to the
		// linear-gradient t formula.
		s.isStrip = true
		angle := math.Atan2(dy, dx)
		unit := transform.NewTransAffine()
		unit.Translate(-c0.X, -c0.Y)
		unit.Rotate(-angle)
		unit.Scale(1 / centerDist)
		s.toUnit = newPointsToUnit(localMatrix, unit)
	default:
		// General case: map space so C0 is the origin, C1 lies at unit
		// distance on the x-axis, scaled so r1 is expressed relative to
		// that unit distance.
		angle := math.Atan2(dy, dx)
		unit := transform.NewTransAffine()
		unit.Translate(-c0.X, -c0.Y)
		unit.Rotate(-angle)
		unit.Scale(1 / centerDist)
		s.toUnit = newPointsToUnit(localMatrix, unit)
		s.r0 = r0 / centerDist
		s.r1 = r1 / centerDist
		s.fx = s.r0 / (s.r0 - s.r1)
	}
	return s
}

func (s *ConicalGradientShader) pureColor() (PMColor, bool) { return PMColor{}, false }

func (s *ConicalGradientShader) shadeSpan(x, y, length int, out []PMColor) {
	for i := 0; i < length; i++ {
		px, py := s.toUnit.apply(float64(x+i)+0.5, float64(y)+0.5)
		var t float64
		var ok bool
		switch {
		case s.isRadial:
			t, ok = applyTile(math.Hypot(px, py), s.tile)
		case s.isStrip:
			t, ok = applyTile(px, s.tile)
		default:
			t, ok = s.conicalT(px, py)
		}
		if !ok {
			out[i] = Transparent
			continue
		}
		out[i] = s.stops.colorAt(t)
	}
}

// conicalT solves the general two-point conical quadratic for the
// positive root, per spec.md §4.4:
//
//	(r1²−1)p.y² + r1²p.x² = (xt+p.x)²
//
// where xt = fx (the focal point, since the space has been normalized so
// C0→origin, C1→(1,0)). Returns ok=false outside the gradient's valid
// domain (the spec's documented deviation: transparent outside domain
// rather than clamping, see DESIGN.md).
func (s *ConicalGradientShader) conicalT(px, py float64) (float64, bool) {
	r1 := s.r1
	a := r1*r1 - 1
	b := 2 * (px*s.fx + r1*s.r0)
	c := px*px + py*py - s.r0*s.r0

	var t float64
	if math.Abs(a) < 1e-9 {
		if b == 0 {
			return 0, false
		}
		t = -c / b
	} else {
		disc := b*b - 4*a*c
		if disc < 0 {
			return 0, false
		}
		sq := math.Sqrt(disc)
		t1 := (-b + sq) / (2 * a)
		t2 := (-b - sq) / (2 * a)
		// Pick the root giving a non-negative radius along the gradient
		// axis (r(t) = r0 + t*(r1-r0) must stay ≥ 0 in the valid domain).
		r := func(tt float64) float64 { return s.r0 + tt*(s.r1-s.r0) }
		switch {
		case r(t1) >= 0 && r(t2) >= 0:
			t = math.Max(t1, t2)
		case r(t1) >= 0:
			t = t1
		case r(t2) >= 0:
			t = t2
		default:
			return 0, false
		}
	}
	return applyTile(t, s.tile)
}

// ImageShader samples a Pixmap, per spec.md §4.4's Image/Pixmap brush
// variant: UV is produced by pointsToUnit (device pixel → image pixel
// space), tiled per axis independently, then nearest- or
// bilinear-sampled. Pixmap.GetPMColor already premultiplies unpremul
// sources on read, satisfying the "premultiply after sample" rule.
type ImageShader struct {
	img          *Image
	tileX, tileY TileMode
	filter       FilterMode
	toLocal      pointsToUnit
}

// NewImageShader builds an ImageShader. localMatrix maps image pixel
// space to device space (identity means image pixels coincide with
// device pixels one-to-one).
func NewImageShader(img *Image, tileX, tileY TileMode, filter FilterMode, localMatrix *transform.TransAffine) *ImageShader {
	unit := transform.NewTransAffine()
	return &ImageShader{img: img, tileX: tileX, tileY: tileY, filter: filter, toLocal: newPointsToUnit(localMatrix, unit)}
}

func (s *ImageShader) pureColor() (PMColor, bool) { return PMColor{}, false }

func (s *ImageShader) shadeSpan(x, y, length int, out []PMColor) {
	w, h := s.img.Width(), s.img.Height()
	for i := 0; i < length; i++ {
		px, py := s.toLocal.apply(float64(x+i)+0.5, float64(y)+0.5)
		u, okU := applyTile(px/float64(w), s.tileX)
		v, okV := applyTile(py/float64(h), s.tileY)
		if !okU || !okV {
			out[i] = Transparent
			continue
		}
		if s.filter == FilterLinear {
			out[i] = s.sampleLinear(u, v)
		} else {
			out[i] = s.sampleNearest(u, v)
		}
	}
}

func (s *ImageShader) sampleNearest(u, v float64) PMColor {
	w, h := s.img.Width(), s.img.Height()
	xi, okX := wrapCoord(int(math.Floor(u*float64(w))), w, s.tileX)
	yi, okY := wrapCoord(int(math.Floor(v*float64(h))), h, s.tileY)
	if !okX || !okY {
		return Transparent
	}
	return s.img.pixmap.GetPMColor(xi, yi)
}

func (s *ImageShader) sampleLinear(u, v float64) PMColor {
	w, h := s.img.Width(), s.img.Height()
	fx := u*float64(w) - 0.5
	fy := v*float64(h) - 0.5
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	tap := func(xi, yi int) PMColor {
		xw, okX := wrapCoord(xi, w, s.tileX)
		yw, okY := wrapCoord(yi, h, s.tileY)
		if !okX || !okY {
			return Transparent
		}
		return s.img.pixmap.GetPMColor(xw, yw)
	}
	c00, c10 := tap(x0, y0), tap(x0+1, y0)
	c01, c11 := tap(x0, y0+1), tap(x0+1, y0+1)

	lerp8 := func(a, b uint8, t float64) float64 { return float64(a) + (float64(b)-float64(a))*t }
	top := func(sel func(PMColor) uint8) float64 { return lerp8(sel(c00), sel(c10), tx) }
	bot := func(sel func(PMColor) uint8) float64 { return lerp8(sel(c01), sel(c11), tx) }
	mix := func(sel func(PMColor) uint8) uint8 {
		t := top(sel) + (bot(sel)-top(sel))*ty
		return uint8(t + 0.5)
	}
	return PMColor{
		R: mix(func(c PMColor) uint8 { return c.R }),
		G: mix(func(c PMColor) uint8 { return c.G }),
		B: mix(func(c PMColor) uint8 { return c.B }),
		A: mix(func(c PMColor) uint8 { return c.A }),
	}
}

// wrapCoord resolves an integer pixel index against an axis length per
// TileMode. The bool is false when mode is Decal and c falls outside
// [0,n) (the caller should treat that tap as transparent).
func wrapCoord(c, n int, mode TileMode) (int, bool) {
	if n <= 0 {
		return 0, false
	}
	switch mode {
	case TileRepeat:
		c = ((c % n) + n) % n
		return c, true
	case TileMirror:
		period := 2 * n
		c = ((c % period) + period) % period
		if c >= n {
			c = period - 1 - c
		}
		return c, true
	case TileDecal:
		if c < 0 || c >= n {
			return 0, false
		}
		return c, true
	default: // TileClamp
		if c < 0 {
			c = 0
		}
		if c >= n {
			c = n - 1
		}
		return c, true
	}
}
