package raster2d

import "github.com/inkpath/raster2d/internal/basics"

// Style selects whether a draw call fills the path, strokes its outline,
// or both, per spec.md §3.
type Style int

const (
	StyleFill Style = iota
	StyleStroke
	StyleFillAndStroke
)

// Cap and Join re-export the teacher's stroke-geometry enums so Paint
// doesn't need its own parallel set; spec.md names the same three caps and
// the miter/round/bevel joins.
type Cap = basics.LineCap
type Join = basics.LineJoin

const (
	CapButt   = basics.ButtCap
	CapRound  = basics.RoundCap
	CapSquare = basics.SquareCap
)

const (
	JoinMiter = basics.MiterJoin
	JoinRound = basics.RoundJoin
	JoinBevel = basics.BevelJoin
)

// Paint is the styling object passed by reference into every draw call
// (spec.md §3). It is never retained by the canvas between calls.
type Paint struct {
	Style Style

	StrokeWidth float64
	Cap         Cap
	Join        Join
	MiterLimit  float64

	AntiAlias bool

	Color Color

	Shader      Shader
	ColorFilter ColorFilter
	MaskFilter  *MaskFilter
	ImageFilter ImageFilter

	BlendMode BlendMode

	// Alpha further modulates every pixel this Paint produces, in [0,255],
	// applied on top of whatever alpha the shader/color already carries.
	Alpha uint8

	// DashIntervals/DashPhase, when DashIntervals is non-empty, drive a
	// conv.ConvDash stage ahead of the stroker (path effect → stroker per
	// spec.md §4.2's ordering). Pairs alternate on/off lengths.
	DashIntervals []float64
	DashPhase     float64
}

// NewPaint returns a Paint with spec.md's sensible defaults: opaque black
// fill, SrcOver blending, antialiasing on, full alpha.
func NewPaint() *Paint {
	return &Paint{
		Style:       StyleFill,
		StrokeWidth: 1,
		Cap:         CapButt,
		Join:        JoinMiter,
		MiterLimit:  4,
		AntiAlias:   true,
		Color:       Color{A: 1},
		BlendMode:   BlendSrcOver,
		Alpha:       255,
	}
}

// effectiveAlpha returns Paint's global alpha, used by the span brush
// pipeline's `cover * global_alpha / 255` modulation step (spec.md
// §4.4). This is independent of Color's own alpha channel, which is
// already baked into the shaded/solid source color before this
// modulation is applied.
func (p *Paint) effectiveAlpha() uint8 {
	return p.Alpha
}
