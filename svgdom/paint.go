package svgdom

import "fmt"

// Paint descriptions for filling and stroking, a subset of
// the SVG 2.0 painting model: plain colors and gradients.

// Color is a plain RGB color.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color { return Color{r, g, b} }

// Black is the default painting color.
var Black = Color{}

func (c Color) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// Pattern is either a PlainColor or a *Gradient
type Pattern interface {
	isPattern()
}

// PlainColor fills with a uniform color.
type PlainColor Color

func (PlainColor) isPattern() {}

func (c PlainColor) String() string { return Color(c).String() }

// GradientUnits is the type for gradient units
type GradientUnits byte

// SVG bounds parameter constants
const (
	ObjectBoundingBox GradientUnits = iota
	UserSpaceOnUse
)

func (u GradientUnits) String() string {
	if u == UserSpaceOnUse {
		return "userSpaceOnUse"
	}
	return "objectBoundingBox"
}

// SpreadMethod is the type for spread parameters
type SpreadMethod byte

// SVG spread parameter constants
const (
	PadSpread SpreadMethod = iota
	ReflectSpread
	RepeatSpread
)

func (s SpreadMethod) String() string {
	switch s {
	case ReflectSpread:
		return "reflect"
	case RepeatSpread:
		return "repeat"
	default:
		return "pad"
	}
}

// GradStop represents a stop in the SVG 2.0 gradient specification
type GradStop struct {
	StopColor Color
	Offset    float32
	Opacity   float32
}

// Gradient holds a description of an SVG 2.0 gradient
type Gradient struct {
	Direction GradientDirecter
	Stops     []GradStop
	Matrix    Matrix2D
	Spread    SpreadMethod
	Units     GradientUnits
}

func (*Gradient) isPattern() {}

// GradientDirecter is either Linear or Radial.
type GradientDirecter interface {
	isRadial() bool
}

// Linear is a linear gradient direction: x1, y1, x2, y2
type Linear [4]float32

func (Linear) isRadial() bool { return false }

// Radial is a radial gradient direction: cx, cy, fx, fy, r, fr
type Radial [6]float32

func (Radial) isRadial() bool { return true }

// CapMode defines how to draw caps on the ends of lines
type CapMode uint8

const (
	ButtCap CapMode = iota
	RoundCap
	SquareCap
)

func (c CapMode) String() string {
	switch c {
	case RoundCap:
		return "round"
	case SquareCap:
		return "square"
	default:
		return "butt"
	}
}

// JoinMode type to specify how segments join.
type JoinMode uint8

// JoinMode constants determine how stroke segments bridge the gap at a join
const (
	Miter JoinMode = iota
	Round
	Bevel
)

func (s JoinMode) String() string {
	switch s {
	case Round:
		return "round"
	case Bevel:
		return "bevel"
	default:
		return "miter"
	}
}

type DashOptions struct {
	Dash       []float32 // values for the dash pattern (nil or an empty slice for no dashes)
	DashOffset float32   // starting offset into the dash array
}

// Fill describes how a shape interior is painted.
type Fill struct {
	Paint   Pattern
	Opacity float32
	EvenOdd bool // use the even-odd rule instead of non-zero winding
}

// Stroke describes how a shape outline is painted.
type Stroke struct {
	Paint      Pattern
	Opacity    float32
	Width      float32
	Cap        CapMode
	Join       JoinMode
	MiterLimit float32
	Dash       DashOptions
}

// FillColor is a utility constructor for a plain color fill.
func FillColor(c Color, opacity float32) *Fill {
	return &Fill{Paint: PlainColor(c), Opacity: clampOpacity(opacity)}
}

// StrokeColor is a utility constructor for a plain color stroke.
func StrokeColor(c Color, opacity, width float32) *Stroke {
	return &Stroke{
		Paint:      PlainColor(c),
		Opacity:    clampOpacity(opacity),
		Width:      width,
		MiterLimit: 4, // SVG default
	}
}

func clampOpacity(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
