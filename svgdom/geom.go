package svgdom

import (
	"fmt"

	"github.com/chewxy/math32"
)

// This file defines the basic geometric types shared by the
// document model: points, rectangles and affine transformations.
// Coordinates are float32, matching the precision of the SVG output.

// Point is a 2D point (or vector) in user space.
type Point struct {
	X, Y float32
}

// Rect is an axis-aligned rectangle with a strictly positive area,
// used for view boxes and bounding boxes.
type Rect struct {
	X, Y, W, H float32
}

// RectFromLTRB builds a rectangle from its left/top and right/bottom
// corners. It returns false when the corners do not enclose a
// non-zero, finite area.
func RectFromLTRB(left, top, right, bottom float32) (Rect, bool) {
	if !isFinite(left) || !isFinite(top) || !isFinite(right) || !isFinite(bottom) {
		return Rect{}, false
	}
	if !(right > left && bottom > top) {
		return Rect{}, false
	}
	return Rect{X: left, Y: top, W: right - left, H: bottom - top}, true
}

// RectFromXYWH builds a rectangle from an origin and a size.
// It returns false for empty or non-finite sizes.
func RectFromXYWH(x, y, w, h float32) (Rect, bool) {
	return RectFromLTRB(x, y, x+w, y+h)
}

func (r Rect) Left() float32   { return r.X }
func (r Rect) Top() float32    { return r.Y }
func (r Rect) Right() float32  { return r.X + r.W }
func (r Rect) Bottom() float32 { return r.Y + r.H }

// Corners returns the four corners of the rectangle, in
// (left,top), (right,top), (left,bottom), (right,bottom) order.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{r.Left(), r.Top()},
		{r.Right(), r.Top()},
		{r.Left(), r.Bottom()},
		{r.Right(), r.Bottom()},
	}
}

func isFinite(v float32) bool {
	return !math32.IsInf(v, 0) && !math32.IsNaN(v)
}

// Matrix2D is an affine transformation, using the SVG convention:
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
//
// which serializes as matrix(A,B,C,D,E,F).
type Matrix2D struct {
	A, B, C, D, E, F float32
}

// Identity is the identity transformation.
var Identity = Matrix2D{1, 0, 0, 1, 0, 0}

// Mult returns a times b, the transformation applying b first, then a.
func (a Matrix2D) Mult(b Matrix2D) Matrix2D {
	return Matrix2D{
		A: a.A*b.A + a.C*b.B,
		B: a.B*b.A + a.D*b.B,
		C: a.A*b.C + a.C*b.D,
		D: a.B*b.C + a.D*b.D,
		E: a.A*b.E + a.C*b.F + a.E,
		F: a.B*b.E + a.D*b.F + a.F,
	}
}

// Translate composes `a` with a translation.
func (a Matrix2D) Translate(x, y float32) Matrix2D {
	return a.Mult(Matrix2D{1, 0, 0, 1, x, y})
}

// Scale composes `a` with a (possibly anisotropic) scale.
func (a Matrix2D) Scale(x, y float32) Matrix2D {
	return a.Mult(Matrix2D{x, 0, 0, y, 0, 0})
}

// Rotate composes `a` with a rotation, in radians.
func (a Matrix2D) Rotate(angle float32) Matrix2D {
	cos, sin := math32.Cos(angle), math32.Sin(angle)
	return a.Mult(Matrix2D{cos, sin, -sin, cos, 0, 0})
}

// SkewX composes `a` with a skew along the X axis, in radians.
func (a Matrix2D) SkewX(angle float32) Matrix2D {
	return a.Mult(Matrix2D{1, 0, math32.Tan(angle), 1, 0, 0})
}

// SkewY composes `a` with a skew along the Y axis, in radians.
func (a Matrix2D) SkewY(angle float32) Matrix2D {
	return a.Mult(Matrix2D{1, math32.Tan(angle), 0, 1, 0, 0})
}

// Apply maps the point `p` through the transformation.
func (a Matrix2D) Apply(p Point) Point {
	return Point{
		X: a.A*p.X + a.C*p.Y + a.E,
		Y: a.B*p.X + a.D*p.Y + a.F,
	}
}

// MapRect returns the axis-aligned bounding box of the four corners of
// `r` mapped through the transformation. For rotations and skews this
// is larger than the image of `r` itself.
func (a Matrix2D) MapRect(r Rect) Rect {
	minX, minY := math32.Inf(1), math32.Inf(1)
	maxX, maxY := math32.Inf(-1), math32.Inf(-1)
	for _, c := range r.Corners() {
		p := a.Apply(c)
		minX = math32.Min(minX, p.X)
		maxX = math32.Max(maxX, p.X)
		minY = math32.Min(minY, p.Y)
		maxY = math32.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

func (a Matrix2D) String() string {
	return fmt.Sprintf("matrix(%g,%g,%g,%g,%g,%g)", a.A, a.B, a.C, a.D, a.E, a.F)
}
