package svgdom

import (
	"github.com/chewxy/math32"
)

// compute the bounding box of a path, needed to derive the
// document view box

type line [2]Point

func (l line) criticalPoints() (tX, tY []float32) {
	return nil, nil
}

func (l line) evaluateCurve(t float32) (x, y float32) {
	return bezierLine(l[0].X, l[1].X, t), bezierLine(l[0].Y, l[1].Y, t)
}

func bezierLine(p0, p1, t float32) float32 {
	return (p1-p0)*t + p0
}

type quadBezier [3]Point

// quadratic polinomial
// x = At^2 + Bt + C
// where
// A = p0 + p2 - 2p1
// B = 2(p1 - p0)
// C = p0
func bezierQuad(p0, p1, p2, t float32) float32 {
	return (p0+p2-2*p1)*t*t + 2*(p1-p0)*t + p0
}

// derivative as at + b where a,b :
func quadraticDerivative(p0, p1, p2 float32) (a, b float32) {
	return 2 * (p2 - p1 - (p1 - p0)), 2 * (p1 - p0)
}

// handle the case where a = 0
func linearRoots(a, b float32) []float32 {
	if a == 0 {
		return nil
	}
	return []float32{-b / a}
}

func (cu quadBezier) criticalPoints() (tX, tY []float32) {
	aX, bX := quadraticDerivative(cu[0].X, cu[1].X, cu[2].X)
	aY, bY := quadraticDerivative(cu[0].Y, cu[1].Y, cu[2].Y)

	return linearRoots(aX, bX), linearRoots(aY, bY)
}

func (cu quadBezier) evaluateCurve(t float32) (x, y float32) {
	return bezierQuad(cu[0].X, cu[1].X, cu[2].X, t), bezierQuad(cu[0].Y, cu[1].Y, cu[2].Y, t)
}

type cubicBezier [4]Point

func (cu cubicBezier) criticalPoints() (tX, tY []float32) {
	aX, bX, cX := cubicDerivative(cu[0].X, cu[1].X, cu[2].X, cu[3].X)
	aY, bY, cY := cubicDerivative(cu[0].Y, cu[1].Y, cu[2].Y, cu[3].Y)

	return quadraticRoots(aX, bX, cX), quadraticRoots(aY, bY, cY)
}

func (cu cubicBezier) evaluateCurve(t float32) (x, y float32) {
	return bezierSpline(cu[0].X, cu[1].X, cu[2].X, cu[3].X, t),
		bezierSpline(cu[0].Y, cu[1].Y, cu[2].Y, cu[3].Y, t)
}

// cubic polinomial
// x = At^3 + Bt^2 + Ct + D
// where A,B,C,D:
// A = p3 -3 * p2 + 3 * p1 - p0
// B = 3 * p2 - 6 * p1 +3 * p0
// C = 3 * p1 - 3 * p0
// D = p0
func bezierSpline(p0, p1, p2, p3, t float32) float32 {
	return (p3-3*p2+3*p1-p0)*t*t*t +
		(3*p2-6*p1+3*p0)*t*t +
		(3*p1-3*p0)*t +
		(p0)
}

// We would like to know the values of t where X = 0
// X  = (p3-3*p2+3*p1-p0)t^3 + (3*p2-6*p1+3*p0)t^2 + (3*p1-3*p0)t + (p0)
// Derivative :
// X' = 3(p3-3*p2+3*p1-p0)t^2 + 2(3*p2-6*p1+3*p0)t + (3*p1-3*p0)
// taken as at^2 + bt + c, a,b and c are:
func cubicDerivative(p0, p1, p2, p3 float32) (a, b, c float32) {
	return 3*p3 - 9*p2 + 9*p1 - 3*p0, 6*p2 - 12*p1 + 6*p0, 3*p1 - 3*p0
}

// b^2 - 4ac = Determinant
func determinant(a, b, c float32) float32 { return b*b - 4*a*c }

func solveQuadratic(a, b, c float32, s bool) float32 {
	sign := float32(1)
	if !s {
		sign = -1
	}
	return (-b + math32.Sqrt(determinant(a, b, c))*sign) / (2 * a)
}

func quadraticRoots(a, b, c float32) []float32 {
	d := determinant(a, b, c)
	if d < 0 {
		return nil
	}

	if a == 0 {
		// at^2 + bt + c well then this is a simple line
		// t = -c / b
		return linearRoots(b, c)
	}

	if d == 0 {
		return []float32{solveQuadratic(a, b, c, true)}
	}
	return []float32{
		solveQuadratic(a, b, c, true),
		solveQuadratic(a, b, c, false),
	}
}

type bezier interface {
	// compute the t zeroing the derivative
	criticalPoints() (tX, tY []float32)
	// compute the point at time t
	evaluateCurve(t float32) (x, y float32)
}

type bboxAccumulator struct {
	minX, maxX, minY, maxY float32
	seen                   bool
}

func newBboxAccumulator() bboxAccumulator {
	return bboxAccumulator{
		minX: math32.Inf(1), maxX: math32.Inf(-1),
		minY: math32.Inf(1), maxY: math32.Inf(-1),
	}
}

func (bb *bboxAccumulator) addPoint(x, y float32) {
	bb.minX = math32.Min(bb.minX, x)
	bb.maxX = math32.Max(bb.maxX, x)
	bb.minY = math32.Min(bb.minY, y)
	bb.maxY = math32.Max(bb.maxY, y)
	bb.seen = true
}

func (bb *bboxAccumulator) addCurve(curve bezier) {
	resX, resY := curve.criticalPoints()

	// add begin and end point
	for _, t := range append(append(resX, 0, 1), resY...) {
		// filter invalid value
		if !(0 <= t && t <= 1) {
			continue
		}
		x, y := curve.evaluateCurve(t)
		bb.addPoint(x, y)
	}
}

// BoundingBox returns the extent of the path, without accounting for
// any stroke width. ok is false for paths with no geometry at all;
// paths reduced to a single point yield a zero-area box, reported
// through the X, Y fields only.
func (p Path) BoundingBox() (bbox Rect, ok bool) {
	bb := newBboxAccumulator()
	var current Point
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			current = Point(op)
			bb.addPoint(current.X, current.Y)
		case LineTo:
			bb.addCurve(line{current, Point(op)})
			current = Point(op)
		case QuadTo:
			bb.addCurve(quadBezier{current, op[0], op[1]})
			current = op[1]
		case CubicTo:
			bb.addCurve(cubicBezier{current, op[0], op[1], op[2]})
			current = op[2]
		case Close:
			// the closing edge only joins points already seen
		}
	}
	if !bb.seen {
		return Rect{}, false
	}
	return Rect{X: bb.minX, Y: bb.minY, W: bb.maxX - bb.minX, H: bb.maxY - bb.minY}, true
}
