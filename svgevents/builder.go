package svgevents

import "github.com/benoitkugler/svgwrite/svgdom"

// PathBuilder records path construction calls as an event stream.
// The zero value is ready to use:
//
//	var b PathBuilder
//	b.Begin(svgdom.Point{})
//	b.LineTo(svgdom.Point{X: 1, Y: 1})
//	b.End(true)
//	events := b.Finish()
type PathBuilder struct {
	events  []Event
	first   svgdom.Point
	current svgdom.Point
	started bool
}

// Begin starts a new subpath at `at`. A subpath still in progress is
// ended first, without closing it.
func (b *PathBuilder) Begin(at svgdom.Point) {
	if b.started {
		b.End(false)
	}
	b.events = append(b.events, Begin{At: at})
	b.first = at
	b.current = at
	b.started = true
}

// LineTo records a straight segment from the current point to `to`.
// Without a current subpath, it only starts one at `to`.
func (b *PathBuilder) LineTo(to svgdom.Point) {
	if !b.started {
		b.Begin(to)
		return
	}
	b.events = append(b.events, Line{From: b.current, To: to})
	b.current = to
}

// QuadraticBezierTo records a quadratic bezier segment from the
// current point to `to`.
func (b *PathBuilder) QuadraticBezierTo(ctrl, to svgdom.Point) {
	if !b.started {
		b.Begin(to)
		return
	}
	b.events = append(b.events, Quadratic{From: b.current, Ctrl: ctrl, To: to})
	b.current = to
}

// CubicBezierTo records a cubic bezier segment from the current point
// to `to`.
func (b *PathBuilder) CubicBezierTo(ctrl1, ctrl2, to svgdom.Point) {
	if !b.started {
		b.Begin(to)
		return
	}
	b.events = append(b.events, Cubic{From: b.current, Ctrl1: ctrl1, Ctrl2: ctrl2, To: to})
	b.current = to
}

// End terminates the current subpath, closing it back to its first
// point when `closePath` is true.
func (b *PathBuilder) End(closePath bool) {
	if !b.started {
		return
	}
	b.events = append(b.events, End{Last: b.current, First: b.first, Close: closePath})
	b.started = false
}

// Finish ends any subpath in progress and returns the recorded
// events. The builder must not be reused afterwards.
func (b *PathBuilder) Finish() []Event {
	b.End(false)
	return b.events
}
