package svgevents

import (
	"errors"

	"github.com/benoitkugler/svgwrite/svgdom"
)

// ErrEmptyPath is returned by Translate when the event stream yields
// no drawing command at all.
var ErrEmptyPath = errors.New("svgevents: empty path")

// Translate converts an event stream into absolute drawing commands.
//
// The single piece of state carried across events is the last point
// actually emitted. When an event's recorded start point differs from
// it, an extra MoveTo is inserted first: some producers emit streams
// whose `from` points do not chain exactly, and the repair keeps the
// output unambiguous. The comparison is exact: producers guarantee
// bit-identical repeated points when no discontinuity occurred.
//
// Closed subpaths get an explicit closing edge (a LineTo back to the
// first point) before the Close command, rather than relying on the
// renderer's own close semantics.
func Translate(events []Event) (svgdom.Path, error) {
	var path svgdom.Path
	var current svgdom.Point
	hasCurrent := false
	repair := func(from svgdom.Point) {
		if hasCurrent && from != current {
			path.Start(from)
		}
	}
	for _, event := range events {
		switch event := event.(type) {
		case Begin:
			path.Start(event.At)
			current, hasCurrent = event.At, true
		case Line:
			repair(event.From)
			path.Line(event.To)
			current, hasCurrent = event.To, true
		case Quadratic:
			repair(event.From)
			// the control point is trusted as recorded
			path.QuadBezier(event.Ctrl, event.To)
			current, hasCurrent = event.To, true
		case Cubic:
			repair(event.From)
			path.CubeBezier(event.Ctrl1, event.Ctrl2, event.To)
			current, hasCurrent = event.To, true
		case End:
			repair(event.Last)
			if event.Close {
				path.Line(event.First)
				path.Stop(true)
			}
			current, hasCurrent = event.Last, true
		}
	}
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}
	return path, nil
}
