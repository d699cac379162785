// Provides an event-based description of 2D vector paths
// (the representation used by path tessellation libraries) and its
// translation into the drawing commands of the svgdom document model.
//
// A path is a flat, ordered sequence of events, possibly spanning
// several subpaths, each delimited by its own Begin...End pair. Events
// record the start point of every segment, so a stream stays
// meaningful even when split or filtered; the translator repairs any
// discontinuity this redundancy reveals.
package svgevents

import "github.com/benoitkugler/svgwrite/svgdom"

// Event is one path construction step: a Begin, Line, Quadratic,
// Cubic or End.
type Event interface {
	isEvent()
}

// Begin starts a new subpath at `At`.
type Begin struct {
	At svgdom.Point
}

// Line is a straight segment.
type Line struct {
	From, To svgdom.Point
}

// Quadratic is a quadratic bezier segment.
type Quadratic struct {
	From, Ctrl, To svgdom.Point
}

// Cubic is a cubic bezier segment.
type Cubic struct {
	From, Ctrl1, Ctrl2, To svgdom.Point
}

// End closes the current subpath. Close requests an explicit closing
// edge from Last back to First.
type End struct {
	Last, First svgdom.Point
	Close       bool
}

func (Begin) isEvent()     {}
func (Line) isEvent()      {}
func (Quadratic) isEvent() {}
func (Cubic) isEvent()     {}
func (End) isEvent()       {}
