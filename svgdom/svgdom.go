// Provides an abstract representation of SVG documents,
// built programmatically rather than parsed: a tree of path, image,
// text and group nodes, with the geometry and paint types they need.
// The tree can then be serialized to XML (see WriteXML).
package svgdom

import (
	"encoding/xml"
	"fmt"
)

// Node is one element of the document tree: a *PathNode, *Image,
// *Text or *Group. A node is owned by at most one tree.
type Node interface {
	// LocalBounds returns the node extent in the coordinate space of its
	// parent, the node's own transform already applied. ok is false when
	// the node has no drawable extent (an empty path, or text not yet
	// converted to outlines).
	LocalBounds() (bbox Rect, ok bool)

	encode(enc *xml.Encoder, ids map[*Gradient]string) error
}

// BoundsError reports a bounding box which cannot form a valid
// positive-area rectangle.
type BoundsError struct {
	MinX, MaxX, MinY, MaxY float32
}

func (e BoundsError) Error() string {
	return fmt.Sprintf("svgdom: invalid bounding box: x in [%g, %g], y in [%g, %g]",
		e.MinX, e.MaxX, e.MinY, e.MaxY)
}

// Tree is a complete document: a canvas size, the view box
// displayed by the canvas, and the root of the node tree.
type Tree struct {
	Width, Height float32
	ViewBox       Rect
	Root          *Group
}

// Group applies a common transform to its children.
type Group struct {
	Transform Matrix2D
	Children  []Node
}

// NewGroup groups `children` under a common transform.
func NewGroup(children []Node, transform Matrix2D) *Group {
	return &Group{Transform: transform, Children: children}
}

// Append adds `n` as the last child of the group.
func (g *Group) Append(n Node) {
	g.Children = append(g.Children, n)
}

// LocalBounds returns the union of the children bounds, mapped
// through the group transform.
func (g *Group) LocalBounds() (Rect, bool) {
	bb := newBboxAccumulator()
	for _, child := range g.Children {
		cb, ok := child.LocalBounds()
		if !ok {
			continue
		}
		bb.addPoint(cb.Left(), cb.Top())
		bb.addPoint(cb.Right(), cb.Bottom())
	}
	if !bb.seen {
		return Rect{}, false
	}
	union := Rect{X: bb.minX, Y: bb.minY, W: bb.maxX - bb.minX, H: bb.maxY - bb.minY}
	return g.Transform.MapRect(union), true
}

// PathNode binds path geometry to its paint attributes.
type PathNode struct {
	Data      Path
	Fill      *Fill   // nil to disable filling
	Stroke    *Stroke // nil to disable stroking
	Transform Matrix2D
}

// LocalBounds returns the path extent mapped through the node
// transform. Stroke width is not accounted for.
func (p *PathNode) LocalBounds() (Rect, bool) {
	bbox, ok := p.Data.BoundingBox()
	if !ok {
		return Rect{}, false
	}
	return p.Transform.MapRect(bbox), true
}

// DominantBaseline selects the baseline used to anchor text
// vertically, a subset of the SVG dominant-baseline property.
type DominantBaseline uint8

const (
	BaselineAuto DominantBaseline = iota
	BaselineCentral
	BaselineHanging
)

func (d DominantBaseline) String() string {
	switch d {
	case BaselineCentral:
		return "central"
	case BaselineHanging:
		return "hanging"
	default:
		return "auto"
	}
}

// Text is a single-span text element. Its position comes entirely
// from its transform; it carries no drawable extent until converted
// to outlines by the svgtext package.
type Text struct {
	Content   string
	Families  []string // font families, in preference order
	Size      float32
	Fill      *Fill
	Stroke    *Stroke
	Transform Matrix2D
	Baseline  DominantBaseline
}

// LocalBounds always reports an absent extent: the metrics of an
// unshaped text are unknown to the document model.
func (t *Text) LocalBounds() (Rect, bool) { return Rect{}, false }
