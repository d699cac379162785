package svgwrite

import (
	"github.com/chewxy/math32"

	"github.com/benoitkugler/svgwrite/svgdom"
)

// fallbackSize is the canvas dimension substituted when the drawn
// content has no extent along an axis, so a document holding a single
// point (or nothing) still reports a visible default size.
const fallbackSize = 256.0

// ViewBounds returns the minimal axis-aligned bounds containing every
// node after the global transform is applied: the four corners of
// each node's local bounding box are mapped through the full affine
// and folded into a running min/max, seeded at (+Inf, -Inf) so an
// empty collection yields an invalid (infinite) box, detected when
// the view rectangle is built.
//
// Mapping corners before folding matters for rotations and skews: the
// result bounds the transformed boxes, not a transform of the
// untransformed bounds.
func ViewBounds(nodes []svgdom.Node, global svgdom.Matrix2D) (minX, maxX, minY, maxY float32) {
	minX, minY = math32.Inf(1), math32.Inf(1)
	maxX, maxY = math32.Inf(-1), math32.Inf(-1)
	for _, node := range nodes {
		bbox, ok := node.LocalBounds()
		if !ok {
			continue
		}
		for _, corner := range bbox.Corners() {
			p := global.Apply(corner)
			minX = math32.Min(minX, p.X)
			maxX = math32.Max(maxX, p.X)
			minY = math32.Min(minY, p.Y)
			maxY = math32.Max(maxY, p.Y)
		}
	}
	return minX, maxX, minY, maxY
}

// CanvasSize derives the document width and height from view bounds,
// substituting fallbackSize for any axis without a positive extent
// (degenerate content, or the infinite seed of an empty collection).
func CanvasSize(minX, maxX, minY, maxY float32) (width, height float32) {
	width = maxX - minX
	if !(width > 0) {
		width = fallbackSize
	}
	height = maxY - minY
	if !(height > 0) {
		height = fallbackSize
	}
	return width, height
}
