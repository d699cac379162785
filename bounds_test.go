package svgwrite

import (
	"errors"
	"math"
	"testing"

	"github.com/benoitkugler/svgwrite/svgdom"
	"github.com/benoitkugler/svgwrite/svgevents"
	"github.com/chewxy/math32"
)

const boundsEps = 1e-4

func nearf(got, want float32) bool { return math32.Abs(got-want) < boundsEps }

func rectPath(x0, y0, x1, y1 float32) svgdom.Path {
	var p svgdom.Path
	p.Start(svgdom.Point{X: x0, Y: y0})
	p.Line(svgdom.Point{X: x1, Y: y0})
	p.Line(svgdom.Point{X: x1, Y: y1})
	p.Line(svgdom.Point{X: x0, Y: y1})
	p.Stop(true)
	return p
}

func TestCanvasSizeFallback(t *testing.T) {
	// the bounds of an empty collection: the untouched fold seeds
	w, h := CanvasSize(math32.Inf(1), math32.Inf(-1), math32.Inf(1), math32.Inf(-1))
	if w != 256 || h != 256 {
		t.Errorf("expected the 256 fallback on both axes, got %gx%g", w, h)
	}

	// a degenerate axis falls back independently
	w, h = CanvasSize(2, 2, 0, 10)
	if w != 256 || h != 10 {
		t.Errorf("expected fallback on width only, got %gx%g", w, h)
	}
	w, h = CanvasSize(-3, 5, 7, 7)
	if w != 8 || h != 256 {
		t.Errorf("expected fallback on height only, got %gx%g", w, h)
	}
}

func TestViewBoundsEmpty(t *testing.T) {
	minX, maxX, minY, maxY := ViewBounds(nil, svgdom.Identity)
	if !math32.IsInf(minX, 1) || !math32.IsInf(maxX, -1) ||
		!math32.IsInf(minY, 1) || !math32.IsInf(maxY, -1) {
		t.Errorf("empty bounds must keep the infinite seeds, got %g %g %g %g",
			minX, maxX, minY, maxY)
	}
}

func TestViewBoundsRotation(t *testing.T) {
	node := &svgdom.PathNode{Data: rectPath(0, 0, 2, 1), Transform: svgdom.Identity}
	global := svgdom.Identity.Rotate(math.Pi / 2) // (x,y) -> (-y,x)
	minX, maxX, minY, maxY := ViewBounds([]svgdom.Node{node}, global)
	if !nearf(minX, -1) || !nearf(maxX, 0) || !nearf(minY, 0) || !nearf(maxY, 2) {
		t.Errorf("rotated bounds: %g %g %g %g", minX, maxX, minY, maxY)
	}
}

func TestViewBoundsTranslation(t *testing.T) {
	var p svgdom.Path
	p.Start(svgdom.Point{})
	p.CubeBezier(svgdom.Point{X: 0, Y: 2}, svgdom.Point{X: 3, Y: 2}, svgdom.Point{X: 3, Y: 0})
	node := &svgdom.PathNode{Data: p, Transform: svgdom.Identity}

	minX0, maxX0, minY0, maxY0 := ViewBounds([]svgdom.Node{node}, svgdom.Identity)
	minX1, maxX1, minY1, maxY1 := ViewBounds([]svgdom.Node{node}, svgdom.Identity.Translate(10, 20))
	if !nearf(minX1-minX0, 10) || !nearf(maxX1-maxX0, 10) ||
		!nearf(minY1-minY0, 20) || !nearf(maxY1-maxY0, 20) {
		t.Errorf("translation must shift the bounds: (%g %g %g %g) vs (%g %g %g %g)",
			minX0, maxX0, minY0, maxY0, minX1, maxX1, minY1, maxY1)
	}

	// and it is stable: recomputing changes nothing
	minX2, maxX2, _, _ := ViewBounds([]svgdom.Node{node}, svgdom.Identity)
	if minX2 != minX0 || maxX2 != maxX0 {
		t.Error("bounds computation must be deterministic")
	}
}

func TestEncodeEmptyFails(t *testing.T) {
	var bErr svgdom.BoundsError
	if err := New().Encode(discard{}); !errors.As(err, &bErr) {
		t.Fatalf("expected a BoundsError for an empty document, got %v", err)
	}
}

func TestEncodeZeroAreaFails(t *testing.T) {
	w := New()
	var b svgevents.PathBuilder
	b.Begin(svgdom.Point{X: 4, Y: 4}) // a single point: no area
	if err := w.Push(b.Finish(), svgdom.FillColor(svgdom.Black, 1), nil, svgdom.Identity); err != nil {
		t.Fatal(err)
	}
	var bErr svgdom.BoundsError
	if err := w.Encode(discard{}); !errors.As(err, &bErr) {
		t.Fatalf("expected a BoundsError for a zero-area document, got %v", err)
	}
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
