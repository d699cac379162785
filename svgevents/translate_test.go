package svgevents

import (
	"errors"
	"testing"

	"github.com/benoitkugler/svgwrite/svgdom"
)

func pt(x, y float32) svgdom.Point { return svgdom.Point{X: x, Y: y} }

func TestLinesTranslate(t *testing.T) {
	var b PathBuilder
	b.Begin(pt(0, 0))
	b.LineTo(pt(1, 1))
	b.LineTo(pt(2, 1))
	b.End(true)

	path, err := Translate(b.Finish())
	if err != nil {
		t.Fatal(err)
	}
	// MoveTo, LineTo, LineTo, closing LineTo, Close
	if len(path) != 5 {
		t.Errorf("expected 5 operations, got %d (%s)", len(path), path)
	}
	if _, ok := path[3].(svgdom.LineTo); !ok {
		t.Errorf("expected an explicit closing edge, got %T", path[3])
	}
	if _, ok := path[4].(svgdom.Close); !ok {
		t.Errorf("expected a Close, got %T", path[4])
	}
}

func TestEndWithoutClose(t *testing.T) {
	var b PathBuilder
	b.Begin(pt(0, 0))
	b.LineTo(pt(1, 1))
	b.End(false)

	path, err := Translate(b.Finish())
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 2 {
		t.Errorf("expected 2 operations, got %d (%s)", len(path), path)
	}
}

func TestCurvesTranslate(t *testing.T) {
	var b PathBuilder
	b.Begin(pt(0, 0))
	b.QuadraticBezierTo(pt(2, 1), pt(3, 2))
	b.CubicBezierTo(pt(2, 1), pt(5, 1), pt(3, 2))
	b.End(true)

	path, err := Translate(b.Finish())
	if err != nil {
		t.Fatal(err)
	}
	// MoveTo, QuadTo, CubicTo, closing LineTo, Close
	if len(path) != 5 {
		t.Fatalf("expected 5 operations, got %d (%s)", len(path), path)
	}
	quad, ok := path[1].(svgdom.QuadTo)
	if !ok {
		t.Fatalf("expected a QuadTo, got %T", path[1])
	}
	if quad[0] != pt(2, 1) || quad[1] != pt(3, 2) {
		t.Errorf("control points are not passed through: %v", quad)
	}
	cubic, ok := path[2].(svgdom.CubicTo)
	if !ok {
		t.Fatalf("expected a CubicTo, got %T", path[2])
	}
	if cubic[0] != pt(2, 1) || cubic[1] != pt(5, 1) || cubic[2] != pt(3, 2) {
		t.Errorf("control points are not passed through: %v", cubic)
	}
}

func TestDiscontinuityRepair(t *testing.T) {
	continuous := []Event{
		Begin{At: pt(0, 0)},
		Line{From: pt(0, 0), To: pt(1, 1)},
		End{Last: pt(1, 1), First: pt(0, 0)},
	}
	path, err := Translate(continuous)
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 2 {
		t.Fatalf("expected 2 operations, got %d (%s)", len(path), path)
	}

	// the recorded from does not chain with the last emitted point
	broken := []Event{
		Begin{At: pt(0, 0)},
		Line{From: pt(5, 5), To: pt(6, 6)},
		End{Last: pt(6, 6), First: pt(0, 0)},
	}
	path, err = Translate(broken)
	if err != nil {
		t.Fatal(err)
	}
	// exactly one repair MoveTo more than the continuous stream
	if len(path) != 3 {
		t.Fatalf("expected 3 operations, got %d (%s)", len(path), path)
	}
	move, ok := path[1].(svgdom.MoveTo)
	if !ok {
		t.Fatalf("expected a repair MoveTo, got %T", path[1])
	}
	if svgdom.Point(move) != pt(5, 5) {
		t.Errorf("repair MoveTo at %v, expected (5,5)", move)
	}
}

func TestDiscontinuityRepairAtEnd(t *testing.T) {
	events := []Event{
		Begin{At: pt(0, 0)},
		Line{From: pt(0, 0), To: pt(1, 0)},
		End{Last: pt(4, 4), First: pt(0, 0), Close: true},
	}
	path, err := Translate(events)
	if err != nil {
		t.Fatal(err)
	}
	// MoveTo, LineTo, repair MoveTo, closing LineTo, Close
	if len(path) != 5 {
		t.Fatalf("expected 5 operations, got %d (%s)", len(path), path)
	}
	if move, ok := path[2].(svgdom.MoveTo); !ok || svgdom.Point(move) != pt(4, 4) {
		t.Errorf("expected a repair MoveTo at (4,4), got %v", path[2])
	}
}

func TestMultiSubpath(t *testing.T) {
	var b PathBuilder
	b.Begin(pt(0, 0))
	b.LineTo(pt(1, 1))
	b.LineTo(pt(2, 1))
	b.End(true)
	b.Begin(pt(10, 10))
	b.LineTo(pt(11, 11))
	b.LineTo(pt(12, 11))
	b.End(true)

	path, err := Translate(b.Finish())
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 10 {
		t.Fatalf("expected 10 operations, got %d (%s)", len(path), path)
	}
	// the second subpath starts with its own anchor
	move, ok := path[5].(svgdom.MoveTo)
	if !ok {
		t.Fatalf("expected a MoveTo at index 5, got %T", path[5])
	}
	if svgdom.Point(move) != pt(10, 10) {
		t.Errorf("second subpath anchored at %v, expected (10,10)", move)
	}
}

func TestEmptyPath(t *testing.T) {
	_, err := Translate(nil)
	if !errors.Is(err, ErrEmptyPath) {
		t.Errorf("expected ErrEmptyPath, got %v", err)
	}

	var b PathBuilder
	_, err = Translate(b.Finish())
	if !errors.Is(err, ErrEmptyPath) {
		t.Errorf("expected ErrEmptyPath, got %v", err)
	}
}

func TestBuilderImplicitEnd(t *testing.T) {
	var b PathBuilder
	b.Begin(pt(0, 0))
	b.LineTo(pt(1, 0))
	b.Begin(pt(2, 2)) // ends the first subpath, without closing it
	b.LineTo(pt(3, 3))
	events := b.Finish()

	ends := 0
	for _, ev := range events {
		if end, ok := ev.(End); ok {
			ends++
			if end.Close {
				t.Errorf("implicit end should not close: %+v", end)
			}
		}
	}
	if ends != 2 {
		t.Errorf("expected 2 End events, got %d", ends)
	}
}
