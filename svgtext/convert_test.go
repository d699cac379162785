package svgtext

import (
	"testing"

	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/benoitkugler/svgwrite/svgdom"
)

func TestFixedConversions(t *testing.T) {
	for _, v := range []float32{0, 1, 12.5, -3.25, 100} {
		if got := fromFixed(toFixed(v)); got != v {
			t.Errorf("round trip of %g: %g", v, got)
		}
	}
	if fromFixed(fixed.I(16)) != 16 {
		t.Error("fromFixed(16.0)")
	}
}

func TestBaselineShift(t *testing.T) {
	bounds := shaping.Bounds{Ascent: fixed.I(10), Descent: fixed.I(-4)}
	if got := baselineShift(svgdom.BaselineAuto, bounds); got != 0 {
		t.Errorf("auto baseline: %g", got)
	}
	if got := baselineShift(svgdom.BaselineHanging, bounds); got != 10 {
		t.Errorf("hanging baseline: %g", got)
	}
	if got := baselineShift(svgdom.BaselineCentral, bounds); got != 3 {
		t.Errorf("central baseline: %g", got)
	}
}

func TestConvertTextNilDatabase(t *testing.T) {
	tree := &svgdom.Tree{Root: svgdom.NewGroup(nil, svgdom.Identity)}
	if err := ConvertText(tree, nil); err == nil {
		t.Fatal("nil database accepted")
	}
}

func TestConvertTextDropsEmptyContent(t *testing.T) {
	// empty content short-circuits before shaping, so no font is needed
	text := &svgdom.Text{Content: "", Size: 12}
	tree := &svgdom.Tree{Root: svgdom.NewGroup([]svgdom.Node{text}, svgdom.Identity)}
	if err := ConvertText(tree, NewDatabase()); err != nil {
		t.Fatal(err)
	}
	if len(tree.Root.Children) != 0 {
		t.Errorf("empty text must be dropped, got %d children", len(tree.Root.Children))
	}
}

func TestConvertTextKeepsOtherNodes(t *testing.T) {
	var p svgdom.Path
	p.Start(svgdom.Point{})
	p.Line(svgdom.Point{X: 1, Y: 1})
	node := &svgdom.PathNode{Data: p, Transform: svgdom.Identity}
	inner := svgdom.NewGroup([]svgdom.Node{&svgdom.Text{Content: "", Size: 12}}, svgdom.Identity)
	tree := &svgdom.Tree{Root: svgdom.NewGroup([]svgdom.Node{node, inner}, svgdom.Identity)}

	if err := ConvertText(tree, NewDatabase()); err != nil {
		t.Fatal(err)
	}
	if len(tree.Root.Children) != 2 {
		t.Fatalf("path and group must survive, got %d children", len(tree.Root.Children))
	}
	if tree.Root.Children[0] != node {
		t.Error("path node must be kept as is")
	}
	if g, ok := tree.Root.Children[1].(*svgdom.Group); !ok || len(g.Children) != 0 {
		t.Error("nested group must be kept, its text dropped")
	}
}
