package svgtext

import (
	"errors"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/fontscan"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/benoitkugler/svgwrite/svgdom"
)

var errNilDatabase = errors.New("svgtext: nil font database")

// ConvertText replaces every Text node of the tree by a PathNode
// drawing its glyph outlines, carrying over the text fill, stroke and
// transform. Text whose content shapes to nothing (empty string, or
// no matching font) is removed from the tree.
//
// The document view box is not recomputed: it is finalized before
// conversion, so unconverted text never contributes to it.
func ConvertText(tree *svgdom.Tree, db *Database) error {
	if db == nil {
		return errNilDatabase
	}
	if tree.Root == nil {
		return nil
	}
	return db.convertGroup(tree.Root)
}

func (db *Database) convertGroup(g *svgdom.Group) error {
	converted := g.Children[:0]
	for _, n := range g.Children {
		switch n := n.(type) {
		case *svgdom.Group:
			if err := db.convertGroup(n); err != nil {
				return err
			}
			converted = append(converted, n)
		case *svgdom.Text:
			path, err := db.textToPath(n)
			if err != nil {
				return err
			}
			if path != nil {
				converted = append(converted, path)
			}
		default:
			converted = append(converted, n)
		}
	}
	g.Children = converted
	return nil
}

func fromFixed(v fixed.Int26_6) float32 { return float32(v) / 64 }

func toFixed(v float32) fixed.Int26_6 { return fixed.Int26_6(v * 64) }

// textToPath shapes the text content as a single left-to-right line
// and accumulates the outlines of its glyphs into one path.
func (db *Database) textToPath(t *svgdom.Text) (*svgdom.PathNode, error) {
	runes := []rune(t.Content)
	if len(runes) == 0 {
		return nil, nil
	}

	db.fontMap.SetQuery(fontscan.Query{Families: t.Families})

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Size:      toFixed(t.Size),
		Script:    language.Latin,
		Language:  language.DefaultLanguage(),
	}
	var segmenter shaping.Segmenter
	runs := segmenter.Split(input, db.fontMap)

	var (
		shaper shaping.HarfbuzzShaper
		data   svgdom.Path
		pen    float32
	)
	for _, run := range runs {
		if run.Face == nil {
			continue
		}
		out := shaper.Shape(run)
		baseline := baselineShift(t.Baseline, out.LineBounds)
		scale := t.Size / float32(run.Face.Upem())
		for gi := range out.Glyphs {
			g := &out.Glyphs[gi]
			appendGlyphOutline(&data, run.Face, g, scale,
				pen+fromFixed(g.XOffset), baseline-fromFixed(g.YOffset))
			pen += fromFixed(g.XAdvance)
		}
	}
	if len(data) == 0 {
		return nil, nil
	}
	return &svgdom.PathNode{
		Data:      data,
		Fill:      t.Fill,
		Stroke:    t.Stroke,
		Transform: t.Transform,
	}, nil
}

// baselineShift converts a dominant-baseline choice into a vertical
// offset of the pen origin, from the shaped line metrics.
func baselineShift(b svgdom.DominantBaseline, bounds shaping.Bounds) float32 {
	switch b {
	case svgdom.BaselineHanging:
		return fromFixed(bounds.Ascent)
	case svgdom.BaselineCentral:
		// Descent is negative for descenders below the baseline.
		return fromFixed(bounds.Ascent+bounds.Descent) / 2
	default:
		return 0
	}
}

// appendGlyphOutline adds the closed contours of one glyph, placed at
// (x, y), to the path. Glyph coordinates grow upwards and are flipped
// to the SVG convention.
func appendGlyphOutline(data *svgdom.Path, face *font.Face, g *shaping.Glyph, scale, x, y float32) {
	outline, ok := face.GlyphData(g.GlyphID).(font.GlyphOutline)
	if !ok || len(outline.Segments) == 0 {
		return
	}
	point := func(arg opentype.SegmentPoint) svgdom.Point {
		return svgdom.Point{X: arg.X*scale + x, Y: -arg.Y*scale + y}
	}
	for _, s := range outline.Segments {
		switch s.Op {
		case opentype.SegmentOpMoveTo:
			data.Start(point(s.Args[0]))
		case opentype.SegmentOpLineTo:
			data.Line(point(s.Args[0]))
		case opentype.SegmentOpQuadTo:
			data.QuadBezier(point(s.Args[0]), point(s.Args[1]))
		case opentype.SegmentOpCubeTo:
			data.CubeBezier(point(s.Args[0]), point(s.Args[1]), point(s.Args[2]))
		}
	}
	data.Stop(true)
}
