package svgwrite

import (
	"fmt"
	"io"

	"github.com/benoitkugler/svgwrite/svgdom"
	"github.com/benoitkugler/svgwrite/svgtext"
)

// TextWriter is a Writer with an attached font source. It is the only
// type exposing text operations, so pushing text without fonts is a
// compile error rather than a runtime failure. Its Write converts
// every text node to path outlines before serializing.
type TextWriter struct {
	Writer
	fonts *svgtext.Database
}

// PushText appends a text primitive: a single chunk whose style
// applies to all of the content, positioned by `transform`.
func (tw *TextWriter) PushText(text string, families []string, size float32, transform svgdom.Matrix2D, fill *svgdom.Fill, stroke *svgdom.Stroke, baseline svgdom.DominantBaseline) error {
	if !(size > 0) {
		return fmt.Errorf("svgwrite: invalid font size %g", size)
	}
	tw.nodes = append(tw.nodes, &svgdom.Text{
		Content:   text,
		Families:  families,
		Size:      size,
		Fill:      fill,
		Stroke:    stroke,
		Transform: transform,
		Baseline:  baseline,
	})
	return nil
}

// AddFontsSource registers an additional in-memory font file.
func (tw *TextWriter) AddFontsSource(data []byte) error {
	if tw.fonts == nil {
		tw.fonts = svgtext.NewDatabase()
	}
	return tw.fonts.LoadFontData(data)
}

// prepareText finalizes the document and converts its text nodes to
// outlines. The database is still checked at run time, guarding
// against a TextWriter built from its zero value.
func (tw *TextWriter) prepareText() (*svgdom.Tree, error) {
	if tw.fonts == nil {
		return nil, ErrNoFonts
	}
	tree, err := tw.prepare()
	if err != nil {
		return nil, err
	}
	if err := svgtext.ConvertText(tree, tw.fonts); err != nil {
		return nil, err
	}
	return tree, nil
}

// Write finalizes the document, converts text to outlines and saves
// it to an SVG file at `path`.
func (tw *TextWriter) Write(path string) error {
	tree, err := tw.prepareText()
	if err != nil {
		return err
	}
	return tree.Write(path)
}

// Encode finalizes the document, converts text to outlines and
// writes the XML to `out`.
func (tw *TextWriter) Encode(out io.Writer) error {
	tree, err := tw.prepareText()
	if err != nil {
		return err
	}
	return tree.WriteXML(out, true)
}
