// Writes SVG documents from event-based path descriptions.
//
// A Writer accepts a push operation per drawing primitive (paths,
// raster images, groups) and a write operation that computes the
// document view box and serializes everything to an SVG file:
//
//	w := svgwrite.New()
//	var b svgevents.PathBuilder
//	b.Begin(svgdom.Point{})
//	b.LineTo(svgdom.Point{X: 1, Y: 1})
//	b.QuadraticBezierTo(svgdom.Point{X: 2, Y: 1}, svgdom.Point{X: 3, Y: 2})
//	b.End(true)
//	err := w.Push(b.Finish(),
//		svgdom.FillColor(svgdom.RGB(253, 77, 44), 0.8),
//		svgdom.StrokeColor(svgdom.RGB(253, 77, 44), 0.8, 2),
//		svgdom.Identity)
//	...
//	err = w.Write("out.svg")
//
// Text is gated behind a font source: AddFonts returns a TextWriter,
// the only type with text operations.
package svgwrite

import (
	"errors"
	"io"

	"github.com/benoitkugler/svgwrite/svgdom"
	"github.com/benoitkugler/svgwrite/svgevents"
	"github.com/benoitkugler/svgwrite/svgtext"
)

// ErrNoFonts is returned when writing text without a font source.
var ErrNoFonts = errors.New("svgwrite: no font source attached")

// Writer accumulates drawing primitives and writes them as one SVG
// document. It is single-use: a successful Write consumes it, and it
// is not safe for concurrent use. The zero value is not usable; call
// New.
type Writer struct {
	nodes  []svgdom.Node
	global svgdom.Matrix2D
}

// New returns an empty writer with an identity global transform.
func New() *Writer {
	return &Writer{global: svgdom.Identity}
}

// WithTransform replaces the global transform, applied to the whole
// document as a group at write time.
func (w *Writer) WithTransform(m svgdom.Matrix2D) *Writer {
	w.global = m
	return w
}

// Push translates a path event stream and appends it as a path
// primitive. Translation is eager: an empty stream is rejected here,
// with svgevents.ErrEmptyPath.
func (w *Writer) Push(events []svgevents.Event, fill *svgdom.Fill, stroke *svgdom.Stroke, transform svgdom.Matrix2D) error {
	data, err := svgevents.Translate(events)
	if err != nil {
		return err
	}
	w.nodes = append(w.nodes, &svgdom.PathNode{
		Data:      data,
		Fill:      fill,
		Stroke:    stroke,
		Transform: transform,
	})
	return nil
}

// PushNode appends an already-built document node without any
// indirection.
func (w *Writer) PushNode(n svgdom.Node) {
	w.nodes = append(w.nodes, n)
}

// PushImage appends a raster image (encoded by the caller; PNG, JPEG
// or GIF), placed at the translation part of `transform` with the
// given display size.
func (w *Writer) PushImage(data []byte, transform svgdom.Matrix2D, width, height float32) error {
	img, err := svgdom.NewImage(data, transform, width, height)
	if err != nil {
		return err
	}
	w.nodes = append(w.nodes, img)
	return nil
}

// PushGroup appends a set of nodes as the children of their own
// group. This is relevant for applying one transform to a set of
// elements.
func (w *Writer) PushGroup(nodes []svgdom.Node, transform svgdom.Matrix2D) {
	w.nodes = append(w.nodes, svgdom.NewGroup(nodes, transform))
}

// prepare computes the document dimensions and assembles the final
// tree: a synthetic root holding one group that carries the global
// transform and owns every pushed node.
func (w *Writer) prepare() (*svgdom.Tree, error) {
	minX, maxX, minY, maxY := ViewBounds(w.nodes, w.global)
	width, height := CanvasSize(minX, maxX, minY, maxY)

	// the view rect keeps the raw bounds, even when the fallback fired
	view, ok := svgdom.RectFromLTRB(minX, minY, maxX, maxY)
	if !ok {
		return nil, svgdom.BoundsError{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}
	}

	group := svgdom.NewGroup(w.nodes, w.global)
	root := svgdom.NewGroup([]svgdom.Node{group}, svgdom.Identity)
	return &svgdom.Tree{Width: width, Height: height, ViewBox: view, Root: root}, nil
}

// Write finalizes the document and saves it to an SVG file at `path`.
// Text nodes pushed via PushNode are NOT converted to outlines; see
// TextWriter.
func (w *Writer) Write(path string) error {
	tree, err := w.prepare()
	if err != nil {
		return err
	}
	return tree.Write(path)
}

// Encode finalizes the document and writes the XML to `out`.
func (w *Writer) Encode(out io.Writer) error {
	tree, err := w.prepare()
	if err != nil {
		return err
	}
	return tree.WriteXML(out, true)
}

// AddFonts attaches a font database, enabling text operations. The
// receiver must not be used afterwards.
func (w *Writer) AddFonts(db *svgtext.Database) *TextWriter {
	return &TextWriter{Writer: *w, fonts: db}
}

// AddFontsDir builds a font database from a font directory and
// enables text operations.
func (w *Writer) AddFontsDir(dir string) (*TextWriter, error) {
	db := svgtext.NewDatabase()
	if err := db.LoadFontsDir(dir); err != nil {
		return nil, err
	}
	return w.AddFonts(db), nil
}

// AddFontsSource builds a font database from an in-memory font file
// and enables text operations.
func (w *Writer) AddFontsSource(data []byte) (*TextWriter, error) {
	db := svgtext.NewDatabase()
	if err := db.LoadFontData(data); err != nil {
		return nil, err
	}
	return w.AddFonts(db), nil
}
