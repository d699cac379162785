package svgdom

import (
	"bufio"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// XML serialization of the document tree, using the standard
// xml.Encoder token interface.

func ftoa(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func xmlAddAttr(attr *[]xml.Attr, name, val string) {
	at := xml.Attr{}
	at.Name.Local = name
	at.Value = val
	*attr = append(*attr, at)
}

func addTransformAttr(attr *[]xml.Attr, m Matrix2D) {
	if m == Identity {
		return
	}
	xmlAddAttr(attr, "transform", m.String())
}

// WriteXML writes the document to `w`. The root group is expected to
// carry no transform of its own (its children hold them).
func (t *Tree) WriteXML(w io.Writer, indent bool) error {
	enc := xml.NewEncoder(w)
	if indent {
		enc.Indent("", "  ")
	}
	se := xml.StartElement{Name: xml.Name{Local: "svg"}}
	xmlAddAttr(&se.Attr, "xmlns", "http://www.w3.org/2000/svg")
	xmlAddAttr(&se.Attr, "xmlns:xlink", "http://www.w3.org/1999/xlink")
	xmlAddAttr(&se.Attr, "width", ftoa(t.Width))
	xmlAddAttr(&se.Attr, "height", ftoa(t.Height))
	xmlAddAttr(&se.Attr, "viewBox", fmt.Sprintf("%s %s %s %s",
		ftoa(t.ViewBox.X), ftoa(t.ViewBox.Y), ftoa(t.ViewBox.W), ftoa(t.ViewBox.H)))
	if err := enc.EncodeToken(se); err != nil {
		return err
	}

	grads, ids := collectGradients(t.Root)
	if err := encodeDefs(enc, grads, ids); err != nil {
		return err
	}
	if t.Root != nil {
		for _, child := range t.Root.Children {
			if err := child.encode(enc, ids); err != nil {
				return err
			}
		}
	}
	if err := enc.EncodeToken(xml.EndElement{Name: se.Name}); err != nil {
		return err
	}
	return enc.Flush()
}

// Write saves the document to an XML-encoded file.
func (t *Tree) Write(path string) error {
	fp, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("svgdom: writing SVG: %w", err)
	}
	bw := bufio.NewWriter(fp)
	if err := t.WriteXML(bw, true); err != nil {
		fp.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		fp.Close()
		return fmt.Errorf("svgdom: writing SVG: %w", err)
	}
	if err := fp.Close(); err != nil {
		return fmt.Errorf("svgdom: writing SVG: %w", err)
	}
	return nil
}

// collectGradients assigns an id to every gradient referenced by the
// tree, in order of appearance.
func collectGradients(g *Group) ([]*Gradient, map[*Gradient]string) {
	var grads []*Gradient
	ids := map[*Gradient]string{}
	add := func(p Pattern) {
		if grad, ok := p.(*Gradient); ok {
			if _, seen := ids[grad]; !seen {
				ids[grad] = fmt.Sprintf("grad%d", len(grads)+1)
				grads = append(grads, grad)
			}
		}
	}
	var walk func(n Node)
	walk = func(n Node) {
		switch n := n.(type) {
		case *Group:
			for _, child := range n.Children {
				walk(child)
			}
		case *PathNode:
			if n.Fill != nil {
				add(n.Fill.Paint)
			}
			if n.Stroke != nil {
				add(n.Stroke.Paint)
			}
		case *Text:
			if n.Fill != nil {
				add(n.Fill.Paint)
			}
			if n.Stroke != nil {
				add(n.Stroke.Paint)
			}
		}
	}
	if g != nil {
		walk(g)
	}
	return grads, ids
}

func encodeDefs(enc *xml.Encoder, grads []*Gradient, ids map[*Gradient]string) error {
	if len(grads) == 0 {
		return nil
	}
	defs := xml.StartElement{Name: xml.Name{Local: "defs"}}
	if err := enc.EncodeToken(defs); err != nil {
		return err
	}
	for _, grad := range grads {
		if err := encodeGradient(enc, grad, ids[grad]); err != nil {
			return err
		}
	}
	return enc.EncodeToken(xml.EndElement{Name: defs.Name})
}

func encodeGradient(enc *xml.Encoder, grad *Gradient, id string) error {
	se := xml.StartElement{}
	switch dir := grad.Direction.(type) {
	case Radial:
		se.Name.Local = "radialGradient"
		xmlAddAttr(&se.Attr, "id", id)
		xmlAddAttr(&se.Attr, "cx", ftoa(dir[0]))
		xmlAddAttr(&se.Attr, "cy", ftoa(dir[1]))
		xmlAddAttr(&se.Attr, "fx", ftoa(dir[2]))
		xmlAddAttr(&se.Attr, "fy", ftoa(dir[3]))
		xmlAddAttr(&se.Attr, "r", ftoa(dir[4]))
	case Linear:
		se.Name.Local = "linearGradient"
		xmlAddAttr(&se.Attr, "id", id)
		xmlAddAttr(&se.Attr, "x1", ftoa(dir[0]))
		xmlAddAttr(&se.Attr, "y1", ftoa(dir[1]))
		xmlAddAttr(&se.Attr, "x2", ftoa(dir[2]))
		xmlAddAttr(&se.Attr, "y2", ftoa(dir[3]))
	default:
		return fmt.Errorf("svgdom: unsupported gradient direction %T", grad.Direction)
	}
	if grad.Units != ObjectBoundingBox {
		xmlAddAttr(&se.Attr, "gradientUnits", grad.Units.String())
	}
	if grad.Spread != PadSpread {
		xmlAddAttr(&se.Attr, "spreadMethod", grad.Spread.String())
	}
	if grad.Matrix != (Matrix2D{}) && grad.Matrix != Identity {
		xmlAddAttr(&se.Attr, "gradientTransform", grad.Matrix.String())
	}
	if err := enc.EncodeToken(se); err != nil {
		return err
	}
	for _, stop := range grad.Stops {
		st := xml.StartElement{Name: xml.Name{Local: "stop"}}
		xmlAddAttr(&st.Attr, "offset", ftoa(stop.Offset))
		xmlAddAttr(&st.Attr, "stop-color", stop.StopColor.String())
		if stop.Opacity != 1 {
			xmlAddAttr(&st.Attr, "stop-opacity", ftoa(stop.Opacity))
		}
		if err := enc.EncodeToken(st); err != nil {
			return err
		}
		if err := enc.EncodeToken(xml.EndElement{Name: st.Name}); err != nil {
			return err
		}
	}
	return enc.EncodeToken(xml.EndElement{Name: se.Name})
}

func paintString(p Pattern, ids map[*Gradient]string) string {
	switch p := p.(type) {
	case PlainColor:
		return p.String()
	case *Gradient:
		return "url(#" + ids[p] + ")"
	default:
		return "none"
	}
}

func addFillAttrs(attr *[]xml.Attr, f *Fill, ids map[*Gradient]string) {
	if f == nil {
		xmlAddAttr(attr, "fill", "none")
		return
	}
	xmlAddAttr(attr, "fill", paintString(f.Paint, ids))
	if f.Opacity != 1 {
		xmlAddAttr(attr, "fill-opacity", ftoa(f.Opacity))
	}
	if f.EvenOdd {
		xmlAddAttr(attr, "fill-rule", "evenodd")
	}
}

func addStrokeAttrs(attr *[]xml.Attr, s *Stroke, ids map[*Gradient]string) {
	if s == nil {
		return // stroke defaults to none
	}
	xmlAddAttr(attr, "stroke", paintString(s.Paint, ids))
	if s.Opacity != 1 {
		xmlAddAttr(attr, "stroke-opacity", ftoa(s.Opacity))
	}
	xmlAddAttr(attr, "stroke-width", ftoa(s.Width))
	if s.Cap != ButtCap {
		xmlAddAttr(attr, "stroke-linecap", s.Cap.String())
	}
	if s.Join != Miter {
		xmlAddAttr(attr, "stroke-linejoin", s.Join.String())
	}
	if s.MiterLimit != 0 && s.MiterLimit != 4 {
		xmlAddAttr(attr, "stroke-miterlimit", ftoa(s.MiterLimit))
	}
	if len(s.Dash.Dash) != 0 {
		chunks := make([]string, len(s.Dash.Dash))
		for i, d := range s.Dash.Dash {
			chunks[i] = ftoa(d)
		}
		xmlAddAttr(attr, "stroke-dasharray", strings.Join(chunks, " "))
		if s.Dash.DashOffset != 0 {
			xmlAddAttr(attr, "stroke-dashoffset", ftoa(s.Dash.DashOffset))
		}
	}
}

func (p *PathNode) encode(enc *xml.Encoder, ids map[*Gradient]string) error {
	se := xml.StartElement{Name: xml.Name{Local: "path"}}
	xmlAddAttr(&se.Attr, "d", p.Data.ToSVGPath())
	addFillAttrs(&se.Attr, p.Fill, ids)
	addStrokeAttrs(&se.Attr, p.Stroke, ids)
	addTransformAttr(&se.Attr, p.Transform)
	if err := enc.EncodeToken(se); err != nil {
		return err
	}
	return enc.EncodeToken(xml.EndElement{Name: se.Name})
}

func (g *Group) encode(enc *xml.Encoder, ids map[*Gradient]string) error {
	se := xml.StartElement{Name: xml.Name{Local: "g"}}
	addTransformAttr(&se.Attr, g.Transform)
	if err := enc.EncodeToken(se); err != nil {
		return err
	}
	for _, child := range g.Children {
		if err := child.encode(enc, ids); err != nil {
			return err
		}
	}
	return enc.EncodeToken(xml.EndElement{Name: se.Name})
}

func (img *Image) encode(enc *xml.Encoder, ids map[*Gradient]string) error {
	se := xml.StartElement{Name: xml.Name{Local: "image"}}
	xmlAddAttr(&se.Attr, "x", ftoa(img.ViewBox.X))
	xmlAddAttr(&se.Attr, "y", ftoa(img.ViewBox.Y))
	xmlAddAttr(&se.Attr, "width", ftoa(img.ViewBox.W))
	xmlAddAttr(&se.Attr, "height", ftoa(img.ViewBox.H))
	uri := "data:" + img.MIME + ";base64," + base64.StdEncoding.EncodeToString(img.Data)
	xmlAddAttr(&se.Attr, "xlink:href", uri)
	if err := enc.EncodeToken(se); err != nil {
		return err
	}
	return enc.EncodeToken(xml.EndElement{Name: se.Name})
}

func (t *Text) encode(enc *xml.Encoder, ids map[*Gradient]string) error {
	se := xml.StartElement{Name: xml.Name{Local: "text"}}
	if len(t.Families) != 0 {
		xmlAddAttr(&se.Attr, "font-family", strings.Join(t.Families, ", "))
	}
	xmlAddAttr(&se.Attr, "font-size", ftoa(t.Size))
	if t.Baseline != BaselineAuto {
		xmlAddAttr(&se.Attr, "dominant-baseline", t.Baseline.String())
	}
	addFillAttrs(&se.Attr, t.Fill, ids)
	addStrokeAttrs(&se.Attr, t.Stroke, ids)
	addTransformAttr(&se.Attr, t.Transform)
	if err := enc.EncodeToken(se); err != nil {
		return err
	}
	if err := enc.EncodeToken(xml.CharData(t.Content)); err != nil {
		return err
	}
	return enc.EncodeToken(xml.EndElement{Name: se.Name})
}
