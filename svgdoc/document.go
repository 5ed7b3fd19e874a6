// Package svgdoc reads SVG documents and produces attribute bags for every
// drawable element, applying document style sheets.
package svgdoc

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"

	"svgprops/attrs"
	"svgprops/css"
)

var (
	// elements which become scene nodes
	drawable = map[string]bool{
		"svg": true, "g": true, "symbol": true, "use": true,
		"path": true, "rect": true, "circle": true, "ellipse": true,
		"line": true, "polyline": true, "polygon": true,
		"text": true, "tspan": true, "textPath": true,
		"image": true, "foreignObject": true,
		"clipPath": true, "mask": true, "marker": true,
	}
	// elements never looked into
	opaque = map[string]bool{
		"style": true, "script": true, "title": true, "desc": true, "metadata": true,
	}
	// shape geometry, handled by renderer and never part of node properties
	geometry = map[string]bool{
		"d": true, "points": true, "pathLength": true,
		"cx": true, "cy": true, "r": true, "rx": true, "ry": true,
		"x1": true, "y1": true, "x2": true, "y2": true,
		"width": true, "height": true, "viewBox": true, "preserveAspectRatio": true,
		"x": true, "y": true, "dx": true, "dy": true,
	}
)

// Node is drawable element of the document.
type Node struct {
	Path     string            // element path from the root, "svg/g[1]/path[0]"
	Tag      string            // element name
	Classes  []string          // class attribute
	Attrs    attrs.Bag         // presentation attributes with style
	Geometry map[string]string // shape geometry attributes
}

// Document is parsed SVG document.
type Document struct {
	root  *etree.Element
	sheet *css.Stylesheet
	log   *zap.Logger
}

// Option changes how document is read.
type Option func(*Document)

// WithStylesheet puts rules of the base style sheet ahead of rules coming from
// the document itself.
func WithStylesheet(base *css.Stylesheet) Option {
	return func(d *Document) {
		d.sheet.Append(base)
	}
}

// Read parses SVG document. Non UTF-8 documents are decoded according to
// their XML declaration, <style> elements are parsed in document order.
func Read(r io.Reader, log *zap.Logger, options ...Option) (*Document, error) {
	if log == nil {
		log = zap.NewNop()
	}

	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
		ValidateInput: false,
		Permissive:    true,
	}
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("unable to read SVG: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, errors.New("document has no root element")
	}
	if root.Tag != "svg" {
		return nil, fmt.Errorf("unexpected root element %q", root.Tag)
	}

	d := &Document{
		root:  root,
		sheet: &css.Stylesheet{},
		log:   log.Named("svgdoc"),
	}
	for _, opt := range options {
		opt(d)
	}

	parser := css.NewParser(log)
	for _, el := range root.FindElements("//style") {
		d.sheet.Append(parser.Parse([]byte(el.Text()), "style"))
	}
	for _, w := range d.sheet.Warnings {
		d.log.Debug("Style sheet feature ignored", zap.String("warning", w))
	}
	return d, nil
}

// Stylesheet returns combined style sheet of the document.
func (d *Document) Stylesheet() *css.Stylesheet {
	return d.sheet
}

// Nodes returns drawable elements in document order. Root element is the
// first node.
func (d *Document) Nodes() []Node {
	nodes := []Node{d.node(d.root, d.root.Tag)}
	d.walk(d.root, d.root.Tag, &nodes)
	return nodes
}

func (d *Document) walk(el *etree.Element, path string, nodes *[]Node) {
	counts := make(map[string]int)
	for _, child := range el.ChildElements() {
		idx := counts[child.Tag]
		counts[child.Tag]++

		if opaque[child.Tag] {
			continue
		}
		p := fmt.Sprintf("%s/%s[%d]", path, child.Tag, idx)
		if drawable[child.Tag] {
			*nodes = append(*nodes, d.node(child, p))
		}
		d.walk(child, p, nodes)
	}
}

func (d *Document) node(el *etree.Element, path string) Node {
	n := Node{
		Path:     path,
		Tag:      el.Tag,
		Attrs:    make(attrs.Bag),
		Geometry: make(map[string]string),
	}

	var id, inline string
	for _, a := range el.Attr {
		switch {
		case a.Key == "href" && (a.Space == "" || a.Space == "xlink"):
			n.Attrs["href"] = a.Value
			continue
		case a.Space != "" || a.Key == "xmlns":
			continue
		}

		switch a.Key {
		case "style":
			inline = a.Value
		case "class":
			n.Classes = strings.Fields(a.Value)
		default:
			name := css.CamelCase(a.Key)
			if geometry[name] && (el.Tag != "use" || (name != "x" && name != "y")) {
				n.Geometry[name] = a.Value
				continue
			}
			if name == "id" {
				id = a.Value
			}
			n.Attrs[name] = a.Value
		}
	}

	var style []attrs.Bag
	for _, rule := range d.sheet.Match(el.Tag, id, n.Classes) {
		style = append(style, attrs.FromDeclarations(rule.Properties))
	}
	if strings.TrimSpace(inline) != "" {
		style = append(style, attrs.ParseInlineStyle(inline))
	}
	if len(style) > 0 {
		n.Attrs[attrs.StyleKey] = attrs.Sequence(style...)
	}
	return n
}
