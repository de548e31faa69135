// Package htmlgen builds HTML fragments through a small node tree so that
// escaping lives in one serializer instead of at every interpolation site.
package htmlgen

import (
	"html"
	"strings"
)

// Node is one element, text run, or raw inclusion in a generated fragment.
type Node struct {
	Tag      string
	Attrs    []Attr
	Children []Node

	text string
	raw  bool
}

// Attr is a single attribute. Boolean attributes (required, checked) carry an
// empty value and render name-only.
type Attr struct {
	Name  string
	Value string
	Bool  bool
}

var voidTags = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {},
	"img": {}, "input": {}, "link": {}, "meta": {}, "source": {}, "track": {},
	"wbr": {},
}

// El constructs an element node.
func El(tag string, children ...Node) Node {
	return Node{Tag: tag, Children: children}
}

// Text constructs an escaped text node.
func Text(s string) Node {
	return Node{text: s}
}

// Raw constructs a node whose content is emitted verbatim. Callers own the
// safety of anything passed here; generated scripts and pre-rendered
// fragments are the only expected inputs.
func Raw(s string) Node {
	return Node{text: s, raw: true}
}

// WithAttr returns a copy of the node with the attribute appended.
func (n Node) WithAttr(name, value string) Node {
	n.Attrs = append(append([]Attr(nil), n.Attrs...), Attr{Name: name, Value: value})
	return n
}

// WithBoolAttr returns a copy of the node with a name-only attribute.
func (n Node) WithBoolAttr(name string) Node {
	n.Attrs = append(append([]Attr(nil), n.Attrs...), Attr{Name: name, Bool: true})
	return n
}

// WithChildren returns a copy of the node with the children appended.
func (n Node) WithChildren(children ...Node) Node {
	n.Children = append(append([]Node(nil), n.Children...), children...)
	return n
}

// Render serialises the node tree. Attribute values and text content are
// HTML-escaped here and nowhere else.
func Render(nodes ...Node) string {
	var builder strings.Builder
	for _, node := range nodes {
		renderNode(&builder, node)
	}
	return builder.String()
}

func renderNode(builder *strings.Builder, node Node) {
	if node.Tag == "" {
		if node.raw {
			builder.WriteString(node.text)
		} else {
			builder.WriteString(html.EscapeString(node.text))
		}
		return
	}

	builder.WriteByte('<')
	builder.WriteString(node.Tag)
	for _, attr := range node.Attrs {
		if attr.Name == "" {
			continue
		}
		builder.WriteByte(' ')
		builder.WriteString(attr.Name)
		if attr.Bool {
			continue
		}
		builder.WriteString(`="`)
		builder.WriteString(html.EscapeString(attr.Value))
		builder.WriteByte('"')
	}

	if _, void := voidTags[node.Tag]; void && len(node.Children) == 0 {
		builder.WriteString(">")
		return
	}

	builder.WriteByte('>')
	for _, child := range node.Children {
		renderNode(builder, child)
	}
	builder.WriteString("</")
	builder.WriteString(node.Tag)
	builder.WriteByte('>')
}

// Style assembles an inline style attribute value from declaration pairs,
// skipping empty values so absent tokens degrade to browser defaults.
type Style struct {
	decls []string
}

// Decl appends one property:value declaration when value is non-empty.
func (s Style) Decl(property, value string) Style {
	value = strings.TrimSpace(value)
	if property == "" || value == "" {
		return s
	}
	s.decls = append(append([]string(nil), s.decls...), property+":"+value)
	return s
}

// String renders the accumulated declarations.
func (s Style) String() string {
	return strings.Join(s.decls, ";")
}
