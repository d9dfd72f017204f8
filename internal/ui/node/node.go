// Package node defines the immutable markup tree produced by component
// factories and consumed by renderers.
//
// A Node is either an element (tag, class tokens, attributes, optional asset
// reference, children) or a literal text leaf. Every With/Append method
// returns a new Node; the receiver is never modified, so trees can be handed
// to any number of renderers without copying.
package node

import (
	"slices"
	"strings"
)

// Attr is a single element attribute. Attribute order is preserved.
type Attr struct {
	Name  string
	Value string
}

// Node is one element or text leaf of a component tree.
type Node struct {
	tag      string
	text     string
	classes  []string
	attrs    []Attr
	asset    string
	children []Node
}

// Element creates an element node with the given children.
func Element(tag string, children ...Node) Node {
	return Node{tag: tag, children: slices.Clone(children)}
}

// Text creates a literal text leaf.
func Text(s string) Node {
	return Node{text: s}
}

// IsText reports whether the node is a text leaf.
func (n Node) IsText() bool {
	return n.tag == ""
}

// Tag returns the element tag, empty for text leaves.
func (n Node) Tag() string {
	return n.tag
}

// Text returns the content of a text leaf.
func (n Node) Text() string {
	return n.text
}

// Classes returns a copy of the ordered class tokens.
func (n Node) Classes() []string {
	return slices.Clone(n.classes)
}

// HasClass reports whether token is one of the node's classes.
func (n Node) HasClass(token string) bool {
	return slices.Contains(n.classes, token)
}

// Attrs returns a copy of the ordered attributes.
func (n Node) Attrs() []Attr {
	return slices.Clone(n.attrs)
}

// Attr returns the value of the named attribute.
func (n Node) Attr(name string) (string, bool) {
	for _, attr := range n.attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Asset returns the logical asset id attached to the node, if any.
func (n Node) Asset() string {
	return n.asset
}

// Children returns a copy of the ordered children.
func (n Node) Children() []Node {
	return slices.Clone(n.children)
}

// Len returns the number of children.
func (n Node) Len() int {
	return len(n.children)
}

// Child returns the i-th child. It panics when i is out of range.
func (n Node) Child(i int) Node {
	return n.children[i]
}

// WithClass returns a copy with the tokens appended. Empty and duplicate
// tokens are skipped.
func (n Node) WithClass(tokens ...string) Node {
	classes := slices.Clone(n.classes)
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" || slices.Contains(classes, token) {
			continue
		}
		classes = append(classes, token)
	}
	n.classes = classes
	return n
}

// WithAttr returns a copy with the attribute set, replacing an existing value
// in place.
func (n Node) WithAttr(name, value string) Node {
	attrs := slices.Clone(n.attrs)
	for i := range attrs {
		if attrs[i].Name == name {
			attrs[i].Value = value
			n.attrs = attrs
			return n
		}
	}
	n.attrs = append(attrs, Attr{Name: name, Value: value})
	return n
}

// WithAttrIf sets the attribute only when value is non-empty.
func (n Node) WithAttrIf(name, value string) Node {
	if value == "" {
		return n
	}
	return n.WithAttr(name, value)
}

// WithAsset returns a copy referencing the logical asset id.
func (n Node) WithAsset(id string) Node {
	n.asset = id
	return n
}

// Append returns a copy with children appended.
func (n Node) Append(children ...Node) Node {
	n.children = append(slices.Clone(n.children), children...)
	return n
}

// Prepend returns a copy with children placed before the existing ones.
func (n Node) Prepend(children ...Node) Node {
	merged := make([]Node, 0, len(children)+len(n.children))
	merged = append(merged, children...)
	n.children = append(merged, n.children...)
	return n
}

// Equal reports whether two trees are structurally identical.
func Equal(a, b Node) bool {
	if a.tag != b.tag || a.text != b.text || a.asset != b.asset {
		return false
	}
	if !slices.Equal(a.classes, b.classes) || !slices.Equal(a.attrs, b.attrs) {
		return false
	}
	return slices.EqualFunc(a.children, b.children, Equal)
}

// Walk visits n and its descendants depth first. Returning false from fn
// skips the node's children.
func Walk(n Node, fn func(Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.children {
		Walk(child, fn)
	}
}

// Find returns the first node, depth first, carrying the class token.
func Find(n Node, class string) (Node, bool) {
	var found Node
	var ok bool
	Walk(n, func(cur Node) bool {
		if ok {
			return false
		}
		if cur.HasClass(class) {
			found, ok = cur, true
			return false
		}
		return true
	})
	return found, ok
}

// TextContent concatenates every text leaf below n.
func TextContent(n Node) string {
	var b strings.Builder
	Walk(n, func(cur Node) bool {
		if cur.IsText() {
			b.WriteString(cur.text)
		}
		return true
	})
	return b.String()
}
