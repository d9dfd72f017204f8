// Package html writes node trees as HTML markup.
package html

import (
	"bytes"
	"io"
	"strings"

	"github.com/beevik/etree"

	"github.com/alexisbeaulieu97/positivus/internal/config"
	"github.com/alexisbeaulieu97/positivus/internal/ui/node"
)

// voidElements never carry content or an end tag.
var voidElements = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {}, "img": {},
	"input": {}, "link": {}, "meta": {}, "source": {}, "track": {}, "wbr": {},
}

// AssetResolver maps a logical asset id to the URL placed in src.
type AssetResolver interface {
	Resolve(id string) string
}

// PathResolver joins asset ids onto a base path with a fixed extension.
type PathResolver struct {
	BasePath  string
	Extension string
}

// NewPathResolver returns a resolver for the configured assets.
func NewPathResolver(assets config.Assets) PathResolver {
	return PathResolver{BasePath: assets.BasePath, Extension: assets.Extension}
}

// Resolve implements AssetResolver.
func (r PathResolver) Resolve(id string) string {
	if id == "" {
		return ""
	}
	return strings.TrimRight(r.BasePath, "/") + "/" + id + r.Extension
}

// Options controls fragment output.
type Options struct {
	// Indent is the number of spaces per level. Zero writes everything on
	// one line.
	Indent   int
	Resolver AssetResolver
}

func (o Options) resolver() AssetResolver {
	if o.Resolver == nil {
		return NewPathResolver(config.DefaultSettings().Assets)
	}
	return o.Resolver
}

// Convert builds the etree element for n. A text root is wrapped in a span.
func Convert(n node.Node, resolver AssetResolver) *etree.Element {
	if n.IsText() {
		el := etree.NewElement("span")
		el.CreateText(n.Text())
		return el
	}

	el := etree.NewElement(n.Tag())
	fill(el, n, resolver)
	return el
}

func fill(el *etree.Element, n node.Node, resolver AssetResolver) {
	if classes := n.Classes(); len(classes) > 0 {
		el.CreateAttr("class", strings.Join(classes, " "))
	}
	if id := n.Asset(); id != "" {
		el.CreateAttr("src", resolver.Resolve(id))
	}
	for _, attr := range n.Attrs() {
		el.CreateAttr(attr.Name, attr.Value)
	}

	for _, child := range n.Children() {
		if child.IsText() {
			el.CreateText(child.Text())
			continue
		}
		fill(el.CreateElement(child.Tag()), child, resolver)
	}
}

// closeEmpty gives every empty non-void element an end tag. It must run
// after indentation, which drops empty character data.
func closeEmpty(el *etree.Element) {
	if len(el.Child) == 0 {
		if _, void := voidElements[el.Tag]; !void {
			el.CreateText("")
		}
		return
	}
	for _, child := range el.ChildElements() {
		closeEmpty(child)
	}
}

func newDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.WriteSettings = etree.WriteSettings{
		CanonicalText:    true,
		CanonicalAttrVal: true,
	}
	return doc
}

func finish(doc *etree.Document, indent int) {
	root := doc.Root()
	if indent > 0 {
		var kept []keptChildren
		if root != nil {
			keepMixed(root, false, &kept)
		}
		doc.Indent(indent)
		for _, k := range kept {
			k.el.Child = k.tokens
		}
	}
	if root != nil {
		closeEmpty(root)
	}
}

type keptChildren struct {
	el     *etree.Element
	tokens []etree.Token
}

// keepMixed records the children of every element holding text, and of all
// elements beneath it, so indentation can be undone there. Whitespace added
// next to text would change the rendered content.
func keepMixed(el *etree.Element, inMixed bool, kept *[]keptChildren) {
	mixed := inMixed || hasText(el)
	if mixed {
		*kept = append(*kept, keptChildren{el: el, tokens: append([]etree.Token(nil), el.Child...)})
	}
	for _, child := range el.ChildElements() {
		keepMixed(child, mixed, kept)
	}
}

func hasText(el *etree.Element) bool {
	for _, tok := range el.Child {
		if cd, ok := tok.(*etree.CharData); ok && strings.TrimSpace(cd.Data) != "" {
			return true
		}
	}
	return false
}

// Fragment writes n as a standalone HTML fragment.
func Fragment(w io.Writer, n node.Node, opts Options) error {
	doc := newDocument()
	doc.SetRoot(Convert(n, opts.resolver()))
	finish(doc, opts.Indent)

	_, err := doc.WriteTo(w)
	return err
}

// FragmentString returns n as an HTML fragment.
func FragmentString(n node.Node, opts Options) (string, error) {
	var buf bytes.Buffer
	if err := Fragment(&buf, n, opts); err != nil {
		return "", err
	}
	return buf.String(), nil
}
