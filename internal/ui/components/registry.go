package components

import (
	"github.com/alexisbeaulieu97/positivus/internal/args"
	"github.com/alexisbeaulieu97/positivus/internal/ui/node"
	"github.com/alexisbeaulieu97/positivus/internal/ui/variant"
	positivuserrors "github.com/alexisbeaulieu97/positivus/pkg/errors"
)

type buildFunc func(args.Values) (node.Node, error)

type factory struct {
	schema args.Schema
	build  buildFunc
}

var factories = map[variant.Kind]factory{}

func register(schema args.Schema, fn buildFunc) {
	factories[schema.Kind] = factory{schema: schema, build: fn}
}

func init() {
	register(buttonSchema, buildButton)
	register(linkSchema, buildLink)
	register(cardSchema, buildCard)
	register(teamCardSchema, buildTeamCard)
	register(inputSchema, buildInput)
	register(contactUsSchema, buildContactUs)
	register(footerSchema, buildFooter)
	register(headingSchema, buildHeading)
	register(iconSchema, buildIcon)
	register(logoSchema, buildLogo)
}

// Build binds record to the kind's schema and builds the component tree.
func Build(kind variant.Kind, record args.Record) (node.Node, error) {
	f, ok := factories[kind]
	if !ok {
		return node.Node{}, positivuserrors.NewInvalidVariantError(string(kind), "")
	}

	values, err := f.schema.Bind(record)
	if err != nil {
		return node.Node{}, err
	}

	return f.build(values)
}

// Schema returns the argument schema of a buildable kind.
func Schema(kind variant.Kind) (args.Schema, bool) {
	f, ok := factories[kind]
	return f.schema, ok
}

// Buildable lists the kinds Build accepts, in catalog order.
func Buildable() []variant.Kind {
	var kinds []variant.Kind
	for _, kind := range variant.AllKinds() {
		if _, ok := factories[kind]; ok {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}

// arrange orders a label and its decoration as the bundle dictates.
func arrange(bundle variant.Bundle, label, decoration node.Node) []node.Node {
	switch bundle.Order {
	case variant.OrderLabelFirst:
		return []node.Node{label, decoration}
	case variant.OrderLabelOnly:
		return []node.Node{label}
	default:
		return []node.Node{decoration, label}
	}
}

// asset builds an img element for the bundle's asset.
func asset(bundle variant.Bundle, class string) node.Node {
	return node.Element("img").
		WithClass(class).
		WithAsset(bundle.Asset).
		WithAttr("alt", bundle.Alt)
}
