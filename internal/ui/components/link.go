package components

import (
	"github.com/alexisbeaulieu97/positivus/internal/args"
	"github.com/alexisbeaulieu97/positivus/internal/ui/node"
	"github.com/alexisbeaulieu97/positivus/internal/ui/variant"
)

var linkSchema = args.Schema{
	Kind: variant.KindLink,
	Fields: []args.Field{
		{Name: "label", Type: args.TypeString, Required: true},
		{Name: "variant", Type: args.TypeVariant, Of: variant.KindLink, Required: true},
		{Name: "href", Type: args.TypeString, Default: "#"},
	},
}

func buildLink(v args.Values) (node.Node, error) {
	bundle := v.Bundle("variant")

	text := node.Element("span", node.Text(v.String("label")))
	icon := asset(bundle, "link__icon")

	return node.Element("a").
		WithAttr("href", v.String("href")).
		WithClass("link").
		WithClass(bundle.Classes...).
		Append(arrange(bundle, text, icon)...), nil
}
