package components

import (
	"github.com/alexisbeaulieu97/positivus/internal/args"
	"github.com/alexisbeaulieu97/positivus/internal/ui/node"
	"github.com/alexisbeaulieu97/positivus/internal/ui/variant"
)

var logoSchema = args.Schema{
	Kind: variant.KindLogo,
	Fields: []args.Field{
		{Name: "variant", Type: args.TypeVariant, Of: variant.KindLogo, Default: variant.LogoDefault},
		{Name: "href", Type: args.TypeString, Default: "/"},
	},
}

func buildLogo(v args.Values) (node.Node, error) {
	bundle := v.Bundle("variant")

	return node.Element("a", asset(bundle, "logo__image")).
		WithAttr("href", v.String("href")).
		WithClass("logo").
		WithClass(bundle.Classes...).
		WithAttr("aria-label", homeLabel), nil
}
