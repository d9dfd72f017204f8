package components

import (
	"strconv"

	"github.com/alexisbeaulieu97/positivus/internal/args"
	"github.com/alexisbeaulieu97/positivus/internal/ui/node"
	"github.com/alexisbeaulieu97/positivus/internal/ui/variant"
)

// DefaultIconSize is the icon edge length in pixels when none is given.
const DefaultIconSize = 58

var iconSchema = args.Schema{
	Kind: variant.KindIcon,
	Fields: []args.Field{
		{Name: "variant", Type: args.TypeVariant, Of: variant.KindIcon, Required: true},
		{Name: "size", Type: args.TypeInt, Default: DefaultIconSize, Rules: "min=24,max=120"},
	},
}

// The bundle alt text labels the wrapper; the image itself is decorative.
func buildIcon(v args.Values) (node.Node, error) {
	bundle := v.Bundle("variant")
	size := strconv.Itoa(v.Int("size"))

	image := node.Element("img").
		WithClass("icon__image").
		WithAsset(bundle.Asset).
		WithAttr("alt", "").
		WithAttr("width", size).
		WithAttr("height", size)

	return node.Element("span", image).
		WithClass("icon").
		WithClass(bundle.Classes...).
		WithAttr("role", "img").
		WithAttr("aria-label", bundle.Alt), nil
}
