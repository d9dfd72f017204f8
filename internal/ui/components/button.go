package components

import (
	"github.com/alexisbeaulieu97/positivus/internal/args"
	"github.com/alexisbeaulieu97/positivus/internal/ui/node"
	"github.com/alexisbeaulieu97/positivus/internal/ui/variant"
)

var buttonSchema = args.Schema{
	Kind: variant.KindButton,
	Fields: []args.Field{
		{Name: "label", Type: args.TypeString, Required: true},
		{Name: "variant", Type: args.TypeVariant, Of: variant.KindButton, Required: true},
		{Name: "type", Type: args.TypeString, Default: "button", Rules: "oneof=button submit"},
		{Name: "full", Type: args.TypeBool, Default: false},
	},
}

func buildButton(v args.Values) (node.Node, error) {
	bundle := v.Bundle("variant")

	button := node.Element("button").
		WithAttr("type", v.String("type")).
		WithClass("button").
		WithClass(bundle.Classes...)
	if v.Bool("full") {
		button = button.WithClass("button--full")
	}

	return button.Append(node.Text(v.String("label"))), nil
}
