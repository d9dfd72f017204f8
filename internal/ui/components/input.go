package components

import (
	"github.com/alexisbeaulieu97/positivus/internal/args"
	"github.com/alexisbeaulieu97/positivus/internal/ui/node"
	"github.com/alexisbeaulieu97/positivus/internal/ui/variant"
)

const inputTypeTextarea = "textarea"

var inputSchema = args.Schema{
	Kind: variant.KindInput,
	Fields: []args.Field{
		{Name: "label", Type: args.TypeString, Required: true},
		{Name: "placeholder", Type: args.TypeString, Default: ""},
		{Name: "type", Type: args.TypeString, Default: "text", Rules: "oneof=text email textarea"},
		{Name: "variant", Type: args.TypeVariant, Of: variant.KindInput, Default: variant.InputDefault},
		{Name: "required", Type: args.TypeBool, Default: false},
		{Name: "name", Type: args.TypeString, Default: ""},
	},
}

func buildInput(v args.Values) (node.Node, error) {
	bundle := v.Bundle("variant")

	label := node.Element("label", node.Text(v.String("label"))).
		WithClass("input__label", variant.ToneClass("input__label", bundle.ColorRole))

	var field node.Node
	if v.String("type") == inputTypeTextarea {
		field = node.Element("textarea").WithClass("input__field", "input__field--textarea")
	} else {
		field = node.Element("input").WithAttr("type", v.String("type")).WithClass("input__field")
	}
	field = field.
		WithClass(bundle.Classes...).
		WithAttrIf("name", v.String("name")).
		WithAttrIf("placeholder", v.String("placeholder"))
	if v.Bool("required") {
		field = field.WithAttr("required", "")
	}

	return node.Element("div", arrange(bundle, label, field)...).WithClass("input"), nil
}
