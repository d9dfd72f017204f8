package components

import (
	"github.com/alexisbeaulieu97/positivus/internal/args"
	"github.com/alexisbeaulieu97/positivus/internal/ui/node"
	"github.com/alexisbeaulieu97/positivus/internal/ui/variant"
)

var headingSchema = args.Schema{
	Kind: variant.KindHeading,
	Fields: []args.Field{
		{Name: "title", Type: args.TypeString, Required: true},
		{Name: "description", Type: args.TypeString, Default: ""},
		{Name: "show_description", Type: args.TypeBool, Default: true},
	},
}

func buildHeading(v args.Values) (node.Node, error) {
	heading := node.Element("div",
		node.Element("div",
			node.Element("span", node.Text(v.String("title"))).WithClass("heading__label-text"),
		).WithClass("heading__label"),
	).WithClass("heading")

	if description := v.String("description"); v.Bool("show_description") && description != "" {
		heading = heading.Append(node.Element("p", node.Text(description)).WithClass("heading__description"))
	}
	return heading, nil
}
