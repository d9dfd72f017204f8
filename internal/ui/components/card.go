package components

import (
	"github.com/alexisbeaulieu97/positivus/internal/args"
	"github.com/alexisbeaulieu97/positivus/internal/ui/node"
	"github.com/alexisbeaulieu97/positivus/internal/ui/variant"
)

var cardSchema = args.Schema{
	Kind: variant.KindCard,
	Fields: []args.Field{
		{Name: "variant", Type: args.TypeVariant, Of: variant.KindCard, Required: true},
		{Name: "title", Type: args.TypeString, Required: true},
		{Name: "subtitle", Type: args.TypeString, Required: true},
		{Name: "label_variant", Type: args.TypeVariant, Of: variant.KindLabel, Default: variant.LabelGreen},
		{Name: "href", Type: args.TypeString, Default: "#"},
	},
}

// buildCard renders a service card: the labelled heading with its call to
// action, followed by the illustration slot.
func buildCard(v args.Values) (node.Node, error) {
	card := v.Bundle("variant")
	label := v.Bundle("label_variant")

	chip := func(text string) node.Node {
		return node.Element("span", node.Text(text)).
			WithClass("heading__label-text", "heading__label-text--small").
			WithClass(label.Classes...)
	}

	cta := node.Element("a",
		node.Element("span", node.Text("→")).WithClass("link__icon"),
		node.Element("span", node.Text("Learn more")),
	).WithAttr("href", v.String("href")).WithClass("link", variant.ToneClass("link", card.ColorRole))

	heading := node.Element("div",
		node.Element("div", chip(v.String("title")), chip(v.String("subtitle"))).WithClass("heading__label"),
		cta,
	).WithClass("service-card__heading")

	illustration := node.Element("div", node.Text("Illustration")).WithClass("service-card__illustration")

	content := node.Element("div", arrange(card, heading, illustration)...).
		WithClass("card__content", "service-card")

	return node.Element("article", content).
		WithClass("card").
		WithClass(card.Classes...), nil
}
