package components

import (
	"github.com/alexisbeaulieu97/positivus/internal/args"
	"github.com/alexisbeaulieu97/positivus/internal/ui/node"
	"github.com/alexisbeaulieu97/positivus/internal/ui/variant"
)

var teamCardSchema = args.Schema{
	Kind: variant.KindTeamCard,
	Fields: []args.Field{
		{Name: "name", Type: args.TypeString, Required: true},
		{Name: "role", Type: args.TypeString, Required: true},
		{Name: "bio", Type: args.TypeString, Required: true},
	},
}

// Team cards always sit on the white card surface.
func buildTeamCard(v args.Values) (node.Node, error) {
	surface, err := variant.Resolve(variant.KindCard, variant.CardWhite)
	if err != nil {
		return node.Node{}, err
	}

	header := node.Element("div",
		node.Element("div").WithClass("team-card__avatar"),
		node.Element("div",
			node.Element("span", node.Text(v.String("name"))).WithClass("team-card__name"),
			node.Element("span", node.Text(v.String("role"))).WithClass("team-card__role"),
		).WithClass("team-card__info"),
	).WithClass("team-card__header")

	body := node.Element("div",
		header,
		node.Element("div").WithClass("team-card__divider"),
		node.Element("p", node.Text(v.String("bio"))).WithClass("team-card__bio"),
	).WithClass("team-card")

	return node.Element("article", body).
		WithClass("card").
		WithClass(surface.Classes...), nil
}
