package components

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/positivus/internal/args"
	"github.com/alexisbeaulieu97/positivus/internal/ui/node"
	"github.com/alexisbeaulieu97/positivus/internal/ui/variant"
)

var footerSchema = args.Schema{
	Kind: variant.KindFooter,
	Fields: []args.Field{
		{Name: "email", Type: args.TypeString, Required: true},
		{Name: "phone", Type: args.TypeString, Required: true},
		{Name: "address", Type: args.TypeString, Required: true},
		{Name: "copyright_year", Type: args.TypeString, Required: true},
	},
}

type navLink struct {
	label string
	href  string
}

var footerNav = []navLink{
	{label: "About us", href: "/about"},
	{label: "Services", href: "/services"},
	{label: "Use Cases", href: "/use-cases"},
	{label: "Pricing", href: "/pricing"},
	{label: "Blog", href: "/blog"},
}

var footerSocial = []navLink{
	{label: "linkedin", href: "https://linkedin.com"},
	{label: "facebook", href: "https://facebook.com"},
	{label: "twitter", href: "https://twitter.com"},
}

const homeLabel = "Positivus ホーム"

// The footer sits on the dark surface and carries the light logo.
func buildFooter(v args.Values) (node.Node, error) {
	logo, err := variant.Resolve(variant.KindLogo, variant.LogoLight)
	if err != nil {
		return node.Node{}, err
	}

	nav := node.Element("nav").WithClass("footer__nav").WithAttr("aria-label", "フッターナビゲーション")
	for _, link := range footerNav {
		nav = nav.Append(node.Element("a", node.Text(link.label)).
			WithAttr("href", link.href).
			WithClass("footer__nav-link"))
	}

	social := node.Element("div").WithClass("footer__social").WithAttr("aria-label", "ソーシャルメディア")
	for _, link := range footerSocial {
		icon := node.Element("img").
			WithClass("footer__social-icon").
			WithAsset("icon-"+link.label).
			WithAttr("alt", "")
		social = social.Append(node.Element("a", icon).
			WithAttr("href", link.href).
			WithClass("footer__social-link").
			WithAttr("aria-label", link.label))
	}

	top := node.Element("div",
		node.Element("a", asset(logo, "footer__logo-image")).
			WithAttr("href", "/").
			WithClass("footer__logo").
			WithAttr("aria-label", homeLabel),
		nav,
		social,
	).WithClass("footer__top")

	contactList := node.Element("div",
		node.Element("p", node.Text("Email: "+v.String("email"))),
		node.Element("p", node.Text("Phone: "+v.String("phone"))),
		node.Element("p", addressLines("Address: "+v.String("address"))...),
	).WithClass("footer__contact-list")

	contact := node.Element("div",
		node.Element("span", node.Text("Contact us:")).WithClass("footer__contact-label"),
		contactList,
	).WithClass("footer__contact-info")

	subscription := node.Element("div",
		node.Element("input").
			WithAttr("type", "email").
			WithClass("footer__subscription-input").
			WithAttr("placeholder", "Email"),
		node.Element("button", node.Text("Subscribe to news")).
			WithAttr("type", "button").
			WithClass("footer__subscription-button"),
	).WithClass("footer__subscription")

	content := node.Element("div",
		top,
		node.Element("div", contact, subscription).WithClass("footer__middle"),
	).WithClass("footer__content")

	bottom := node.Element("div",
		node.Element("p", node.Text(fmt.Sprintf("© %s Positivus. All Rights Reserved.", v.String("copyright_year")))).
			WithClass("footer__copyright"),
		node.Element("a", node.Text("Privacy Policy")).
			WithAttr("href", "/privacy").
			WithClass("footer__privacy"),
	).WithClass("footer__bottom")

	return node.Element("footer",
		content,
		node.Element("div").WithClass("footer__divider"),
		bottom,
	).WithClass("footer"), nil
}

// addressLines splits text on newlines, joining the lines with br elements.
func addressLines(text string) []node.Node {
	lines := strings.Split(text, "\n")
	out := make([]node.Node, 0, len(lines)*2-1)
	for i, line := range lines {
		if i > 0 {
			out = append(out, node.Element("br"))
		}
		out = append(out, node.Text(line))
	}
	return out
}
