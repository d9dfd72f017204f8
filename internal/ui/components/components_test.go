package components

import (
	"slices"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/positivus/internal/args"
	"github.com/alexisbeaulieu97/positivus/internal/ui/node"
	"github.com/alexisbeaulieu97/positivus/internal/ui/variant"
	positivuserrors "github.com/alexisbeaulieu97/positivus/pkg/errors"
)

func build(t *testing.T, kind variant.Kind, record args.Record) node.Node {
	t.Helper()
	n, err := Build(kind, record)
	require.NoError(t, err)
	return n
}

func childTags(n node.Node) []string {
	tags := make([]string, 0, n.Len())
	for _, child := range n.Children() {
		tags = append(tags, child.Tag())
	}
	return tags
}

// skeleton drops every bundle-driven property: classes, assets, the
// relative order of siblings and the named attributes.
func skeleton(n node.Node, dropAttrs ...string) node.Node {
	if n.IsText() {
		return n
	}
	children := n.Children()
	for i := range children {
		children[i] = skeleton(children[i], dropAttrs...)
	}
	sort.SliceStable(children, func(i, j int) bool { return children[i].Tag() < children[j].Tag() })
	out := node.Element(n.Tag(), children...)
	for _, attr := range n.Attrs() {
		if slices.Contains(dropAttrs, attr.Name) {
			continue
		}
		out = out.WithAttr(attr.Name, attr.Value)
	}
	return out
}

func TestButtonVariants(t *testing.T) {
	t.Parallel()

	cases := []struct {
		variant variant.Variant
		classes []string
	}{
		{variant.ButtonPrimary, []string{"button", "button--primary"}},
		{variant.ButtonSecondary, []string{"button", "button--secondary"}},
		{variant.ButtonGreen, []string{"button", "button--green"}},
	}

	for _, tc := range cases {
		t.Run(string(tc.variant), func(t *testing.T) {
			t.Parallel()

			n := build(t, variant.KindButton, args.Record{"label": "Book a consultation", "variant": string(tc.variant)})
			require.Equal(t, "button", n.Tag())
			require.Equal(t, tc.classes, n.Classes())
			typ, _ := n.Attr("type")
			require.Equal(t, "button", typ)
			require.Equal(t, "Book a consultation", node.TextContent(n))
		})
	}
}

func TestButtonSubmitFullWidth(t *testing.T) {
	t.Parallel()

	n := build(t, variant.KindButton, args.Record{"label": "Send Message", "variant": "primary", "type": "submit", "full": true})
	require.Equal(t, []string{"button", "button--primary", "button--full"}, n.Classes())
	typ, _ := n.Attr("type")
	require.Equal(t, "submit", typ)
}

func TestLinkOrderFollowsBundle(t *testing.T) {
	t.Parallel()

	simple := build(t, variant.KindLink, args.Record{"label": "Read more", "variant": "simple-green"})
	require.Equal(t, []string{"span", "img"}, childTags(simple))
	require.Equal(t, []string{"link", "link--arrow", "link--green"}, simple.Classes())
	require.Equal(t, "link-simple-green-arrow", simple.Child(1).Asset())

	white := build(t, variant.KindLink, args.Record{"label": "Learn more", "variant": "white"})
	require.Equal(t, []string{"img", "span"}, childTags(white))
	require.Equal(t, []string{"link", "link--white"}, white.Classes())
	require.Equal(t, "link-1", white.Child(0).Asset())

	href, _ := white.Attr("href")
	require.Equal(t, "#", href)
	alt, ok := white.Child(0).Attr("alt")
	require.True(t, ok)
	require.Equal(t, "", alt)
}

func TestVariantsDifferOnlyInBundleFields(t *testing.T) {
	t.Parallel()

	cases := []struct {
		kind   variant.Kind
		record args.Record
		// attrs written from bundle fields are left out of the comparison.
		bundleAttrs []string
	}{
		{kind: variant.KindLink, record: args.Record{"label": "Learn more", "href": "/services"}},
		{kind: variant.KindButton, record: args.Record{"label": "Go"}},
		{kind: variant.KindCard, record: args.Record{"title": "Search engine", "subtitle": "optimization"}},
		{kind: variant.KindInput, record: args.Record{"label": "Email", "type": "email", "placeholder": "Email"}},
		{kind: variant.KindIcon, record: args.Record{"size": 48}, bundleAttrs: []string{"aria-label"}},
		{kind: variant.KindLogo, record: args.Record{"href": "/home"}, bundleAttrs: []string{"alt"}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(string(tc.kind), func(t *testing.T) {
			t.Parallel()

			variants := variant.Variants(tc.kind)
			require.GreaterOrEqual(t, len(variants), 2)

			var reference node.Node
			for i, v := range variants {
				record := args.Record{"variant": string(v)}
				for k, val := range tc.record {
					record[k] = val
				}
				n := skeleton(build(t, tc.kind, record), tc.bundleAttrs...)
				if i == 0 {
					reference = n
					continue
				}
				require.True(t, node.Equal(reference, n), "%s variant %s changed structure", tc.kind, v)
			}
		})
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	t.Parallel()

	records := map[variant.Kind]args.Record{
		variant.KindContactUs: {"contact_type": "get-quote"},
		variant.KindFooter:    {"email": "a@b.c", "phone": "1", "address": "x\ny", "copyright_year": "2023"},
		variant.KindCard:      {"variant": "dark", "title": "Social Media", "subtitle": "Marketing"},
	}
	for kind, record := range records {
		first := build(t, kind, record)
		second := build(t, kind, record)
		require.True(t, node.Equal(first, second), kind)
	}
}

func TestInputDefaultsAreIndependent(t *testing.T) {
	t.Parallel()

	n := build(t, variant.KindInput, args.Record{"label": "Name"})
	require.Equal(t, []string{"input"}, n.Classes())
	require.Equal(t, []string{"label", "input"}, childTags(n))

	label := n.Child(0)
	require.Equal(t, []string{"input__label"}, label.Classes())
	require.Equal(t, "Name", node.TextContent(label))

	field := n.Child(1)
	typ, _ := field.Attr("type")
	require.Equal(t, "text", typ)
	require.Equal(t, []string{"input__field"}, field.Classes())
	_, hasPlaceholder := field.Attr("placeholder")
	require.False(t, hasPlaceholder)
	_, required := field.Attr("required")
	require.False(t, required)
}

func TestInputDarkTextarea(t *testing.T) {
	t.Parallel()

	n := build(t, variant.KindInput, args.Record{"label": "Message*", "placeholder": "Message", "type": "textarea", "variant": "dark"})
	require.Equal(t, []string{"input__label", "input__label--white"}, n.Child(0).Classes())

	field := n.Child(1)
	require.Equal(t, "textarea", field.Tag())
	require.Equal(t, []string{"input__field", "input__field--textarea", "input__field--dark"}, field.Classes())
	_, hasType := field.Attr("type")
	require.False(t, hasType)
	placeholder, _ := field.Attr("placeholder")
	require.Equal(t, "Message", placeholder)
}

func TestMissingRequiredFieldsAreNamed(t *testing.T) {
	t.Parallel()

	cases := []struct {
		kind   variant.Kind
		record args.Record
		field  string
	}{
		{variant.KindButton, args.Record{"variant": "primary"}, "label"},
		{variant.KindLink, args.Record{"label": "Learn more"}, "variant"},
		{variant.KindCard, args.Record{"variant": "grey", "title": "Search engine"}, "subtitle"},
		{variant.KindTeamCard, args.Record{"name": "John Smith", "role": "CEO"}, "bio"},
		{variant.KindInput, args.Record{}, "label"},
		{variant.KindContactUs, args.Record{"show_illustration": false}, "contact_type"},
		{variant.KindFooter, args.Record{"email": "x", "phone": "y", "address": "z"}, "copyright_year"},
		{variant.KindHeading, args.Record{"description": "x"}, "title"},
		{variant.KindIcon, args.Record{"size": 36}, "variant"},
	}

	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			t.Parallel()

			_, err := Build(tc.kind, tc.record)
			var missingErr *positivuserrors.MissingFieldError
			require.ErrorAs(t, err, &missingErr)
			require.Equal(t, tc.field, missingErr.Field)
			require.Equal(t, string(tc.kind), missingErr.Kind)
		})
	}
}

func TestBuildRejectsUnknownKindAndVariant(t *testing.T) {
	t.Parallel()

	_, err := Build("carousel", args.Record{})
	var variantErr *positivuserrors.InvalidVariantError
	require.ErrorAs(t, err, &variantErr)
	require.Equal(t, "carousel", variantErr.Kind)

	_, err = Build(variant.KindLabel, args.Record{})
	require.ErrorAs(t, err, &variantErr)

	_, err = Build(variant.KindLink, args.Record{"label": "x", "variant": "purple"})
	require.ErrorAs(t, err, &variantErr)
	require.Equal(t, "purple", variantErr.Variant)
}

func TestBuildDoesNotMutateRecord(t *testing.T) {
	t.Parallel()

	record := args.Record{"label": "Name", "variant": "dark"}
	_ = build(t, variant.KindInput, record)
	require.Equal(t, args.Record{"label": "Name", "variant": "dark"}, record)
}

func TestServiceCard(t *testing.T) {
	t.Parallel()

	n := build(t, variant.KindCard, args.Record{"variant": "dark", "title": "Social Media", "subtitle": "Marketing", "label_variant": "white"})
	require.Equal(t, "article", n.Tag())
	require.Equal(t, []string{"card", "card--dark"}, n.Classes())

	content := n.Child(0)
	require.Equal(t, []string{"card__content", "service-card"}, content.Classes())
	require.Equal(t, 2, content.Len())
	require.True(t, content.Child(0).HasClass("service-card__heading"))
	require.True(t, content.Child(1).HasClass("service-card__illustration"))

	chip, ok := node.Find(n, "heading__label-text")
	require.True(t, ok)
	require.Equal(t, []string{"heading__label-text", "heading__label-text--small", "heading__label-text--white"}, chip.Classes())
	require.Equal(t, "Social Media", node.TextContent(chip))

	cta, ok := node.Find(n, "link")
	require.True(t, ok)
	require.Equal(t, []string{"link", "link--white"}, cta.Classes())
	require.Equal(t, "→Learn more", node.TextContent(cta))
}

func TestServiceCardDefaults(t *testing.T) {
	t.Parallel()

	n := build(t, variant.KindCard, args.Record{"variant": "grey", "title": "Search engine", "subtitle": "optimization"})

	chip, ok := node.Find(n, "heading__label-text")
	require.True(t, ok)
	require.Equal(t, []string{"heading__label-text", "heading__label-text--small"}, chip.Classes())

	cta, ok := node.Find(n, "link")
	require.True(t, ok)
	require.Equal(t, []string{"link"}, cta.Classes())
	href, _ := cta.Attr("href")
	require.Equal(t, "#", href)
}

func TestTeamCard(t *testing.T) {
	t.Parallel()

	n := build(t, variant.KindTeamCard, args.Record{"name": "John Smith", "role": "CEO and Founder", "bio": "10+ years"})
	require.Equal(t, []string{"card", "card--white"}, n.Classes())

	body := n.Child(0)
	require.Equal(t, []string{"team-card"}, body.Classes())
	require.Equal(t, []string{"div", "div", "p"}, childTags(body))

	name, ok := node.Find(n, "team-card__name")
	require.True(t, ok)
	require.Equal(t, "John Smith", node.TextContent(name))
}

func TestContactUsSectionOrder(t *testing.T) {
	t.Parallel()

	n := build(t, variant.KindContactUs, args.Record{"contact_type": "get-quote"})
	require.Equal(t, []string{"contact-us"}, n.Classes())
	require.Equal(t, 2, n.Len(), "illustration shown by default")

	form := n.Child(0)
	require.Equal(t, "form", form.Tag())
	require.True(t, form.Child(0).HasClass("contact-us__radio-group"))
	require.True(t, form.Child(1).HasClass("contact-us__fields"))
	submit := form.Child(form.Len() - 1)
	require.True(t, submit.HasClass("contact-us__submit"))
	typ, _ := submit.Attr("type")
	require.Equal(t, "submit", typ)

	radios := form.Child(0)
	require.Equal(t, 2, radios.Len())
	_, sayHiChecked := radios.Child(0).Child(0).Attr("checked")
	_, quoteChecked := radios.Child(1).Child(0).Attr("checked")
	require.False(t, sayHiChecked)
	require.True(t, quoteChecked)

	fields := form.Child(1)
	require.Equal(t, 3, fields.Len())
	email := fields.Child(1).Child(1)
	typ, _ = email.Attr("type")
	require.Equal(t, "email", typ)
	_, required := email.Attr("required")
	require.True(t, required)
	require.Equal(t, "textarea", fields.Child(2).Child(1).Tag())
}

func TestContactUsIllustration(t *testing.T) {
	t.Parallel()

	without := build(t, variant.KindContactUs, args.Record{"contact_type": "say-hi", "show_illustration": false})
	require.Equal(t, 1, without.Len())

	with := build(t, variant.KindContactUs, args.Record{"contact_type": "say-hi", "show_illustration": true})
	lines, ok := node.Find(with, "contact-us__lines")
	require.True(t, ok)
	svg := lines.Child(0)
	require.Equal(t, 36, svg.Len())

	first := svg.Child(0)
	x1, _ := first.Attr("x1")
	y1, _ := first.Attr("y1")
	x2, _ := first.Attr("x2")
	require.Equal(t, "200", x1)
	require.Equal(t, "150", y1)
	require.Equal(t, "300", x2)

	dark, ok := node.Find(with, "contact-us__star--dark")
	require.True(t, ok)
	width, _ := dark.Child(0).Attr("width")
	require.Equal(t, "120", width)
	fill, _ := dark.Child(0).Child(0).Attr("fill")
	require.Equal(t, "#191A23", fill)

	green, ok := node.Find(with, "contact-us__star--green")
	require.True(t, ok)
	width, _ = green.Child(0).Attr("width")
	require.Equal(t, "80", width)
}

func TestContactUsRejectsUnknownContactType(t *testing.T) {
	t.Parallel()

	_, err := Build(variant.KindContactUs, args.Record{"contact_type": "complain"})
	var validationErr *positivuserrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "contact_type", validationErr.Field)
}

func TestFooter(t *testing.T) {
	t.Parallel()

	n := build(t, variant.KindFooter, args.Record{
		"email":          "info@positivus.com",
		"phone":          "555-567-8901",
		"address":        "1234 Main St\nMoonstone City, Stardust State 12345",
		"copyright_year": "2023",
	})
	require.Equal(t, "footer", n.Tag())
	require.Equal(t, 3, n.Len())
	require.True(t, n.Child(1).HasClass("footer__divider"))

	logo, ok := node.Find(n, "footer__logo-image")
	require.True(t, ok)
	require.Equal(t, "logo-white", logo.Asset())
	alt, _ := logo.Attr("alt")
	require.Equal(t, "Positivus", alt)

	nav, ok := node.Find(n, "footer__nav")
	require.True(t, ok)
	require.Equal(t, 5, nav.Len())
	href, _ := nav.Child(2).Attr("href")
	require.Equal(t, "/use-cases", href)

	social, ok := node.Find(n, "footer__social")
	require.True(t, ok)
	require.Equal(t, "icon-facebook", social.Child(1).Child(0).Asset())

	list, ok := node.Find(n, "footer__contact-list")
	require.True(t, ok)
	address := list.Child(2)
	require.Equal(t, []string{"", "br", ""}, childTags(address))
	require.Equal(t, "Address: 1234 Main StMoonstone City, Stardust State 12345", node.TextContent(address))

	copyright, ok := node.Find(n, "footer__copyright")
	require.True(t, ok)
	require.Equal(t, "© 2023 Positivus. All Rights Reserved.", node.TextContent(copyright))
}

func TestHeadingDescription(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		record args.Record
		want   int
	}{
		{name: "with description", record: args.Record{"title": "Services", "description": "We help"}, want: 2},
		{name: "hidden description", record: args.Record{"title": "Services", "description": "We help", "show_description": false}, want: 1},
		{name: "empty description", record: args.Record{"title": "Our Working Process"}, want: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			n := build(t, variant.KindHeading, tc.record)
			require.Equal(t, tc.want, n.Len())
		})
	}
}

func TestIcon(t *testing.T) {
	t.Parallel()

	n := build(t, variant.KindIcon, args.Record{"variant": "minus"})
	require.Equal(t, []string{"icon", "icon--minus"}, n.Classes())
	label, _ := n.Attr("aria-label")
	require.Equal(t, "折りたたむ", label)

	image := n.Child(0)
	require.Equal(t, "icon-minus", image.Asset())
	width, _ := image.Attr("width")
	require.Equal(t, "58", width)

	small := build(t, variant.KindIcon, args.Record{"variant": "plus", "size": 36})
	height, _ := small.Child(0).Attr("height")
	require.Equal(t, "36", height)

	whole := build(t, variant.KindIcon, args.Record{"variant": "plus", "size": 48.0})
	width, _ = whole.Child(0).Attr("width")
	require.Equal(t, "48", width)

	for _, size := range []any{200, 24.7} {
		_, err := Build(variant.KindIcon, args.Record{"variant": "plus", "size": size})
		var validationErr *positivuserrors.ValidationError
		require.ErrorAs(t, err, &validationErr, "%v", size)
		require.Equal(t, "size", validationErr.Field)
	}
}

func TestLogo(t *testing.T) {
	t.Parallel()

	n := build(t, variant.KindLogo, args.Record{})
	require.Equal(t, []string{"logo", "logo--default"}, n.Classes())
	require.Equal(t, "logo-black", n.Child(0).Asset())

	light := build(t, variant.KindLogo, args.Record{"variant": "light"})
	require.Equal(t, "logo-white", light.Child(0).Asset())
	href, _ := light.Attr("href")
	require.Equal(t, "/", href)
}

func TestSchemas(t *testing.T) {
	t.Parallel()

	require.Len(t, Buildable(), 10)
	schema, ok := Schema(variant.KindInput)
	require.True(t, ok)
	field, ok := schema.Field("placeholder")
	require.True(t, ok)
	require.False(t, field.Required)

	_, ok = Schema(variant.KindLabel)
	require.False(t, ok)
}
