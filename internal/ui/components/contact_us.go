package components

import (
	"math"
	"strconv"

	"github.com/alexisbeaulieu97/positivus/internal/args"
	"github.com/alexisbeaulieu97/positivus/internal/ui/node"
	"github.com/alexisbeaulieu97/positivus/internal/ui/variant"
)

var contactUsSchema = args.Schema{
	Kind: variant.KindContactUs,
	Fields: []args.Field{
		{Name: "contact_type", Type: args.TypeString, Required: true, Rules: "oneof=say-hi get-quote"},
		{Name: "show_illustration", Type: args.TypeBool, Default: true},
	},
}

var contactOptions = []struct {
	value string
	label string
}{
	{value: "say-hi", label: "Say Hi"},
	{value: "get-quote", label: "Get a Quote"},
}

var contactFields = []args.Record{
	{"label": "Name", "placeholder": "Name", "type": "text"},
	{"label": "Email*", "placeholder": "Email", "type": "email", "required": true},
	{"label": "Message*", "placeholder": "Message", "type": "textarea", "required": true},
}

const (
	starPath      = "M50 0C50 27.6 27.6 50 0 50C27.6 50 50 72.4 50 100C50 72.4 72.4 50 100 50C72.4 50 50 27.6 50 0Z"
	darkStarFill  = "#191A23"
	greenStarFill = "#B9FF66"
	lineStroke    = "#191A23"

	rayCount    = 36
	rayCenter   = 150.0
	rayInner    = 50.0
	rayOuter    = 150.0
	raysBoxSize = "300"
)

// buildContactUs renders the contact form. The form sections are fixed: the
// contact type choice, the fields, then the submit control.
func buildContactUs(v args.Values) (node.Node, error) {
	radios := node.Element("div").WithClass("contact-us__radio-group")
	for _, option := range contactOptions {
		input := node.Element("input").
			WithAttr("type", "radio").
			WithAttr("name", "contact-type").
			WithAttr("value", option.value).
			WithClass("contact-us__radio-input")
		if option.value == v.String("contact_type") {
			input = input.WithAttr("checked", "")
		}
		radios = radios.Append(node.Element("label",
			input,
			node.Element("span", node.Text(option.label)).WithClass("contact-us__radio-text"),
		).WithClass("contact-us__radio"))
	}

	fields := node.Element("div").WithClass("contact-us__fields")
	for _, record := range contactFields {
		field, err := Build(variant.KindInput, record)
		if err != nil {
			return node.Node{}, err
		}
		fields = fields.Append(field)
	}

	submit := node.Element("button", node.Text("Send Message")).
		WithAttr("type", "submit").
		WithClass("contact-us__submit")

	form := node.Element("form", radios, fields, submit).WithClass("contact-us__form")
	container := node.Element("div", form).WithClass("contact-us")

	if v.Bool("show_illustration") {
		container = container.Append(contactIllustration())
	}
	return container, nil
}

func contactIllustration() node.Node {
	inner := node.Element("div",
		node.Element("div", rays()).WithClass("contact-us__lines"),
		node.Element("div", star(darkStarFill, 120)).WithClass("contact-us__star", "contact-us__star--dark"),
		node.Element("div", star(greenStarFill, 80)).WithClass("contact-us__star", "contact-us__star--green"),
	).WithClass("contact-us__illustration-inner")

	return node.Element("div", inner).WithClass("contact-us__illustration")
}

func rays() node.Node {
	svg := node.Element("svg").
		WithAttr("width", raysBoxSize).
		WithAttr("height", raysBoxSize).
		WithAttr("viewBox", "0 0 300 300").
		WithAttr("fill", "none")

	for i := 0; i < rayCount; i++ {
		angle := float64(i) / rayCount * 2 * math.Pi
		cos, sin := math.Cos(angle), math.Sin(angle)
		svg = svg.Append(node.Element("line").
			WithAttr("x1", formatCoord(rayCenter+rayInner*cos)).
			WithAttr("y1", formatCoord(rayCenter+rayInner*sin)).
			WithAttr("x2", formatCoord(rayCenter+rayOuter*cos)).
			WithAttr("y2", formatCoord(rayCenter+rayOuter*sin)).
			WithAttr("stroke", lineStroke).
			WithAttr("stroke-width", "1"))
	}
	return svg
}

func star(fill string, size int) node.Node {
	px := strconv.Itoa(size)
	return node.Element("svg",
		node.Element("path").WithAttr("d", starPath).WithAttr("fill", fill),
	).
		WithAttr("width", px).
		WithAttr("height", px).
		WithAttr("viewBox", "0 0 100 100").
		WithAttr("fill", "none")
}

func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
