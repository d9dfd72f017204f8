// Package gallery arranges built components side by side for review.
package gallery

import (
	"fmt"

	"github.com/alexisbeaulieu97/positivus/internal/args"
	"github.com/alexisbeaulieu97/positivus/internal/ui/components"
	"github.com/alexisbeaulieu97/positivus/internal/ui/node"
	"github.com/alexisbeaulieu97/positivus/internal/ui/variant"
	positivuserrors "github.com/alexisbeaulieu97/positivus/pkg/errors"
)

// Direction is the main axis along which entries are laid out.
type Direction string

const (
	DirectionRow    Direction = "row"
	DirectionColumn Direction = "column"
)

// Entry is one component to build and place in the gallery.
type Entry struct {
	Kind    variant.Kind
	Args    args.Record
	Caption string
}

// Spec describes a gallery.
type Spec struct {
	Label     string
	Direction Direction
	// Background names the surface tone the gallery sits on, e.g. "dark".
	Background string
	// Element overrides the container tag, "div" when empty.
	Element string
	Entries []Entry
}

// Compose builds every entry and arranges the results in input order. The
// first failing entry aborts the whole composition.
func Compose(spec Spec) (node.Node, error) {
	children := make([]node.Node, 0, len(spec.Entries))
	for i, entry := range spec.Entries {
		built, err := components.Build(entry.Kind, entry.Args)
		if err != nil {
			return node.Node{}, positivuserrors.NewCompositionError(string(entry.Kind), variantOf(entry), i, err)
		}
		if entry.Caption != "" {
			built = node.Element("div",
				built,
				node.Element("span", node.Text(entry.Caption)).WithClass("gallery__caption"),
			).WithClass("gallery__item")
		}
		children = append(children, built)
	}

	return container(spec, children), nil
}

// ComposeGroups composes each group separately and places the groups, each
// with its own label, inside an outer gallery described by outer. Entries of
// outer are ignored.
func ComposeGroups(outer Spec, groups ...Spec) (node.Node, error) {
	children := make([]node.Node, 0, len(groups))
	for i, group := range groups {
		built, err := Compose(group)
		if err != nil {
			return node.Node{}, fmt.Errorf("group %d: %w", i, err)
		}
		children = append(children, built.WithClass("gallery--group"))
	}
	return container(outer, children), nil
}

func container(spec Spec, children []node.Node) node.Node {
	tag := spec.Element
	if tag == "" {
		tag = "div"
	}
	direction := spec.Direction
	if direction == "" {
		direction = DirectionRow
	}

	out := node.Element(tag, children...).WithClass("gallery", "gallery--"+string(direction))
	if spec.Background != "" {
		out = out.WithClass("gallery--bg-" + spec.Background)
	}
	if spec.Label != "" {
		out = out.Prepend(node.Element("h4", node.Text(spec.Label)).WithClass("gallery__label"))
	}
	return out
}

func variantOf(entry Entry) string {
	if raw, ok := entry.Args["variant"]; ok {
		switch v := raw.(type) {
		case string:
			return v
		case variant.Variant:
			return string(v)
		}
	}
	return ""
}
