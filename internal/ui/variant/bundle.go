package variant

import (
	"fmt"
	"slices"
)

// ColorRole names the text color a variant calls for.
type ColorRole string

const (
	RoleDark  ColorRole = "dark"
	RoleWhite ColorRole = "white"
	RoleGreen ColorRole = "green"
	RoleGrey  ColorRole = "grey"
)

// Order is the structural order of a component's label and its decoration.
type Order int

const (
	OrderUnset Order = iota
	OrderDecorationFirst
	OrderLabelFirst
	OrderLabelOnly
)

func (o Order) String() string {
	switch o {
	case OrderDecorationFirst:
		return "decoration-first"
	case OrderLabelFirst:
		return "label-first"
	case OrderLabelOnly:
		return "label-only"
	default:
		return "unset"
	}
}

// MarshalText encodes the order by name.
func (o Order) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Bundle is everything a factory needs to render one variant.
type Bundle struct {
	Asset     string    `json:"asset,omitempty"`
	Alt       string    `json:"alt,omitempty"`
	ColorRole ColorRole `json:"color_role"`
	Order     Order     `json:"order"`
	Classes   []string  `json:"classes"`
}

// Clone returns a bundle that shares no storage with b.
func (b Bundle) Clone() Bundle {
	b.Classes = slices.Clone(b.Classes)
	return b
}

// LabelFirst reports whether the label precedes the decoration.
func (b Bundle) LabelFirst() bool {
	return b.Order == OrderLabelFirst
}

// validate checks that every field the kind relies on is populated.
func (b Bundle) validate(decorated bool) error {
	if b.ColorRole == "" {
		return fmt.Errorf("color role is unresolved")
	}
	if b.Order == OrderUnset {
		return fmt.Errorf("order is unresolved")
	}
	if decorated && b.Asset == "" {
		return fmt.Errorf("asset is unresolved")
	}
	return nil
}

// ToneClass maps a color role onto a BEM modifier of block. Dark text is the
// default tone and yields no modifier.
func ToneClass(block string, role ColorRole) string {
	if role == "" || role == RoleDark {
		return ""
	}
	return block + "--" + string(role)
}

// merge combines partial bundles produced by independent axes. A scalar field
// written by more than one part is a conflict; class tokens are concatenated
// in part order.
func merge(parts ...Bundle) (Bundle, error) {
	var out Bundle
	for i, part := range parts {
		if part.Asset != "" {
			if out.Asset != "" {
				return Bundle{}, fmt.Errorf("part %d: asset already set", i)
			}
			out.Asset = part.Asset
		}
		if part.Alt != "" {
			if out.Alt != "" {
				return Bundle{}, fmt.Errorf("part %d: alt already set", i)
			}
			out.Alt = part.Alt
		}
		if part.ColorRole != "" {
			if out.ColorRole != "" {
				return Bundle{}, fmt.Errorf("part %d: color role already set", i)
			}
			out.ColorRole = part.ColorRole
		}
		if part.Order != OrderUnset {
			if out.Order != OrderUnset {
				return Bundle{}, fmt.Errorf("part %d: order already set", i)
			}
			out.Order = part.Order
		}
		out.Classes = append(out.Classes, part.Classes...)
	}
	return out, nil
}
