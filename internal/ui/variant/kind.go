// Package variant holds the resolution tables that map a component kind and
// one of its variants to the visual bundle a factory needs.
//
// Tables are registered once at package initialisation and are read-only
// afterwards, so Resolve is safe for concurrent use.
package variant

// Kind identifies one of the catalog's component kinds.
type Kind string

const (
	KindButton    Kind = "button"
	KindCard      Kind = "card"
	KindTeamCard  Kind = "team-card"
	KindLink      Kind = "link"
	KindInput     Kind = "input"
	KindContactUs Kind = "contact-us"
	KindFooter    Kind = "footer"
	KindHeading   Kind = "heading"
	KindIcon      Kind = "icon"
	KindLogo      Kind = "logo"

	// KindLabel is the heading chip embedded in service cards.
	KindLabel Kind = "label"
)

var allKinds = []Kind{
	KindButton,
	KindCard,
	KindTeamCard,
	KindLink,
	KindInput,
	KindContactUs,
	KindFooter,
	KindHeading,
	KindIcon,
	KindLogo,
	KindLabel,
}

// AllKinds returns every component kind in catalog order.
func AllKinds() []Kind {
	return append([]Kind(nil), allKinds...)
}

// ParseKind converts a raw tag into a Kind.
func ParseKind(raw string) (Kind, bool) {
	for _, k := range allKinds {
		if string(k) == raw {
			return k, true
		}
	}
	return "", false
}

func (k Kind) String() string {
	return string(k)
}

// Variant is a per-kind visual variant tag.
type Variant string

func (v Variant) String() string {
	return string(v)
}

const (
	ButtonPrimary   Variant = "primary"
	ButtonSecondary Variant = "secondary"
	ButtonGreen     Variant = "green"

	CardGrey  Variant = "grey"
	CardGreen Variant = "green"
	CardDark  Variant = "dark"
	CardWhite Variant = "white"

	LabelGreen Variant = "green"
	LabelWhite Variant = "white"

	LinkWhite       Variant = "white"
	LinkWhite2      Variant = "white2"
	LinkBlack       Variant = "black"
	LinkBlack2      Variant = "black2"
	LinkGreen       Variant = "green"
	LinkGreen2      Variant = "green2"
	LinkSimpleGreen Variant = "simple-green"
	LinkSimpleWhite Variant = "simple-white"
	LinkSimpleBlack Variant = "simple-black"

	InputDefault Variant = "default"
	InputDark    Variant = "dark"

	IconPlus  Variant = "plus"
	IconMinus Variant = "minus"

	LogoDefault Variant = "default"
	LogoLight   Variant = "light"
)
