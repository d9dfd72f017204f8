package variant

import (
	"fmt"

	positivuserrors "github.com/alexisbeaulieu97/positivus/pkg/errors"
)

// resolver computes the bundle for a declared variant.
type resolver func(Variant) (Bundle, error)

type table struct {
	variants  []Variant
	decorated bool
	resolve   resolver
}

func (t table) declares(v Variant) bool {
	for _, declared := range t.variants {
		if declared == v {
			return true
		}
	}
	return false
}

// registry maps kinds to their resolution tables.
type registry struct {
	tables map[Kind]table
}

func newRegistry() *registry {
	r := &registry{tables: make(map[Kind]table)}
	registerButtonVariants(r)
	registerCardVariants(r)
	registerLabelVariants(r)
	registerLinkVariants(r)
	registerInputVariants(r)
	registerIconVariants(r)
	registerLogoVariants(r)
	return r
}

// flat registers a kind whose variants each map to one fixed bundle.
func (r *registry) flat(kind Kind, decorated bool, entries ...flatEntry) {
	variants := make([]Variant, 0, len(entries))
	bundles := make(map[Variant]Bundle, len(entries))
	for _, entry := range entries {
		variants = append(variants, entry.variant)
		bundles[entry.variant] = entry.bundle
	}
	r.register(kind, decorated, variants, func(v Variant) (Bundle, error) {
		return bundles[v].Clone(), nil
	})
}

func (r *registry) register(kind Kind, decorated bool, variants []Variant, fn resolver) {
	r.tables[kind] = table{variants: variants, decorated: decorated, resolve: fn}
}

func (r *registry) resolve(kind Kind, v Variant) (Bundle, error) {
	t, ok := r.tables[kind]
	if !ok {
		if _, known := ParseKind(string(kind)); known {
			return Bundle{}, positivuserrors.NewInvalidVariantError(string(kind), string(v))
		}
		return Bundle{}, positivuserrors.NewInvalidVariantError(string(kind), "")
	}
	if !t.declares(v) {
		return Bundle{}, positivuserrors.NewInvalidVariantError(string(kind), string(v))
	}
	return t.resolve(v)
}

type flatEntry struct {
	variant Variant
	bundle  Bundle
}

var defaultRegistry = newRegistry()

// Resolve returns the visual bundle for a kind and variant. Variants not
// declared for the kind fail with an InvalidVariantError.
func Resolve(kind Kind, v Variant) (Bundle, error) {
	return defaultRegistry.resolve(kind, v)
}

// Variants lists the declared variants of kind in declaration order. Kinds
// without visual variants return nil.
func Variants(kind Kind) []Variant {
	t, ok := defaultRegistry.tables[kind]
	if !ok {
		return nil
	}
	return append([]Variant(nil), t.variants...)
}

// Kinds lists the kinds that carry a resolution table, in catalog order.
func Kinds() []Kind {
	var kinds []Kind
	for _, k := range allKinds {
		if _, ok := defaultRegistry.tables[k]; ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// HasVariants reports whether kind carries a resolution table.
func HasVariants(kind Kind) bool {
	_, ok := defaultRegistry.tables[kind]
	return ok
}

// Check resolves every declared pair and reports the first bundle that
// leaves a field unresolved.
func Check() error {
	for _, kind := range Kinds() {
		t := defaultRegistry.tables[kind]
		for _, v := range t.variants {
			bundle, err := t.resolve(v)
			if err != nil {
				return fmt.Errorf("%s/%s: %w", kind, v, err)
			}
			if err := bundle.validate(t.decorated); err != nil {
				return fmt.Errorf("%s/%s: %w", kind, v, err)
			}
		}
	}
	return nil
}
