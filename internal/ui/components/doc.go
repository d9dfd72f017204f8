// Package components builds the markup trees of the Positivus component
// catalog.
//
// # Overview
//
// Every component kind is a factory: an argument schema plus a build function
// that turns bound values into a node.Node. Factories never inspect a variant
// tag themselves. All variant-dependent decisions (class modifiers, assets,
// label/decoration order, tone) come from the bundle resolved by the variant
// package, so adding a variant is a table change only.
//
//	tree, err := components.Build(variant.KindLink, args.Record{
//		"label":   "Learn more",
//		"variant": "simple-green",
//	})
//
// # Errors
//
// Build fails with *errors.MissingFieldError when a required argument is
// absent, *errors.InvalidVariantError for undeclared variants or unknown
// kinds, and *errors.ValidationError for values of the wrong type or outside
// a field's rules.
//
// # Composition
//
// Composite kinds build their parts through the same factories: contact-us
// builds its fields with the input factory, and the footer and cards resolve
// their embedded logo, label and link tones from the shared tables.
//
// Builds are pure. The same kind and arguments always produce structurally
// equal trees and no call retains or mutates its inputs.
package components
