package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/positivus/internal/args"
	"github.com/alexisbeaulieu97/positivus/internal/render/outline"
	"github.com/alexisbeaulieu97/positivus/internal/ui/components"
	"github.com/alexisbeaulieu97/positivus/internal/ui/variant"
)

func newVariantsCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "variants [kind]",
		Short: "Show the variant resolution tables",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var kinds []variant.Kind
			if len(args) == 1 {
				kind, err := parseKindArg("list variants", args[0])
				if err != nil {
					return err
				}
				if !variant.HasVariants(kind) {
					return newCommandError("list variants", fmt.Sprintf("reading table for %q", kind), fmt.Errorf("kind %s has no variants", kind), "Run 'positivus variants' to see every kind with a table.")
				}
				kinds = append(kinds, kind)
			}

			rows, err := outline.VariantRows(kinds...)
			if err != nil {
				return newCommandError("list variants", "resolving variants", err, "Run 'positivus check' for details.")
			}

			if jsonOutput {
				return renderVariantsJSON(cmd, rows)
			}
			fmt.Fprintln(cmd.OutOrStdout(), outline.VariantTable(rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func newResolveCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "resolve <kind> <variant>",
		Short: "Resolve one variant to its presentation bundle",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKindArg("resolve", args[0])
			if err != nil {
				return err
			}

			v := variant.Variant(args[1])
			bundle, err := variant.Resolve(kind, v)
			if err != nil {
				return newCommandError("resolve", fmt.Sprintf("resolving %s/%s", kind, v), err, "Use one of: "+joinVariants(kind)+".")
			}

			rows := []outline.VariantRow{{Kind: kind, Variant: v, Bundle: bundle}}
			if jsonOutput {
				return renderVariantsJSON(cmd, rows)
			}
			fmt.Fprintln(cmd.OutOrStdout(), outline.VariantTable(rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func newDescribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe <kind>",
		Short: "Show the arguments a component kind accepts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKindArg("describe", args[0])
			if err != nil {
				return err
			}
			schema, ok := components.Schema(kind)
			if !ok {
				return newCommandError("describe", fmt.Sprintf("reading schema for %q", kind), fmt.Errorf("kind %s is not buildable", kind), "Run 'positivus describe' with a component kind.")
			}
			return renderSchema(cmd, schema)
		},
	}

	return cmd
}

func renderSchema(cmd *cobra.Command, schema args.Schema) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "FIELD\tTYPE\tREQUIRED\tDEFAULT\tRULES")

	for _, f := range schema.Fields {
		required := "no"
		if f.Required {
			required = "yes"
		}
		def := "-"
		if f.Default != nil {
			def = fmt.Sprintf("%v", f.Default)
		}
		rules := f.Rules
		if f.Type == args.TypeVariant {
			rules = strings.TrimPrefix(rules+" oneof="+joinVariants(f.Of), " ")
		}

		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n", f.Name, f.Type, required, def, valueOrFallback(rules, "-"))
	}

	return writer.Flush()
}

type variantJSON struct {
	Kind    variant.Kind    `json:"kind"`
	Variant variant.Variant `json:"variant"`
	Bundle  variant.Bundle  `json:"bundle"`
}

func renderVariantsJSON(cmd *cobra.Command, rows []outline.VariantRow) error {
	out := make([]variantJSON, len(rows))
	for i, r := range rows {
		out[i] = variantJSON{Kind: r.Kind, Variant: r.Variant, Bundle: r.Bundle}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func parseKindArg(operation, raw string) (variant.Kind, error) {
	kind, ok := variant.ParseKind(raw)
	if !ok {
		names := make([]string, 0, len(variant.AllKinds()))
		for _, k := range variant.AllKinds() {
			names = append(names, string(k))
		}
		return "", newCommandError(operation, fmt.Sprintf("parsing kind %q", raw), fmt.Errorf("unknown kind %q", raw), "Use one of: "+strings.Join(names, ", ")+".")
	}
	return kind, nil
}

func joinVariants(kind variant.Kind) string {
	vs := variant.Variants(kind)
	names := make([]string, len(vs))
	for i, v := range vs {
		names[i] = string(v)
	}
	return strings.Join(names, " ")
}
