package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/alexisbeaulieu97/positivus/internal/ui/variant"
)

func newCheckCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Resolve every variant and build every story",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, rootFlags)
		},
	}

	return cmd
}

func runCheck(cmd *cobra.Command, rootFlags *rootFlags) error {
	app, err := loadApp(cmd, rootFlags, "check")
	if err != nil {
		return err
	}

	failures := multierr.Append(variant.Check(), app.Catalog.Check())
	errs := multierr.Errors(failures)

	out := cmd.OutOrStdout()
	unicode := isTerminal(out)
	for _, err := range errs {
		fmt.Fprintf(out, "%s %v\n", failMark(unicode), err)
	}

	if len(errs) > 0 {
		app.Logger.WithFields(map[string]any{"failures": len(errs)}).Warn("catalog check failed")
		return newCommandError("check", fmt.Sprintf("checking %d stories", app.Catalog.Len()), fmt.Errorf("%d failures", len(errs)), "Fix the stories listed above and run check again.")
	}

	pairs := 0
	for _, kind := range variant.Kinds() {
		pairs += len(variant.Variants(kind))
	}
	fmt.Fprintf(out, "%s %d variants resolve and %d stories build\n", okMark(unicode), pairs, app.Catalog.Len())
	return nil
}

func okMark(unicode bool) string {
	if unicode {
		return "✓"
	}
	return "[OK]"
}

func failMark(unicode bool) string {
	if unicode {
		return "✗"
	}
	return "[XX]"
}
