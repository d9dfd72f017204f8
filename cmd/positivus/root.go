package main

import (
	"github.com/spf13/cobra"
)

const defaultConfigFile = "positivus.yaml"

type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "positivus",
		Short:         "Positivus browses and renders the design-system component catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// If no subcommand is provided, launch the browser
			if len(args) == 0 {
				return runBrowse(cmd, flags)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Settings file (defaults to ./positivus.yaml when present)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newVariantsCmd())
	cmd.AddCommand(newResolveCmd())
	cmd.AddCommand(newDescribeCmd())
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newCheckCmd(flags))
	cmd.AddCommand(newBrowseCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
