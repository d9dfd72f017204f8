package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/positivus/internal/render/html"
	"github.com/alexisbeaulieu97/positivus/internal/tui/browser"
)

func newBrowseCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Launch the interactive story browser",
		Long:  `Launch the interactive TUI to page through stories and preview them as an outline, HTML or JSON.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, rootFlags)
		},
	}

	return cmd
}

func runBrowse(cmd *cobra.Command, rootFlags *rootFlags) error {
	if !isTerminal(cmd.OutOrStdout()) {
		return newCommandError("browse", "starting the browser", fmt.Errorf("output is not a terminal"), "Run 'positivus list' or 'positivus render' instead.")
	}

	app, err := loadApp(cmd, rootFlags, "browse")
	if err != nil {
		return err
	}

	app.Logger.WithFields(map[string]any{"stories": app.Catalog.Len()}).Debug("launching browser")

	model := browser.NewModel(app.Catalog.List(), browser.DefaultPreviewer(html.NewPathResolver(app.Settings.Assets)))
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run browser: %w", err)
	}

	return nil
}
