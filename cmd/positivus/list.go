package main

import (
	"fmt"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/positivus/internal/stories"
)

type listOptions struct {
	jsonOutput bool
	title      string
}

func newListCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog stories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().StringVar(&opts.title, "title", "", "Only list stories with this title")

	return cmd
}

func runList(cmd *cobra.Command, rootFlags *rootFlags, opts *listOptions) error {
	app, err := loadApp(cmd, rootFlags, "list")
	if err != nil {
		return err
	}

	list := app.Catalog.List()
	if opts.title != "" {
		filtered := list[:0]
		for _, s := range list {
			if s.Title == opts.title {
				filtered = append(filtered, s)
			}
		}
		list = filtered
	}

	if len(list) == 0 && !opts.jsonOutput {
		fmt.Fprintln(cmd.OutOrStdout(), "No stories found.")
		return nil
	}

	if opts.jsonOutput {
		return renderListJSON(cmd, list)
	}
	return renderListTable(cmd, list)
}

func storyKind(s stories.Story) string {
	if s.IsGallery() {
		return "gallery"
	}
	return string(s.Kind)
}

func renderListTable(cmd *cobra.Command, list []stories.Story) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "ID\tTITLE\tNAME\tKIND\tBACKGROUND")

	for _, s := range list {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
			s.ID,
			s.Title,
			s.Name,
			storyKind(s),
			valueOrFallback(s.Background, "-"),
		)
	}

	return writer.Flush()
}

type listJSONStory struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Kind        string `json:"kind"`
	Background  string `json:"background,omitempty"`
	Layout      string `json:"layout,omitempty"`
	Design      string `json:"design,omitempty"`
}

type listJSONPayload struct {
	Version string          `json:"version"`
	Count   int             `json:"count"`
	Stories []listJSONStory `json:"stories"`
}

func renderListJSON(cmd *cobra.Command, list []stories.Story) error {
	payload := listJSONPayload{
		Version: "1.0",
		Count:   len(list),
		Stories: make([]listJSONStory, len(list)),
	}

	for i, s := range list {
		payload.Stories[i] = listJSONStory{
			ID:          s.ID,
			Title:       s.Title,
			Name:        s.Name,
			Description: s.Description,
			Kind:        storyKind(s),
			Background:  s.Background,
			Layout:      s.Layout,
			Design:      s.Design,
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func valueOrFallback(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
