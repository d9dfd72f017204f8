package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/positivus/internal/args"
	"github.com/alexisbeaulieu97/positivus/internal/config"
	"github.com/alexisbeaulieu97/positivus/internal/render/html"
	"github.com/alexisbeaulieu97/positivus/internal/render/outline"
	"github.com/alexisbeaulieu97/positivus/internal/stories"
	"github.com/alexisbeaulieu97/positivus/internal/ui/components"
	"github.com/alexisbeaulieu97/positivus/internal/ui/node"
)

const (
	formatHTML = "html"
	formatPage = "page"
	formatJSON = "json"
	formatTree = "tree"
)

type renderOptions struct {
	format string
	out    string
	all    bool
	kind   string
	set    []string
}

func newRenderCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [story-id]",
		Short: "Render a story, an ad-hoc component, or the whole catalog",
		Long: `Render one story by id, build a component directly with --kind and --set,
or write a page for every story plus an index with --all.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, rootFlags, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatHTML, "Output format: html, page, json or tree")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output file, or directory with --all")
	cmd.Flags().BoolVar(&opts.all, "all", false, "Write a page for every story and an index")
	cmd.Flags().StringVar(&opts.kind, "kind", "", "Build a component of this kind instead of a story")
	cmd.Flags().StringArrayVar(&opts.set, "set", nil, "Component argument as field=value (repeatable)")

	return cmd
}

func runRender(cmd *cobra.Command, rootFlags *rootFlags, opts *renderOptions, positional []string) error {
	switch opts.format {
	case formatHTML, formatPage, formatJSON, formatTree:
	default:
		return newCommandError("render", fmt.Sprintf("reading format %q", opts.format), fmt.Errorf("unsupported format"), "Use one of html, page, json or tree.")
	}

	app, err := loadApp(cmd, rootFlags, "render")
	if err != nil {
		return err
	}

	switch {
	case opts.all:
		if len(positional) > 0 || opts.kind != "" {
			return newCommandError("render", "combining --all", fmt.Errorf("--all renders every story"), "Drop the story id and --kind when using --all.")
		}
		return renderAll(cmd, app, opts.out)

	case opts.kind != "":
		if len(positional) > 0 {
			return newCommandError("render", "combining --kind", fmt.Errorf("--kind replaces the story id"), "Pass either a story id or --kind.")
		}
		kind, err := parseKindArg("render", opts.kind)
		if err != nil {
			return err
		}
		schema, _ := components.Schema(kind)
		record, err := parseSetFlags(schema, opts.set)
		if err != nil {
			return newCommandError("render", "parsing --set", err, "Write arguments as field=value, for example --set label=Go.")
		}
		built, err := components.Build(kind, record)
		if err != nil {
			return newCommandError("render", fmt.Sprintf("building %s", kind), err, fmt.Sprintf("Run 'positivus describe %s' to see its arguments.", kind))
		}
		story := stories.Story{ID: "adhoc--" + string(kind), Title: "Ad hoc", Name: string(kind), Kind: kind, Args: record}
		return writeRendered(cmd, app, story, built, opts)

	case len(positional) == 1:
		story, ok := app.Catalog.Lookup(positional[0])
		if !ok {
			return newCommandError("render", fmt.Sprintf("looking up story %q", positional[0]), fmt.Errorf("story not found"), "Run 'positivus list' to see story ids.")
		}
		built, err := stories.Build(story)
		if err != nil {
			app.Logger.WithStory(story.ID).Error(err, "story build failed")
			return newCommandError("render", fmt.Sprintf("building story %q", story.ID), err, "Run 'positivus check' to see every failing story.")
		}
		return writeRendered(cmd, app, story, built, opts)
	}

	return newCommandError("render", "choosing what to render", fmt.Errorf("no story id given"), "Pass a story id, --kind, or --all.")
}

func writeRendered(cmd *cobra.Command, app *AppContext, story stories.Story, built node.Node, opts *renderOptions) error {
	if opts.out == "" {
		if err := encode(cmd.OutOrStdout(), story, built, opts.format, app.Settings); err != nil {
			return newCommandError("render", fmt.Sprintf("writing %s output", opts.format), err, "Try another --format.")
		}
		return nil
	}

	err := writeFile(opts.out, func(w io.Writer) error {
		return encode(w, story, built, opts.format, app.Settings)
	})
	if err != nil {
		return newCommandError("render", fmt.Sprintf("writing %s output to %s", opts.format, opts.out), err, "Check that the directory exists and is writable.")
	}

	app.Logger.WithStory(story.ID).WithFields(map[string]any{"path": opts.out, "format": opts.format}).Info("story rendered")
	return nil
}

func encode(w io.Writer, story stories.Story, built node.Node, format string, settings config.Settings) error {
	switch format {
	case formatPage:
		return html.Page(w, story, built, settings)
	case formatJSON:
		data, err := json.MarshalIndent(built, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case formatTree:
		_, err := fmt.Fprintln(w, outline.Render(built))
		return err
	default:
		if err := html.Fragment(w, built, html.Options{Indent: 2, Resolver: html.NewPathResolver(settings.Assets)}); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w)
		return err
	}
}

// renderAll writes one page per story and an index into dir. Stories that
// fail to build are reported together after the rest have been written.
func renderAll(cmd *cobra.Command, app *AppContext, dir string) error {
	if dir == "" {
		dir = "site"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newCommandError("render", fmt.Sprintf("creating %s", dir), err, "Check that the parent directory is writable.")
	}

	var (
		failures error
		written  []stories.Story
	)
	for _, s := range app.Catalog.List() {
		built, err := stories.Build(s)
		if err != nil {
			app.Logger.WithStory(s.ID).Error(err, "story build failed")
			failures = multierr.Append(failures, err)
			continue
		}
		if err := writePage(filepath.Join(dir, html.PageFile(s)), s, built, app.Settings); err != nil {
			return newCommandError("render", fmt.Sprintf("writing page for %q", s.ID), err, "Check that the output directory is writable.")
		}
		written = append(written, s)
	}

	err := writeFile(filepath.Join(dir, "index.html"), func(w io.Writer) error {
		return html.Index(w, written, app.Settings)
	})
	if err != nil {
		return newCommandError("render", "writing index", err, "Check that the output directory is writable.")
	}

	app.Logger.WithFields(map[string]any{"dir": dir, "pages": len(written)}).Info("catalog rendered")
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d pages to %s\n", len(written), dir)

	if failures != nil {
		return newCommandError("render", fmt.Sprintf("building %d stories", len(multierr.Errors(failures))), failures, "Run 'positivus check' for details.")
	}
	return nil
}

func writePage(path string, s stories.Story, built node.Node, settings config.Settings) error {
	return writeFile(path, func(w io.Writer) error {
		return html.Page(w, s, built, settings)
	})
}

// writeFile creates path and hands it to write. A failed close is returned
// like a failed write.
func writeFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// parseSetFlags turns field=value pairs into a record. String fields keep
// the raw text; other values are read as YAML scalars.
func parseSetFlags(schema args.Schema, pairs []string) (args.Record, error) {
	record := args.Record{}
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid argument %q", pair)
		}
		if _, dup := record[name]; dup {
			return nil, fmt.Errorf("argument %q set twice", name)
		}
		if f, known := schema.Field(name); known && (f.Type == args.TypeString || f.Type == args.TypeVariant) {
			record[name] = raw
			continue
		}
		record[name] = scalar(raw)
	}
	return record, nil
}

func scalar(raw string) any {
	var value any
	if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
		return raw
	}
	switch value.(type) {
	case bool, int, float64, string:
		return value
	default:
		return raw
	}
}
