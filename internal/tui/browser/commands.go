package browser

import (
	tea "github.com/charmbracelet/bubbletea"
	json "github.com/goccy/go-json"

	"github.com/alexisbeaulieu97/positivus/internal/render/html"
	"github.com/alexisbeaulieu97/positivus/internal/render/outline"
	"github.com/alexisbeaulieu97/positivus/internal/stories"
)

// Previewer renders a story for the preview pane.
type Previewer func(s stories.Story, format Format) (string, error)

// DefaultPreviewer builds the story and renders it with the matching
// renderer.
func DefaultPreviewer(resolver html.AssetResolver) Previewer {
	return func(s stories.Story, format Format) (string, error) {
		built, err := stories.Build(s)
		if err != nil {
			return "", err
		}

		switch format {
		case FormatHTML:
			return html.FragmentString(built, html.Options{Indent: 2, Resolver: resolver})
		case FormatJSON:
			data, err := json.MarshalIndent(built, "", "  ")
			if err != nil {
				return "", err
			}
			return string(data), nil
		default:
			return outline.Render(built), nil
		}
	}
}

// previewCmd renders s off the update loop.
func previewCmd(render Previewer, s stories.Story, format Format) tea.Cmd {
	return func() tea.Msg {
		content, err := render(s, format)
		return PreviewMsg{StoryID: s.ID, Format: format, Content: content, Err: err}
	}
}
