package browser

// Format selects how the preview pane shows a story.
type Format int

const (
	FormatOutline Format = iota
	FormatHTML
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatHTML:
		return "html"
	case FormatJSON:
		return "json"
	default:
		return "outline"
	}
}

func (f Format) next() Format {
	return (f + 1) % 3
}

type pane int

const (
	paneList pane = iota
	panePreview
)

// PreviewMsg carries a rendered preview for one story and format.
type PreviewMsg struct {
	StoryID string
	Format  Format
	Content string
	Err     error
}
