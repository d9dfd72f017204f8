package config

// Document is a story file: a set of component entries, each with its
// stories.
type Document struct {
	Version    string      `yaml:"version" validate:"required,semver"`
	Components []Component `yaml:"components" validate:"required,min=1,dive"`
}

// Component groups the stories of one catalog entry, e.g. "Components/Link".
type Component struct {
	Title       string  `yaml:"title" validate:"required,story_title"`
	Kind        string  `yaml:"kind,omitempty" validate:"omitempty,kind"`
	Description string  `yaml:"description,omitempty"`
	Design      string  `yaml:"design,omitempty" validate:"omitempty,url"`
	Layout      string  `yaml:"layout,omitempty" validate:"omitempty,oneof=centered padded fullscreen"`
	Stories     []Story `yaml:"stories" validate:"required,min=1,dive"`
}

// Story is a single rendering: either one component built from Args, or a
// gallery.
type Story struct {
	Name        string         `yaml:"name" validate:"required,max=100"`
	Description string         `yaml:"description,omitempty"`
	Background  string         `yaml:"background,omitempty" validate:"omitempty,oneof=white grey dark"`
	Kind        string         `yaml:"kind,omitempty" validate:"omitempty,kind"`
	Args        map[string]any `yaml:"args,omitempty"`
	Gallery     *Gallery       `yaml:"gallery,omitempty"`
}

// Gallery lists entries, or groups of entries, to compose side by side.
type Gallery struct {
	Label      string    `yaml:"label,omitempty"`
	Direction  string    `yaml:"direction,omitempty" validate:"omitempty,oneof=row column"`
	Background string    `yaml:"background,omitempty" validate:"omitempty,oneof=white grey dark"`
	Element    string    `yaml:"element,omitempty" validate:"omitempty,oneof=div form"`
	Entries    []Entry   `yaml:"entries,omitempty" validate:"omitempty,dive"`
	Groups     []Gallery `yaml:"groups,omitempty" validate:"omitempty,dive"`
}

// Entry is one gallery cell.
type Entry struct {
	Kind    string         `yaml:"kind" validate:"required,kind"`
	Args    map[string]any `yaml:"args,omitempty"`
	Caption string         `yaml:"caption,omitempty"`
}

// StoryKind returns the kind a story builds, falling back to the component's
// kind.
func (c Component) StoryKind(s Story) string {
	if s.Kind != "" {
		return s.Kind
	}
	return c.Kind
}
