// Package stories holds the story catalog: named renderings of components and
// galleries, loaded from story documents.
package stories

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/gosimple/slug"
	"github.com/maruel/natural"
	"go.uber.org/multierr"

	"github.com/alexisbeaulieu97/positivus/internal/args"
	"github.com/alexisbeaulieu97/positivus/internal/config"
	"github.com/alexisbeaulieu97/positivus/internal/logger"
	"github.com/alexisbeaulieu97/positivus/internal/ui/components"
	"github.com/alexisbeaulieu97/positivus/internal/ui/gallery"
	"github.com/alexisbeaulieu97/positivus/internal/ui/node"
	"github.com/alexisbeaulieu97/positivus/internal/ui/variant"
	positivuserrors "github.com/alexisbeaulieu97/positivus/pkg/errors"
)

//go:embed deck.yaml
var deck []byte

// DeckName is the name the built-in deck reports in errors.
const DeckName = "deck.yaml"

// Deck returns a copy of the built-in story document.
func Deck() []byte {
	return append([]byte(nil), deck...)
}

// Story is one catalog entry.
type Story struct {
	ID          string
	Title       string
	Name        string
	Description string
	Background  string
	Design      string
	Layout      string
	// Kind and Args are set for single-component stories.
	Kind variant.Kind
	Args args.Record
	// Gallery is set for gallery stories.
	Gallery *config.Gallery
}

// Section is the first segment of the title, e.g. "Components".
func (s Story) Section() string {
	section, _, _ := strings.Cut(s.Title, "/")
	return section
}

// IsGallery reports whether the story composes several components.
func (s Story) IsGallery() bool {
	return s.Gallery != nil
}

// Catalog is an ordered, immutable set of stories.
type Catalog struct {
	stories []Story
	byID    map[string]int
}

// NewID returns the id of the story name under title.
func NewID(title, name string) string {
	return slug.Make(title) + "--" + slug.Make(name)
}

// New builds a catalog from parsed documents. sectionOrder lists the title
// sections that sort first.
func New(log *logger.Logger, sectionOrder []string, docs ...*config.Document) (*Catalog, error) {
	var all []Story
	seen := make(map[string]string)

	for _, doc := range docs {
		if doc == nil {
			continue
		}
		for _, component := range doc.Components {
			for _, s := range component.Stories {
				story := fromConfig(component, s)
				if prev, exists := seen[story.ID]; exists {
					return nil, positivuserrors.NewValidationError("stories", fmt.Sprintf("duplicate story id %q (%s and %s/%s)", story.ID, prev, story.Title, story.Name), nil)
				}
				seen[story.ID] = story.Title + "/" + story.Name
				all = append(all, story)
			}
		}
	}

	sortStories(all, sectionOrder)

	byID := make(map[string]int, len(all))
	for i, s := range all {
		byID[s.ID] = i
	}

	log.WithFields(map[string]any{"stories": len(all), "documents": len(docs)}).Debug("story catalog loaded")

	return &Catalog{stories: all, byID: byID}, nil
}

// Default loads the built-in deck followed by any extra story files named in
// settings.
func Default(log *logger.Logger, settings config.Settings) (*Catalog, error) {
	docs := make([]*config.Document, 0, 1+len(settings.StoryFiles))

	doc, err := config.ParseStoriesBytes(DeckName, deck)
	if err != nil {
		return nil, err
	}
	docs = append(docs, doc)

	for _, path := range settings.StoryFiles {
		extra, err := config.ParseStories(path)
		if err != nil {
			return nil, err
		}
		log.WithFields(map[string]any{"path": path, "components": len(extra.Components)}).Debug("story file parsed")
		docs = append(docs, extra)
	}

	return New(log, settings.StoryOrder, docs...)
}

// List returns every story in catalog order.
func (c *Catalog) List() []Story {
	if c == nil {
		return nil
	}
	return append([]Story(nil), c.stories...)
}

// Len returns the number of stories.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.stories)
}

// Lookup finds a story by id.
func (c *Catalog) Lookup(id string) (Story, bool) {
	if c == nil {
		return Story{}, false
	}
	i, ok := c.byID[id]
	if !ok {
		return Story{}, false
	}
	return c.stories[i], true
}

// Titles returns the distinct titles in catalog order.
func (c *Catalog) Titles() []string {
	var titles []string
	for _, s := range c.List() {
		if len(titles) == 0 || titles[len(titles)-1] != s.Title {
			titles = append(titles, s.Title)
		}
	}
	return titles
}

// Build renders a story into a node tree. Failures carry the story id.
func Build(s Story) (node.Node, error) {
	var (
		out node.Node
		err error
	)

	switch {
	case s.Gallery != nil && len(s.Gallery.Groups) > 0:
		groups := make([]gallery.Spec, 0, len(s.Gallery.Groups))
		for _, g := range s.Gallery.Groups {
			groups = append(groups, gallerySpec(g))
		}
		out, err = gallery.ComposeGroups(gallerySpec(*s.Gallery), groups...)
	case s.Gallery != nil:
		out, err = gallery.Compose(gallerySpec(*s.Gallery))
	default:
		out, err = components.Build(s.Kind, s.Args)
	}

	if err != nil {
		return node.Node{}, positivuserrors.NewStoryError(s.ID, err)
	}
	return out, nil
}

// Check builds every story and reports all failures together.
func (c *Catalog) Check() error {
	var errs error
	for _, s := range c.List() {
		if _, err := Build(s); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

func fromConfig(component config.Component, s config.Story) Story {
	kind, _ := variant.ParseKind(component.StoryKind(s))
	story := Story{
		ID:          NewID(component.Title, s.Name),
		Title:       component.Title,
		Name:        s.Name,
		Description: s.Description,
		Background:  s.Background,
		Design:      component.Design,
		Layout:      component.Layout,
		Gallery:     s.Gallery,
	}
	if s.Gallery == nil {
		story.Kind = kind
		story.Args = args.Record(s.Args)
	}
	return story
}

func gallerySpec(g config.Gallery) gallery.Spec {
	spec := gallery.Spec{
		Label:      g.Label,
		Direction:  gallery.Direction(g.Direction),
		Background: g.Background,
		Element:    g.Element,
		Entries:    make([]gallery.Entry, 0, len(g.Entries)),
	}
	for _, e := range g.Entries {
		kind, _ := variant.ParseKind(e.Kind)
		spec.Entries = append(spec.Entries, gallery.Entry{Kind: kind, Args: args.Record(e.Args), Caption: e.Caption})
	}
	return spec
}

// sortStories orders by section rank, then title in natural order. Stories
// under one title keep their declared order.
func sortStories(all []Story, sectionOrder []string) {
	rank := make(map[string]int, len(sectionOrder))
	for i, section := range sectionOrder {
		if _, exists := rank[section]; !exists {
			rank[section] = i
		}
	}
	rankOf := func(s Story) int {
		if r, ok := rank[s.Section()]; ok {
			return r
		}
		return len(sectionOrder)
	}

	sort.SliceStable(all, func(i, j int) bool {
		ri, rj := rankOf(all[i]), rankOf(all[j])
		if ri != rj {
			return ri < rj
		}
		if all[i].Title != all[j].Title {
			return natural.Less(all[i].Title, all[j].Title)
		}
		return false
	})
}
