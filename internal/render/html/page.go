package html

import (
	"fmt"
	"io"

	"github.com/beevik/etree"

	"github.com/alexisbeaulieu97/positivus/internal/config"
	"github.com/alexisbeaulieu97/positivus/internal/stories"
	"github.com/alexisbeaulieu97/positivus/internal/ui/node"
)

const defaultLayout = "centered"

// PageFile is the file name a story page is written to.
func PageFile(s stories.Story) string {
	return s.ID + ".html"
}

// Page writes a complete document previewing one built story.
func Page(w io.Writer, s stories.Story, built node.Node, settings config.Settings) error {
	doc, body := pageSkeleton(s.Title+" / "+s.Name, settings)

	background := s.Background
	if background == "" {
		background = settings.DefaultBackground
	}
	layout := s.Layout
	if layout == "" {
		layout = defaultLayout
	}

	body.CreateAttr("class", "story story--"+layout)
	body.CreateAttr("data-story-id", s.ID)
	body.CreateAttr("style", fmt.Sprintf("background-color: %s", settings.BackgroundColor(background)))

	root := body.CreateElement("main")
	root.CreateAttr("class", "story__canvas")
	root.AddChild(Convert(built, NewPathResolver(settings.Assets)))

	finish(doc, 2)
	_, err := doc.WriteTo(w)
	return err
}

// Index writes a page linking every story page, grouped by title.
func Index(w io.Writer, list []stories.Story, settings config.Settings) error {
	doc, body := pageSkeleton("Positivus", settings)
	body.CreateAttr("class", "index")

	var section *etree.Element
	title := ""
	for _, s := range list {
		if section == nil || s.Title != title {
			title = s.Title
			section = body.CreateElement("section")
			section.CreateAttr("class", "index__group")
			heading := section.CreateElement("h2")
			heading.SetText(s.Title)
			section = section.CreateElement("ul")
		}
		item := section.CreateElement("li").CreateElement("a")
		item.CreateAttr("href", PageFile(s))
		item.SetText(s.Name)
	}

	finish(doc, 2)
	_, err := doc.WriteTo(w)
	return err
}

func pageSkeleton(title string, settings config.Settings) (*etree.Document, *etree.Element) {
	doc := newDocument()
	doc.CreateDirective("DOCTYPE html")

	htmlElem := doc.CreateElement("html")
	htmlElem.CreateAttr("lang", "ja")

	head := htmlElem.CreateElement("head")
	meta := head.CreateElement("meta")
	meta.CreateAttr("charset", "utf-8")

	titleElem := head.CreateElement("title")
	titleElem.SetText(title)

	if settings.Stylesheet != "" {
		link := head.CreateElement("link")
		link.CreateAttr("rel", "stylesheet")
		link.CreateAttr("href", settings.Stylesheet)
	}

	return doc, htmlElem.CreateElement("body")
}
