// Package browser is the interactive story browser.
package browser

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/positivus/internal/stories"
)

const (
	defaultWidth  = 100
	defaultHeight = 30
	listWidth     = 38
	// chromeHeight is the rows taken by header, footer and borders.
	chromeHeight = 7
)

type previewKey struct {
	id     string
	format Format
}

// Model is the Bubbletea state of the story browser.
type Model struct {
	stories []stories.Story
	render  Previewer
	keys    keyMap

	cursor int
	offset int
	focus  pane
	format Format

	preview  viewport.Model
	previews map[previewKey]string
	failures map[previewKey]string
	pending  map[previewKey]bool

	showHelp bool
	quitting bool

	width  int
	height int
}

// NewModel returns a browser over list. render defaults to DefaultPreviewer
// with the default asset paths.
func NewModel(list []stories.Story, render Previewer) Model {
	if render == nil {
		render = DefaultPreviewer(nil)
	}

	m := Model{
		stories:  append([]stories.Story(nil), list...),
		render:   render,
		keys:     defaultKeyMap(),
		previews: make(map[previewKey]string),
		failures: make(map[previewKey]string),
		pending:  make(map[previewKey]bool),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	m.preview = viewport.New(m.previewWidth(), m.bodyHeight())
	return m
}

// Init requests the preview of the first story.
func (m Model) Init() tea.Cmd {
	if len(m.stories) == 0 {
		return nil
	}
	return previewCmd(m.render, m.stories[0], m.format)
}

// Selected returns the story under the cursor.
func (m Model) Selected() (stories.Story, bool) {
	if m.cursor < 0 || m.cursor >= len(m.stories) {
		return stories.Story{}, false
	}
	return m.stories[m.cursor], true
}

// Cursor returns the index of the selected story.
func (m Model) Cursor() int {
	return m.cursor
}

// Format returns the current preview format.
func (m Model) Format() Format {
	return m.format
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m Model) bodyHeight() int {
	h := m.height - chromeHeight
	if h < 3 {
		return 3
	}
	return h
}

func (m Model) previewWidth() int {
	w := m.width - listWidth - 4
	if w < 20 {
		return 20
	}
	return w
}

func (m *Model) moveCursor(delta int) {
	if len(m.stories) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = len(m.stories) - 1
	}
	if m.cursor >= len(m.stories) {
		m.cursor = 0
	}
	m.keepCursorVisible()
}

func (m *Model) setCursor(index int) {
	if index >= 0 && index < len(m.stories) {
		m.cursor = index
		m.keepCursorVisible()
	}
}

func (m *Model) keepCursorVisible() {
	visible := m.bodyHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
}

// requestPreview shows a cached preview or returns the command that renders
// it.
func (m *Model) requestPreview() tea.Cmd {
	s, ok := m.Selected()
	if !ok {
		return nil
	}
	k := previewKey{id: s.ID, format: m.format}
	m.syncPreview()
	if _, done := m.previews[k]; done {
		return nil
	}
	if _, failed := m.failures[k]; failed || m.pending[k] {
		return nil
	}
	m.pending[k] = true
	return previewCmd(m.render, s, m.format)
}

// syncPreview loads the viewport with whatever is known about the selection.
func (m *Model) syncPreview() {
	s, ok := m.Selected()
	if !ok {
		m.preview.SetContent("")
		return
	}
	k := previewKey{id: s.ID, format: m.format}
	switch {
	case m.failures[k] != "":
		m.preview.SetContent(errorTextStyle.Render(m.failures[k]))
	case m.previews[k] != "":
		m.preview.SetContent(m.previews[k])
	default:
		m.preview.SetContent(mutedStyle.Render("Rendering..."))
	}
	m.preview.GotoTop()
}
