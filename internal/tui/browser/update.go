package browser

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.preview.Width = m.previewWidth()
		m.preview.Height = m.bodyHeight()
		m.keepCursorVisible()
		return m, nil

	case PreviewMsg:
		k := previewKey{id: msg.StoryID, format: msg.Format}
		delete(m.pending, k)
		if msg.Err != nil {
			m.failures[k] = msg.Err.Error()
		} else {
			m.previews[k] = msg.Content
		}
		if s, ok := m.Selected(); ok && s.ID == msg.StoryID && m.format == msg.Format {
			m.syncPreview()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help), msg.String() == "esc":
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Focus):
		if m.focus == paneList {
			m.focus = panePreview
		} else {
			m.focus = paneList
		}
		return m, nil

	case key.Matches(msg, m.keys.Format):
		m.format = m.format.next()
		return m, m.requestPreview()
	}

	if m.focus == panePreview {
		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Top):
		m.setCursor(0)
	case key.Matches(msg, m.keys.Bottom):
		m.setCursor(len(m.stories) - 1)
	default:
		return m, nil
	}

	return m, m.requestPreview()
}
