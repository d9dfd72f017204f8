package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current model state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelp()
	}

	header := m.renderHeader()
	list := m.renderList()
	preview := m.renderPreview()

	listPane, previewPane := paneStyle, paneStyle
	if m.focus == paneList {
		listPane = focusedPaneStyle
	} else {
		previewPane = focusedPaneStyle
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		listPane.Width(listWidth).Height(m.bodyHeight()).Render(list),
		previewPane.Width(m.previewWidth()).Height(m.bodyHeight()).Render(preview),
	)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.renderFooter())
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("Positivus stories")
	count := mutedStyle.Render(fmt.Sprintf("%d stories  format: %s", len(m.stories), m.format))
	return lipgloss.JoinHorizontal(lipgloss.Bottom, title, "  ", count)
}

func (m Model) renderList() string {
	if len(m.stories) == 0 {
		return mutedStyle.Render("No stories loaded.")
	}

	end := m.offset + m.bodyHeight()
	if end > len(m.stories) {
		end = len(m.stories)
	}

	var lines []string
	title := ""
	if m.offset > 0 {
		title = m.stories[m.offset-1].Title
	}
	for i := m.offset; i < end; i++ {
		s := m.stories[i]
		if s.Title != title {
			title = s.Title
			lines = append(lines, sectionStyle.Render(s.Title))
		}
		if i == m.cursor {
			lines = append(lines, selectedItemStyle.Render(s.Name))
			continue
		}
		lines = append(lines, itemStyle.Render(s.Name))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderPreview() string {
	s, ok := m.Selected()
	if !ok {
		return ""
	}

	meta := []string{titleStyle.Render(s.Title + " / " + s.Name)}
	if s.Description != "" {
		meta = append(meta, mutedStyle.Render(s.Description))
	}
	if s.Background != "" {
		meta = append(meta, mutedStyle.Render("background: "+s.Background))
	}

	return lipgloss.JoinVertical(lipgloss.Left, strings.Join(meta, "\n"), "", m.preview.View())
}

func (m Model) renderFooter() string {
	hints := make([]string, 0, len(m.keys.hints()))
	for _, b := range m.keys.hints() {
		h := b.Help()
		hints = append(hints, h.Key+": "+h.Desc)
	}
	return footerStyle.Render(strings.Join(hints, "  •  "))
}

func (m Model) renderHelp() string {
	lines := []string{titleStyle.Render("Keys"), ""}
	for _, b := range m.keys.all() {
		h := b.Help()
		lines = append(lines, helpKeyStyle.Render(h.Key)+h.Desc)
	}
	lines = append(lines, "", mutedStyle.Render("?/esc: close"))
	return helpBoxStyle.Render(strings.Join(lines, "\n"))
}
