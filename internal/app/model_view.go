package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Loading…"
	}

	var b strings.Builder
	b.WriteString(m.headerLine())
	b.WriteString("\n")
	b.WriteString(m.searchInput.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.listPane(), m.editorPane()))
	b.WriteString("\n")
	if line := m.toastLine(m.width); line != "" {
		b.WriteString(line)
	} else {
		b.WriteString(m.helpLine())
	}
	return b.String()
}

func (m *Model) headerLine() string {
	header := headerStyle.Render("noted")
	status := ""
	switch {
	case m.loading:
		status = m.loader.View() + " loading notes…"
	case m.saving:
		status = m.loader.View() + " saving…"
	case m.deleting:
		status = m.loader.View() + " deleting…"
	default:
		status = countStyle.Render(fmt.Sprintf("%d notes", len(m.notes)))
	}
	return header + "  " + status
}

func (m *Model) listPane() string {
	style := paneStyle
	if m.focus == focusList {
		style = focusedPaneStyle
	}
	if m.loading && len(m.notes) == 0 {
		return style.Render(m.loader.View() + " loading…")
	}
	if len(m.list.Items()) == 0 {
		empty := "No notes yet."
		if strings.TrimSpace(m.query) != "" {
			empty = "No notes match " + strconv.Quote(m.query) + "."
		}
		return style.Render(empty)
	}
	return style.Render(m.list.View())
}

func (m *Model) editorPane() string {
	style := paneStyle
	if m.focus == focusTitle || m.focus == focusContent {
		style = focusedPaneStyle
	}

	label := titleLabelStyle.Render("Title")
	if m.selectedNote() != nil && m.draftDirty() {
		label += dirtyMarkStyle.Render(" *")
	}

	body := m.contentInput.View()
	if m.preview {
		body = m.previewText
	}

	return style.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		label,
		m.titleInput.View(),
		"",
		body,
	))
}

func (m *Model) helpLine() string {
	bindings := []string{
		"ctrl+s save",
		"ctrl+n new",
		"d delete",
		"/ search",
	}
	switch m.focus {
	case focusList:
		bindings = append(bindings, "enter edit", "p preview", "y copy", "r reset", "q quit")
	case focusTitle, focusContent:
		bindings = append(bindings, "tab next", "ctrl+r reset", "esc back")
	case focusSearch:
		bindings = append(bindings, "esc back")
	}
	return helpStyle.Render(strings.Join(bindings, " · "))
}
