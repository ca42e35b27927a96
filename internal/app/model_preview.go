package app

import "github.com/charmbracelet/glamour"

// togglePreview switches the editor pane between the textarea and a rendered
// markdown view of the selected note's persisted content.
func (m *Model) togglePreview() {
	if !m.settings.MarkdownPreviewEnabled() {
		return
	}
	m.preview = !m.preview
	m.refreshPreview()
}

func (m *Model) refreshPreview() {
	if !m.preview {
		m.previewText = ""
		return
	}
	note := m.selectedNote()
	if note == nil {
		m.previewText = "Nothing selected."
		return
	}
	width := m.contentInput.Width()
	if width <= 0 {
		width = minListWidth
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		m.previewText = note.Content
		return
	}
	rendered, err := renderer.Render(note.Content)
	if err != nil {
		m.previewText = note.Content
		return
	}
	m.previewText = rendered
}
