package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// startNewNote enters "new note" mode: nothing selected, a fresh draft.
// Nothing is persisted until save.
func (m *Model) startNewNote() {
	m.clearToast()
	m.selectedID = ""
	m.titleInput.SetValue(untitledDraft)
	m.contentInput.SetValue("")
	m.titleInput.CursorEnd()
	m.refreshPreview()
	m.focusEditor(focusTitle)
}

// resetDraft discards edits, restoring the draft from the selected note's
// persisted values. No network call.
func (m *Model) resetDraft() {
	m.clearToast()
	if m.selectedNote() == nil && m.selectedID == "" {
		m.titleInput.SetValue(untitledDraft)
		m.contentInput.SetValue("")
		return
	}
	m.resetDraftToSelection()
}

// resetDraftToSelection overwrites the draft buffer with the selected note's
// current values, or empties it when nothing is selected. Called only on
// selection change and explicit reset.
func (m *Model) resetDraftToSelection() {
	if note := m.selectedNote(); note != nil {
		m.titleInput.SetValue(note.Title)
		m.contentInput.SetValue(note.Content)
		m.titleInput.CursorEnd()
		return
	}
	m.titleInput.SetValue("")
	m.contentInput.SetValue("")
}

// draftDirty reports whether the draft differs from the selected note's
// persisted title and content. Only meaningful while a note is selected.
func (m *Model) draftDirty() bool {
	note := m.selectedNote()
	if note == nil {
		return true
	}
	return m.titleInput.Value() != note.Title || m.contentInput.Value() != note.Content
}

// canSave implements the save control's availability: not while a save is in
// flight, not for a new note without a title, and not when the draft is a
// no-op against the selected note.
func (m *Model) canSave() bool {
	if m.saving {
		return false
	}
	if m.selectedNote() == nil {
		return trimmedDraftTitle(m.titleInput.Value()) != ""
	}
	return m.draftDirty()
}

// saveDraft validates the draft and issues a create or update. Validation
// failures surface as an error toast with zero network calls.
func (m *Model) saveDraft() tea.Cmd {
	if m.saving {
		return nil
	}
	m.clearToast()

	title := trimmedDraftTitle(m.titleInput.Value())
	if title == "" {
		m.showErrorToast("Title is required.")
		return nil
	}
	if len([]rune(title)) > maxTitleRunes {
		m.showErrorToast("Title must be 120 characters or fewer.")
		return nil
	}
	content := strings.TrimRight(m.contentInput.Value(), " \t\r\n")

	if note := m.selectedNote(); note != nil {
		m.saving = true
		return updateNoteCmd(m.api, note.ID, title, content)
	}
	m.saving = true
	return createNoteCmd(m.api, title, content)
}

// deleteSelected issues the delete for the selected note. Without a
// selection it fails locally, no network call.
func (m *Model) deleteSelected() tea.Cmd {
	if m.deleting {
		return nil
	}
	m.clearToast()
	note := m.selectedNote()
	if note == nil {
		m.showErrorToast("No note selected.")
		return nil
	}
	m.deleting = true
	return deleteNoteCmd(m.api, note.ID)
}
