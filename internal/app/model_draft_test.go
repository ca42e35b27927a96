package app

import (
	"testing"

	"noted/internal/types"
)

func TestSelectionChangeOverwritesDraft(t *testing.T) {
	m := newTestModel(nil)
	loadNotes(m,
		types.Record{"id": "a", "title": "A", "content": "alpha body"},
		types.Record{"id": "b", "title": "B", "content": "beta body"},
	)

	m.contentInput.SetValue("half-finished edit")
	m.setSelection("b")

	if m.titleInput.Value() != "B" || m.contentInput.Value() != "beta body" {
		t.Fatalf("draft = %q/%q, want B's persisted values", m.titleInput.Value(), m.contentInput.Value())
	}
}

func TestSameSelectionDoesNotResetDraft(t *testing.T) {
	m := newTestModel(nil)
	loadNotes(m, types.Record{"id": "a", "title": "A", "content": "alpha"})

	m.contentInput.SetValue("edited")
	m.setSelection("a")
	if m.contentInput.Value() != "edited" {
		t.Fatalf("re-selecting the same note must not clobber the draft")
	}

	// Underlying note changes while it stays selected; draft survives.
	m.notes[0].Content = "changed on the server"
	m.refreshList()
	if m.contentInput.Value() != "edited" {
		t.Fatalf("unrelated refresh must not clobber the draft")
	}
}

func TestResetDraftRestoresPersistedValues(t *testing.T) {
	m := newTestModel(nil)
	loadNotes(m, types.Record{"id": "a", "title": "A", "content": "alpha"})

	m.titleInput.SetValue("scratch")
	m.contentInput.SetValue("scratch body")
	m.showErrorToast("leftover")
	m.resetDraft()

	if m.titleInput.Value() != "A" || m.contentInput.Value() != "alpha" {
		t.Fatalf("reset draft = %q/%q", m.titleInput.Value(), m.contentInput.Value())
	}
	if m.toast.kind != toastNone {
		t.Fatalf("reset must clear the toast")
	}
}

func TestResetDraftWithoutSelectionRestoresUntitled(t *testing.T) {
	m := newTestModel(nil)
	m.startNewNote()
	m.titleInput.SetValue("something")
	m.contentInput.SetValue("else")

	m.resetDraft()
	if m.titleInput.Value() != "Untitled" || m.contentInput.Value() != "" {
		t.Fatalf("reset draft = %q/%q", m.titleInput.Value(), m.contentInput.Value())
	}
}

func TestNewNoteClearsToast(t *testing.T) {
	m := newTestModel(nil)
	loadNotes(m, types.Record{"id": "a", "title": "A"})
	m.showErrorToast("stale error")

	m.startNewNote()
	if m.toast.kind != toastNone {
		t.Fatalf("new-note intent must clear the toast")
	}
	if m.selectedID != "" {
		t.Fatalf("new-note intent must deselect")
	}
}
