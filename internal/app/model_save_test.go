package app

import (
	"errors"
	"strings"
	"testing"

	"noted/internal/types"
)

func TestSaveWhitespaceTitleFailsLocally(t *testing.T) {
	api := &fakeAPI{}
	m := newTestModel(api)
	loadNotes(m, types.Record{"id": "a", "title": "one", "content": "body"})

	m.titleInput.SetValue("   ")
	cmd := m.saveDraft()
	if cmd != nil {
		t.Fatalf("validation failure must not produce a network command")
	}
	if api.networkCalls() != 0 {
		t.Fatalf("validation failure issued %d network calls", api.networkCalls())
	}
	if m.toast.kind != toastError {
		t.Fatalf("expected validation error toast, got %#v", m.toast)
	}
	if m.saving {
		t.Fatalf("saving flag must not be set")
	}
}

func TestSaveTitleTooLongFailsLocally(t *testing.T) {
	api := &fakeAPI{}
	m := newTestModel(api)
	m.startNewNote()
	m.titleInput.SetValue(strings.Repeat("x", maxTitleRunes+1))

	if cmd := m.saveDraft(); cmd != nil {
		t.Fatalf("overlong title must fail before the network")
	}
	if m.toast.kind != toastError {
		t.Fatalf("expected error toast")
	}
}

func TestSaveUnavailableWhenDraftMatchesSelection(t *testing.T) {
	m := newTestModel(nil)
	loadNotes(m, types.Record{"id": "a", "title": "one", "content": "body"})

	if m.canSave() {
		t.Fatalf("save must be unavailable for a pristine draft")
	}
	m.contentInput.SetValue("body edited")
	if !m.canSave() {
		t.Fatalf("save must be available once the draft differs")
	}
	m.contentInput.SetValue("body")
	if m.canSave() {
		t.Fatalf("reverting the edit must disable save again")
	}
}

func TestSaveUnavailableForEmptyNewDraft(t *testing.T) {
	m := newTestModel(nil)
	m.startNewNote()
	m.titleInput.SetValue("   ")
	if m.canSave() {
		t.Fatalf("new note with a blank title must not be savable")
	}
	m.titleInput.SetValue("Groceries")
	if !m.canSave() {
		t.Fatalf("titled new note must be savable")
	}
}

func TestSaveUnavailableWhileSaving(t *testing.T) {
	m := newTestModel(nil)
	m.startNewNote()
	m.titleInput.SetValue("Groceries")
	m.saving = true
	if m.canSave() {
		t.Fatalf("save must be unavailable while one is in flight")
	}
	if cmd := m.saveDraft(); cmd != nil {
		t.Fatalf("saveDraft must refuse reentry")
	}
}

func TestCreateFlow(t *testing.T) {
	api := &fakeAPI{}
	m := newTestModel(api)
	loadNotes(m)

	m.startNewNote()
	if m.selectedID != "" {
		t.Fatalf("new-note intent must deselect")
	}
	if m.titleInput.Value() != "Untitled" || m.contentInput.Value() != "" {
		t.Fatalf("new-note draft = %q/%q", m.titleInput.Value(), m.contentInput.Value())
	}
	if api.networkCalls() != 0 {
		t.Fatalf("new-note intent must not contact the server")
	}

	m.titleInput.SetValue("Groceries")
	m.contentInput.SetValue("milk")
	cmd := m.saveDraft()
	if cmd == nil {
		t.Fatalf("expected a create command")
	}
	if !m.saving {
		t.Fatalf("saving flag must be set while in flight")
	}

	msg, ok := cmd().(noteCreatedMsg)
	if !ok {
		t.Fatalf("expected noteCreatedMsg")
	}
	if handled, _ := m.reduceNotesMessages(msg); !handled {
		t.Fatalf("noteCreatedMsg not handled")
	}

	if m.saving {
		t.Fatalf("saving flag must clear")
	}
	if len(m.notes) != 1 {
		t.Fatalf("collection size = %d, want 1", len(m.notes))
	}
	if m.selectedID != m.notes[0].ID {
		t.Fatalf("selection must point at the created note")
	}
	if m.notes[0].Title != "Groceries" || m.notes[0].Content != "milk" {
		t.Fatalf("created note = %+v", m.notes[0])
	}
	if m.toast.kind != toastSuccess || m.toast.message != "Note created." {
		t.Fatalf("toast = %#v", m.toast)
	}
}

func TestCreateInsertsAtFront(t *testing.T) {
	api := &fakeAPI{}
	m := newTestModel(api)
	loadNotes(m, types.Record{"id": "existing", "title": "old"})

	m.startNewNote()
	m.titleInput.SetValue("Fresh")
	cmd := m.saveDraft()
	if handled, _ := m.reduceNotesMessages(cmd()); !handled {
		t.Fatalf("create result not handled")
	}
	if m.notes[0].Title != "Fresh" || m.notes[1].ID != "existing" {
		t.Fatalf("created note must be prepended: %v", m.notes)
	}
}

func TestSaveTrimsTitleAndRightTrimsContent(t *testing.T) {
	api := &fakeAPI{}
	m := newTestModel(api)
	m.startNewNote()
	m.titleInput.SetValue("  Groceries  ")
	m.contentInput.SetValue("  milk and eggs\t\n")

	cmd := m.saveDraft()
	msg := cmd().(noteCreatedMsg)
	if msg.record["title"] != "Groceries" {
		t.Fatalf("title sent = %q", msg.record["title"])
	}
	if msg.record["content"] != "  milk and eggs" {
		t.Fatalf("content sent = %q; leading whitespace must survive", msg.record["content"])
	}
}

func TestUpdateFlowMergesServerRecord(t *testing.T) {
	api := &fakeAPI{}
	m := newTestModel(api)
	loadNotes(m, types.Record{"id": "a", "title": "one", "content": "body", "color": "blue", "updatedAt": "2026-01-01T00:00:00Z"})

	m.contentInput.SetValue("body v2")
	cmd := m.saveDraft()
	if cmd == nil {
		t.Fatalf("expected an update command")
	}
	msg, ok := cmd().(noteUpdatedMsg)
	if !ok {
		t.Fatalf("expected noteUpdatedMsg")
	}
	if api.updateCalls != 1 {
		t.Fatalf("update calls = %d", api.updateCalls)
	}
	if handled, _ := m.reduceNotesMessages(msg); !handled {
		t.Fatalf("noteUpdatedMsg not handled")
	}

	if m.selectedID != "a" {
		t.Fatalf("selection must be unchanged")
	}
	note := m.selectedNote()
	if note.Content != "body v2" {
		t.Fatalf("content = %q", note.Content)
	}
	if note.Raw["color"] != "blue" {
		t.Fatalf("fields missing from the response must survive the merge")
	}
	if m.toast.kind != toastSuccess || m.toast.message != "Note saved." {
		t.Fatalf("toast = %#v", m.toast)
	}
}

func TestSaveFailureLeavesStateUntouched(t *testing.T) {
	api := &fakeAPI{updateErr: errors.New("500: boom")}
	m := newTestModel(api)
	loadNotes(m, types.Record{"id": "a", "title": "one", "content": "body"})

	m.contentInput.SetValue("edited")
	cmd := m.saveDraft()
	if handled, _ := m.reduceNotesMessages(cmd()); !handled {
		t.Fatalf("failure message not handled")
	}

	if m.saving {
		t.Fatalf("saving flag must clear after failure")
	}
	if m.selectedNote().Content != "body" {
		t.Fatalf("collection must be untouched on failure")
	}
	if m.contentInput.Value() != "edited" {
		t.Fatalf("draft must be untouched on failure")
	}
	if m.toast.kind != toastError {
		t.Fatalf("expected error toast")
	}
}
