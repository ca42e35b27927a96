package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"noted/internal/logging"
	"noted/internal/types"
)

// reduceNotesMessages handles every network completion and the search
// debounce tick. Returns true when the message was consumed.
func (m *Model) reduceNotesMessages(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case notesLoadedMsg:
		// A stale sequence means the session ended or a newer fetch
		// superseded this one; the result is discarded untouched.
		if msg.seq != m.loadSeq || m.quitting {
			return true, nil
		}
		m.loading = false
		if msg.err != nil {
			m.log.Error("load notes failed", logging.F("err", msg.err))
			m.showErrorToast("Failed to load notes: " + msg.err.Error())
			return true, nil
		}
		notes, dropped := types.NormalizeRecords(msg.records, time.Now())
		m.notes = notes
		if dropped > 0 {
			m.log.Warn("dropped records without ids", logging.F("count", dropped))
			m.showErrorToast(fmt.Sprintf("Ignored %d note(s) without a usable id.", dropped))
		}
		if m.selectedID == "" && len(notes) > 0 {
			m.setSelection(notes[0].ID)
		}
		m.refreshList()
		return true, nil

	case noteCreatedMsg:
		m.saving = false
		if msg.err != nil {
			m.log.Error("create note failed", logging.F("err", msg.err))
			m.showErrorToast("Failed to create note: " + msg.err.Error())
			return true, nil
		}
		note, err := types.NormalizeRecord(msg.record, time.Now())
		if err != nil {
			m.showErrorToast("Server returned an unusable note: " + err.Error())
			return true, nil
		}
		m.notes = append([]types.Note{note}, m.notes...)
		m.setSelection(note.ID)
		m.refreshList()
		m.showSuccessToast("Note created.")
		return true, nil

	case noteUpdatedMsg:
		m.saving = false
		if msg.err != nil {
			m.log.Error("update note failed", logging.F("id", msg.id), logging.F("err", msg.err))
			m.showErrorToast("Failed to save note: " + msg.err.Error())
			return true, nil
		}
		for i := range m.notes {
			if m.notes[i].ID != msg.id {
				continue
			}
			merged := types.MergeRecords(m.notes[i].Raw, msg.record)
			if note, err := types.NormalizeRecord(merged, time.Now()); err == nil {
				m.notes[i] = note
			}
			break
		}
		m.refreshList()
		m.refreshPreview()
		m.showSuccessToast("Note saved.")
		return true, nil

	case noteDeletedMsg:
		m.deleting = false
		if msg.err != nil {
			m.log.Error("delete note failed", logging.F("id", msg.id), logging.F("err", msg.err))
			m.showErrorToast("Failed to delete note: " + msg.err.Error())
			return true, nil
		}
		idx := -1
		for i := range m.notes {
			if m.notes[i].ID == msg.id {
				idx = i
				break
			}
		}
		if idx >= 0 {
			m.notes = append(m.notes[:idx], m.notes[idx+1:]...)
		}
		// Reselect the next survivor in pre-deletion order, or none.
		next := ""
		if len(m.notes) > 0 && idx >= 0 {
			if idx >= len(m.notes) {
				idx = len(m.notes) - 1
			}
			next = m.notes[idx].ID
		}
		m.setSelection(next)
		m.refreshList()
		m.showSuccessToast("Note deleted.")
		return true, nil

	case searchDebounceMsg:
		if msg.seq != m.searchSeq {
			return true, nil
		}
		m.query = m.searchInput.Value()
		m.refreshList()
		return true, nil
	}

	return false, nil
}
