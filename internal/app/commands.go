package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"noted/internal/types"
)

type notesLoadedMsg struct {
	seq     int
	records []types.Record
	err     error
}

type noteCreatedMsg struct {
	record types.Record
	err    error
}

type noteUpdatedMsg struct {
	id     string
	record types.Record
	err    error
}

type noteDeletedMsg struct {
	id  string
	err error
}

type searchDebounceMsg struct {
	seq int
}

func fetchNotesCmd(api NotesAPI, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		records, err := api.List(ctx)
		return notesLoadedMsg{seq: seq, records: records, err: err}
	}
}

func createNoteCmd(api NotesAPI, title, content string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		record, err := api.Create(ctx, title, content)
		return noteCreatedMsg{record: record, err: err}
	}
}

func updateNoteCmd(api NotesAPI, id, title, content string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		record, err := api.Update(ctx, id, title, content)
		return noteUpdatedMsg{id: id, record: record, err: err}
	}
}

func deleteNoteCmd(api NotesAPI, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 6*time.Second)
		defer cancel()
		err := api.Delete(ctx, id)
		return noteDeletedMsg{id: id, err: err}
	}
}

// searchDebounceCmd fires after the debounce delay carrying the sequence
// number it was scheduled with. Every keystroke bumps the live sequence, so
// only the last pending tick survives the comparison in the reducer.
func searchDebounceCmd(seq int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return searchDebounceMsg{seq: seq}
	})
}
