package app

import (
	"context"
	"strconv"
	"sync"
	"time"

	"noted/internal/config"
	"noted/internal/logging"
	"noted/internal/types"
)

// fakeAPI counts calls and serves canned records, standing in for the REST
// client in controller tests.
type fakeAPI struct {
	mu sync.Mutex

	listRecords []types.Record
	listErr     error
	createErr   error
	updateErr   error
	deleteErr   error

	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int

	nextID int
}

func (f *fakeAPI) List(context.Context) ([]types.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	return f.listRecords, f.listErr
}

func (f *fakeAPI) Create(_ context.Context, title, content string) (types.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	return types.Record{
		"id":        "created-" + strconv.Itoa(f.nextID),
		"title":     title,
		"content":   content,
		"updatedAt": time.Now().UTC().Format(time.RFC3339),
		"createdAt": time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (f *fakeAPI) Update(_ context.Context, id, title, content string) (types.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return types.Record{
		"id":        id,
		"title":     title,
		"content":   content,
		"updatedAt": time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (f *fakeAPI) Delete(context.Context, string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	return f.deleteErr
}

func (f *fakeAPI) networkCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls + f.createCalls + f.updateCalls + f.deleteCalls
}

func newTestModel(api *fakeAPI) *Model {
	if api == nil {
		api = &fakeAPI{}
	}
	m := NewModel(api, config.DefaultSettings(), logging.Nop())
	m.resize(120, 40)
	return m
}

// loadNotes pushes records through the load path the way the program would.
func loadNotes(m *Model, records ...types.Record) {
	handled, _ := m.reduceNotesMessages(notesLoadedMsg{seq: m.loadSeq, records: records})
	if !handled {
		panic("notesLoadedMsg not handled")
	}
}
