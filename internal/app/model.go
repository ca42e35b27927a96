package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"noted/internal/client"
	"noted/internal/config"
	"noted/internal/logging"
	"noted/internal/types"
)

const (
	minListWidth     = 24
	maxListWidth     = 40
	minContentHeight = 6
	maxTitleRunes    = 120
	untitledDraft    = "Untitled"
)

type focusArea int

const (
	focusList focusArea = iota
	focusTitle
	focusContent
	focusSearch
)

type Model struct {
	api      NotesAPI
	settings config.Settings
	log      logging.Logger

	notes      []types.Note
	selectedID string

	list         list.Model
	titleInput   textinput.Model
	contentInput textarea.Model
	searchInput  textinput.Model
	loader       spinner.Model
	keys         keyMap

	focus focusArea

	query     string
	searchSeq int
	loadSeq   int

	loading  bool
	saving   bool
	deleting bool
	quitting bool

	toast toast

	preview     bool
	previewText string

	width  int
	height int
}

func NewModel(api NotesAPI, settings config.Settings, log logging.Logger) *Model {
	if log == nil {
		log = logging.Nop()
	}

	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(0)
	noteList := list.New(nil, delegate, minListWidth, minContentHeight)
	noteList.SetShowTitle(false)
	noteList.SetShowStatusBar(false)
	noteList.SetShowHelp(false)
	noteList.SetShowPagination(false)
	noteList.SetFilteringEnabled(false)
	noteList.DisableQuitKeybindings()

	titleInput := textinput.New()
	titleInput.Placeholder = "Title"
	titleInput.CharLimit = maxTitleRunes
	titleInput.Prompt = ""

	contentInput := textarea.New()
	contentInput.Placeholder = "Write something…"
	contentInput.CharLimit = 0
	contentInput.ShowLineNumbers = false

	searchInput := textinput.New()
	searchInput.Placeholder = "Search notes"
	searchInput.Prompt = "/ "

	loader := spinner.New()
	loader.Spinner = spinner.Line

	return &Model{
		api:          api,
		settings:     settings,
		log:          log,
		list:         noteList,
		titleInput:   titleInput,
		contentInput: contentInput,
		searchInput:  searchInput,
		loader:       loader,
		keys:         defaultKeyMap(),
		focus:        focusList,
		loading:      true,
	}
}

// Run builds the model around the given client and hands the terminal to
// bubbletea until the user quits.
func Run(c *client.Client, settings config.Settings, log logging.Logger) error {
	model := NewModel(NewClientAPI(c), settings, log)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loader.Tick, fetchNotesCmd(m.api, m.loadSeq))
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handled, cmd := m.reduceNotesMessages(msg); handled {
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case spinner.TickMsg:
		if !m.loading && !m.saving && !m.deleting {
			return m, nil
		}
		var cmd tea.Cmd
		m.loader, cmd = m.loader.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, m.updateFocused(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global bindings first; they work from every pane.
	if matchesKey(msg, m.keys.ForceQuit) {
		m.teardown()
		return m, tea.Quit
	}
	if matchesKey(msg, m.keys.Save) {
		if !m.canSave() {
			return m, nil
		}
		cmd := m.saveDraft()
		if cmd != nil && m.saving {
			return m, tea.Batch(m.loader.Tick, cmd)
		}
		return m, cmd
	}
	if matchesKey(msg, m.keys.NewNote) {
		m.startNewNote()
		return m, nil
	}
	if matchesKey(msg, m.keys.Refresh) {
		return m, m.refetchNotes()
	}

	switch m.focus {
	case focusSearch:
		return m.handleSearchKey(msg)
	case focusTitle, focusContent:
		return m.handleEditorKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case matchesKey(msg, m.keys.Quit):
		m.teardown()
		return m, tea.Quit
	case matchesKey(msg, m.keys.Search):
		m.focus = focusSearch
		m.searchInput.Focus()
		return m, nil
	case matchesKey(msg, m.keys.Delete):
		if m.deleting {
			return m, nil
		}
		cmd := m.deleteSelected()
		if cmd != nil && m.deleting {
			return m, tea.Batch(m.loader.Tick, cmd)
		}
		return m, cmd
	case matchesKey(msg, m.keys.Reset):
		m.resetDraft()
		return m, nil
	case matchesKey(msg, m.keys.Preview):
		m.togglePreview()
		return m, nil
	case matchesKey(msg, m.keys.Copy):
		m.copySelectedNote()
		return m, nil
	case matchesKey(msg, m.keys.Edit):
		if m.selectedNote() != nil || m.selectedID == "" {
			m.focusEditor(focusTitle)
		}
		return m, nil
	case matchesKey(msg, m.keys.FocusNext):
		m.focusEditor(focusTitle)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.syncSelectionFromList()
	return m, cmd
}

func (m *Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case matchesKey(msg, m.keys.Back):
		m.focusEditor(focusList)
		return m, nil
	case matchesKey(msg, m.keys.FocusNext):
		if m.focus == focusTitle {
			m.focusEditor(focusContent)
		} else {
			m.focusEditor(focusList)
		}
		return m, nil
	case matchesKey(msg, m.keys.ResetDraft):
		m.resetDraft()
		return m, nil
	}
	if m.focus == focusTitle && msg.Type == tea.KeyEnter {
		m.focusEditor(focusContent)
		return m, nil
	}
	return m, m.updateFocused(msg)
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case matchesKey(msg, m.keys.Back):
		m.focus = focusList
		m.searchInput.Blur()
		return m, nil
	case msg.Type == tea.KeyEnter:
		m.focus = focusList
		m.searchInput.Blur()
		return m, nil
	}
	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.searchInput.Value() != before {
		return m, tea.Batch(cmd, m.scheduleSearch())
	}
	return m, cmd
}

func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case focusTitle:
		m.titleInput, cmd = m.titleInput.Update(msg)
	case focusContent:
		m.contentInput, cmd = m.contentInput.Update(msg)
	case focusSearch:
		m.searchInput, cmd = m.searchInput.Update(msg)
	}
	return cmd
}

func (m *Model) focusEditor(area focusArea) {
	m.focus = area
	m.titleInput.Blur()
	m.contentInput.Blur()
	m.searchInput.Blur()
	switch area {
	case focusTitle:
		m.titleInput.Focus()
	case focusContent:
		m.contentInput.Focus()
	}
}

// teardown marks the session as ended so late completions become no-ops.
func (m *Model) teardown() {
	m.quitting = true
	m.loadSeq++
}

// refetchNotes restarts the initial-load path; a bumped sequence number
// orphans any fetch still in flight.
func (m *Model) refetchNotes() tea.Cmd {
	m.clearToast()
	m.loading = true
	m.loadSeq++
	return tea.Batch(m.loader.Tick, fetchNotesCmd(m.api, m.loadSeq))
}

func (m *Model) selectedNote() *types.Note {
	if m.selectedID == "" {
		return nil
	}
	for i := range m.notes {
		if m.notes[i].ID == m.selectedID {
			return &m.notes[i]
		}
	}
	return nil
}

// setSelection moves the selection pointer. The draft buffer resets only when
// the selected id actually changes, so edits survive re-renders of the same
// selection.
func (m *Model) setSelection(id string) {
	if id == m.selectedID {
		return
	}
	m.selectedID = id
	m.resetDraftToSelection()
	m.refreshPreview()
}

func (m *Model) syncSelectionFromList() {
	item, ok := m.list.SelectedItem().(noteItem)
	if !ok {
		return
	}
	m.setSelection(item.note.ID)
}

// visibleNotes is the list pane's contents: the full collection sorted
// newest first, then filtered by the applied query.
func (m *Model) visibleNotes() []types.Note {
	return types.FilterNotes(types.SortNotes(m.notes), m.query)
}

func (m *Model) refreshList() {
	visible := m.visibleNotes()
	items := make([]list.Item, len(visible))
	selectedIdx := -1
	for i, note := range visible {
		items[i] = noteItem{note: note}
		if note.ID == m.selectedID {
			selectedIdx = i
		}
	}
	m.list.SetItems(items)
	if selectedIdx >= 0 {
		m.list.Select(selectedIdx)
	} else if len(items) > 0 {
		m.list.Select(0)
	}
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	listWidth := width / 3
	if listWidth < minListWidth {
		listWidth = minListWidth
	}
	if listWidth > maxListWidth {
		listWidth = maxListWidth
	}
	contentHeight := height - chromeHeight
	if contentHeight < minContentHeight {
		contentHeight = minContentHeight
	}
	editorWidth := width - listWidth - paneFrameWidth
	if editorWidth < minListWidth {
		editorWidth = minListWidth
	}

	m.list.SetSize(listWidth, contentHeight)
	m.titleInput.Width = editorWidth - 2
	m.searchInput.Width = width - 8
	m.contentInput.SetWidth(editorWidth)
	m.contentInput.SetHeight(contentHeight - 3)
	m.refreshPreview()
}

func trimmedDraftTitle(raw string) string {
	return strings.TrimSpace(raw)
}
