package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	ForceQuit  key.Binding
	Quit       key.Binding
	Save       key.Binding
	NewNote    key.Binding
	Refresh    key.Binding
	Search     key.Binding
	Delete     key.Binding
	Reset      key.Binding
	ResetDraft key.Binding
	Preview    key.Binding
	Copy       key.Binding
	Edit       key.Binding
	FocusNext  key.Binding
	Back       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		NewNote:   key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new note")),
		Refresh:   key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "reload")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset draft")),
		ResetDraft: key.NewBinding(
			key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset draft"),
		),
		Preview:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "preview")),
		Copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy note")),
		Edit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		FocusNext: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next pane")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func matchesKey(msg tea.KeyMsg, binding key.Binding) bool {
	return key.Matches(msg, binding)
}
