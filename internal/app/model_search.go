package app

import tea "github.com/charmbracelet/bubbletea"

// scheduleSearch bumps the debounce sequence and arms a fresh timer. The
// query is applied only when the timer's tick still carries the live
// sequence, so rapid keystrokes collapse into one recompute.
func (m *Model) scheduleSearch() tea.Cmd {
	m.searchSeq++
	return searchDebounceCmd(m.searchSeq, m.settings.SearchDebounce())
}
