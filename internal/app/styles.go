package app

import "github.com/charmbracelet/lipgloss"

const (
	chromeHeight   = 6
	paneFrameWidth = 6
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))

	countStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)

	focusedPaneStyle = paneStyle.
				BorderForeground(lipgloss.Color("69"))

	titleLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))

	dirtyMarkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	toastSuccessStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("28")).
				Bold(true)

	toastErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("124")).
			Bold(true)
)
