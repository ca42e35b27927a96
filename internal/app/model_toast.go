package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type toastKind int

const (
	toastNone toastKind = iota
	toastSuccess
	toastError
)

// toast is a single-slot notification: every new outcome replaces the
// previous one, every action start clears it.
type toast struct {
	kind    toastKind
	message string
}

func (m *Model) showSuccessToast(message string) {
	m.setToast(toastSuccess, message)
}

func (m *Model) showErrorToast(message string) {
	m.setToast(toastError, message)
}

func (m *Model) setToast(kind toastKind, message string) {
	message = strings.TrimSpace(message)
	if message == "" {
		return
	}
	m.toast = toast{kind: kind, message: message}
}

func (m *Model) clearToast() {
	m.toast = toast{}
}

func (m *Model) toastLine(width int) string {
	if m.toast.kind == toastNone || width <= 0 {
		return ""
	}
	text := runewidth.Truncate(m.toast.message, max(1, width-4), "…")
	style := toastSuccessStyle
	if m.toast.kind == toastError {
		style = toastErrorStyle
	}
	pill := style.Render(" " + text + " ")
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, pill)
}
