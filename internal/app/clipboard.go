package app

import (
	"errors"
	"os"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

var clipboardWriteAll = clipboard.WriteAll
var clipboardWriteOSC52 = writeOSC52Clipboard

// copySelectedNote puts the selected note's persisted content on the
// clipboard, falling back to OSC52 for terminals without a system clipboard
// (SSH sessions, mostly).
func (m *Model) copySelectedNote() {
	m.clearToast()
	note := m.selectedNote()
	if note == nil {
		m.showErrorToast("No note selected.")
		return
	}
	text := note.Content
	if text == "" {
		text = note.Title
	}
	if err := copyTextToClipboard(text); err != nil {
		m.showErrorToast("Copy failed: " + err.Error())
		return
	}
	m.showSuccessToast("Note copied.")
}

func copyTextToClipboard(text string) error {
	err := clipboardWriteAll(text)
	if err == nil {
		return nil
	}
	if oscErr := clipboardWriteOSC52(text); oscErr == nil {
		return nil
	}
	return err
}

func writeOSC52Clipboard(text string) error {
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return errors.New("no tty for OSC52 clipboard")
	}
	defer tty.Close()
	_, err = osc52.New(text).WriteTo(tty)
	return err
}
