package app

import (
	"strings"
	"testing"
)

func TestToastReplacedNotQueued(t *testing.T) {
	m := newTestModel(nil)
	m.showErrorToast("first failure")
	m.showSuccessToast("Note saved.")

	if m.toast.kind != toastSuccess || m.toast.message != "Note saved." {
		t.Fatalf("latest outcome must win: %#v", m.toast)
	}
}

func TestToastBlankMessageIgnored(t *testing.T) {
	m := newTestModel(nil)
	m.showSuccessToast("   ")
	if m.toast.kind != toastNone {
		t.Fatalf("blank toast must be ignored")
	}
}

func TestToastLineRendering(t *testing.T) {
	m := newTestModel(nil)
	if m.toastLine(80) != "" {
		t.Fatalf("no toast, no line")
	}
	m.showSuccessToast("Note created.")
	line := m.toastLine(80)
	if !strings.Contains(line, "Note created.") {
		t.Fatalf("toast line missing message: %q", line)
	}
	m.clearToast()
	if m.toastLine(80) != "" {
		t.Fatalf("cleared toast must not render")
	}
}

func TestToastTruncatesToWidth(t *testing.T) {
	m := newTestModel(nil)
	m.showErrorToast(strings.Repeat("x", 200))
	line := m.toastLine(40)
	if strings.Contains(line, strings.Repeat("x", 40)) {
		t.Fatalf("toast must truncate to the available width")
	}
}
