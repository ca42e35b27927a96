package app

import (
	"strconv"
	"strings"
	"time"

	"noted/internal/types"
)

// noteItem adapts a canonical note to the list pane.
type noteItem struct {
	note types.Note
}

func (i noteItem) Title() string {
	title := strings.TrimSpace(i.note.Title)
	if title == "" {
		return untitledDraft
	}
	return title
}

func (i noteItem) Description() string {
	key := i.note.SortKey()
	if key.IsZero() {
		return ""
	}
	return relativeTime(key, time.Now())
}

func (i noteItem) FilterValue() string {
	return i.note.Title + " " + i.note.Content
}

func relativeTime(ts, now time.Time) string {
	d := now.Sub(ts)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return pluralize(int(d.Minutes()), "minute") + " ago"
	case d < 24*time.Hour:
		return pluralize(int(d.Hours()), "hour") + " ago"
	case d < 30*24*time.Hour:
		return pluralize(int(d.Hours()/24), "day") + " ago"
	default:
		return ts.Format("2006-01-02")
	}
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return strconv.Itoa(n) + " " + unit + "s"
}
