package types

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Record is a note as the server sent it, shape untouched. Backends disagree
// on field names, so records pass through NormalizeRecord before the UI sees
// them.
type Record map[string]any

// Note is the canonical, UI-facing note. Raw keeps the original record so
// fields we do not model survive a round trip.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Raw       Record    `json:"-"`
}

// ErrNoID marks a server record with no recognizable identifier. Such a
// record could never be updated or deleted later, so it is rejected at the
// ingestion boundary instead of entering the collection.
var ErrNoID = errors.New("record has no recognizable id field")

var idFields = []string{"id", "_id", "noteId", "uuid"}

var updatedFields = []string{"updatedAt", "updated_at", "modifiedAt", "modified_at"}

var createdFields = []string{"createdAt", "created_at"}

// NormalizeRecord maps a server record onto the canonical Note shape. The id
// is taken from the first present of id, _id, noteId, uuid; timestamps accept
// camelCase and snake_case names, RFC3339 strings, and Unix epoch numbers.
// Missing timestamps default to now and are never written back. Running it
// over an already-canonical record yields the same note.
func NormalizeRecord(rec Record, now time.Time) (Note, error) {
	if rec == nil {
		return Note{}, ErrNoID
	}
	id := firstString(rec, idFields)
	if id == "" {
		return Note{}, fmt.Errorf("normalize record: %w", ErrNoID)
	}
	if now.IsZero() {
		now = time.Now()
	}
	note := Note{
		ID:      id,
		Title:   stringField(rec, "title"),
		Content: stringField(rec, "content"),
		Raw:     rec,
	}
	if note.Content == "" {
		note.Content = stringField(rec, "body")
	}
	note.UpdatedAt = firstTime(rec, updatedFields, now)
	note.CreatedAt = firstTime(rec, createdFields, now)
	return note, nil
}

// NormalizeRecords maps a batch, dropping records NormalizeRecord rejects.
// The second result reports how many were dropped.
func NormalizeRecords(recs []Record, now time.Time) ([]Note, int) {
	notes := make([]Note, 0, len(recs))
	dropped := 0
	for _, rec := range recs {
		note, err := NormalizeRecord(rec, now)
		if err != nil {
			dropped++
			continue
		}
		notes = append(notes, note)
	}
	return notes, dropped
}

// SortKey is the instant a note sorts by: UpdatedAt, falling back to
// CreatedAt, then to the zero time.
func (n Note) SortKey() time.Time {
	if !n.UpdatedAt.IsZero() {
		return n.UpdatedAt
	}
	return n.CreatedAt
}

// SortNotes returns a copy ordered newest first by SortKey. The sort is
// stable so equal keys keep their incoming order.
func SortNotes(notes []Note) []Note {
	sorted := append([]Note(nil), notes...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SortKey().After(sorted[j].SortKey())
	})
	return sorted
}

// FilterNotes keeps the notes whose title or content contains query,
// case-insensitively. An empty or blank query keeps everything.
func FilterNotes(notes []Note, query string) []Note {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return notes
	}
	filtered := make([]Note, 0, len(notes))
	for _, note := range notes {
		if strings.Contains(strings.ToLower(note.Title), query) ||
			strings.Contains(strings.ToLower(note.Content), query) {
			filtered = append(filtered, note)
		}
	}
	return filtered
}

// MergeRecords overlays update onto base, update fields winning. Used when a
// PUT response carries only the fields the server chose to echo.
func MergeRecords(base, update Record) Record {
	merged := make(Record, len(base)+len(update))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range update {
		merged[k] = v
	}
	return merged
}

func firstString(rec Record, keys []string) string {
	for _, key := range keys {
		if s := stringField(rec, key); s != "" {
			return s
		}
	}
	return ""
}

func stringField(rec Record, key string) string {
	value, ok := rec[key]
	if !ok || value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case float64:
		// JSON numbers decode as float64; ids are integral in practice.
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case fmt.Stringer:
		return v.String()
	default:
		return ""
	}
}

func firstTime(rec Record, keys []string, fallback time.Time) time.Time {
	for _, key := range keys {
		value, ok := rec[key]
		if !ok || value == nil {
			continue
		}
		if ts, ok := parseTimestamp(value); ok {
			return ts
		}
	}
	return fallback
}

func parseTimestamp(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return time.Time{}, false
		}
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"} {
			if ts, err := time.Parse(layout, trimmed); err == nil {
				return ts, true
			}
		}
		if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return epochTime(n), true
		}
		return time.Time{}, false
	case float64:
		return epochTime(v), true
	case int64:
		return epochTime(float64(v)), true
	case int:
		return epochTime(float64(v)), true
	default:
		return time.Time{}, false
	}
}

// Epoch values at or above 1e12 are taken as milliseconds; in seconds that
// threshold is past the year 33000.
func epochTime(n float64) time.Time {
	const msThreshold = 1e12
	if n >= msThreshold {
		return time.UnixMilli(int64(n)).UTC()
	}
	return time.Unix(int64(n), 0).UTC()
}
