package core

import "time"

const (
	// TimestampLayout is the persisted format of Note.Timestamp.
	TimestampLayout = "2006-01-02 15:04:05"
	// DateLayout is the format accepted when filtering notes by day.
	DateLayout = "2006-01-02"
)

// Note is the central entity of the domain.
// Notes are identified by a numeric ID assigned at creation time.
type Note struct {
	ID        int    `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Body      string `json:"body" yaml:"body"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
}

// Time parses the note timestamp in the local time zone.
func (n Note) Time() (time.Time, error) {
	return time.ParseInLocation(TimestampLayout, n.Timestamp, time.Local)
}

// OnDate reports whether the note was created or last edited on the given day.
func (n Note) OnDate(day time.Time) bool {
	t, err := n.Time()
	if err != nil {
		return false
	}
	y1, m1, d1 := t.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// NextID returns the identifier for a note appended to notes.
// IDs are derived from the collection size, so they can repeat after a delete.
func NextID(notes []Note) int {
	return len(notes) + 1
}

// FormatTimestamp renders t in the persisted timestamp layout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
