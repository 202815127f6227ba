// Package chatlog parses exported chat transcripts into Message records.
// The parser is line-oriented and tolerant: header lines that fail to parse
// and plain lines are folded into the preceding message as continuations.
package chatlog

import (
	"time"

	"github.com/cognicore/recap/pkg/recap/lexicon"
)

// Message is one parsed transcript entry.
type Message struct {
	Timestamp time.Time
	Sender    string
	Text      string
	IsSystem  bool
	Media     lexicon.MediaKind // "" when the message carries no attachment
	WordCount int
	CharCount int
}

// IsText reports whether the message counts as user-written text, meaning it
// is neither a system event nor an attachment placeholder.
func (m Message) IsText() bool {
	return !m.IsSystem && m.Media == ""
}

// Hour returns the hour of day (0-23) the message was sent.
func (m Message) Hour() int {
	return m.Timestamp.Hour()
}

// Day returns the calendar date as YYYY-MM-DD, used for per-day grouping.
func (m Message) Day() string {
	return m.Timestamp.Format("2006-01-02")
}

// Weekday returns the English weekday name ("Monday" .. "Sunday").
func (m Message) Weekday() string {
	return m.Timestamp.Weekday().String()
}

// UserMessages returns the subset of msgs not flagged as system entries.
func UserMessages(msgs []Message) []Message {
	out := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		if !m.IsSystem {
			out = append(out, m)
		}
	}
	return out
}

// TextMessages returns the subset of msgs that are user-written text.
func TextMessages(msgs []Message) []Message {
	out := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		if m.IsText() {
			out = append(out, m)
		}
	}
	return out
}
