package feedback

import (
	"strings"
	"time"

	"codeberg.org/snonux/aistriu/internal"
)

// Record is one piece of user feedback on a translation: the original
// Irish text, the translation the model produced and the user's corrected
// translation or comment.
type Record struct {
	ID         string
	Irish      string
	Translated string
	Feedback   string
	CreatedAt  time.Time
}

// NewRecord creates a record with a generated ID and the current time.
// Newlines inside fields are flattened to spaces so the line-oriented log
// format stays parseable.
func NewRecord(irish, translated, userFeedback string) Record {
	return Record{
		ID:         internal.GenerateRecordID(irish),
		Irish:      flatten(irish),
		Translated: flatten(translated),
		Feedback:   flatten(userFeedback),
		CreatedAt:  time.Now(),
	}
}

// IsCorrection reports whether the feedback looks like a corrected
// translation rather than a bare rating or comment. A correction must be
// non-empty and differ from what the model already produced.
func (r Record) IsCorrection() bool {
	fb := strings.TrimSpace(r.Feedback)
	if fb == "" {
		return false
	}
	return !strings.EqualFold(fb, strings.TrimSpace(r.Translated))
}

func flatten(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.TrimSpace(s)
}
