package domain

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var ErrNoteNotFound = errors.New("note not found")

// Note is free text attached to exactly one application.
type Note struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	ApplicationID uuid.UUID `json:"application_id" gorm:"type:uuid;not null;index"`

	Content string `json:"content" gorm:"type:text;not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// notePreviewLimit caps the content snapshot stored on note_added events,
// counted in characters so multi-byte text is never cut mid-rune.
const notePreviewLimit = 100

// Preview returns the note content truncated for timeline payloads.
func (n *Note) Preview() string {
	if utf8.RuneCountInString(n.Content) > notePreviewLimit {
		return string([]rune(n.Content)[:notePreviewLimit]) + "..."
	}
	return n.Content
}
