package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrFileNotFound = errors.New("file not found")

// File holds attachment metadata only; byte storage lives elsewhere.
type File struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ApplicationID uuid.UUID `json:"application_id" gorm:"type:uuid;not null;index"`

	Filename    string `json:"filename" gorm:"size:255;not null"`
	Path        string `json:"path" gorm:"size:500;not null"`
	SizeBytes   int64  `json:"size_bytes" gorm:"not null"`
	ContentType string `json:"content_type,omitempty" gorm:"size:100"`

	CreatedAt time.Time `json:"created_at"`
}
