package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrContactNotFound = errors.New("contact not found")

// Contact is a person related to the job hunt, optionally tied to one
// application. The link is validated against caller ownership when set.
type Contact struct {
	ID            uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index"`
	ApplicationID *uuid.UUID `json:"application_id,omitempty" gorm:"type:uuid;index"`

	Name     string `json:"name" gorm:"size:255;not null"`
	Role     string `json:"role,omitempty" gorm:"size:255"`
	Email    string `json:"email,omitempty" gorm:"size:255"`
	Phone    string `json:"phone,omitempty" gorm:"size:50"`
	LinkedIn string `json:"linkedin,omitempty" gorm:"size:500"`
	Notes    string `json:"notes,omitempty" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
