package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// DefaultReminderTime is the HH:MM preference assigned at signup.
const DefaultReminderTime = "07:30"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrInvalidToken       = errors.New("invalid token")
)

// User models an account. Deleting a user cascades to everything it owns.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string    `json:"name" gorm:"size:100;not null"`
	Email        string    `json:"email" gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`

	// ReminderTime is stored as HH:MM. The daily job currently fires at a
	// single global time; the preference is kept for the settings UI.
	ReminderTime          string `json:"reminder_time" gorm:"size:5;default:'07:30'"`
	EmailRemindersEnabled bool   `json:"email_reminders_enabled" gorm:"default:true"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Applications []Application `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Contacts     []Contact     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Notes        []Note        `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}
