package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/jobtrackr/jobtracker/internal/core/domain"
)

// UserPatch updates profile fields; nil means leave unchanged.
type UserPatch struct {
	Name                  *string
	Email                 *string
	ReminderTime          *string
	EmailRemindersEnabled *bool
}

// UserService covers the /users/me surface.
type UserService interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	Update(ctx context.Context, userID uuid.UUID, patch UserPatch) (*domain.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error
	// Delete removes the account and everything it owns.
	Delete(ctx context.Context, userID uuid.UUID) error
}
