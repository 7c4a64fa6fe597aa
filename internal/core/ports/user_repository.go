package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/jobtrackr/jobtracker/internal/core/domain"
)

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	// Delete removes the user and cascades to all owned rows.
	Delete(ctx context.Context, id uuid.UUID) error
	// ListReminderEnabled returns every user with email reminders on.
	ListReminderEnabled(ctx context.Context) ([]*domain.User, error)
}
