package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/jobtrackr/jobtracker/internal/core/domain"
)

// ListContactsFilter carries query parameters for listing contacts.
type ListContactsFilter struct {
	UserID        uuid.UUID
	ApplicationID *uuid.UUID // optional
	Search        string     // partial match on name, role or email
	Page          int
	PageSize      int
}

// ContactRepository defines persistence operations for contacts. A create
// linked to an application carries the contact_added event to insert in the
// same transaction.
type ContactRepository interface {
	Create(ctx context.Context, contact *domain.Contact, event *domain.TimelineEvent) error
	FindByID(ctx context.Context, id, userID uuid.UUID) (*domain.Contact, error)
	List(ctx context.Context, filter ListContactsFilter) ([]*domain.Contact, int64, error)
	Update(ctx context.Context, contact *domain.Contact) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
