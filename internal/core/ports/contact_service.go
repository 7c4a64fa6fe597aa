package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/jobtrackr/jobtracker/internal/core/domain"
)

// ContactInput carries all data for creating a contact.
type ContactInput struct {
	ApplicationID *uuid.UUID
	Name          string
	Role          string
	Email         string
	Phone         string
	LinkedIn      string
	Notes         string
}

// ContactPatch updates a contact; nil fields are left unchanged.
// ApplicationID uses a double pointer so the link can be cleared.
type ContactPatch struct {
	ApplicationID **uuid.UUID
	Name          *string
	Role          *string
	Email         *string
	Phone         *string
	LinkedIn      *string
	Notes         *string
}

// ListContactsInput carries the list endpoint's query parameters.
type ListContactsInput struct {
	ApplicationID *uuid.UUID
	Search        string
	Page          int
	PageSize      int
}

// ContactPage is one page of list results.
type ContactPage struct {
	Contacts   []*domain.Contact
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

// ContactService defines use-case operations for contacts.
type ContactService interface {
	List(ctx context.Context, userID uuid.UUID, in ListContactsInput) (*ContactPage, error)
	Create(ctx context.Context, userID uuid.UUID, in ContactInput) (*domain.Contact, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*domain.Contact, error)
	Update(ctx context.Context, userID, id uuid.UUID, patch ContactPatch) (*domain.Contact, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
