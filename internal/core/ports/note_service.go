package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/jobtrackr/jobtracker/internal/core/domain"
)

// NotePage is one page of an application's notes.
type NotePage struct {
	Notes      []*domain.Note
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

// NoteService defines use-case operations for notes. Ownership is verified
// through the parent application on every read and write.
type NoteService interface {
	ListByApplication(ctx context.Context, userID, applicationID uuid.UUID, page, pageSize int) (*NotePage, error)
	Create(ctx context.Context, userID, applicationID uuid.UUID, content string) (*domain.Note, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*domain.Note, error)
	Update(ctx context.Context, userID, id uuid.UUID, content string) (*domain.Note, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
