package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/jobtrackr/jobtracker/internal/core/domain"
)

// NoteRepository defines persistence operations for notes. Create carries
// the note_added event to insert in the same transaction.
type NoteRepository interface {
	Create(ctx context.Context, note *domain.Note, event *domain.TimelineEvent) error
	FindByID(ctx context.Context, id, userID uuid.UUID) (*domain.Note, error)
	// ListByApplication returns one page of the application's notes, newest
	// first, plus the pre-pagination total.
	ListByApplication(ctx context.Context, applicationID uuid.UUID, page, pageSize int) ([]*domain.Note, int64, error)
	Update(ctx context.Context, note *domain.Note) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
