package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/jobtrackr/jobtracker/internal/core/domain"
)

// FileRepository defines persistence for attachment metadata. Create carries
// the file_added event to insert in the same transaction. Files have no
// user_id column; ownership is resolved through the parent application.
type FileRepository interface {
	Create(ctx context.Context, file *domain.File, event *domain.TimelineEvent) error
	FindByID(ctx context.Context, id, userID uuid.UUID) (*domain.File, error)
	ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]*domain.File, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
