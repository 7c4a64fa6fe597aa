package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/jobtrackr/jobtracker/internal/core/domain"
)

// FileInput carries the metadata for registering an attachment.
type FileInput struct {
	Filename    string
	Path        string
	SizeBytes   int64
	ContentType string
}

// FileService defines use-case operations for attachment metadata. Byte
// storage is out of scope; only the registration records are managed here.
type FileService interface {
	ListByApplication(ctx context.Context, userID, applicationID uuid.UUID) ([]*domain.File, error)
	Create(ctx context.Context, userID, applicationID uuid.UUID, input FileInput) (*domain.File, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*domain.File, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
