package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jobtrackr/jobtracker/internal/api/metrics"
	"github.com/jobtrackr/jobtracker/internal/core/domain"
	"github.com/jobtrackr/jobtracker/internal/core/ports"
)

// FileService implements the attachment metadata use cases.
type FileService struct {
	repo ports.FileRepository
	apps ports.ApplicationRepository
	log  zerolog.Logger
}

func NewFileService(repo ports.FileRepository, apps ports.ApplicationRepository, log zerolog.Logger) *FileService {
	return &FileService{repo: repo, apps: apps, log: log}
}

func (s *FileService) ListByApplication(ctx context.Context, userID, applicationID uuid.UUID) ([]*domain.File, error) {
	if _, err := s.apps.FindByID(ctx, applicationID, userID); err != nil {
		return nil, err
	}
	return s.repo.ListByApplication(ctx, applicationID)
}

func (s *FileService) Create(ctx context.Context, userID, applicationID uuid.UUID, input ports.FileInput) (*domain.File, error) {
	if _, err := s.apps.FindByID(ctx, applicationID, userID); err != nil {
		return nil, err
	}

	file := &domain.File{
		ID:            uuid.New(),
		ApplicationID: applicationID,
		Filename:      input.Filename,
		Path:          input.Path,
		SizeBytes:     input.SizeBytes,
		ContentType:   input.ContentType,
	}

	event := domain.NewTimelineEvent(applicationID, domain.EventFileAdded, map[string]interface{}{
		"filename": file.Filename,
	})

	if err := s.repo.Create(ctx, file, event); err != nil {
		return nil, err
	}
	metrics.TimelineEventsTotal.WithLabelValues(string(domain.EventFileAdded)).Inc()
	return file, nil
}

func (s *FileService) Get(ctx context.Context, userID, id uuid.UUID) (*domain.File, error) {
	return s.repo.FindByID(ctx, id, userID)
}

func (s *FileService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, id, userID)
}
