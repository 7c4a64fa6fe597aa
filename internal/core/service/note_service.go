package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jobtrackr/jobtracker/internal/api/metrics"
	"github.com/jobtrackr/jobtracker/internal/core/domain"
	"github.com/jobtrackr/jobtracker/internal/core/ports"
)

// NoteService implements the note use cases. Every operation on the
// per-application routes first verifies that the application belongs to the
// caller; the per-note routes are scoped by the note's own user id.
type NoteService struct {
	repo ports.NoteRepository
	apps ports.ApplicationRepository
	log  zerolog.Logger
}

func NewNoteService(repo ports.NoteRepository, apps ports.ApplicationRepository, log zerolog.Logger) *NoteService {
	return &NoteService{repo: repo, apps: apps, log: log}
}

func (s *NoteService) ListByApplication(ctx context.Context, userID, applicationID uuid.UUID, page, pageSize int) (*ports.NotePage, error) {
	if _, err := s.apps.FindByID(ctx, applicationID, userID); err != nil {
		return nil, err
	}

	page, pageSize = normalizePage(page, pageSize)
	notes, total, err := s.repo.ListByApplication(ctx, applicationID, page, pageSize)
	if err != nil {
		return nil, err
	}

	return &ports.NotePage{
		Notes:      notes,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

func (s *NoteService) Create(ctx context.Context, userID, applicationID uuid.UUID, content string) (*domain.Note, error) {
	if _, err := s.apps.FindByID(ctx, applicationID, userID); err != nil {
		return nil, err
	}

	note := &domain.Note{
		ID:            uuid.New(),
		UserID:        userID,
		ApplicationID: applicationID,
		Content:       content,
	}

	event := domain.NewTimelineEvent(applicationID, domain.EventNoteAdded, map[string]interface{}{
		"note_preview": note.Preview(),
	})

	if err := s.repo.Create(ctx, note, event); err != nil {
		return nil, err
	}
	metrics.TimelineEventsTotal.WithLabelValues(string(domain.EventNoteAdded)).Inc()
	return note, nil
}

func (s *NoteService) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Note, error) {
	return s.repo.FindByID(ctx, id, userID)
}

func (s *NoteService) Update(ctx context.Context, userID, id uuid.UUID, content string) (*domain.Note, error) {
	note, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	note.Content = content
	if err := s.repo.Update(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NoteService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, id, userID)
}
