package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jobtrackr/jobtracker/internal/core/ports"
)

// TimelineService reads an application's full event history.
type TimelineService struct {
	repo ports.TimelineRepository
	apps ports.ApplicationRepository
	log  zerolog.Logger
}

func NewTimelineService(repo ports.TimelineRepository, apps ports.ApplicationRepository, log zerolog.Logger) *TimelineService {
	return &TimelineService{repo: repo, apps: apps, log: log}
}

// ListByApplication returns every event, newest first. The history is small
// by construction, so there is no pagination here.
func (s *TimelineService) ListByApplication(ctx context.Context, userID, applicationID uuid.UUID) (*ports.TimelineList, error) {
	if _, err := s.apps.FindByID(ctx, applicationID, userID); err != nil {
		return nil, err
	}

	events, err := s.repo.ListByApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	return &ports.TimelineList{Events: events, Total: len(events)}, nil
}
