package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/jobtrackr/jobtracker/internal/core/domain"
)

// TimelineList is the full history of one application.
type TimelineList struct {
	Events []*domain.TimelineEvent
	Total  int
}

// TimelineService reads an application's event history.
type TimelineService interface {
	ListByApplication(ctx context.Context, userID, applicationID uuid.UUID) (*TimelineList, error)
}
