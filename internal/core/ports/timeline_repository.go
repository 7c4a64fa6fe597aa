package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/jobtrackr/jobtracker/internal/core/domain"
)

// TimelineRepository reads the append-only event log. Writes happen only
// through the mutation repositories, inside the triggering transaction.
type TimelineRepository interface {
	// ListByApplication returns the full history, newest first.
	ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]*domain.TimelineEvent, error)
	// ListRecentByUser returns the newest events across every application
	// the user owns, capped at limit.
	ListRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.TimelineEvent, error)
}
