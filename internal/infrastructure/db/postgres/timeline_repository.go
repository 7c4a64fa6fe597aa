package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jobtrackr/jobtracker/internal/core/domain"
)

// TimelineRepository implements ports.TimelineRepository. It is read-only:
// events are inserted by the mutation repositories inside the triggering
// transaction, and rows are removed only by the application cascade.
type TimelineRepository struct {
	db *gorm.DB
}

func NewTimelineRepository(db *gorm.DB) *TimelineRepository {
	return &TimelineRepository{db: db}
}

func (r *TimelineRepository) ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]*domain.TimelineEvent, error) {
	var events []*domain.TimelineEvent
	err := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("created_at DESC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *TimelineRepository) ListRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.TimelineEvent, error) {
	var events []*domain.TimelineEvent
	err := r.db.WithContext(ctx).
		Joins("JOIN applications ON applications.id = timeline_events.application_id").
		Where("applications.user_id = ?", userID).
		Order("timeline_events.created_at DESC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
