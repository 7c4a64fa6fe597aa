package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jobtrackr/jobtracker/internal/core/domain"
)

// ListApplicationsFilter carries all query parameters for listing
// applications. UserID is always enforced by the service layer.
type ListApplicationsFilter struct {
	UserID   uuid.UUID
	Search   string          // partial match on role_title or company
	Stage    domain.Stage    // optional
	Priority domain.Priority // optional
	Source   domain.Source   // optional
	SortBy   string          // validated column name, default created_at
	SortDesc bool
	Page     int  // 1-based
	PageSize int  // capped at 100 by the service
	NoPaging bool // set for CSV export: return every matching row
}

// ApplicationRepository defines persistence operations for applications.
// Mutations that must leave an audit trail accept the timeline event to
// insert in the same transaction; a nil event writes only the row.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application, event *domain.TimelineEvent) error
	// CreateBatch inserts all applications atomically (CSV import).
	CreateBatch(ctx context.Context, apps []*domain.Application) error
	// FindByID retrieves an application scoped to its owner. A row owned by
	// another user reports domain.ErrApplicationNotFound.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*domain.Application, error)
	List(ctx context.Context, filter ListApplicationsFilter) ([]*domain.Application, int64, error)
	Update(ctx context.Context, app *domain.Application, event *domain.TimelineEvent) error
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// CountByStage returns per-stage counts for the dashboard; stages with
	// no rows are absent from the map.
	CountByStage(ctx context.Context, userID uuid.UUID) (map[domain.Stage]int64, error)
	// CreationTimesSince returns created_at for every application the user
	// created at or after since (weekly submission buckets).
	CreationTimesSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error)
	// ListDueActions returns applications with a non-empty next action due
	// on or before the given day, for the reminder job.
	ListDueActions(ctx context.Context, userID uuid.UUID, due time.Time) ([]*domain.Application, error)
}
