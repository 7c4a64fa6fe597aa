package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jobtrackr/jobtracker/internal/core/domain"
)

// ApplicationInput carries all data for creating an application.
type ApplicationInput struct {
	RoleTitle      string
	Company        string
	Location       string
	EmploymentType *domain.EmploymentType
	SalaryRange    string
	Source         domain.Source
	Stage          domain.Stage
	Priority       domain.Priority
	NextAction     string
	NextActionDue  *time.Time
}

// ApplicationPatch updates an application; nil fields are left unchanged.
// NextActionDue uses a double pointer so "clear the date" (non-nil pointer
// to nil) is distinguishable from "leave it alone" (nil).
type ApplicationPatch struct {
	RoleTitle      *string
	Company        *string
	Location       *string
	EmploymentType **domain.EmploymentType
	SalaryRange    *string
	Source         *domain.Source
	Stage          *domain.Stage
	Priority       *domain.Priority
	NextAction     *string
	NextActionDue  **time.Time
}

// ListApplicationsInput carries the list endpoint's query parameters before
// normalization.
type ListApplicationsInput struct {
	Search    string
	Stage     string
	Priority  string
	Source    string
	SortBy    string
	SortOrder string // "asc" or "desc" (default)
	Page      int
	PageSize  int
}

// ApplicationPage is one page of list results.
type ApplicationPage struct {
	Applications []*domain.Application
	Total        int64
	Page         int
	PageSize     int
	TotalPages   int
}

// ApplicationService defines use-case operations for applications. Every
// operation is scoped to the calling user's rows.
type ApplicationService interface {
	List(ctx context.Context, userID uuid.UUID, in ListApplicationsInput) (*ApplicationPage, error)
	Create(ctx context.Context, userID uuid.UUID, in ApplicationInput) (*domain.Application, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*domain.Application, error)
	Update(ctx context.Context, userID, id uuid.UUID, patch ApplicationPatch) (*domain.Application, error)
	// UpdateStage is the dedicated stage-patch operation (drag and drop);
	// it always records a stage_changed event, even when the stage did not
	// actually change.
	UpdateStage(ctx context.Context, userID, id uuid.UUID, stage domain.Stage) (*domain.Application, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
