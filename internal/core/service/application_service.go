package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jobtrackr/jobtracker/internal/api/metrics"
	"github.com/jobtrackr/jobtracker/internal/core/domain"
	"github.com/jobtrackr/jobtracker/internal/core/ports"
)

// ApplicationService implements the application use cases. Every mutation
// that must leave an audit trail hands the timeline event to the repository
// so it is written in the same transaction as the row change.
type ApplicationService struct {
	repo ports.ApplicationRepository
	log  zerolog.Logger
}

func NewApplicationService(repo ports.ApplicationRepository, log zerolog.Logger) *ApplicationService {
	return &ApplicationService{repo: repo, log: log}
}

func (s *ApplicationService) List(ctx context.Context, userID uuid.UUID, in ports.ListApplicationsInput) (*ports.ApplicationPage, error) {
	page, pageSize := normalizePage(in.Page, in.PageSize)

	filter := ports.ListApplicationsFilter{
		UserID:   userID,
		Search:   in.Search,
		SortBy:   domain.SortColumn(in.SortBy),
		SortDesc: in.SortOrder != "asc",
		Page:     page,
		PageSize: pageSize,
	}
	if v, ok := domain.ParseStage(in.Stage); ok {
		filter.Stage = v
	}
	if v, ok := domain.ParsePriority(in.Priority); ok {
		filter.Priority = v
	}
	if v, ok := domain.ParseSource(in.Source); ok {
		filter.Source = v
	}

	apps, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.ApplicationPage{
		Applications: apps,
		Total:        total,
		Page:         page,
		PageSize:     pageSize,
		TotalPages:   totalPages(total, pageSize),
	}, nil
}

func (s *ApplicationService) Create(ctx context.Context, userID uuid.UUID, in ports.ApplicationInput) (*domain.Application, error) {
	app := &domain.Application{
		ID:             uuid.New(),
		UserID:         userID,
		RoleTitle:      in.RoleTitle,
		Company:        in.Company,
		Location:       in.Location,
		EmploymentType: in.EmploymentType,
		SalaryRange:    in.SalaryRange,
		Source:         in.Source,
		Stage:          in.Stage,
		Priority:       in.Priority,
		NextAction:     in.NextAction,
		NextActionDue:  in.NextActionDue,
	}
	if app.Source == "" {
		app.Source = domain.SourceOther
	}
	if app.Stage == "" {
		app.Stage = domain.StageDraft
	}
	if app.Priority == "" {
		app.Priority = domain.PriorityMedium
	}

	event := domain.NewTimelineEvent(app.ID, domain.EventCreated, map[string]interface{}{
		"role_title": app.RoleTitle,
		"company":    app.Company,
	})

	if err := s.repo.Create(ctx, app, event); err != nil {
		s.log.Error().Err(err).Msg("failed to create application")
		return nil, err
	}

	metrics.ApplicationsCreatedTotal.WithLabelValues("api").Inc()
	metrics.TimelineEventsTotal.WithLabelValues(string(domain.EventCreated)).Inc()

	s.log.Info().
		Str("application_id", app.ID.String()).
		Str("company", app.Company).
		Msg("application created")
	return app, nil
}

func (s *ApplicationService) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Application, error) {
	return s.repo.FindByID(ctx, id, userID)
}

func (s *ApplicationService) Update(ctx context.Context, userID, id uuid.UUID, patch ports.ApplicationPatch) (*domain.Application, error) {
	app, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	oldStage := app.Stage
	changed := applyApplicationPatch(app, patch)

	// A stage change gets its own event type with before/after context; any
	// other update records the set of supplied field names.
	var event *domain.TimelineEvent
	if patch.Stage != nil && oldStage != app.Stage {
		event = domain.NewTimelineEvent(app.ID, domain.EventStageChanged, map[string]interface{}{
			"old_stage": string(oldStage),
			"new_stage": string(app.Stage),
		})
	} else {
		event = domain.NewTimelineEvent(app.ID, domain.EventUpdated, map[string]interface{}{
			"updated_fields": changed,
		})
	}

	if err := s.repo.Update(ctx, app, event); err != nil {
		return nil, err
	}

	metrics.TimelineEventsTotal.WithLabelValues(string(event.Type)).Inc()
	if event.Type == domain.EventStageChanged {
		metrics.StageChangesTotal.WithLabelValues(string(app.Stage)).Inc()
	}
	return app, nil
}

func (s *ApplicationService) UpdateStage(ctx context.Context, userID, id uuid.UUID, stage domain.Stage) (*domain.Application, error) {
	app, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	oldStage := app.Stage
	app.Stage = stage

	// The drag-and-drop route records the transition unconditionally, even
	// when a card is dropped back onto its own column.
	event := domain.NewTimelineEvent(app.ID, domain.EventStageChanged, map[string]interface{}{
		"old_stage": string(oldStage),
		"new_stage": string(stage),
	})

	if err := s.repo.Update(ctx, app, event); err != nil {
		return nil, err
	}

	metrics.StageChangesTotal.WithLabelValues(string(stage)).Inc()
	metrics.TimelineEventsTotal.WithLabelValues(string(domain.EventStageChanged)).Inc()
	return app, nil
}

func (s *ApplicationService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, id, userID)
}

// applyApplicationPatch merges supplied fields into app and returns the
// names of the fields that were supplied, in a stable order. The slice is
// never nil so an empty patch serializes as [] in the event payload.
func applyApplicationPatch(app *domain.Application, p ports.ApplicationPatch) []string {
	changed := []string{}
	if p.RoleTitle != nil {
		app.RoleTitle = *p.RoleTitle
		changed = append(changed, "role_title")
	}
	if p.Company != nil {
		app.Company = *p.Company
		changed = append(changed, "company")
	}
	if p.Location != nil {
		app.Location = *p.Location
		changed = append(changed, "location")
	}
	if p.EmploymentType != nil {
		app.EmploymentType = *p.EmploymentType
		changed = append(changed, "employment_type")
	}
	if p.SalaryRange != nil {
		app.SalaryRange = *p.SalaryRange
		changed = append(changed, "salary_range")
	}
	if p.Source != nil {
		app.Source = *p.Source
		changed = append(changed, "source")
	}
	if p.Stage != nil {
		app.Stage = *p.Stage
		changed = append(changed, "stage")
	}
	if p.Priority != nil {
		app.Priority = *p.Priority
		changed = append(changed, "priority")
	}
	if p.NextAction != nil {
		app.NextAction = *p.NextAction
		changed = append(changed, "next_action")
	}
	if p.NextActionDue != nil {
		app.NextActionDue = *p.NextActionDue
		changed = append(changed, "next_action_due")
	}
	return changed
}
