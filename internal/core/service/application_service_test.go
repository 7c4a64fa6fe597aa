package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jobtrackr/jobtracker/internal/core/domain"
	"github.com/jobtrackr/jobtracker/internal/core/ports"
)

func TestApplicationCreate_DefaultsAndEvent(t *testing.T) {
	repo := newStubApplicationRepo()
	svc := NewApplicationService(repo, testLogger)
	userID := uuid.New()

	app, err := svc.Create(context.Background(), userID, ports.ApplicationInput{
		RoleTitle: "Backend Engineer",
		Company:   "Acme",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if app.Stage != domain.StageDraft {
		t.Errorf("stage = %q, want Draft", app.Stage)
	}
	if app.Priority != domain.PriorityMedium {
		t.Errorf("priority = %q, want Medium", app.Priority)
	}
	if app.Source != domain.SourceOther {
		t.Errorf("source = %q, want Other", app.Source)
	}

	event := repo.lastEvent()
	if event == nil {
		t.Fatal("no timeline event recorded")
	}
	if event.Type != domain.EventCreated {
		t.Errorf("event type = %q, want created", event.Type)
	}
	if event.Payload["company"] != "Acme" {
		t.Errorf("event payload company = %v, want Acme", event.Payload["company"])
	}
}

func TestApplicationGet_WrongOwner(t *testing.T) {
	repo := newStubApplicationRepo()
	svc := NewApplicationService(repo, testLogger)
	owner := uuid.New()

	app, err := svc.Create(context.Background(), owner, ports.ApplicationInput{
		RoleTitle: "SRE", Company: "Acme",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.Get(context.Background(), uuid.New(), app.ID)
	if !errors.Is(err, domain.ErrApplicationNotFound) {
		t.Fatalf("err = %v, want ErrApplicationNotFound", err)
	}
}

func TestApplicationUpdate_StageChangeEvent(t *testing.T) {
	repo := newStubApplicationRepo()
	svc := NewApplicationService(repo, testLogger)
	userID := uuid.New()

	app, err := svc.Create(context.Background(), userID, ports.ApplicationInput{
		RoleTitle: "SRE", Company: "Acme", Stage: domain.StageApplied,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	stage := domain.StageInterview
	if _, err := svc.Update(context.Background(), userID, app.ID, ports.ApplicationPatch{Stage: &stage}); err != nil {
		t.Fatalf("update: %v", err)
	}

	event := repo.lastEvent()
	if event.Type != domain.EventStageChanged {
		t.Fatalf("event type = %q, want stage_changed", event.Type)
	}
	if event.Payload["old_stage"] != "Applied" || event.Payload["new_stage"] != "Interview" {
		t.Errorf("payload = %v, want old Applied / new Interview", event.Payload)
	}
}

func TestApplicationUpdate_SameStageRecordsUpdated(t *testing.T) {
	repo := newStubApplicationRepo()
	svc := NewApplicationService(repo, testLogger)
	userID := uuid.New()

	app, err := svc.Create(context.Background(), userID, ports.ApplicationInput{
		RoleTitle: "SRE", Company: "Acme", Stage: domain.StageApplied,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Supplying the current stage on a general update is not a transition.
	stage := domain.StageApplied
	company := "Acme Corp"
	if _, err := svc.Update(context.Background(), userID, app.ID, ports.ApplicationPatch{
		Stage:   &stage,
		Company: &company,
	}); err != nil {
		t.Fatalf("update: %v", err)
	}

	event := repo.lastEvent()
	if event.Type != domain.EventUpdated {
		t.Fatalf("event type = %q, want updated", event.Type)
	}
	fields, ok := event.Payload["updated_fields"].([]string)
	if !ok {
		t.Fatalf("updated_fields missing from payload %v", event.Payload)
	}
	want := map[string]bool{"company": true, "stage": true}
	for _, f := range fields {
		if !want[f] {
			t.Errorf("unexpected updated field %q", f)
		}
		delete(want, f)
	}
	if len(want) != 0 {
		t.Errorf("missing updated fields: %v", want)
	}
}

func TestApplicationUpdate_EmptyPatchRecordsEmptyFieldList(t *testing.T) {
	repo := newStubApplicationRepo()
	svc := NewApplicationService(repo, testLogger)
	userID := uuid.New()

	app, err := svc.Create(context.Background(), userID, ports.ApplicationInput{
		RoleTitle: "SRE", Company: "Acme",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Update(context.Background(), userID, app.ID, ports.ApplicationPatch{}); err != nil {
		t.Fatalf("update: %v", err)
	}

	event := repo.lastEvent()
	if event.Type != domain.EventUpdated {
		t.Fatalf("event type = %q, want updated", event.Type)
	}
	// The payload must carry [] rather than null.
	fields, ok := event.Payload["updated_fields"].([]string)
	if !ok || fields == nil {
		t.Fatalf("updated_fields = %v, want non-nil empty slice", event.Payload["updated_fields"])
	}
	if len(fields) != 0 {
		t.Errorf("updated_fields = %v, want empty", fields)
	}
}

func TestApplicationUpdateStage_AlwaysRecordsTransition(t *testing.T) {
	repo := newStubApplicationRepo()
	svc := NewApplicationService(repo, testLogger)
	userID := uuid.New()

	app, err := svc.Create(context.Background(), userID, ports.ApplicationInput{
		RoleTitle: "SRE", Company: "Acme", Stage: domain.StageApplied,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Dropping a card back onto its own column still records the event.
	if _, err := svc.UpdateStage(context.Background(), userID, app.ID, domain.StageApplied); err != nil {
		t.Fatalf("update stage: %v", err)
	}

	event := repo.lastEvent()
	if event.Type != domain.EventStageChanged {
		t.Fatalf("event type = %q, want stage_changed", event.Type)
	}
	if event.Payload["old_stage"] != "Applied" || event.Payload["new_stage"] != "Applied" {
		t.Errorf("payload = %v, want Applied -> Applied", event.Payload)
	}
}

func TestApplicationUpdate_ClearNextActionDue(t *testing.T) {
	repo := newStubApplicationRepo()
	svc := NewApplicationService(repo, testLogger)
	userID := uuid.New()

	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	app, err := svc.Create(context.Background(), userID, ports.ApplicationInput{
		RoleTitle: "SRE", Company: "Acme", NextAction: "follow up", NextActionDue: &due,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// A non-nil pointer to a nil value means "clear the date".
	var clearedDue *time.Time
	updated, err := svc.Update(context.Background(), userID, app.ID, ports.ApplicationPatch{
		NextActionDue: &clearedDue,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.NextActionDue != nil {
		t.Errorf("next_action_due = %v, want nil", updated.NextActionDue)
	}
}

func TestApplicationList_ForwardsFilters(t *testing.T) {
	repo := newStubApplicationRepo()
	svc := NewApplicationService(repo, testLogger)
	userID := uuid.New()

	_, err := svc.List(context.Background(), userID, ports.ListApplicationsInput{
		Search:    "acme",
		Stage:     "interview",
		SortBy:    "company",
		SortOrder: "asc",
		Page:      0,
		PageSize:  500,
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	f := repo.listFilter
	if f.UserID != userID {
		t.Errorf("filter user = %v, want %v", f.UserID, userID)
	}
	if f.Stage != domain.StageInterview {
		t.Errorf("filter stage = %q, want Interview", f.Stage)
	}
	if f.SortBy != "company" || f.SortDesc {
		t.Errorf("sort = %q desc=%v, want company asc", f.SortBy, f.SortDesc)
	}
	if f.Page != 1 {
		t.Errorf("page = %d, want 1", f.Page)
	}
	if f.PageSize != 100 {
		t.Errorf("page size = %d, want capped at 100", f.PageSize)
	}
}

func TestApplicationList_UnknownSortFallsBack(t *testing.T) {
	repo := newStubApplicationRepo()
	svc := NewApplicationService(repo, testLogger)

	_, err := svc.List(context.Background(), uuid.New(), ports.ListApplicationsInput{
		SortBy: "password_hash; DROP TABLE users",
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if repo.listFilter.SortBy != "created_at" {
		t.Errorf("sort column = %q, want created_at", repo.listFilter.SortBy)
	}
}
