package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/jobtrackr/jobtracker/internal/core/domain"
)

func seedApplication(repo *stubApplicationRepo, userID uuid.UUID) *domain.Application {
	app := &domain.Application{
		ID:        uuid.New(),
		UserID:    userID,
		RoleTitle: "Backend Engineer",
		Company:   "Acme",
		Stage:     domain.StageApplied,
	}
	repo.apps[app.ID] = app
	return app
}

func TestNoteCreate_RecordsPreviewEvent(t *testing.T) {
	apps := newStubApplicationRepo()
	notes := newStubNoteRepo()
	svc := NewNoteService(notes, apps, testLogger)
	userID := uuid.New()
	app := seedApplication(apps, userID)

	note, err := svc.Create(context.Background(), userID, app.ID, "Spoke with the hiring manager about the team")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if note.ApplicationID != app.ID || note.UserID != userID {
		t.Errorf("note ownership = %+v", note)
	}

	if len(notes.events) != 1 {
		t.Fatalf("events = %d, want 1", len(notes.events))
	}
	event := notes.events[0]
	if event.Type != domain.EventNoteAdded {
		t.Errorf("event type = %q, want note_added", event.Type)
	}
	if event.Payload["note_preview"] != "Spoke with the hiring manager about the team" {
		t.Errorf("preview = %v", event.Payload["note_preview"])
	}
}

func TestNoteCreate_LongContentTruncatedInPreview(t *testing.T) {
	apps := newStubApplicationRepo()
	notes := newStubNoteRepo()
	svc := NewNoteService(notes, apps, testLogger)
	userID := uuid.New()
	app := seedApplication(apps, userID)

	content := strings.Repeat("x", 150)
	if _, err := svc.Create(context.Background(), userID, app.ID, content); err != nil {
		t.Fatalf("create: %v", err)
	}

	preview, _ := notes.events[0].Payload["note_preview"].(string)
	if preview != strings.Repeat("x", 100)+"..." {
		t.Errorf("preview = %q, want first 100 chars plus ellipsis", preview)
	}
}

func TestNoteCreate_ForeignApplication(t *testing.T) {
	apps := newStubApplicationRepo()
	notes := newStubNoteRepo()
	svc := NewNoteService(notes, apps, testLogger)
	app := seedApplication(apps, uuid.New())

	_, err := svc.Create(context.Background(), uuid.New(), app.ID, "sneaky")
	if !errors.Is(err, domain.ErrApplicationNotFound) {
		t.Fatalf("err = %v, want ErrApplicationNotFound", err)
	}
	if len(notes.notes) != 0 {
		t.Error("note persisted for a foreign application")
	}
}

func TestNoteList_ForeignApplication(t *testing.T) {
	apps := newStubApplicationRepo()
	svc := NewNoteService(newStubNoteRepo(), apps, testLogger)
	app := seedApplication(apps, uuid.New())

	_, err := svc.ListByApplication(context.Background(), uuid.New(), app.ID, 1, 20)
	if !errors.Is(err, domain.ErrApplicationNotFound) {
		t.Fatalf("err = %v, want ErrApplicationNotFound", err)
	}
}

func TestNoteUpdate_NoTimelineEvent(t *testing.T) {
	apps := newStubApplicationRepo()
	notes := newStubNoteRepo()
	svc := NewNoteService(notes, apps, testLogger)
	userID := uuid.New()
	app := seedApplication(apps, userID)

	note, err := svc.Create(context.Background(), userID, app.ID, "first draft")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	before := len(notes.events)

	updated, err := svc.Update(context.Background(), userID, note.ID, "second draft")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Content != "second draft" {
		t.Errorf("content = %q", updated.Content)
	}
	if len(notes.events) != before {
		t.Error("update should not append timeline events")
	}
}

func TestNoteGet_WrongOwner(t *testing.T) {
	apps := newStubApplicationRepo()
	notes := newStubNoteRepo()
	svc := NewNoteService(notes, apps, testLogger)
	userID := uuid.New()
	app := seedApplication(apps, userID)

	note, err := svc.Create(context.Background(), userID, app.ID, "private")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Get(context.Background(), uuid.New(), note.ID); !errors.Is(err, domain.ErrNoteNotFound) {
		t.Fatalf("err = %v, want ErrNoteNotFound", err)
	}
}

func TestNoteDelete_WrongOwner(t *testing.T) {
	apps := newStubApplicationRepo()
	notes := newStubNoteRepo()
	svc := NewNoteService(notes, apps, testLogger)
	userID := uuid.New()
	app := seedApplication(apps, userID)

	note, err := svc.Create(context.Background(), userID, app.ID, "keep me")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(context.Background(), uuid.New(), note.ID); !errors.Is(err, domain.ErrNoteNotFound) {
		t.Fatalf("err = %v, want ErrNoteNotFound", err)
	}
	if len(notes.notes) != 1 {
		t.Error("note deleted by a different user")
	}
}
