package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/jobtrackr/jobtracker/internal/core/domain"
	"github.com/jobtrackr/jobtracker/internal/core/ports"
)

func TestContactCreate_LinkedEmitsEvent(t *testing.T) {
	apps := newStubApplicationRepo()
	contacts := newStubContactRepo()
	svc := NewContactService(contacts, apps, testLogger)
	userID := uuid.New()
	app := seedApplication(apps, userID)

	contact, err := svc.Create(context.Background(), userID, ports.ContactInput{
		ApplicationID: &app.ID,
		Name:          "Jordan Recruiter",
		Role:          "Recruiter",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if contact.ApplicationID == nil || *contact.ApplicationID != app.ID {
		t.Errorf("contact link = %v, want %v", contact.ApplicationID, app.ID)
	}

	if len(contacts.events) != 1 {
		t.Fatalf("events = %d, want 1", len(contacts.events))
	}
	event := contacts.events[0]
	if event.Type != domain.EventContactAdded {
		t.Errorf("event type = %q, want contact_added", event.Type)
	}
	if event.Payload["contact_name"] != "Jordan Recruiter" || event.Payload["contact_role"] != "Recruiter" {
		t.Errorf("payload = %v", event.Payload)
	}
}

func TestContactCreate_UnlinkedEmitsNothing(t *testing.T) {
	contacts := newStubContactRepo()
	svc := NewContactService(contacts, newStubApplicationRepo(), testLogger)

	if _, err := svc.Create(context.Background(), uuid.New(), ports.ContactInput{Name: "Floating Contact"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(contacts.events) != 0 {
		t.Error("unlinked contact should not touch any timeline")
	}
}

func TestContactCreate_ForeignApplicationLink(t *testing.T) {
	apps := newStubApplicationRepo()
	contacts := newStubContactRepo()
	svc := NewContactService(contacts, apps, testLogger)
	app := seedApplication(apps, uuid.New())

	_, err := svc.Create(context.Background(), uuid.New(), ports.ContactInput{
		ApplicationID: &app.ID,
		Name:          "Intruder",
	})
	if !errors.Is(err, domain.ErrApplicationNotFound) {
		t.Fatalf("err = %v, want ErrApplicationNotFound", err)
	}
	if len(contacts.contacts) != 0 {
		t.Error("contact persisted despite foreign link")
	}
}

func TestContactUpdate_NeverEmitsEvent(t *testing.T) {
	apps := newStubApplicationRepo()
	contacts := newStubContactRepo()
	svc := NewContactService(contacts, apps, testLogger)
	userID := uuid.New()
	app := seedApplication(apps, userID)

	contact, err := svc.Create(context.Background(), userID, ports.ContactInput{Name: "Jordan"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Linking on update changes the contact but leaves the timeline alone.
	link := &app.ID
	updated, err := svc.Update(context.Background(), userID, contact.ID, ports.ContactPatch{
		ApplicationID: &link,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ApplicationID == nil || *updated.ApplicationID != app.ID {
		t.Errorf("link = %v, want %v", updated.ApplicationID, app.ID)
	}
	if len(contacts.events) != 0 {
		t.Error("update appended a timeline event")
	}
}

func TestContactUpdate_ClearLink(t *testing.T) {
	apps := newStubApplicationRepo()
	contacts := newStubContactRepo()
	svc := NewContactService(contacts, apps, testLogger)
	userID := uuid.New()
	app := seedApplication(apps, userID)

	contact, err := svc.Create(context.Background(), userID, ports.ContactInput{
		ApplicationID: &app.ID,
		Name:          "Jordan",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// A non-nil pointer to a nil link means "detach".
	var cleared *uuid.UUID
	updated, err := svc.Update(context.Background(), userID, contact.ID, ports.ContactPatch{
		ApplicationID: &cleared,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ApplicationID != nil {
		t.Errorf("link = %v, want nil", updated.ApplicationID)
	}
}

func TestContactUpdate_RelinkToForeignApplication(t *testing.T) {
	apps := newStubApplicationRepo()
	contacts := newStubContactRepo()
	svc := NewContactService(contacts, apps, testLogger)
	userID := uuid.New()
	foreign := seedApplication(apps, uuid.New())

	contact, err := svc.Create(context.Background(), userID, ports.ContactInput{Name: "Jordan"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	link := &foreign.ID
	_, err = svc.Update(context.Background(), userID, contact.ID, ports.ContactPatch{ApplicationID: &link})
	if !errors.Is(err, domain.ErrApplicationNotFound) {
		t.Fatalf("err = %v, want ErrApplicationNotFound", err)
	}
}

func TestContactGet_WrongOwner(t *testing.T) {
	contacts := newStubContactRepo()
	svc := NewContactService(contacts, newStubApplicationRepo(), testLogger)

	contact, err := svc.Create(context.Background(), uuid.New(), ports.ContactInput{Name: "Private"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Get(context.Background(), uuid.New(), contact.ID); !errors.Is(err, domain.ErrContactNotFound) {
		t.Fatalf("err = %v, want ErrContactNotFound", err)
	}
}
