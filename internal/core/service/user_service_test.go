package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/jobtrackr/jobtracker/internal/core/domain"
	"github.com/jobtrackr/jobtracker/internal/core/ports"
)

func TestUserUpdate_PartialPatch(t *testing.T) {
	users := newStubUserRepo()
	auth := NewAuthService(users, "secret", 0, 0, testLogger)
	svc := NewUserService(users, testLogger)

	user, err := auth.Signup(context.Background(), "Alice", "alice@example.com", "hunter2!hunter2")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	reminderTime := "18:00"
	updated, err := svc.Update(context.Background(), user.ID, ports.UserPatch{
		ReminderTime: &reminderTime,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.ReminderTime != "18:00" {
		t.Errorf("reminder time = %q, want 18:00", updated.ReminderTime)
	}
	// Untouched fields survive the patch.
	if updated.Name != "Alice" || updated.Email != "alice@example.com" {
		t.Errorf("patch clobbered other fields: %+v", updated)
	}
	if !updated.EmailRemindersEnabled {
		t.Error("patch clobbered reminder flag")
	}
}

func TestUserChangePassword(t *testing.T) {
	users := newStubUserRepo()
	auth := NewAuthService(users, "secret", 0, 0, testLogger)
	svc := NewUserService(users, testLogger)

	user, err := auth.Signup(context.Background(), "Alice", "alice@example.com", "old-password-1")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	if err := svc.ChangePassword(context.Background(), user.ID, "wrong", "new-password-1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong current err = %v, want ErrInvalidCredentials", err)
	}

	if err := svc.ChangePassword(context.Background(), user.ID, "old-password-1", "new-password-1"); err != nil {
		t.Fatalf("change password: %v", err)
	}

	stored, err := users.FindByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("new-password-1")) != nil {
		t.Error("new password does not verify against the stored hash")
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("old-password-1")) == nil {
		t.Error("old password still verifies")
	}
}

func TestUserDelete(t *testing.T) {
	users := newStubUserRepo()
	auth := NewAuthService(users, "secret", 0, 0, testLogger)
	svc := NewUserService(users, testLogger)

	user, err := auth.Signup(context.Background(), "Alice", "alice@example.com", "hunter2!hunter2")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	if err := svc.Delete(context.Background(), user.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), user.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("err after delete = %v, want ErrUserNotFound", err)
	}
}
