package ports

import (
	"context"
	"time"
)

// ReminderItem is one due or overdue next action, ready for rendering.
type ReminderItem struct {
	ID            string
	Company       string
	RoleTitle     string
	NextAction    string
	NextActionDue string // YYYY-MM-DD
	IsOverdue     bool
}

// ReminderSender renders and dispatches one reminder email.
type ReminderSender interface {
	SendDailyReminders(ctx context.Context, toEmail, userName string, items []ReminderItem) error
}

// SendGuard prevents a user from receiving the same day's reminder twice,
// e.g. when the process restarts after the morning run.
type SendGuard interface {
	AlreadySent(ctx context.Context, userID string, day time.Time) (bool, error)
	MarkSent(ctx context.Context, userID string, day time.Time) error
}
