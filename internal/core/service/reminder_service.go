package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobtrackr/jobtracker/internal/api/metrics"
	"github.com/jobtrackr/jobtracker/internal/core/domain"
	"github.com/jobtrackr/jobtracker/internal/core/ports"
)

// ReminderService runs the daily reminder sweep. The clock and the sender
// are injected so the job is testable without SMTP or a real calendar.
type ReminderService struct {
	users  ports.UserRepository
	apps   ports.ApplicationRepository
	sender ports.ReminderSender
	guard  ports.SendGuard // optional
	now    func() time.Time
	log    zerolog.Logger
}

func NewReminderService(
	users ports.UserRepository,
	apps ports.ApplicationRepository,
	sender ports.ReminderSender,
	guard ports.SendGuard,
	now func() time.Time,
	log zerolog.Logger,
) *ReminderService {
	if now == nil {
		now = time.Now
	}
	return &ReminderService{users: users, apps: apps, sender: sender, guard: guard, now: now, log: log}
}

// Run sends reminder emails to every user with reminders enabled and at
// least one action due today or earlier. A failure for one user is logged
// and never blocks the rest of the sweep.
func (s *ReminderService) Run(ctx context.Context) error {
	s.log.Info().Msg("starting daily reminder job")

	today := dateOf(s.now())
	users, err := s.users.ListReminderEnabled(ctx)
	if err != nil {
		return err
	}

	sent := 0
	for _, user := range users {
		if s.guard != nil {
			done, err := s.guard.AlreadySent(ctx, user.ID.String(), today)
			if err != nil {
				s.log.Warn().Err(err).Str("user_id", user.ID.String()).Msg("send guard check failed, sending anyway")
			} else if done {
				metrics.RemindersSentTotal.WithLabelValues("skipped").Inc()
				s.log.Debug().Str("user_id", user.ID.String()).Msg("reminder already sent today")
				continue
			}
		}

		items, err := s.itemsFor(ctx, user, today)
		if err != nil {
			s.log.Error().Err(err).Str("user_id", user.ID.String()).Msg("failed to collect reminder items")
			continue
		}
		if len(items) == 0 {
			continue
		}

		if err := s.sender.SendDailyReminders(ctx, user.Email, user.Name, items); err != nil {
			metrics.RemindersSentTotal.WithLabelValues("failed").Inc()
			s.log.Error().Err(err).Str("user_id", user.ID.String()).Msg("failed to send reminder email")
			continue
		}

		if s.guard != nil {
			if err := s.guard.MarkSent(ctx, user.ID.String(), today); err != nil {
				s.log.Warn().Err(err).Str("user_id", user.ID.String()).Msg("failed to mark reminder sent")
			}
		}

		sent++
		metrics.RemindersSentTotal.WithLabelValues("sent").Inc()
		s.log.Info().Str("user_id", user.ID.String()).Int("items", len(items)).Msg("reminder sent")
	}

	s.log.Info().Int("sent", sent).Int("users", len(users)).Msg("daily reminder job completed")
	return nil
}

func (s *ReminderService) itemsFor(ctx context.Context, user *domain.User, today time.Time) ([]ports.ReminderItem, error) {
	apps, err := s.apps.ListDueActions(ctx, user.ID, today)
	if err != nil {
		return nil, err
	}

	items := make([]ports.ReminderItem, 0, len(apps))
	for _, app := range apps {
		if app.NextActionDue == nil {
			continue
		}
		due := dateOf(*app.NextActionDue)
		items = append(items, ports.ReminderItem{
			ID:            app.ID.String(),
			Company:       app.Company,
			RoleTitle:     app.RoleTitle,
			NextAction:    app.NextAction,
			NextActionDue: due.Format("2006-01-02"),
			IsOverdue:     due.Before(today),
		})
	}
	return items, nil
}

// dateOf truncates t to midnight UTC.
func dateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
