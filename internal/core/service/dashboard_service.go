package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jobtrackr/jobtracker/internal/core/domain"
	"github.com/jobtrackr/jobtracker/internal/core/ports"
)

const (
	weeklyWindowWeeks  = 6
	recentActivitySize = 10
)

// DashboardService computes the read-only aggregate views. The time source
// is injected so the Monday-anchored weekly window is testable.
type DashboardService struct {
	apps     ports.ApplicationRepository
	timeline ports.TimelineRepository
	now      func() time.Time
	log      zerolog.Logger
}

func NewDashboardService(apps ports.ApplicationRepository, timeline ports.TimelineRepository, now func() time.Time, log zerolog.Logger) *DashboardService {
	if now == nil {
		now = time.Now
	}
	return &DashboardService{apps: apps, timeline: timeline, now: now, log: log}
}

func (s *DashboardService) KPIs(ctx context.Context, userID uuid.UUID) (*ports.KPIs, error) {
	counts, err := s.apps.CountByStage(ctx, userID)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, c := range counts {
		total += c
	}

	return &ports.KPIs{
		TotalApplications:  total,
		ActiveApplications: total - counts[domain.StageRejected],
		Offers:             counts[domain.StageOffer],
		Rejections:         counts[domain.StageRejected],
	}, nil
}

func (s *DashboardService) WeeklySubmissions(ctx context.Context, userID uuid.UUID) ([]ports.WeeklySubmission, error) {
	windowStart := weekStart(s.now()).AddDate(0, 0, -7*(weeklyWindowWeeks-1))

	buckets := make(map[time.Time]int, weeklyWindowWeeks)
	for i := 0; i < weeklyWindowWeeks; i++ {
		buckets[windowStart.AddDate(0, 0, 7*i)] = 0
	}

	created, err := s.apps.CreationTimesSince(ctx, userID, windowStart)
	if err != nil {
		return nil, err
	}
	for _, t := range created {
		ws := weekStart(t)
		if _, ok := buckets[ws]; ok {
			buckets[ws]++
		}
	}

	out := make([]ports.WeeklySubmission, 0, weeklyWindowWeeks)
	for ws, count := range buckets {
		out = append(out, ports.WeeklySubmission{WeekStart: ws, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WeekStart.Before(out[j].WeekStart) })
	return out, nil
}

func (s *DashboardService) StageFunnel(ctx context.Context, userID uuid.UUID) ([]ports.StageFunnelEntry, error) {
	counts, err := s.apps.CountByStage(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Every defined stage appears, zero-count ones included.
	out := make([]ports.StageFunnelEntry, 0, len(domain.Stages))
	for _, stage := range domain.Stages {
		out = append(out, ports.StageFunnelEntry{Stage: stage, Count: counts[stage]})
	}
	return out, nil
}

func (s *DashboardService) Overview(ctx context.Context, userID uuid.UUID) (*ports.Dashboard, error) {
	kpis, err := s.KPIs(ctx, userID)
	if err != nil {
		return nil, err
	}
	weekly, err := s.WeeklySubmissions(ctx, userID)
	if err != nil {
		return nil, err
	}
	funnel, err := s.StageFunnel(ctx, userID)
	if err != nil {
		return nil, err
	}

	events, err := s.timeline.ListRecentByUser(ctx, userID, recentActivitySize)
	if err != nil {
		return nil, err
	}
	activity := make([]ports.ActivityEntry, 0, len(events))
	for _, e := range events {
		activity = append(activity, ports.ActivityEntry{
			ID:            e.ID,
			Type:          e.Type,
			CreatedAt:     e.CreatedAt,
			ApplicationID: e.ApplicationID,
			Payload:       e.Payload,
		})
	}

	return &ports.Dashboard{
		KPIs:              *kpis,
		WeeklySubmissions: weekly,
		StageFunnel:       funnel,
		RecentActivity:    activity,
	}, nil
}

// weekStart truncates t to the Monday of its week, at midnight UTC.
func weekStart(t time.Time) time.Time {
	t = t.UTC()
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, -daysSinceMonday)
}
