package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jobtrackr/jobtracker/internal/core/domain"
)

// KPIs are the headline counters on the dashboard.
type KPIs struct {
	TotalApplications  int64 `json:"total_applications"`
	ActiveApplications int64 `json:"active_applications"`
	Offers             int64 `json:"offers"`
	Rejections         int64 `json:"rejections"`
}

// WeeklySubmission is one Monday-anchored bucket of created applications.
type WeeklySubmission struct {
	WeekStart time.Time `json:"week_start"`
	Count     int       `json:"count"`
}

// StageFunnelEntry is one row of the stage funnel; zero-count stages are
// always present.
type StageFunnelEntry struct {
	Stage domain.Stage `json:"stage"`
	Count int64        `json:"count"`
}

// ActivityEntry is a flattened timeline event for the recent-activity feed.
type ActivityEntry struct {
	ID            uuid.UUID              `json:"id"`
	Type          domain.EventType       `json:"type"`
	CreatedAt     time.Time              `json:"created_at"`
	ApplicationID uuid.UUID              `json:"application_id"`
	Payload       map[string]interface{} `json:"payload"`
}

// Dashboard combines every dashboard view into one payload.
type Dashboard struct {
	KPIs              KPIs               `json:"kpis"`
	WeeklySubmissions []WeeklySubmission `json:"weekly_submissions"`
	StageFunnel       []StageFunnelEntry `json:"stage_funnel"`
	RecentActivity    []ActivityEntry    `json:"recent_activity"`
}

// DashboardService computes the read-only aggregate views.
type DashboardService interface {
	KPIs(ctx context.Context, userID uuid.UUID) (*KPIs, error)
	WeeklySubmissions(ctx context.Context, userID uuid.UUID) ([]WeeklySubmission, error)
	StageFunnel(ctx context.Context, userID uuid.UUID) ([]StageFunnelEntry, error)
	Overview(ctx context.Context, userID uuid.UUID) (*Dashboard, error)
}
