package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jobtrackr/jobtracker/internal/api/metrics"
	"github.com/jobtrackr/jobtracker/internal/core/domain"
	"github.com/jobtrackr/jobtracker/internal/core/ports"
)

// exportColumns is the fixed export column order; import tolerates any
// subset or superset but requires role_title and company per row.
var exportColumns = []string{
	"role_title", "company", "location", "employment_type", "salary_range",
	"source", "stage", "priority", "next_action", "next_action_due",
	"created_at", "updated_at",
}

// dueDateLayouts are tried in order when parsing next_action_due.
var dueDateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"02/01/2006",
	"2006-01-02 15:04:05",
}

// CSVService maps applications to and from the flat exchange format.
type CSVService struct {
	apps ports.ApplicationRepository
	log  zerolog.Logger
}

func NewCSVService(apps ports.ApplicationRepository, log zerolog.Logger) *CSVService {
	return &CSVService{apps: apps, log: log}
}

// Import parses a header-driven CSV stream. Rows failing validation are
// reported and skipped; all valid rows are inserted in one transaction.
func (s *CSVService) Import(ctx context.Context, userID uuid.UUID, r io.Reader) (*ports.ImportReport, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	report := &ports.ImportReport{Errors: []string{}}
	var apps []*domain.Application

	// Data rows are numbered from 2: the header occupies row 1.
	for rowNum := 2; ; rowNum++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		report.TotalRows++
		app, rowErrs := parseImportRow(record, columns, rowNum)
		if len(rowErrs) > 0 {
			report.Errors = append(report.Errors, rowErrs...)
			continue
		}

		app.ID = uuid.New()
		app.UserID = userID
		apps = append(apps, app)
		report.SuccessfulImports++
	}

	if len(apps) > 0 {
		if err := s.apps.CreateBatch(ctx, apps); err != nil {
			return nil, fmt.Errorf("import applications: %w", err)
		}
	}

	metrics.CSVImportRowsTotal.WithLabelValues("imported").Add(float64(report.SuccessfulImports))
	metrics.CSVImportRowsTotal.WithLabelValues("rejected").Add(float64(report.TotalRows - report.SuccessfulImports))
	metrics.ApplicationsCreatedTotal.WithLabelValues("csv_import").Add(float64(report.SuccessfulImports))

	s.log.Info().
		Int("total_rows", report.TotalRows).
		Int("imported", report.SuccessfulImports).
		Int("errors", len(report.Errors)).
		Msg("csv import finished")
	return report, nil
}

// parseImportRow validates one record. Unknown enum strings fall back to
// documented defaults without failing the row; only missing required fields
// and unparseable dates produce errors.
func parseImportRow(record []string, columns map[string]int, rowNum int) (*domain.Application, []string) {
	field := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var errs []string
	app := &domain.Application{}

	if v := field("role_title"); v != "" {
		app.RoleTitle = v
	} else {
		errs = append(errs, fmt.Sprintf("Row %d: role_title is required", rowNum))
	}
	if v := field("company"); v != "" {
		app.Company = v
	} else {
		errs = append(errs, fmt.Sprintf("Row %d: company is required", rowNum))
	}

	app.Location = field("location")
	app.SalaryRange = field("salary_range")
	app.NextAction = field("next_action")

	app.Stage = domain.StageDraft
	if v, ok := domain.ParseStage(field("stage")); ok {
		app.Stage = v
	}
	app.Priority = domain.PriorityMedium
	if v, ok := domain.ParsePriority(field("priority")); ok {
		app.Priority = v
	}
	app.Source = domain.SourceOther
	if v, ok := domain.ParseSource(field("source")); ok {
		app.Source = v
	}
	if v, ok := domain.ParseEmploymentType(field("employment_type")); ok {
		app.EmploymentType = &v
	}

	if raw := field("next_action_due"); raw != "" {
		due, err := parseDueDate(raw)
		if err != nil {
			errs = append(errs, fmt.Sprintf("Row %d: Invalid next_action_due date format", rowNum))
		} else {
			app.NextActionDue = &due
		}
	}

	return app, errs
}

// parseDueDate tries each supported layout in priority order.
func parseDueDate(s string) (time.Time, error) {
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", s)
}

// Export renders the caller's applications (honoring the list filters) in
// the fixed column order. Nullable fields render as empty strings.
func (s *CSVService) Export(ctx context.Context, userID uuid.UUID, filter ports.ExportFilter) (string, error) {
	repoFilter := ports.ListApplicationsFilter{
		UserID:   userID,
		Search:   filter.Search,
		SortBy:   "created_at",
		SortDesc: true,
		NoPaging: true,
	}
	if v, ok := domain.ParseStage(filter.Stage); ok {
		repoFilter.Stage = v
	}
	if v, ok := domain.ParsePriority(filter.Priority); ok {
		repoFilter.Priority = v
	}
	if v, ok := domain.ParseSource(filter.Source); ok {
		repoFilter.Source = v
	}

	apps, _, err := s.apps.List(ctx, repoFilter)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.Write(exportColumns); err != nil {
		return "", err
	}

	for _, app := range apps {
		employmentType := ""
		if app.EmploymentType != nil {
			employmentType = string(*app.EmploymentType)
		}
		nextActionDue := ""
		if app.NextActionDue != nil {
			nextActionDue = app.NextActionDue.Format("2006-01-02")
		}
		row := []string{
			app.RoleTitle,
			app.Company,
			app.Location,
			employmentType,
			app.SalaryRange,
			string(app.Source),
			string(app.Stage),
			string(app.Priority),
			app.NextAction,
			nextActionDue,
			app.CreatedAt.Format(time.RFC3339),
			app.UpdatedAt.Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
