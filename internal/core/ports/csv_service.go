package ports

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// ImportReport summarizes one CSV import: row-level failures never fail the
// batch, they accumulate here.
type ImportReport struct {
	TotalRows         int      `json:"total_rows"`
	SuccessfulImports int      `json:"successful_imports"`
	Errors            []string `json:"errors"`
}

// ExportFilter mirrors the application list filters for CSV export.
type ExportFilter struct {
	Search   string
	Stage    string
	Priority string
	Source   string
}

// CSVService imports and exports applications as CSV.
type CSVService interface {
	Import(ctx context.Context, userID uuid.UUID, r io.Reader) (*ImportReport, error)
	Export(ctx context.Context, userID uuid.UUID, filter ExportFilter) (string, error)
}
