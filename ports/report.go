package ports

import (
	"context"

	"studytrack/models"
)

// ReportWriter renders the downloadable summary report. The writer is
// handed the exact structs the dashboard displays; it must not
// recompute or re-round anything, so the report column always matches
// the on-screen figures.
type ReportWriter interface {
	WriteReport(ctx context.Context, summary models.DashboardSummary, weeks []models.WeeklySummary, sessions []*models.StudySession) ([]byte, error)
}
