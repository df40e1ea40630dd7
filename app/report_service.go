package app

import (
	"context"
	"time"

	"studytrack/internal/errors"
	"studytrack/ports"

	"github.com/google/uuid"
)

// ReportService assembles the downloadable report from the same
// services the dashboard renders from, then hands the finished numbers
// to the report writer. The writer never recomputes anything.
type ReportService struct {
	sessions  ports.SessionRepository
	dashboard *DashboardService
	history   *HistoryService
	writer    ports.ReportWriter
}

// NewReportService creates a new report service.
func NewReportService(sessions ports.SessionRepository, dashboard *DashboardService, history *HistoryService, writer ports.ReportWriter) *ReportService {
	return &ReportService{
		sessions:  sessions,
		dashboard: dashboard,
		history:   history,
		writer:    writer,
	}
}

// Generate builds the workbook covering the user's full history.
func (s *ReportService) Generate(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	sessions, err := s.sessions.ListSessions(ctx, userID, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load sessions for report")
	}

	summary := s.dashboard.Summarize(sessions)
	weeks := s.history.Bucket(sessions)

	report, err := s.writer.WriteReport(ctx, summary, weeks, sessions)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render report")
	}
	return report, nil
}

// ReportFilename names the download, stamped with the generation date.
func ReportFilename(now time.Time) string {
	return "study-report-" + now.Format("2006-01-02") + ".xlsx"
}
