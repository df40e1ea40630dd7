package excel

import (
	"bytes"
	"context"
	"fmt"

	"studytrack/internal/errors"
	"studytrack/models"
	"studytrack/ports"

	"github.com/xuri/excelize/v2"
)

// ReportWriter renders the downloadable study report as an xlsx
// workbook. It writes the already-computed dashboard figures verbatim
// so the report's value column is byte-identical to what the dashboard
// shows.
type ReportWriter struct{}

// NewReportWriter creates the workbook report writer.
func NewReportWriter() ports.ReportWriter {
	return &ReportWriter{}
}

// WriteReport builds the workbook: summary table, weekly history,
// per-session rows, and a trend sheet with the weekly-hours chart.
func (w *ReportWriter) WriteReport(ctx context.Context, summary models.DashboardSummary, weeks []models.WeeklySummary, sessions []*models.StudySession) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeSummarySheet(f, summary); err != nil {
		return nil, errors.WithCode(errors.CodeReportError, err)
	}
	if err := writeWeeklySheet(f, weeks); err != nil {
		return nil, errors.WithCode(errors.CodeReportError, err)
	}
	if err := writeSessionsSheet(f, sessions); err != nil {
		return nil, errors.WithCode(errors.CodeReportError, err)
	}
	if err := writeTrendSheet(f, weeks); err != nil {
		return nil, errors.WithCode(errors.CodeReportError, err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, errors.WithCode(errors.CodeReportError, err)
	}
	return buf.Bytes(), nil
}

func writeSummarySheet(f *excelize.File, summary models.DashboardSummary) error {
	sheet := "Summary"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Statistic", "Value"},
		{"Sessions", summary.SessionCount},
		{"Total hours", summary.TotalHours},
		{"Smoothed hours", summary.SmoothedHours},
		{"Latest duration z-score", summary.LatestZScore},
	}
	for _, m := range models.Metrics() {
		ms, ok := summary.Metrics[m]
		if !ok {
			continue
		}
		rows = append(rows,
			[]interface{}{fmt.Sprintf("%s mean", m), ms.Mean},
			[]interface{}{fmt.Sprintf("%s max", m), ms.Supremum},
			[]interface{}{fmt.Sprintf("%s min", m), ms.Infimum},
			[]interface{}{fmt.Sprintf("%s std dev", m), ms.StdDev},
		)
	}

	return writeRows(f, sheet, rows)
}

func writeWeeklySheet(f *excelize.File, weeks []models.WeeklySummary) error {
	sheet := "Weekly History"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Week of", "Sessions", "Total hours", "Mean hours", "Mean focus", "Mean mood", "Best day", "Worst day"},
	}
	for _, wk := range weeks {
		rows = append(rows, []interface{}{
			wk.WeekStart.Format("2006-01-02"),
			wk.SessionCount,
			wk.TotalHours,
			wk.MeanHours,
			wk.MeanFocus,
			wk.MeanMood,
			wk.BestDay,
			wk.WorstDay,
		})
	}

	return writeRows(f, sheet, rows)
}

func writeSessionsSheet(f *excelize.File, sessions []*models.StudySession) error {
	sheet := "Sessions"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Date", "Subject", "Hours", "Mood", "Focus", "Efficiency", "Notes"},
	}
	for _, s := range sessions {
		rows = append(rows, []interface{}{
			s.StudiedAt.Format("2006-01-02 15:04"),
			s.Subject,
			s.DurationHours,
			s.Mood,
			s.Focus,
			s.Efficiency,
			s.Notes,
		})
	}

	return writeRows(f, sheet, rows)
}

func writeTrendSheet(f *excelize.File, weeks []models.WeeklySummary) error {
	sheet := "Trend"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	png, err := renderWeeklyHoursChart(weeks)
	if err != nil {
		return err
	}

	return f.AddPictureFromBytes(sheet, "B2", &excelize.Picture{
		Extension: ".png",
		File:      png,
	})
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}
