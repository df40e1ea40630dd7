package excel

import (
	"bytes"
	"fmt"

	"studytrack/models"

	"github.com/fogleman/gg"
)

const (
	chartWidth  = 760
	chartHeight = 280
	chartMargin = 40.0
)

// renderWeeklyHoursChart draws the weekly total-hours bar chart embedded
// in the report's trend sheet. Returns a PNG.
func renderWeeklyHoursChart(weeks []models.WeeklySummary) ([]byte, error) {
	dc := gg.NewContext(chartWidth, chartHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetRGB(0.2, 0.2, 0.2)
	dc.DrawStringAnchored("Total hours per week", chartWidth/2, 18, 0.5, 0.5)

	if len(weeks) == 0 {
		dc.DrawStringAnchored("no sessions logged", chartWidth/2, chartHeight/2, 0.5, 0.5)
		return encodePNG(dc)
	}

	maxHours := 0.0
	for _, w := range weeks {
		if w.TotalHours > maxHours {
			maxHours = w.TotalHours
		}
	}
	if maxHours == 0 {
		maxHours = 1
	}

	plotW := float64(chartWidth) - 2*chartMargin
	plotH := float64(chartHeight) - 2*chartMargin
	barW := plotW / float64(len(weeks))

	// Baseline
	dc.SetRGB(0.6, 0.6, 0.6)
	dc.DrawLine(chartMargin, chartMargin+plotH, chartMargin+plotW, chartMargin+plotH)
	dc.Stroke()

	for i, w := range weeks {
		h := (w.TotalHours / maxHours) * plotH
		x := chartMargin + float64(i)*barW
		y := chartMargin + plotH - h

		dc.SetRGB(0.26, 0.45, 0.77)
		dc.DrawRectangle(x+barW*0.15, y, barW*0.7, h)
		dc.Fill()

		dc.SetRGB(0.2, 0.2, 0.2)
		dc.DrawStringAnchored(fmt.Sprintf("%.1f", w.TotalHours), x+barW/2, y-8, 0.5, 0.5)
		dc.DrawStringAnchored(w.WeekStart.Format("Jan 02"), x+barW/2, chartMargin+plotH+14, 0.5, 0.5)
	}

	return encodePNG(dc)
}

func encodePNG(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode chart png: %w", err)
	}
	return buf.Bytes(), nil
}
