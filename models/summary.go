package models

import (
	"time"
)

// MetricSummary is the dashboard's descriptive block for one metric.
// Every field is produced by the realstats core and carries its
// rounding (4 decimals for mean/variance/stddev, extrema unrounded).
type MetricSummary struct {
	Metric   Metric  `json:"metric"`
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	Supremum float64 `json:"supremum"`
	Infimum  float64 `json:"infimum"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"std_dev"`
}

// DashboardSummary is the aggregate view rendered on the main panel.
// The report generator and the AI prompt builder consume this same
// struct so their figures can never drift from the dashboard's.
type DashboardSummary struct {
	SessionCount  int                      `json:"session_count"`
	TotalHours    float64                  `json:"total_hours"`
	Metrics       map[Metric]MetricSummary `json:"metrics"`
	LatestZScore  float64                  `json:"latest_z_score"` // latest duration vs the sample
	SmoothedHours float64                  `json:"smoothed_hours"` // exponential moving average of durations
	GeneratedAt   time.Time                `json:"generated_at"`
}

// WeeklySummary is one bucket of the week-by-week history panel.
type WeeklySummary struct {
	WeekStart    time.Time `json:"week_start"` // Monday 00:00 UTC
	SessionCount int       `json:"session_count"`
	TotalHours   float64   `json:"total_hours"`
	MeanHours    float64   `json:"mean_hours"`
	MeanFocus    float64   `json:"mean_focus"`
	MeanMood     float64   `json:"mean_mood"`
	BestDay      float64   `json:"best_day"`  // supremum of daily hours
	WorstDay     float64   `json:"worst_day"` // infimum of daily hours
}

// Insights carries the extended descriptive statistics that enrich the
// AI prompt and the history panel. Unlike DashboardSummary these are
// not part of the core's fixed-rounding contract.
type Insights struct {
	MedianHours         float64 `json:"median_hours"`
	Q1Hours             float64 `json:"q1_hours"`
	Q3Hours             float64 `json:"q3_hours"`
	MoodEfficiencyCorr  float64 `json:"mood_efficiency_corr"`
	FocusEfficiencyCorr float64 `json:"focus_efficiency_corr"`
}
