package ui

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"studytrack/app"
	"studytrack/domain/realstats"

	"github.com/gin-gonic/gin"
)

// Default history window when the client names no range.
const defaultHistoryWeeks = 12

func (s *Server) handleDashboard(c *gin.Context) {
	summary, err := s.dashboard.Summary(c.Request.Context(), currentUser(c))
	if err != nil {
		s.logger.Error("dashboard summary: %v", err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (s *Server) handleHistory(c *gin.Context) {
	from, to, ok, err := dateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !ok {
		to = time.Now().UTC()
		from = to.AddDate(0, 0, -7*defaultHistoryWeeks)
	}

	weeks, err := s.history.WeeklyHistory(c.Request.Context(), currentUser(c), from, to)
	if err != nil {
		s.logger.Error("weekly history: %v", err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"weeks": weeks, "from": from, "to": to})
}

func (s *Server) handleReport(c *gin.Context) {
	report, err := s.reports.Generate(c.Request.Context(), currentUser(c))
	if err != nil {
		s.logger.Error("report generation: %v", err)
		writeError(c, err)
		return
	}

	filename := app.ReportFilename(time.Now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", report)
}

func (s *Server) handleRecommendations(c *gin.Context) {
	set, err := s.recommendations.Recommend(c.Request.Context(), currentUser(c))
	if err != nil {
		s.logger.Error("recommendations: %v", err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, set)
}

// handleAxioms serves the didactic floating-point panel: the algebraic
// identities evaluated both ways over caller-supplied operands.
func (s *Server) handleAxioms(c *gin.Context) {
	a, err := queryFloat(c, "a", 0.1)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := queryFloat(c, "b", 0.2)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cc, err := queryFloat(c, "c", 0.3)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"commutative_addition":       realstats.CommutativeAddition(a, b),
		"commutative_multiplication": realstats.CommutativeMultiplication(a, b),
		"associative_addition":       realstats.AssociativeAddition(a, b, cc),
		"distributive_property":      realstats.DistributiveProperty(a, b, cc),
	})
}

func queryFloat(c *gin.Context, key string, fallback float64) (float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return v, nil
}

// dateRange parses the optional from/to query params (RFC 3339 or
// YYYY-MM-DD). Returns ok=false when neither is present; both are
// required together.
func dateRange(c *gin.Context) (from, to time.Time, ok bool, err error) {
	rawFrom, rawTo := c.Query("from"), c.Query("to")
	if rawFrom == "" && rawTo == "" {
		return time.Time{}, time.Time{}, false, nil
	}
	if rawFrom == "" || rawTo == "" {
		return time.Time{}, time.Time{}, false, fmt.Errorf("from and to must be given together")
	}

	from, err = parseDate(rawFrom)
	if err != nil {
		return time.Time{}, time.Time{}, false, fmt.Errorf("invalid from: %q", rawFrom)
	}
	to, err = parseDate(rawTo)
	if err != nil {
		return time.Time{}, time.Time{}, false, fmt.Errorf("invalid to: %q", rawTo)
	}
	return from, to, true, nil
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
