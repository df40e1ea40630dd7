package ui

import (
	"net/http"
	"strconv"
	"time"

	"studytrack/internal"
	"studytrack/internal/errors"
	"studytrack/models"
	"studytrack/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHandlers implements the session CRUD surface.
type SessionHandlers struct {
	repo   ports.SessionRepository
	logger *internal.Logger
}

// NewSessionHandlers creates the session CRUD handlers.
func NewSessionHandlers(repo ports.SessionRepository, logger *internal.Logger) *SessionHandlers {
	return &SessionHandlers{repo: repo, logger: logger}
}

// sessionRequest is the write payload for create/update.
type sessionRequest struct {
	Subject       string    `json:"subject"`
	DurationHours float64   `json:"duration_hours"`
	Mood          int       `json:"mood"`
	Focus         int       `json:"focus"`
	Efficiency    float64   `json:"efficiency"`
	Notes         string    `json:"notes"`
	StudiedAt     time.Time `json:"studied_at"`
}

// Create logs a new study session.
func (h *SessionHandlers) Create(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	session := models.NewStudySession(currentUser(c), req.Subject, req.DurationHours, req.Mood, req.Focus, req.Efficiency, req.StudiedAt)
	session.Notes = req.Notes
	if err := session.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.repo.CreateSession(c.Request.Context(), session); err != nil {
		h.logger.Error("create session: %v", err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// Get returns one session.
func (h *SessionHandlers) Get(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	session, err := h.repo.GetSession(c.Request.Context(), currentUser(c), sessionID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// List returns the user's sessions, optionally filtered by date range
// and efficiency threshold, optionally re-sorted by a metric. Filter
// and sort follow the same comparison contract as the stats core's
// sort: ascending, ties keep input (chronological) order.
func (h *SessionHandlers) List(c *gin.Context) {
	limit := 0
	if rawLimit := c.Query("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	sessions, err := h.repo.ListSessions(c.Request.Context(), currentUser(c), limit)
	if err != nil {
		writeError(c, err)
		return
	}

	if from, to, ok, err := dateRange(c); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	} else if ok {
		sessions = models.FilterByDateRange(sessions, from, to)
	}

	if rawMin := c.Query("min_efficiency"); rawMin != "" {
		min, err := strconv.ParseFloat(rawMin, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_efficiency"})
			return
		}
		sessions = models.FilterByMinEfficiency(sessions, min)
	}

	if rawSort := c.Query("sort_by"); rawSort != "" {
		sessions = models.SortByMetric(sessions, models.Metric(rawSort))
	}

	c.JSON(http.StatusOK, gin.H{"sessions": sessions, "count": len(sessions)})
}

// Update replaces a session's fields.
func (h *SessionHandlers) Update(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	session := &models.StudySession{
		ID:            sessionID,
		UserID:        currentUser(c),
		Subject:       req.Subject,
		DurationHours: req.DurationHours,
		Mood:          req.Mood,
		Focus:         req.Focus,
		Efficiency:    req.Efficiency,
		Notes:         req.Notes,
		StudiedAt:     req.StudiedAt,
		UpdatedAt:     time.Now(),
	}
	if err := session.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.repo.UpdateSession(c.Request.Context(), session); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Delete removes a session.
func (h *SessionHandlers) Delete(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	if err := h.repo.DeleteSession(c.Request.Context(), currentUser(c), sessionID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// writeError maps AppError codes to HTTP statuses.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.CodeNotFound:
		status = http.StatusNotFound
	case errors.CodeValidationError:
		status = http.StatusBadRequest
	case errors.CodeLLMError:
		status = http.StatusBadGateway
	}
	c.JSON(status, gin.H{"error": err.Error(), "code": errors.GetCode(err)})
}
