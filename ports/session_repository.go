package ports

import (
	"context"
	"time"

	"studytrack/models"

	"github.com/google/uuid"
)

// SessionRepository defines the interface for study-session persistence.
type SessionRepository interface {
	// CreateSession stores a new study session.
	CreateSession(ctx context.Context, session *models.StudySession) error

	// GetSession retrieves one session by user ID and session ID.
	GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*models.StudySession, error)

	// UpdateSession replaces the mutable fields of an existing session.
	UpdateSession(ctx context.Context, session *models.StudySession) error

	// DeleteSession removes a session.
	DeleteSession(ctx context.Context, userID, sessionID uuid.UUID) error

	// ListSessions returns a user's sessions ordered by studied_at
	// ascending, optionally limited to the most recent N.
	ListSessions(ctx context.Context, userID uuid.UUID, limit int) ([]*models.StudySession, error)

	// ListSessionsByDateRange returns a user's sessions with
	// from ≤ studied_at < to, ordered by studied_at ascending.
	ListSessionsByDateRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*models.StudySession, error)
}
