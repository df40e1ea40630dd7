package postgres

import (
	"context"
	"database/sql"
	"time"

	"studytrack/internal/errors"
	"studytrack/models"
	"studytrack/ports"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// SessionRepositoryImpl implements SessionRepository for PostgreSQL.
type SessionRepositoryImpl struct {
	db *sqlx.DB
}

// NewSessionRepository creates a new PostgreSQL session repository.
func NewSessionRepository(db *sqlx.DB) ports.SessionRepository {
	return &SessionRepositoryImpl{db: db}
}

const sessionColumns = `id, user_id, subject, duration_hours, mood, focus, efficiency, notes, studied_at, created_at, updated_at`

// CreateSession stores a new study session.
func (r *SessionRepositoryImpl) CreateSession(ctx context.Context, session *models.StudySession) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO study_sessions (id, user_id, subject, duration_hours, mood, focus, efficiency, notes, studied_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, session.ID, session.UserID, session.Subject, session.DurationHours, session.Mood, session.Focus,
		session.Efficiency, session.Notes, session.StudiedAt, session.CreatedAt, session.UpdatedAt)

	if err != nil {
		return errors.WithCode(errors.CodeDatabaseError, err)
	}
	return nil
}

// GetSession retrieves one session by user ID and session ID.
func (r *SessionRepositoryImpl) GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*models.StudySession, error) {
	var session models.StudySession
	err := r.db.GetContext(ctx, &session, `
		SELECT `+sessionColumns+`
		FROM study_sessions
		WHERE user_id = $1 AND id = $2
	`, userID, sessionID)

	if err == sql.ErrNoRows {
		return nil, errors.New(errors.CodeNotFound, "session not found")
	}
	if err != nil {
		return nil, errors.WithCode(errors.CodeDatabaseError, err)
	}
	return &session, nil
}

// UpdateSession replaces the mutable fields of an existing session.
func (r *SessionRepositoryImpl) UpdateSession(ctx context.Context, session *models.StudySession) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE study_sessions
		SET subject = $3, duration_hours = $4, mood = $5, focus = $6, efficiency = $7, notes = $8, studied_at = $9, updated_at = NOW()
		WHERE user_id = $1 AND id = $2
	`, session.UserID, session.ID, session.Subject, session.DurationHours, session.Mood, session.Focus,
		session.Efficiency, session.Notes, session.StudiedAt)

	if err != nil {
		return errors.WithCode(errors.CodeDatabaseError, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errors.New(errors.CodeNotFound, "session not found")
	}
	return nil
}

// DeleteSession removes a session.
func (r *SessionRepositoryImpl) DeleteSession(ctx context.Context, userID, sessionID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM study_sessions
		WHERE user_id = $1 AND id = $2
	`, userID, sessionID)

	if err != nil {
		return errors.WithCode(errors.CodeDatabaseError, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errors.New(errors.CodeNotFound, "session not found")
	}
	return nil
}

// ListSessions returns a user's sessions ordered by studied_at
// ascending, optionally limited to the most recent N.
func (r *SessionRepositoryImpl) ListSessions(ctx context.Context, userID uuid.UUID, limit int) ([]*models.StudySession, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM study_sessions
		WHERE user_id = $1
		ORDER BY studied_at ASC
	`

	args := []interface{}{userID}
	if limit > 0 {
		// Most recent N, still returned oldest-first.
		query = `
			SELECT ` + sessionColumns + ` FROM (
				SELECT ` + sessionColumns + `
				FROM study_sessions
				WHERE user_id = $1
				ORDER BY studied_at DESC
				LIMIT $2
			) recent
			ORDER BY studied_at ASC
		`
		args = append(args, limit)
	}

	var sessions []*models.StudySession
	if err := r.db.SelectContext(ctx, &sessions, query, args...); err != nil {
		return nil, errors.WithCode(errors.CodeDatabaseError, err)
	}
	return sessions, nil
}

// ListSessionsByDateRange returns sessions with from ≤ studied_at < to,
// ordered by studied_at ascending.
func (r *SessionRepositoryImpl) ListSessionsByDateRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*models.StudySession, error) {
	var sessions []*models.StudySession
	err := r.db.SelectContext(ctx, &sessions, `
		SELECT `+sessionColumns+`
		FROM study_sessions
		WHERE user_id = $1 AND studied_at >= $2 AND studied_at < $3
		ORDER BY studied_at ASC
	`, userID, from, to)

	if err != nil {
		return nil, errors.WithCode(errors.CodeDatabaseError, err)
	}
	return sessions, nil
}
