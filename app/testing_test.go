package app

import (
	"context"
	"sort"
	"time"

	"studytrack/internal/errors"
	"studytrack/models"

	"github.com/google/uuid"
)

// memRepo is an in-memory SessionRepository for service tests.
type memRepo struct {
	sessions []*models.StudySession
	failWith error
}

func (r *memRepo) CreateSession(ctx context.Context, session *models.StudySession) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.sessions = append(r.sessions, session)
	return nil
}

func (r *memRepo) GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*models.StudySession, error) {
	for _, s := range r.sessions {
		if s.UserID == userID && s.ID == sessionID {
			return s, nil
		}
	}
	return nil, errors.NotFound("session not found")
}

func (r *memRepo) UpdateSession(ctx context.Context, session *models.StudySession) error {
	for i, s := range r.sessions {
		if s.UserID == session.UserID && s.ID == session.ID {
			r.sessions[i] = session
			return nil
		}
	}
	return errors.NotFound("session not found")
}

func (r *memRepo) DeleteSession(ctx context.Context, userID, sessionID uuid.UUID) error {
	for i, s := range r.sessions {
		if s.UserID == userID && s.ID == sessionID {
			r.sessions = append(r.sessions[:i], r.sessions[i+1:]...)
			return nil
		}
	}
	return errors.NotFound("session not found")
}

func (r *memRepo) ListSessions(ctx context.Context, userID uuid.UUID, limit int) ([]*models.StudySession, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	var out []*models.StudySession
	for _, s := range r.sessions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StudiedAt.Before(out[j].StudiedAt) })
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (r *memRepo) ListSessionsByDateRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*models.StudySession, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	all, err := r.ListSessions(ctx, userID, 0)
	if err != nil {
		return nil, err
	}
	return models.FilterByDateRange(all, from, to), nil
}

// seedSession inserts one session directly, bypassing validation.
func seedSession(r *memRepo, userID uuid.UUID, hours float64, mood, focus int, efficiency float64, studiedAt time.Time) *models.StudySession {
	s := models.NewStudySession(userID, "algorithms", hours, mood, focus, efficiency, studiedAt)
	r.sessions = append(r.sessions, s)
	return s
}
