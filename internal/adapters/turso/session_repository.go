package turso

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/workwatchhq/agent/internal/domain"
)

type SessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) CreateAppSession(ctx context.Context, s *domain.AppSession) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO app_sessions (
			user_id, app_name, category, start_time, end_time, duration_ms
		) VALUES (?, ?, ?, ?, ?, ?)
	`,
		s.UserID,
		s.AppName,
		string(s.Category),
		s.StartTime.Format(timeFormat),
		s.EndTime.Format(timeFormat),
		s.DurationMs,
	)
	if err != nil {
		return fmt.Errorf("insert app session: %w", err)
	}
	return nil
}

func (r *SessionRepository) CreateWebSession(ctx context.Context, s *domain.WebSession) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO web_sessions (
			user_id, url, category, start_time, end_time, duration_ms
		) VALUES (?, ?, ?, ?, ?, ?)
	`,
		s.UserID,
		s.URL,
		string(s.Category),
		s.StartTime.Format(timeFormat),
		s.EndTime.Format(timeFormat),
		s.DurationMs,
	)
	if err != nil {
		return fmt.Errorf("insert web session: %w", err)
	}
	return nil
}

func (r *SessionRepository) ListRecentAppSessions(ctx context.Context, userID string, limit int) ([]*domain.AppSession, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT user_id, app_name, category, start_time, end_time, duration_ms
		FROM app_sessions
		WHERE user_id = ?
		ORDER BY start_time DESC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("query app sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.AppSession
	for rows.Next() {
		var s domain.AppSession
		var category, start, end string
		if err := rows.Scan(&s.UserID, &s.AppName, &category, &start, &end, &s.DurationMs); err != nil {
			return nil, fmt.Errorf("scan app session: %w", err)
		}
		s.Category = domain.Tier(category)
		if s.StartTime, err = time.Parse(timeFormat, start); err != nil {
			return nil, fmt.Errorf("parse start time: %w", err)
		}
		if s.EndTime, err = time.Parse(timeFormat, end); err != nil {
			return nil, fmt.Errorf("parse end time: %w", err)
		}
		sessions = append(sessions, &s)
	}
	return sessions, rows.Err()
}
