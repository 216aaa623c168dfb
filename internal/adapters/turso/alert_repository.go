package turso

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/workwatchhq/agent/internal/domain"
)

type AlertRepository struct {
	db *sql.DB
}

func NewAlertRepository(db *sql.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

func (r *AlertRepository) Create(ctx context.Context, a *domain.Alert) error {
	read := 0
	if a.Read {
		read = 1
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO alerts (
			id, user_id, timestamp, type, severity, message, details, read
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		a.ID,
		a.UserID,
		a.Timestamp.Format(timeFormat),
		string(a.Type),
		string(a.Severity),
		a.Message,
		a.Details,
		read,
	)
	if err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}
	return nil
}

func (r *AlertRepository) ListRecent(ctx context.Context, userID string, limit int) ([]*domain.Alert, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, timestamp, type, severity, message, details, read
		FROM alerts
		WHERE user_id = ?
		ORDER BY timestamp DESC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("query alerts: %w", err)
	}
	defer rows.Close()

	var alerts []*domain.Alert
	for rows.Next() {
		var a domain.Alert
		var ts, typ, severity string
		var read int
		if err := rows.Scan(&a.ID, &a.UserID, &ts, &typ, &severity, &a.Message, &a.Details, &read); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		if a.Timestamp, err = time.Parse(timeFormat, ts); err != nil {
			return nil, fmt.Errorf("parse alert timestamp: %w", err)
		}
		a.Type = domain.AlertType(typ)
		a.Severity = domain.Level(severity)
		a.Read = read == 1
		alerts = append(alerts, &a)
	}
	return alerts, rows.Err()
}
