package turso

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/workwatchhq/agent/internal/domain"
)

type MetricRepository struct {
	db *sql.DB
}

func NewMetricRepository(db *sql.DB) *MetricRepository {
	return &MetricRepository{db: db}
}

func (r *MetricRepository) Create(ctx context.Context, m *domain.ActivityMetric) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO activity_metrics (
			user_id, timestamp, keys_per_minute, clicks_per_minute, activity_level
		) VALUES (?, ?, ?, ?, ?)
	`,
		m.UserID,
		m.Timestamp.Format(timeFormat),
		m.KeysPerMinute,
		m.ClicksPerMinute,
		string(m.ActivityLevel),
	)
	if err != nil {
		return fmt.Errorf("insert activity metric: %w", err)
	}
	return nil
}
