package turso

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/workwatchhq/agent/internal/domain"
)

// CommandInbox exposes screenshot commands as a filtered change-feed.
// libsql has no live queries, so the subscription is a short-interval
// poll over the pending rows for one user. Each command is delivered at
// most once per subscription; commands that stay pending after a failed
// capture are not redelivered.
type CommandInbox struct {
	db           *sql.DB
	pollInterval time.Duration
}

func NewCommandInbox(db *sql.DB) *CommandInbox {
	return &CommandInbox{db: db, pollInterval: 5 * time.Second}
}

func (i *CommandInbox) Subscribe(ctx context.Context, userID string) (<-chan domain.ScreenshotCommand, error) {
	// Fail fast on a dead database rather than from inside the goroutine.
	if err := i.db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	out := make(chan domain.ScreenshotCommand, 16)

	go func() {
		defer close(out)

		seen := make(map[string]struct{})
		ticker := time.NewTicker(i.pollInterval)
		defer ticker.Stop()

		for {
			cmds, err := i.listPending(ctx, userID)
			if err == nil {
				for _, cmd := range cmds {
					if _, ok := seen[cmd.ID]; ok {
						continue
					}
					seen[cmd.ID] = struct{}{}
					select {
					case out <- cmd:
					case <-ctx.Done():
						return
					}
				}
			}

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	return out, nil
}

func (i *CommandInbox) listPending(ctx context.Context, userID string) ([]domain.ScreenshotCommand, error) {
	rows, err := i.db.QueryContext(ctx, `
		SELECT id, user_id, status, requested_at
		FROM screenshot_commands
		WHERE user_id = ? AND status = ?
		ORDER BY requested_at
	`, userID, string(domain.CommandPending))
	if err != nil {
		return nil, fmt.Errorf("query pending commands: %w", err)
	}
	defer rows.Close()

	var cmds []domain.ScreenshotCommand
	for rows.Next() {
		var cmd domain.ScreenshotCommand
		var status, requestedAt string
		if err := rows.Scan(&cmd.ID, &cmd.UserID, &status, &requestedAt); err != nil {
			return nil, fmt.Errorf("scan command: %w", err)
		}
		cmd.Status = domain.CommandStatus(status)
		if cmd.RequestedAt, err = time.Parse(timeFormat, requestedAt); err != nil {
			return nil, fmt.Errorf("parse requested_at: %w", err)
		}
		cmds = append(cmds, cmd)
	}
	return cmds, rows.Err()
}

func (i *CommandInbox) CreateCommand(ctx context.Context, cmd *domain.ScreenshotCommand) error {
	_, err := i.db.ExecContext(ctx, `
		INSERT INTO screenshot_commands (id, user_id, status, requested_at)
		VALUES (?, ?, ?, ?)
	`,
		cmd.ID,
		cmd.UserID,
		string(cmd.Status),
		cmd.RequestedAt.Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("insert command: %w", err)
	}
	return nil
}

func (i *CommandInbox) MarkCompleted(ctx context.Context, commandID string) error {
	_, err := i.db.ExecContext(ctx, `
		UPDATE screenshot_commands SET status = ? WHERE id = ?
	`, string(domain.CommandCompleted), commandID)
	if err != nil {
		return fmt.Errorf("mark command completed: %w", err)
	}
	return nil
}
