package cli

import (
	"database/sql"
	"fmt"

	"github.com/workwatchhq/agent/internal/adapters/turso"
	"github.com/workwatchhq/agent/internal/infrastructure/config"
)

// testDBOverride lets tests inject an in-memory database.
var testDBOverride *sql.DB

// openDB returns a database connection and a cleanup function.
func openDB() (*sql.DB, func(), error) {
	if testDBOverride != nil {
		return testDBOverride, func() {}, nil
	}

	cfg, err := config.LoadDatabase()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load database configuration: %w", err)
	}

	db, err := turso.NewDB(cfg.URL, cfg.AuthToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, func() { db.Close() }, nil
}
