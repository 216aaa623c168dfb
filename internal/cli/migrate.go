package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/workwatchhq/agent/internal/migrate"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [version]",
	Short: "Run database migrations",
	Long: `Run database migrations.

Without arguments, runs all pending migrations (up).
With a version number, migrates to that specific version (up or down as needed).

Examples:
  workwatch migrate      # Run all pending migrations
  workwatch migrate 1    # Migrate to version 1
  workwatch migrate 0    # Rollback all migrations`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	db, closeDB, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB()

	if err := migrate.EnsureTable(ctx, db); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	current, dirty, err := migrate.CurrentVersion(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}
	if dirty {
		return fmt.Errorf("database is in dirty state at version %d, manual intervention required", current)
	}

	all, err := migrate.Load()
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Current version: %d\n", current)

	target := 0
	if len(all) > 0 {
		target = all[len(all)-1].Version
	}
	if len(args) > 0 {
		target, err = strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid version number: %s", args[0])
		}
	}

	switch {
	case target > current:
		if err := migrate.UpTo(ctx, db, all, current, target); err != nil {
			return err
		}
	case target < current:
		if err := migrate.DownTo(ctx, db, all, current, target); err != nil {
			return err
		}
	default:
		fmt.Fprintln(cmd.OutOrStdout(), "Already at target version")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Migrated to version %d\n", target)
	return nil
}
