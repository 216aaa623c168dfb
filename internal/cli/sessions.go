package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/workwatchhq/agent/internal/adapters/turso"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List recent app sessions for a user",
	Long: `List the most recent closed app sessions for a user, newest first.

Examples:
  workwatch sessions --user alice
  workwatch sessions --user alice --limit 5`,
	RunE: runSessions,
}

var (
	sessionsUser  string
	sessionsLimit int
)

func init() {
	rootCmd.AddCommand(sessionsCmd)
	sessionsCmd.Flags().StringVarP(&sessionsUser, "user", "u", "", "User to list sessions for")
	sessionsCmd.Flags().IntVarP(&sessionsLimit, "limit", "n", 20, "Maximum number of sessions")
	sessionsCmd.MarkFlagRequired("user")
}

func runSessions(cmd *cobra.Command, args []string) error {
	db, closeDB, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB()

	sessions, err := turso.NewSessionRepository(db).ListRecentAppSessions(context.Background(), sessionsUser, sessionsLimit)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	if len(sessions) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No sessions")
		return nil
	}

	for _, s := range sessions {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %-12s %-8s %s\n",
			s.StartTime.UTC().Format("2006-01-02 15:04:05"),
			s.Category,
			(time.Duration(s.DurationMs) * time.Millisecond).String(),
			s.AppName,
		)
	}
	return nil
}
