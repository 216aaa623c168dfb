package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/workwatchhq/agent/internal/adapters/turso"
	"github.com/workwatchhq/agent/internal/domain"
)

var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Request an on-demand screenshot",
	Long: `Insert a pending screenshot command for a user.

A running agent subscribed to the command feed picks the command up
within a few seconds and captures the screen.

Examples:
  workwatch capture --user alice`,
	RunE: runCapture,
}

var captureUser string

func init() {
	rootCmd.AddCommand(captureCmd)
	captureCmd.Flags().StringVarP(&captureUser, "user", "u", "", "User to capture")
	captureCmd.MarkFlagRequired("user")
}

func runCapture(cmd *cobra.Command, args []string) error {
	db, closeDB, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB()

	command := &domain.ScreenshotCommand{
		ID:          uuid.NewString(),
		UserID:      captureUser,
		Status:      domain.CommandPending,
		RequestedAt: time.Now().UTC(),
	}

	if err := turso.NewCommandInbox(db).CreateCommand(context.Background(), command); err != nil {
		return fmt.Errorf("failed to request screenshot: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Screenshot requested: %s\n", command.ID)
	return nil
}
