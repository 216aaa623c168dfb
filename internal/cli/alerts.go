package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/workwatchhq/agent/internal/adapters/turso"
)

var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "List recent alerts for a user",
	Long: `List the most recent alerts recorded for a user, newest first.

Examples:
  workwatch alerts --user alice
  workwatch alerts --user alice --limit 5`,
	RunE: runAlerts,
}

var (
	alertsUser  string
	alertsLimit int
)

func init() {
	rootCmd.AddCommand(alertsCmd)
	alertsCmd.Flags().StringVarP(&alertsUser, "user", "u", "", "User to list alerts for")
	alertsCmd.Flags().IntVarP(&alertsLimit, "limit", "n", 20, "Maximum number of alerts")
	alertsCmd.MarkFlagRequired("user")
}

func runAlerts(cmd *cobra.Command, args []string) error {
	db, closeDB, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB()

	alerts, err := turso.NewAlertRepository(db).ListRecent(context.Background(), alertsUser, alertsLimit)
	if err != nil {
		return fmt.Errorf("failed to list alerts: %w", err)
	}

	if len(alerts) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No alerts")
		return nil
	}

	for _, a := range alerts {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %-18s %-7s %s\n",
			a.Timestamp.UTC().Format("2006-01-02 15:04:05"),
			a.Type,
			a.Severity,
			a.Message,
		)
	}
	return nil
}
