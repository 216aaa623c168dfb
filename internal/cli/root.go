package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "workwatch",
	Short: "Workforce activity tracking agent",
	Long: `workwatch is the endpoint agent of a workforce monitoring platform.

It samples the foreground window, categorizes applications and websites
by productivity, aggregates keyboard and mouse activity, captures
screenshots on a randomized schedule or on demand, and raises alerts
for unproductive browsing and prolonged inactivity.`,
}

func Execute() {
	// A .env file in the working directory is optional.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
