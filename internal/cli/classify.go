package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/workwatchhq/agent/internal/domain"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <app|site> <name>",
	Short: "Show the productivity category for an app or site",
	Long: `Show the productivity category the agent would assign.

For apps, the argument is the application name. For sites, it is a
window title or URL; the domain is extracted first.

Examples:
  workwatch classify app "Visual Studio Code"
  workwatch classify site "youtube.com - Cat Videos"`,
	Args: cobra.MinimumNArgs(2),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	kind := args[0]
	subject := strings.Join(args[1:], " ")

	switch kind {
	case "app":
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", domain.CategorizeApp(subject))
	case "site":
		d := domain.ExtractDomain(subject)
		if d == "" {
			return fmt.Errorf("no domain found in %q", subject)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", d, domain.CategorizeSite(d))
	default:
		return fmt.Errorf("unknown kind %q, expected app or site", kind)
	}
	return nil
}
