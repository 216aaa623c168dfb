package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/workwatchhq/agent/internal/adapters/logger"
	"github.com/workwatchhq/agent/internal/adapters/otel"
	"github.com/workwatchhq/agent/internal/adapters/sampler"
	"github.com/workwatchhq/agent/internal/adapters/storage"
	"github.com/workwatchhq/agent/internal/adapters/turso"
	"github.com/workwatchhq/agent/internal/infrastructure/config"
	"github.com/workwatchhq/agent/internal/ports"
	"github.com/workwatchhq/agent/internal/tracker"
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Run the tracking agent",
	Long: `Run the tracking agent in the foreground until interrupted.

Configuration comes from the environment (or a .env file):

  WORKWATCH_DATABASE_URL   libsql database URL (required)
  WORKWATCH_AUTH_TOKEN     Turso auth token for remote databases
  WORKWATCH_USER_ID        user the agent tracks (required)
  WORKWATCH_POLL_CMD       command printing "appName<TAB>windowTitle"
  WORKWATCH_CAPTURE_CMD    command writing a PNG to stdout

Examples:
  workwatch track                 # Track with environment configuration
  workwatch track --stderr-log    # Log to stderr instead of agent.log`,
	RunE: runTrack,
}

var trackStderrLog bool

func init() {
	rootCmd.AddCommand(trackCmd)
	trackCmd.Flags().BoolVar(&trackStderrLog, "stderr-log", false, "Log to stderr instead of the data directory")
}

func runTrack(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadAgent()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := turso.NewDB(cfg.Database.URL, cfg.Database.AuthToken)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	store, err := storage.NewScreenshotStorageAt(filepath.Join(cfg.DataDir, "screenshots"))
	if err != nil {
		return fmt.Errorf("failed to initialize screenshot storage: %w", err)
	}

	var log ports.Logger
	if trackStderrLog {
		log = logger.StderrLogger{DebugEnabled: cfg.Debug}
	} else {
		if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
		log = logger.NewFileLogger(cfg.DataDir, cfg.Debug)
	}

	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nShutting down...")
		cancel()
	}()

	exporter := newExporter(ctx, log)
	defer exporter.Close(context.Background())

	clock := ports.SystemClock{}
	engine := tracker.New(
		tracker.Config{
			UserID:              cfg.UserID,
			PollInterval:        cfg.PollInterval,
			FlushInterval:       cfg.FlushInterval,
			ScreenshotMin:       cfg.ScreenshotMin,
			ScreenshotMax:       cfg.ScreenshotMax,
			InactivityThreshold: cfg.InactivityThreshold,
		},
		tracker.Deps{
			Sampler:     sampler.NewExecSampler(cfg.PollCommand, cfg.CaptureCommand, clock),
			Logs:        turso.NewActivityLogRepository(db),
			Sessions:    turso.NewSessionRepository(db),
			Metrics:     turso.NewMetricRepository(db),
			Alerts:      turso.NewAlertRepository(db),
			Screenshots: turso.NewScreenshotRepository(db),
			Store:       store,
			Inbox:       turso.NewCommandInbox(db),
			Exporter:    exporter,
			Clock:       clock,
			Logger:      log,
		},
	)

	if err := engine.Start(ctx); err != nil {
		return fmt.Errorf("failed to start tracking: %w", err)
	}
	fmt.Printf("Tracking user %s (poll %s, flush %s)\n", cfg.UserID, cfg.PollInterval, cfg.FlushInterval)

	<-ctx.Done()
	engine.Stop()
	return nil
}

// newExporter returns the OTEL exporter when one is configured, or a
// no-op. Telemetry being down never blocks tracking.
func newExporter(ctx context.Context, log ports.Logger) ports.ActivityExporter {
	otelCfg := otel.LoadConfig()
	if !otelCfg.Enabled {
		return otel.NewNoOpExporter()
	}

	exp, err := otel.NewExporter(ctx, otelCfg)
	if err != nil {
		log.Error(fmt.Sprintf("otel exporter unavailable: %v", err))
		return otel.NewNoOpExporter()
	}
	return exp
}
