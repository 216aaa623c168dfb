package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/workwatchhq/agent/internal/util"
)

// Database holds Turso database configuration.
type Database struct {
	URL       string `envconfig:"WORKWATCH_DATABASE_URL" required:"true"`
	AuthToken string `envconfig:"WORKWATCH_AUTH_TOKEN"`
}

// Agent holds configuration for the tracking agent.
type Agent struct {
	Database Database

	UserID string `envconfig:"WORKWATCH_USER_ID" required:"true"`

	PollInterval        time.Duration `envconfig:"WORKWATCH_POLL_INTERVAL" default:"30s"`
	FlushInterval       time.Duration `envconfig:"WORKWATCH_FLUSH_INTERVAL" default:"60s"`
	ScreenshotMin       time.Duration `envconfig:"WORKWATCH_SCREENSHOT_MIN" default:"5m"`
	ScreenshotMax       time.Duration `envconfig:"WORKWATCH_SCREENSHOT_MAX" default:"15m"`
	InactivityThreshold time.Duration `envconfig:"WORKWATCH_INACTIVITY_THRESHOLD" default:"20m"`

	// Host commands the sampler shells out to. Empty commands disable
	// the corresponding feature.
	PollCommand    string `envconfig:"WORKWATCH_POLL_CMD"`
	CaptureCommand string `envconfig:"WORKWATCH_CAPTURE_CMD"`

	DataDir string `envconfig:"WORKWATCH_DATA_DIR"`
	Debug   bool   `envconfig:"WORKWATCH_DEBUG" default:"false"`
}

// LoadAgent loads agent configuration from environment variables. The
// data directory falls back to the XDG default when unset.
func LoadAgent() (*Agent, error) {
	var cfg Agent
	if err := envconfig.Process("", &cfg.Database); err != nil {
		return nil, err
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if cfg.DataDir == "" {
		dir, err := util.GetXDGDataDir()
		if err != nil {
			return nil, err
		}
		cfg.DataDir = dir
	}

	return &cfg, nil
}

// LoadDatabase loads only the database configuration, for commands that
// do not need the full agent setup.
func LoadDatabase() (*Database, error) {
	var cfg Database
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
