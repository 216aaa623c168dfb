package domain

import "time"

// Tier is the productivity classification of an application or site.
type Tier string

const (
	TierProductive   Tier = "productive"
	TierNeutral      Tier = "neutral"
	TierUnproductive Tier = "unproductive"
)

// Level is a discretized activity intensity.
type Level string

const (
	LevelInactive Level = "inactive"
	LevelLow      Level = "low"
	LevelMedium   Level = "medium"
	LevelHigh     Level = "high"
)

// Sample is one foreground-window observation from the host sampler.
// Samples feed the tracker; they are never persisted directly.
type Sample struct {
	AppName     string
	WindowTitle string
	ObservedAt  time.Time
}

// ActivityLogEntry is the raw per-poll record persisted for every sample,
// enriched with both categorizations.
type ActivityLogEntry struct {
	UserID       string
	Timestamp    time.Time
	AppName      string
	WindowTitle  string
	URL          string // resolved domain when the foreground app is a browser
	AppCategory  Tier
	SiteCategory Tier // empty when URL is empty
}
