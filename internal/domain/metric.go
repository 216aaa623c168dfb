package domain

import "time"

// ActivityMetric is a point-in-time snapshot of input intensity, emitted
// once per flush cadence. An all-zero metric is still emitted: confirmed
// inactivity is telemetry too.
type ActivityMetric struct {
	UserID          string
	Timestamp       time.Time
	KeysPerMinute   int
	ClicksPerMinute int
	ActivityLevel   Level
}

// Activity score thresholds. Clicks weigh double since they are rarer
// than keystrokes for the same amount of engagement.
const (
	activityScoreLow    = 30
	activityScoreMedium = 100
)

// CalculateActivityLevel maps raw per-minute input counts to a Level.
// Zero input is always LevelInactive; the result is monotonic
// non-decreasing in both arguments.
func CalculateActivityLevel(keys, clicks int) Level {
	score := keys + 2*clicks
	switch {
	case score == 0:
		return LevelInactive
	case score < activityScoreLow:
		return LevelLow
	case score < activityScoreMedium:
		return LevelMedium
	default:
		return LevelHigh
	}
}
