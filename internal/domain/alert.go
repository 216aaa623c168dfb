package domain

import (
	"fmt"
	"time"
)

// AlertType identifies the condition that produced an alert.
type AlertType string

const (
	AlertUnproductiveSite    AlertType = "unproductive_site"
	AlertProlongedInactivity AlertType = "prolonged_inactivity"
)

// Alert is an anomaly record produced by the evaluator. The engine only
// ever creates alerts; the read flag is flipped by external consumers.
type Alert struct {
	ID        string
	UserID    string
	Timestamp time.Time
	Type      AlertType
	Severity  Level
	Message   string
	Details   string
	Read      bool
}

// NewUnproductiveSiteAlert is emitted when a closed web session was
// classified unproductive. One alert per closed session, no deduplication
// across repeat visits.
func NewUnproductiveSiteAlert(id, userID, domain string, at time.Time) Alert {
	return Alert{
		ID:        id,
		UserID:    userID,
		Timestamp: at,
		Type:      AlertUnproductiveSite,
		Severity:  LevelMedium,
		Message:   "Visit to unproductive site",
		Details:   domain,
	}
}

// NewInactivityAlert is emitted when no input has been seen for longer
// than the configured threshold.
func NewInactivityAlert(id, userID string, idle time.Duration, at time.Time) Alert {
	minutes := int(idle.Minutes())
	return Alert{
		ID:        id,
		UserID:    userID,
		Timestamp: at,
		Type:      AlertProlongedInactivity,
		Severity:  LevelLow,
		Message:   "Prolonged inactivity detected",
		Details:   fmt.Sprintf("%d minutes without input", minutes),
	}
}
