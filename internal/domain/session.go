package domain

import "time"

// AppSession is a closed interval during which one application held focus.
// At most one app session is open at a time per tracked user.
type AppSession struct {
	UserID     string
	AppName    string
	Category   Tier
	StartTime  time.Time
	EndTime    time.Time
	DurationMs int64
}

// NewAppSession closes an app session over [start, end).
func NewAppSession(userID, appName string, start, end time.Time) AppSession {
	return AppSession{
		UserID:     userID,
		AppName:    appName,
		Category:   CategorizeApp(appName),
		StartTime:  start,
		EndTime:    end,
		DurationMs: end.Sub(start).Milliseconds(),
	}
}

// WebSession is a closed interval during which one domain was browsed.
// A single app session (the browser) may contain many web sessions.
type WebSession struct {
	UserID     string
	URL        string // resolved domain, not a full URL
	Category   Tier
	StartTime  time.Time
	EndTime    time.Time
	DurationMs int64
}

// NewWebSession closes a web session over [start, end).
func NewWebSession(userID, domain string, start, end time.Time) WebSession {
	return WebSession{
		UserID:     userID,
		URL:        domain,
		Category:   CategorizeSite(domain),
		StartTime:  start,
		EndTime:    end,
		DurationMs: end.Sub(start).Milliseconds(),
	}
}
