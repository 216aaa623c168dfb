package domain

import "time"

// CommandStatus is the lifecycle state of a screenshot command.
type CommandStatus string

const (
	CommandPending   CommandStatus = "pending"
	CommandCompleted CommandStatus = "completed"
)

// ScreenshotCommand is an on-demand capture request issued externally.
// The engine only observes pending commands and transitions them to
// completed; it never creates or deletes them on its own behalf.
type ScreenshotCommand struct {
	ID          string
	UserID      string
	Status      CommandStatus
	RequestedAt time.Time
}

// Screenshot is the persisted record of one uploaded capture.
type Screenshot struct {
	ID         string
	UserID     string
	CapturedAt time.Time
	StoredPath string
	SizeBytes  int64
	OnDemand   bool // true when triggered by a command rather than the schedule
}
