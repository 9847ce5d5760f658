package domain

import (
	"context"
	"io"
	"time"
)

// ToolChecker verifies the external rsync binary.
type ToolChecker interface {
	// Check locates rsync, queries its version, and validates it against
	// the configured minimum. Returns the detected version on success.
	Check(ctx context.Context) (VersionInfo, error)
}

// SyncRunner executes a built rsync command.
type SyncRunner interface {
	// Run starts the command, streams its combined output, writes transient
	// progress lines to progress, and returns the buffered statistics.
	// Blocks until the child exits; cancelling ctx terminates the child.
	Run(ctx context.Context, cmd Command, progress io.Writer) (*RunResult, error)
}

// SummaryStore persists the run summary.
type SummaryStore interface {
	// Persist writes the summary log to path, replacing any existing content.
	Persist(path string, ts time.Time, stats []string, elapsed time.Duration) error
}

// Reporter renders run milestones to the operator.
type Reporter interface {
	// ToolDetected confirms the rsync version check passed.
	ToolDetected(info VersionInfo)

	// RunHeader announces the run before the child is started: dry-run
	// status, exclusion pattern, log destination, and the literal command.
	RunHeader(req SyncRequest, cmd Command, logPath string)

	// RunSummary renders the buffered statistics and elapsed duration.
	RunSummary(result *RunResult)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
