// Package domain contains the core types and rules for safe-rsync.
package domain

import (
	"time"

	"github.com/Masterminds/semver/v3"
)

// SyncRequest describes a single mirror run. It is built once from the
// CLI arguments and configuration, and is immutable afterwards.
// Fields are ordered to minimize memory padding.
type SyncRequest struct {
	Source    string // Absolute source directory
	Dest      string // Absolute destination directory
	BackupDir string // Directory receiving overwritten/deleted files
	Exclude   string // Pattern excluded from transfer and backup
	DryRun    bool   // Simulate without changing the destination
}

// RunResult holds what a finished rsync run left behind.
// Stats is append-only while the child runs and never mutated afterwards.
type RunResult struct {
	Stats    []string      // Summary statistic lines, in output order
	ExitCode int           // Child exit status (0 on success)
	Elapsed  time.Duration // Wall-clock duration of the transfer
}

// VersionInfo is the parsed result of `rsync --version`.
// It only lives long enough for the minimum-version check.
type VersionInfo struct {
	Raw     string          // Version string as reported, e.g. "3.2.7"
	Version *semver.Version // Parsed form used for comparison
}
