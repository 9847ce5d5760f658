// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/aandersen/safe-rsync/internal/domain"
)

// hostOS is a variable so platform rejection can be exercised in tests.
var hostOS = runtime.GOOS

// RunSyncInput contains the parameters for a sync run.
type RunSyncInput struct {
	Source string // Source directory (may be relative or ~-prefixed)
	Dest   string // Destination directory (may be relative or ~-prefixed)
	DryRun bool   // Simulate without changing the destination
}

// RunSyncOutput contains the result of a sync run.
// Fields are ordered to minimize memory padding.
type RunSyncOutput struct {
	Result    *domain.RunResult // Statistics and elapsed duration
	Source    string            // Resolved absolute source
	Dest      string            // Resolved absolute destination
	BackupDir string            // Backup directory (not created in dry-run)
	LogPath   string            // Summary log path (not written in dry-run)
	DryRun    bool
}

// RunSync is the use case for one mirror run. It sequences the pre-flight
// checks, command construction, supervised execution, and summary
// persistence. Every failure is fatal; nothing is retried.
type RunSync struct {
	checker  domain.ToolChecker
	runner   domain.SyncRunner
	store    domain.SummaryStore
	clock    domain.Clock
	reporter domain.Reporter
	logger   *slog.Logger
	cfg      *domain.Config
	progress io.Writer
}

// NewRunSync creates a new RunSync use case.
func NewRunSync(
	checker domain.ToolChecker,
	runner domain.SyncRunner,
	store domain.SummaryStore,
	clock domain.Clock,
	reporter domain.Reporter,
	logger *slog.Logger,
	cfg *domain.Config,
	progress io.Writer,
) *RunSync {
	return &RunSync{
		checker:  checker,
		runner:   runner,
		store:    store,
		clock:    clock,
		reporter: reporter,
		logger:   logger,
		cfg:      cfg,
		progress: progress,
	}
}

// Execute performs a sync run:
//  1. Reject unsupported platforms.
//  2. Resolve paths and verify the source directory exists.
//  3. Validate the rsync installation.
//  4. Create the backup directory (skipped in dry-run).
//  5. Build and announce the rsync command.
//  6. Run it, streaming progress.
//  7. Persist the summary log (skipped in dry-run) and report.
func (uc *RunSync) Execute(ctx context.Context, in RunSyncInput) (*RunSyncOutput, error) {
	if err := domain.CheckPlatform(hostOS); err != nil {
		return nil, err
	}

	src, err := absPath(in.Source)
	if err != nil {
		return nil, fmt.Errorf("resolve source: %w", err)
	}
	dst, err := absPath(in.Dest)
	if err != nil {
		return nil, fmt.Errorf("resolve destination: %w", err)
	}

	if info, statErr := os.Stat(src); statErr != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", domain.ErrSourceNotFound, src)
	}

	versionInfo, err := uc.checker.Check(ctx)
	if err != nil {
		return nil, err
	}
	uc.reporter.ToolDetected(versionInfo)

	ts := uc.clock.Now()
	backupDir := domain.BackupDirPath(dst, uc.cfg.Backup.Prefix, ts)
	logPath := filepath.Join(backupDir, domain.LogFileName(ts))

	if !in.DryRun {
		if err := os.MkdirAll(backupDir, 0o750); err != nil {
			return nil, fmt.Errorf("create backup directory: %w", err)
		}
	}

	req := domain.SyncRequest{
		Source:    src,
		Dest:      dst,
		BackupDir: backupDir,
		Exclude:   domain.ExcludePattern(uc.cfg.Backup.Prefix),
		DryRun:    in.DryRun,
	}
	cmd := domain.BuildRsyncCommand(req, uc.cfg.Rsync.Path, uc.cfg.Rsync.ExtraArgs)
	uc.logger.Debug("built rsync command", "command", cmd.String())

	uc.reporter.RunHeader(req, cmd, logPath)

	result, err := uc.runner.Run(ctx, cmd, uc.progress)
	if err != nil {
		return nil, err
	}
	uc.logger.Debug("rsync finished",
		"stats_lines", len(result.Stats),
		"elapsed", result.Elapsed)

	if !in.DryRun {
		if err := uc.store.Persist(logPath, ts, result.Stats, result.Elapsed); err != nil {
			return nil, err
		}
	}

	uc.reporter.RunSummary(result)

	return &RunSyncOutput{
		Result:    result,
		Source:    src,
		Dest:      dst,
		BackupDir: backupDir,
		LogPath:   logPath,
		DryRun:    in.DryRun,
	}, nil
}

// absPath expands a leading ~ and makes the path absolute.
func absPath(p string) (string, error) {
	if p == "~" || strings.HasPrefix(p, "~"+string(filepath.Separator)) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		p = filepath.Join(home, strings.TrimPrefix(p, "~"))
	}
	return filepath.Abs(p)
}
