package usecase

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aandersen/safe-rsync/internal/domain"
	"github.com/aandersen/safe-rsync/internal/testutil"
)

var fixedTime = time.Date(2026, 8, 30, 14, 3, 12, 0, time.UTC)

type fixture struct {
	checker  *testutil.MockChecker
	runner   *testutil.MockRunner
	store    *testutil.MockStore
	reporter *testutil.MockReporter
	uc       *RunSync
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		checker: &testutil.MockChecker{Info: domain.VersionInfo{Raw: "3.2.7"}},
		runner: &testutil.MockRunner{Result: &domain.RunResult{
			Stats:   []string{"Number of files: 1", "total size is 12  speedup is 1.00"},
			Elapsed: 2 * time.Second,
		}},
		store:    &testutil.MockStore{},
		reporter: &testutil.MockReporter{},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.uc = NewRunSync(f.checker, f.runner, f.store, &testutil.MockClock{NowTime: fixedTime},
		f.reporter, logger, domain.NewDefaultConfig(), io.Discard)
	return f
}

func TestRunSync_Execute_RealRun(t *testing.T) {
	f := newFixture(t)
	src := t.TempDir()
	dst := t.TempDir()

	out, err := f.uc.Execute(context.Background(), RunSyncInput{Source: src, Dest: dst})
	require.NoError(t, err)

	wantBackup := filepath.Join(dst, "000_rsync_backup_2026-08-30_14-03-12")
	assert.Equal(t, wantBackup, out.BackupDir)
	assert.DirExists(t, wantBackup, "backup directory is created before the run")

	wantLog := filepath.Join(wantBackup, "000_rsync_log_2026-08-30_14-03-12.log")
	assert.Equal(t, wantLog, out.LogPath)

	// Summary is persisted with the run's statistics and timing.
	assert.Equal(t, 1, f.store.PersistCalls)
	assert.Equal(t, wantLog, f.store.GotPath)
	assert.Equal(t, f.runner.Result.Stats, f.store.GotStats)
	assert.Equal(t, 2*time.Second, f.store.GotElapsed)

	// Milestones are reported in order.
	assert.Equal(t, []string{"detected", "header", "summary"}, f.reporter.Calls)
	assert.Equal(t, "3.2.7", f.reporter.GotVersion.Raw)
}

func TestRunSync_Execute_CommandConstruction(t *testing.T) {
	f := newFixture(t)
	src := t.TempDir()
	dst := t.TempDir()

	_, err := f.uc.Execute(context.Background(), RunSyncInput{Source: src, Dest: dst})
	require.NoError(t, err)

	cmd := f.runner.GotCmd
	assert.Equal(t, "rsync", cmd.Program)
	assert.Contains(t, cmd.Args, "--exclude=000_rsync_backup_*")
	assert.Equal(t, src+string(filepath.Separator), cmd.Args[len(cmd.Args)-2])
	assert.Equal(t, dst, cmd.Args[len(cmd.Args)-1])
	assert.NotContains(t, cmd.Args, "--dry-run")
}

func TestRunSync_Execute_DryRun(t *testing.T) {
	f := newFixture(t)
	src := t.TempDir()
	dst := t.TempDir()

	out, err := f.uc.Execute(context.Background(), RunSyncInput{Source: src, Dest: dst, DryRun: true})
	require.NoError(t, err)

	assert.True(t, out.DryRun)
	assert.Contains(t, f.runner.GotCmd.Args, "--dry-run")
	assert.NoDirExists(t, out.BackupDir, "dry run must not create backup artifacts")
	assert.Zero(t, f.store.PersistCalls, "dry run must not write a log")
	assert.Equal(t, []string{"detected", "header", "summary"}, f.reporter.Calls)
}

func TestRunSync_Execute_SourceMissing(t *testing.T) {
	f := newFixture(t)
	missing := filepath.Join(t.TempDir(), "nope")

	_, err := f.uc.Execute(context.Background(), RunSyncInput{Source: missing, Dest: t.TempDir()})
	assert.ErrorIs(t, err, domain.ErrSourceNotFound)
	assert.False(t, f.checker.Checked, "version check runs after the source check")
	assert.Zero(t, f.runner.RunCalls)
}

func TestRunSync_Execute_SourceIsFile(t *testing.T) {
	f := newFixture(t)
	file := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := f.uc.Execute(context.Background(), RunSyncInput{Source: file, Dest: t.TempDir()})
	assert.ErrorIs(t, err, domain.ErrSourceNotFound)
}

func TestRunSync_Execute_CheckerFailureStopsRun(t *testing.T) {
	f := newFixture(t)
	f.checker.Err = domain.ErrToolNotFound
	dst := t.TempDir()

	_, err := f.uc.Execute(context.Background(), RunSyncInput{Source: t.TempDir(), Dest: dst})
	assert.ErrorIs(t, err, domain.ErrToolNotFound)
	assert.Zero(t, f.runner.RunCalls, "no process is spawned when rsync is missing")

	entries, readErr := os.ReadDir(dst)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "no backup directory is created when rsync is missing")
}

func TestRunSync_Execute_RunnerFailureSkipsPersist(t *testing.T) {
	f := newFixture(t)
	f.runner.Err = &domain.ExecError{Code: 23}

	_, err := f.uc.Execute(context.Background(), RunSyncInput{Source: t.TempDir(), Dest: t.TempDir()})
	var execErr *domain.ExecError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, 23, execErr.Code)
	assert.Zero(t, f.store.PersistCalls)
	assert.NotContains(t, f.reporter.Calls, "summary")
}

func TestRunSync_Execute_PersistFailureIsFatal(t *testing.T) {
	f := newFixture(t)
	f.store.Err = &domain.PersistError{Path: "/x", Err: os.ErrPermission}

	_, err := f.uc.Execute(context.Background(), RunSyncInput{Source: t.TempDir(), Dest: t.TempDir()})
	var persistErr *domain.PersistError
	assert.ErrorAs(t, err, &persistErr)
	assert.NotContains(t, f.reporter.Calls, "summary")
}

func TestRunSync_Execute_UnsupportedPlatform(t *testing.T) {
	orig := hostOS
	hostOS = "windows"
	t.Cleanup(func() { hostOS = orig })

	f := newFixture(t)
	_, err := f.uc.Execute(context.Background(), RunSyncInput{Source: t.TempDir(), Dest: t.TempDir()})
	assert.ErrorIs(t, err, domain.ErrUnsupportedPlatform)
	assert.False(t, f.checker.Checked)
}

func TestAbsPath(t *testing.T) {
	t.Run("relative path becomes absolute", func(t *testing.T) {
		got, err := absPath("some/dir")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))
	})

	t.Run("tilde expands to home", func(t *testing.T) {
		home, err := os.UserHomeDir()
		require.NoError(t, err)
		got, err := absPath("~/data")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "data"), got)
	})
}
