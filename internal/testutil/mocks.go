// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"io"
	"time"

	"github.com/aandersen/safe-rsync/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockChecker is a test double for domain.ToolChecker.
type MockChecker struct {
	Info    domain.VersionInfo
	Err     error
	Checked bool
}

// Check returns the configured version info or error.
func (m *MockChecker) Check(_ context.Context) (domain.VersionInfo, error) {
	m.Checked = true
	if m.Err != nil {
		return domain.VersionInfo{}, m.Err
	}
	return m.Info, nil
}

// MockRunner is a test double for domain.SyncRunner.
// Fields are ordered to minimize memory padding.
type MockRunner struct {
	Result   *domain.RunResult
	Err      error
	Progress string // written to the progress writer when Run is called
	GotCmd   domain.Command
	RunCalls int
}

// Run records the command and returns the configured result or error.
func (m *MockRunner) Run(_ context.Context, cmd domain.Command, progress io.Writer) (*domain.RunResult, error) {
	m.RunCalls++
	m.GotCmd = cmd
	if m.Progress != "" {
		_, _ = io.WriteString(progress, m.Progress)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Result, nil
}

// MockStore is a test double for domain.SummaryStore.
// Fields are ordered to minimize memory padding.
type MockStore struct {
	Err          error
	GotPath      string
	GotTimestamp time.Time
	GotStats     []string
	GotElapsed   time.Duration
	PersistCalls int
}

// Persist records its arguments and returns the configured error.
func (m *MockStore) Persist(path string, ts time.Time, stats []string, elapsed time.Duration) error {
	m.PersistCalls++
	m.GotPath = path
	m.GotTimestamp = ts
	m.GotStats = stats
	m.GotElapsed = elapsed
	return m.Err
}

// MockReporter is a test double for domain.Reporter that records call order.
type MockReporter struct {
	Calls      []string // "detected", "header", "summary" in invocation order
	GotVersion domain.VersionInfo
	GotRequest domain.SyncRequest
	GotCommand domain.Command
	GotLogPath string
	GotResult  *domain.RunResult
}

// ToolDetected records the detected version.
func (m *MockReporter) ToolDetected(info domain.VersionInfo) {
	m.Calls = append(m.Calls, "detected")
	m.GotVersion = info
}

// RunHeader records the announced run.
func (m *MockReporter) RunHeader(req domain.SyncRequest, cmd domain.Command, logPath string) {
	m.Calls = append(m.Calls, "header")
	m.GotRequest = req
	m.GotCommand = cmd
	m.GotLogPath = logPath
}

// RunSummary records the reported result.
func (m *MockReporter) RunSummary(result *domain.RunResult) {
	m.Calls = append(m.Calls, "summary")
	m.GotResult = result
}
