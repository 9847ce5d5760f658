// Package rsync drives the external rsync binary: version validation,
// command construction helpers, and supervised execution.
package rsync

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"

	"github.com/Masterminds/semver/v3"

	"github.com/aandersen/safe-rsync/internal/domain"
)

// versionPattern matches the first line of `rsync --version`,
// e.g. "rsync  version 3.2.7  protocol version 31".
var versionPattern = regexp.MustCompile(`rsync\s+version\s+([0-9]+(?:\.[0-9]+)+)`)

// Ensure Checker implements domain.ToolChecker.
var _ domain.ToolChecker = (*Checker)(nil)

// Checker validates the rsync installation before a run.
type Checker struct {
	min  *semver.Version
	path string
}

// NewChecker creates a Checker from configuration.
func NewChecker(cfg *domain.Config) (*Checker, error) {
	min, err := semver.NewVersion(cfg.Rsync.MinVersion)
	if err != nil {
		return nil, fmt.Errorf("invalid min_version %q: %w", cfg.Rsync.MinVersion, err)
	}
	return &Checker{min: min, path: cfg.Rsync.Path}, nil
}

// Check locates rsync, queries its version, and validates it against the
// configured minimum. No child process is spawned when rsync is absent.
func (c *Checker) Check(ctx context.Context) (domain.VersionInfo, error) {
	if _, err := exec.LookPath(c.path); err != nil {
		// LookPath's own error names the configured path and whether it was
		// a $PATH miss or a bad absolute path.
		return domain.VersionInfo{}, fmt.Errorf("%w: %v", domain.ErrToolNotFound, err)
	}

	out, err := exec.CommandContext(ctx, c.path, "--version").Output()
	if err != nil {
		return domain.VersionInfo{}, fmt.Errorf("query rsync version: %w", err)
	}

	info, err := ParseVersion(string(out))
	if err != nil {
		return domain.VersionInfo{}, err
	}

	if info.Version.LessThan(c.min) {
		return domain.VersionInfo{}, fmt.Errorf("rsync >= %s required, found %s: %w",
			c.min, info.Raw, domain.ErrVersionTooOld)
	}
	return info, nil
}

// ParseVersion extracts the version from `rsync --version` output.
// Missing components are zero-padded, so "3.2" parses as 3.2.0.
func ParseVersion(output string) (domain.VersionInfo, error) {
	m := versionPattern.FindStringSubmatch(output)
	if m == nil {
		return domain.VersionInfo{}, domain.ErrVersionParse
	}
	v, err := semver.NewVersion(m[1])
	if err != nil {
		return domain.VersionInfo{}, fmt.Errorf("%w: %q", domain.ErrVersionParse, m[1])
	}
	return domain.VersionInfo{Raw: m[1], Version: v}, nil
}
