package rsync

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aandersen/safe-rsync/internal/domain"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    string
		wantErr error
	}{
		{
			name:   "full three component version",
			output: "rsync  version 3.2.7  protocol version 31\nCopyright (C) 1996-2022",
			want:   "3.2.7",
		},
		{
			name:   "two component version zero padded",
			output: "rsync version 3.2 protocol version 31",
			want:   "3.2",
		},
		{
			name:   "openrsync style line",
			output: "openrsync: protocol version 29\nrsync version 2.6.9 compatible",
			want:   "2.6.9",
		},
		{
			name:    "no version in output",
			output:  "command not found",
			wantErr: domain.ErrVersionParse,
		},
		{
			name:    "empty output",
			output:  "",
			wantErr: domain.ErrVersionParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := ParseVersion(tt.output)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, info.Raw)
		})
	}
}

func TestParseVersion_TupleComparison(t *testing.T) {
	older, err := ParseVersion("rsync version 3.1.0 protocol version 31")
	require.NoError(t, err)
	newer, err := ParseVersion("rsync version 3.2.0 protocol version 31")
	require.NoError(t, err)

	assert.True(t, older.Version.LessThan(newer.Version))
	assert.False(t, newer.Version.LessThan(newer.Version))

	// "3.2" pads to 3.2.0 and compares equal to it.
	padded, err := ParseVersion("rsync version 3.2 protocol version 31")
	require.NoError(t, err)
	assert.True(t, padded.Version.Equal(newer.Version))
}

func TestNewChecker_InvalidMinVersion(t *testing.T) {
	cfg := domain.NewDefaultConfig()
	cfg.Rsync.MinVersion = "not-a-version"
	_, err := NewChecker(cfg)
	require.Error(t, err)
}

// fakeRsync installs a shell script named rsync as the only entry on PATH.
func fakeRsync(t *testing.T, versionLine string) {
	t.Helper()
	dir := t.TempDir()
	script := "#!/bin/sh\necho \"" + versionLine + "\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rsync"), []byte(script), 0o755))
	t.Setenv("PATH", dir)
}

func TestChecker_Check(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping test on Windows")
	}

	newChecker := func(t *testing.T) *Checker {
		t.Helper()
		c, err := NewChecker(domain.NewDefaultConfig())
		require.NoError(t, err)
		return c
	}

	t.Run("tool not on path", func(t *testing.T) {
		t.Setenv("PATH", t.TempDir())
		_, err := newChecker(t).Check(context.Background())
		assert.ErrorIs(t, err, domain.ErrToolNotFound)
		assert.ErrorContains(t, err, "$PATH")
	})

	t.Run("configured absolute path missing", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "rsync")
		cfg := domain.NewDefaultConfig()
		cfg.Rsync.Path = missing
		c, err := NewChecker(cfg)
		require.NoError(t, err)

		_, err = c.Check(context.Background())
		assert.ErrorIs(t, err, domain.ErrToolNotFound)
		// The message must name the configured path, not blame $PATH.
		assert.ErrorContains(t, err, missing)
		assert.NotContains(t, err.Error(), "$PATH")
	})

	t.Run("version accepted", func(t *testing.T) {
		fakeRsync(t, "rsync  version 3.2.7  protocol version 31")
		info, err := newChecker(t).Check(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "3.2.7", info.Raw)
	})

	t.Run("version too old", func(t *testing.T) {
		fakeRsync(t, "rsync  version 3.1.3  protocol version 31")
		_, err := newChecker(t).Check(context.Background())
		assert.ErrorIs(t, err, domain.ErrVersionTooOld)
	})

	t.Run("unparseable version output", func(t *testing.T) {
		fakeRsync(t, "something entirely different")
		_, err := newChecker(t).Check(context.Background())
		assert.ErrorIs(t, err, domain.ErrVersionParse)
	})
}
