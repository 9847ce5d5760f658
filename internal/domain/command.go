package domain

import (
	"path/filepath"
	"strings"
)

// Command represents an external command ready for execution.
// This type is used to pass command information between layers
// without exposing implementation details.
type Command struct {
	Program string
	Args    []string
}

// String returns the command as it would be typed in a shell.
// Used for the pre-run header so the operator sees exactly what runs.
func (c Command) String() string {
	return strings.Join(append([]string{c.Program}, c.Args...), " ")
}

// BuildRsyncCommand constructs the full rsync invocation for a request.
// It is a pure function: the same inputs always yield the same command.
//
// The fixed flags are non-negotiable: archive mode, human-readable sizes,
// delete of extraneous destination files, backup of replaced/deleted files
// into req.BackupDir, exclusion of req.Exclude (so prior backups are never
// swept into a new backup), and stats2/progress2 reporting. Extra args from
// configuration are appended after them and before the paths.
func BuildRsyncCommand(req SyncRequest, tool string, extraArgs []string) Command {
	args := []string{
		"-a",
		"-h",
		"--delete",
		"--backup",
		"--backup-dir=" + req.BackupDir,
		"--exclude=" + req.Exclude,
		"--info=stats2,progress2",
	}
	if req.DryRun {
		// rsync honors --dry-run only before the positional paths.
		args = append([]string{"--dry-run"}, args...)
	}
	args = append(args, extraArgs...)

	// A trailing separator makes rsync copy the directory's contents
	// instead of nesting the directory one level deeper in the destination.
	sep := string(filepath.Separator)
	src := strings.TrimRight(req.Source, sep) + sep

	args = append(args, src, req.Dest)
	return Command{Program: tool, Args: args}
}
