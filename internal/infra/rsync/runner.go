package rsync

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/aandersen/safe-rsync/internal/domain"
)

// Ensure Runner implements domain.SyncRunner.
var _ domain.SyncRunner = (*Runner)(nil)

// Runner supervises one rsync child process per call.
type Runner struct {
	clock domain.Clock
}

// NewRunner creates a new Runner.
func NewRunner(clock domain.Clock) *Runner {
	return &Runner{clock: clock}
}

// Run starts cmd, drains its combined stdout/stderr line by line, and
// returns the buffered statistics once the child exits. Progress lines are
// rendered to progress with a carriage return so each update overwrites the
// previous one. Cancelling ctx kills the child; the run then fails with
// domain.ErrInterrupted instead of leaving an orphaned rsync behind.
func (r *Runner) Run(ctx context.Context, cmd domain.Command, progress io.Writer) (*domain.RunResult, error) {
	start := r.clock.Now()

	// #nosec G204 - the program and arguments are built by BuildRsyncCommand
	child := exec.CommandContext(ctx, cmd.Program, cmd.Args...)

	// One pipe carries both streams so ordering between them is preserved.
	pr, pw, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("create output pipe: %w", err)
	}
	child.Stdout = pw
	child.Stderr = pw

	if err := child.Start(); err != nil {
		_ = pr.Close()
		_ = pw.Close()
		return nil, fmt.Errorf("start rsync: %w", err)
	}
	// The parent must not hold the write end open, or the scanner below
	// would never see end-of-stream after the child exits.
	_ = pw.Close()

	stats, scanErr := r.drain(pr, progress)
	_ = pr.Close()

	waitErr := child.Wait()
	if ctx.Err() != nil {
		return nil, domain.ErrInterrupted
	}
	if scanErr != nil {
		return nil, fmt.Errorf("read rsync output: %w", scanErr)
	}
	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			return nil, &domain.ExecError{Code: exitErr.ExitCode()}
		}
		return nil, fmt.Errorf("wait for rsync: %w", waitErr)
	}

	return &domain.RunResult{
		Stats:    stats,
		ExitCode: 0,
		Elapsed:  r.clock.Now().Sub(start),
	}, nil
}

// scanUpdates is a bufio.SplitFunc that terminates tokens on \r as well as
// \n. rsync's progress2 output separates successive updates with bare
// carriage returns and only the final one carries a newline; splitting on
// \n alone would hold every mid-transfer update back until the newline
// arrives instead of delivering each repaint as it happens. A \r\n pair
// yields an extra empty token, which classification discards as blank.
func scanUpdates(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// drain consumes the child's output until end-of-stream, buffering
// statistics and rendering progress updates in place.
func (r *Runner) drain(out io.Reader, progress io.Writer) ([]string, error) {
	var stats []string
	prevLen := 0 // length of the last rendered progress line, for clean overwrite
	sawProgress := false

	sc := bufio.NewScanner(out)
	sc.Split(scanUpdates)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		switch classifyLine(line) {
		case lineStat:
			stats = append(stats, line)
		case lineProgress:
			padding := ""
			if n := prevLen - len(line); n > 0 {
				padding = strings.Repeat(" ", n)
			}
			fmt.Fprintf(progress, "\r%s%s", line, padding)
			prevLen = len(line)
			sawProgress = true
		case lineBlank, lineChatter:
			// dropped
		}
	}
	if sawProgress {
		// Move off the overwritten progress line before anything else prints.
		fmt.Fprintln(progress)
	}
	return stats, sc.Err()
}
