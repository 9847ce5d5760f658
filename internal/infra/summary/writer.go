// Package summary persists the end-of-run summary log.
package summary

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aandersen/safe-rsync/internal/domain"
)

// Ensure Store implements domain.SummaryStore.
var _ domain.SummaryStore = (*Store)(nil)

// Store writes run summaries to disk.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Persist writes the summary log to path, replacing any existing content.
// Layout: timestamp header, separator, the statistic lines verbatim in
// their original order, separator, trailing duration line.
func (s *Store) Persist(path string, ts time.Time, stats []string, elapsed time.Duration) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Rsync run %s\n", ts.Format(domain.TimestampLayout))
	b.WriteString(domain.Separator + "\n")
	for _, line := range stats {
		b.WriteString(line + "\n")
	}
	b.WriteString(domain.Separator + "\n")
	fmt.Fprintf(&b, "Duration: %.2f seconds\n", elapsed.Seconds())

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil { //nolint:gosec // Summary log readable by repository users
		return &domain.PersistError{Path: path, Err: err}
	}
	return nil
}
