package domain

import (
	"path/filepath"
	"time"
)

// TimestampLayout is the timestamp format embedded in backup directory
// and log file names.
const TimestampLayout = "2006-01-02_15-04-05"

// Separator frames the statistics block in the log file and on the console.
const Separator = "────────────────────────────────────────"

// logFilePrefix is fixed: the log lives inside the backup directory, which
// is already excluded from transfer, so it never needs its own exclusion.
const logFilePrefix = "000_rsync_log_"

// BackupDirName returns the backup directory name for a run.
// Format: <prefix><timestamp>, e.g. 000_rsync_backup_2026-08-30_14-03-12.
func BackupDirName(prefix string, ts time.Time) string {
	return prefix + ts.Format(TimestampLayout)
}

// BackupDirPath returns the backup directory path, nested inside the
// destination so it travels with the mirrored tree.
func BackupDirPath(dst, prefix string, ts time.Time) string {
	return filepath.Join(dst, BackupDirName(prefix, ts))
}

// LogFileName returns the summary log file name for a run.
func LogFileName(ts time.Time) string {
	return logFilePrefix + ts.Format(TimestampLayout) + ".log"
}

// ExcludePattern returns the rsync exclusion pattern matching every backup
// directory created with prefix, past and present. Without it rsync would
// re-transfer and re-back-up prior backups on every run.
func ExcludePattern(prefix string) string {
	return prefix + "*"
}
