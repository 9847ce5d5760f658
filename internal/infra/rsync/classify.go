package rsync

import "strings"

// lineKind is the classification of one line of rsync output.
type lineKind int

const (
	lineBlank    lineKind = iota // empty after trimming, discarded
	lineStat                     // summary statistic, buffered
	lineProgress                 // transient progress, overwritten in place
	lineChatter                  // routine output, dropped
)

// statPrefixes are the stats2 summary markers. The set is coupled to
// rsync's exact output phrasing; keep every change confined to this file.
var statPrefixes = []string{
	"Number of",
	"Total",
	"Literal",
	"Matched",
	"File list",
	"sent",
	"total size",
}

// classifyLine sorts one trimmed output line into exactly one kind.
// The priority order matters: a stats line containing a percent sign must
// still be buffered, never rendered as progress.
func classifyLine(line string) lineKind {
	if line == "" {
		return lineBlank
	}
	for _, p := range statPrefixes {
		if strings.HasPrefix(line, p) {
			return lineStat
		}
	}
	if strings.Contains(line, "%") || strings.Contains(line, "to-chk=") {
		return lineProgress
	}
	return lineChatter
}
