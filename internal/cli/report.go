package cli

import (
	"fmt"
	"io"

	"github.com/aandersen/safe-rsync/internal/domain"
)

// Ensure ConsoleReporter implements domain.Reporter.
var _ domain.Reporter = (*ConsoleReporter)(nil)

// ConsoleReporter renders run milestones to the console.
type ConsoleReporter struct {
	out io.Writer
}

// NewConsoleReporter creates a reporter writing to out.
func NewConsoleReporter(out io.Writer) *ConsoleReporter {
	return &ConsoleReporter{out: out}
}

// ToolDetected confirms the rsync version check passed.
func (r *ConsoleReporter) ToolDetected(info domain.VersionInfo) {
	fmt.Fprintln(r.out, successStyle.Render("✅ rsync version "+info.Raw+" detected."))
}

// RunHeader announces the run before rsync is started. The literal command
// is printed so the operator is never surprised by what gets executed.
func (r *ConsoleReporter) RunHeader(req domain.SyncRequest, cmd domain.Command, logPath string) {
	fmt.Fprintln(r.out, infoStyle.Render("🚀 Running rsync…"))
	fmt.Fprintf(r.out, "   🔍 Dry run   : %v\n", req.DryRun)
	fmt.Fprintf(r.out, "   📦 Excluding : %s\n", req.Exclude)
	fmt.Fprintf(r.out, "   📝 Log file  : %s\n", logPath)
	fmt.Fprintf(r.out, "   ⚙️  Command   : %s\n\n", cmd.String())
}

// RunSummary renders the buffered statistics and elapsed duration.
func (r *ConsoleReporter) RunSummary(result *domain.RunResult) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, successStyle.Render("✅ Rsync summary:"))
	fmt.Fprintln(r.out, mutedStyle.Render(domain.Separator))
	for _, line := range result.Stats {
		fmt.Fprintln(r.out, infoStyle.Render(line))
	}
	fmt.Fprintln(r.out, infoStyle.Render(fmt.Sprintf("⏱ Duration: %.2f seconds", result.Elapsed.Seconds())))
	fmt.Fprintln(r.out, mutedStyle.Render(domain.Separator))
}
