package cli

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for console output.
var Colors = struct {
	Success lipgloss.Color
	Info    lipgloss.Color
	Error   lipgloss.Color
	Muted   lipgloss.Color
}{
	Success: lipgloss.Color("#00B894"), // Green
	Info:    lipgloss.Color("#00CEC9"), // Cyan
	Error:   lipgloss.Color("#D63031"), // Red
	Muted:   lipgloss.Color("#636E72"), // Gray
}

var (
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(Colors.Success)
	infoStyle    = lipgloss.NewStyle().Bold(true).Foreground(Colors.Info)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(Colors.Error)
	mutedStyle   = lipgloss.NewStyle().Foreground(Colors.Muted)
)

// FormatError renders a fatal error message for the console.
// Every failure path funnels through this; no failure is silent.
func FormatError(err error) string {
	return errorStyle.Render("❌ " + err.Error())
}
