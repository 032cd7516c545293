// Package style holds the colors and icons shared by the logger and the
// interactive shell.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Cross   = "✗"
	Warning = "!"
	Prompt  = "›"
)

// Styles used by the interactive shell.
var (
	PromptStyle = lipgloss.NewStyle().Foreground(Iris).Bold(true)
	WordStyle   = lipgloss.NewStyle().Bold(true)
	ArrowStyle  = lipgloss.NewStyle().Foreground(Slate)
	MissStyle   = lipgloss.NewStyle().Foreground(Yellow)
)
