// Package style provides the colors and icons shared by the logger and the plan renderer.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Droid  = lipgloss.Color("#3DDC84")
	Dart   = lipgloss.Color("#0175C2")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Dot     = "●"
	Circle  = "○"
)

// Heading renders a section title in the plan output.
var Heading = lipgloss.NewStyle().Bold(true).Foreground(Droid)
