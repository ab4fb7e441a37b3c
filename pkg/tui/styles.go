package tui

import "github.com/charmbracelet/lipgloss"

// Color constants
const (
	ColorActive      = "170" // Purple/magenta for the selection
	ColorInactive    = "240" // Gray for chrome
	ColorSelected    = "236" // Dark gray selection background
	ColorNormal      = "245" // Light gray for normal text
	ColorDim         = "241" // Dimmer gray
	ColorSlot        = "214" // Orange for named-slot group rows
	ColorHighlight   = "28"  // Green for an accepted drop target
	ColorPlaceholder = "33"  // Blue for a sibling insertion point
	ColorWhite       = "255" // White
)

// Common styles
var (
	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Background(lipgloss.Color(ColorSelected)).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim))

	SlotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSlot)).
			Italic(true)

	HighlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWhite)).
			Background(lipgloss.Color(ColorHighlight)).
			Bold(true)

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorPlaceholder)).
				Underline(true)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorWhite))

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim))

	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorHighlight))
)
