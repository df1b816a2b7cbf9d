package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/upkeep/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusColor returns the lipgloss style corresponding to the urgency status.
func StatusColor(status domain.Status) lipgloss.Style {
	switch status {
	case domain.StatusOverdue:
		return StyleRed
	case domain.StatusDueSoon:
		return StyleYellow
	case domain.StatusGood:
		return StyleGreen
	default:
		return StyleDim
	}
}

// StatusIndicator returns a colored indicator string such as "● OVERDUE".
func StatusIndicator(status domain.Status) string {
	switch status {
	case domain.StatusOverdue:
		return StyleRed.Render("● OVERDUE")
	case domain.StatusDueSoon:
		return StyleYellow.Render("● DUE SOON")
	case domain.StatusGood:
		return StyleGreen.Render("● GOOD")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text with the dim style.
func Dim(s string) string { return StyleDim.Render(s) }

// Bold renders text with the bold foreground style.
func Bold(s string) string { return StyleBold.Render(s) }
