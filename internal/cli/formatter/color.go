package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dojoscore/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
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
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// BandStyle returns the lipgloss style for a score band.
func BandStyle(band domain.Band) lipgloss.Style {
	switch band {
	case domain.BandStrong:
		return StyleGreen
	case domain.BandAverage:
		return StyleYellow
	default:
		return StyleRed
	}
}

// BandPill returns a colored status indicator such as "● Needs Work".
func BandPill(band domain.Band) string {
	switch band {
	case domain.BandStrong:
		return StyleGreen.Render("● " + band.Label())
	case domain.BandAverage:
		return StyleYellow.Render("● " + band.Label())
	default:
		return StyleRed.Render("● " + band.Label())
	}
}

// Score renders "n/5" colored by the score's band.
func Score(score int) string {
	return BandStyle(domain.BandFor(score)).Render(fmt.Sprintf("%d/5", score))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len([]rune(upper)))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
