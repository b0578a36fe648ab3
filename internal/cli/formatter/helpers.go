package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dojoscore/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// ScoreBar renders a five-segment bar for a 1-5 score, colored by band.
func ScoreBar(score int) string {
	if score < 0 {
		score = 0
	}
	if score > 5 {
		score = 5
	}
	style := BandStyle(domain.BandFor(score))
	filled := strings.Repeat("█", score)
	empty := strings.Repeat("░", 5-score)
	return style.Render(filled) + StyleDim.Render(empty)
}

// ScoreOutOfTen renders the overall "n/10" figure colored by how the
// underlying 1-5 average classifies.
func ScoreOutOfTen(score float64) string {
	band := domain.BandFor(int(score / 2))
	return BandStyle(band).Render(fmt.Sprintf("%.1f/10", score))
}

// Progress renders a "Step k of n" indicator with a proportional bar.
func Progress(step, total int) string {
	if total <= 0 {
		return ""
	}
	if step < 0 {
		step = 0
	}
	if step > total {
		step = total
	}
	const barWidth = 23
	filled := barWidth * step / total
	bar := StyleGreen.Render(strings.Repeat("█", filled)) +
		StyleDim.Render(strings.Repeat("░", barWidth-filled))
	return fmt.Sprintf("%s %s", bar, Dim(fmt.Sprintf("Step %d of %d", step, total)))
}

// ResourceBadge returns a styled label for a recommendation's resource type.
func ResourceBadge(rt domain.ResourceType) string {
	return StylePurple.Render(strings.ToUpper(rt.Label()))
}

// Checkbox renders a checklist entry marker.
func Checkbox(checked bool) string {
	if checked {
		return StyleGreen.Render("[x]")
	}
	return StyleDim.Render("[ ]")
}
