package report

import "strings"

// The layout engine never talks to a font library: line wrapping and
// truncation use a flat average glyph width so the produced geometry is
// identical on every platform. The factor is tuned slightly wide for
// Helvetica, so wrapped lines err on the short side and never overflow
// their box when rendered.
const (
	ptToMM      = 0.352778
	avgGlyphEm  = 0.5
	wrapLineGap = 4.0 // mm between wrapped description lines
)

// TextWidth estimates the rendered width in millimeters of s at the
// given point size.
func TextWidth(s string, size float64) float64 {
	return float64(len([]rune(s))) * size * avgGlyphEm * ptToMM
}

// wrapText greedily wraps text into lines no wider than maxWidth. A
// single word wider than maxWidth occupies its own line.
func wrapText(text string, maxWidth, size float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	cur := words[0]
	for _, w := range words[1:] {
		candidate := cur + " " + w
		if TextWidth(candidate, size) > maxWidth {
			lines = append(lines, cur)
			cur = w
			continue
		}
		cur = candidate
	}
	return append(lines, cur)
}

// truncateToWidth shortens s with a trailing ellipsis so it fits within
// maxWidth at the given size. Strings that already fit are unchanged.
func truncateToWidth(s string, maxWidth, size float64) string {
	if TextWidth(s, size) <= maxWidth {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && TextWidth(string(runes)+"...", size) > maxWidth {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}
