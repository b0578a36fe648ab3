package cli

import (
	"fmt"
	"strings"

	"dojoscore/internal/cli/formatter"
	"dojoscore/internal/domain"
	"dojoscore/internal/report"
	"dojoscore/internal/scoring"
)

// renderResults builds the full results screen text for a completed
// assessment. The preview flag selects the stricter weak-area cut used
// by the sample preview; the wizard's results screen uses the standard
// one.
func renderResults(a *domain.Assessment, recs []domain.Recommendation, preview bool) string {
	var b strings.Builder

	weak := scoring.WeakAreasForResults(a)
	if preview {
		weak = scoring.WeakAreasForPreview(a)
	}
	strong := scoring.StrongAreas(a)

	b.WriteString(formatter.Header("Your Business Health Score"))
	b.WriteString("\n\n")
	b.WriteString("  Overall: " + formatter.ScoreOutOfTen(scoring.ScoreOutOfTen(a)))
	b.WriteString(formatter.Dim(fmt.Sprintf("   (average %.2f/5 across %d areas)",
		scoring.AverageScore(a), len(a.Categories()))))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  %s  %s  %s\n",
		formatter.StyleGreen.Render(fmt.Sprintf("%d strong", len(strong))),
		formatter.StyleYellow.Render(fmt.Sprintf("%d average", scoring.AverageAreaCount(a))),
		formatter.StyleRed.Render(fmt.Sprintf("%d need work", len(weak)))))

	b.WriteString("\n")
	b.WriteString(formatter.Header("Score Snapshot"))
	b.WriteString("\n\n")
	for _, p := range scoring.ChartData(a) {
		b.WriteString(fmt.Sprintf("  %-12s %s %d/%d\n",
			p.Label, formatter.ScoreBar(p.Score), p.Score, p.FullMark))
	}

	b.WriteString("\n")
	b.WriteString(formatter.Header("Areas Needing Improvement"))
	b.WriteString("\n\n")
	if len(weak) == 0 {
		b.WriteString("  " + formatter.StyleGreen.Render("Great job! You've rated yourself highly in all areas.") + "\n")
	} else {
		relevant := scoring.RelevantRecommendations(weak, recs)
		recByCategory := make(map[string]domain.Recommendation, len(relevant))
		for _, r := range relevant {
			recByCategory[r.Category] = r
		}
		for _, c := range weak {
			r, _ := a.Result(c.ID)
			b.WriteString(fmt.Sprintf("  %s %s  %s\n",
				formatter.Score(r.Score), formatter.Bold(c.Title),
				formatter.Dim(fmt.Sprintf("%d checklist items missing", scoring.MissingCount(a, c)))))
			if rec, ok := recByCategory[c.ID]; ok {
				b.WriteString(fmt.Sprintf("      %s %s\n", formatter.ResourceBadge(rec.ResourceType), rec.Title))
				b.WriteString("      " + formatter.Dim(rec.ResourceURL) + "\n")
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(formatter.Header("Your Strengths"))
	b.WriteString("\n\n")
	if len(strong) == 0 {
		b.WriteString("  " + formatter.StyleRed.Render("You have opportunities to improve in all areas of your business.") + "\n")
	} else {
		for _, c := range strong {
			r, _ := a.Result(c.ID)
			b.WriteString(fmt.Sprintf("  %s %s\n", formatter.Score(r.Score), c.Title))
		}
	}

	b.WriteString("\n")
	b.WriteString(formatter.Header("Complete Score Breakdown"))
	b.WriteString("\n\n")
	rows := make([][]string, 0, len(a.Categories()))
	for _, c := range a.Categories() {
		r, _ := a.Result(c.ID)
		rows = append(rows, []string{
			c.Title,
			formatter.ScoreBar(r.Score),
			fmt.Sprintf("%d/5", r.Score),
			formatter.BandPill(domain.BandFor(r.Score)),
		})
	}
	b.WriteString(formatter.RenderTable([]string{"Category", "", "Score", "Status"}, rows))

	b.WriteString("\n")
	b.WriteString(formatter.Header("Recommended Next Steps"))
	b.WriteString("\n\n")
	for i, step := range report.NextSteps {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, step))
	}

	return b.String()
}
