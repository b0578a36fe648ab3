package cli

import (
	"fmt"
	"strings"

	"dojoscore/internal/cli/formatter"
	"dojoscore/internal/domain"
)

// resultsChromeLines is the vertical space the results screen spends on
// its header and status bar around the viewport.
const resultsChromeLines = 4

func (m wizardModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.assessment.Screen() {
	case domain.ScreenIntro:
		return m.viewIntro()
	case domain.ScreenCategory:
		return m.viewCategory()
	case domain.ScreenContact:
		return m.viewContact()
	default:
		return m.viewResults()
	}
}

func (m wizardModel) viewIntro() string {
	n := len(m.assessment.Categories())
	content := strings.Join([]string{
		"Rate your school across " + formatter.Bold(fmt.Sprintf("%d areas", n)) + " of your business,",
		"check off what you already have in place, and get a scored",
		"report with recommendations for your weakest areas.",
		"",
		formatter.Dim("Takes about 10 minutes. Nothing is saved or sent anywhere."),
	}, "\n")

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(formatter.RenderBox("Martial Arts Business Assessment", content))
	b.WriteString("\n\n  ")
	b.WriteString(formatter.Dim("enter: begin  q: quit"))
	b.WriteString("\n")
	return b.String()
}

func (m wizardModel) viewCategory() string {
	cat := m.assessment.CurrentCategory()
	if cat == nil {
		return ""
	}
	result, _ := m.assessment.Result(cat.ID)

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(formatter.Progress(m.assessment.CurrentStep, len(m.assessment.Categories())))
	b.WriteString("\n\n  ")
	b.WriteString(formatter.StyleHeader.Render(cat.Title))
	b.WriteString("\n  ")
	b.WriteString(formatter.Dim(cat.Description))
	b.WriteString("\n\n  ")
	b.WriteString(formatter.Bold("How would you rate this area?"))
	b.WriteString("\n")
	for score := 1; score <= 5; score++ {
		label := fmt.Sprintf("%d  %s", score, domain.ScoreLabels[score])
		if result != nil && result.Score == score {
			b.WriteString("    " + formatter.BandStyle(domain.BandFor(score)).Render("▸ "+label) + "\n")
		} else {
			b.WriteString("    " + formatter.Dim("  "+label) + "\n")
		}
	}

	b.WriteString("\n  ")
	b.WriteString(formatter.Bold("What do you already have in place?"))
	b.WriteString("\n")
	for i, item := range cat.ChecklistItems {
		cursor := "  "
		if i == m.cursor {
			cursor = formatter.StyleHeader.Render("▸ ")
		}
		checked := result != nil && result.Checked(item.ID)
		b.WriteString(fmt.Sprintf("    %s%s %s\n", cursor, formatter.Checkbox(checked), item.Text))
	}

	b.WriteString("\n  ")
	next := "enter: next"
	if m.assessment.CurrentStep == len(m.assessment.Categories()) {
		next = "enter: complete assessment"
	}
	b.WriteString(formatter.Dim("1-5: rate  ↑↓: move  space: toggle  " + next + "  ←: back  q: quit"))
	b.WriteString("\n")
	return b.String()
}

func (m wizardModel) viewContact() string {
	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(formatter.StyleHeader.Render("Almost there!"))
	b.WriteString("\n  ")
	b.WriteString(formatter.Dim("Leave your details to personalize the report, or skip straight to your results."))
	b.WriteString("\n\n")

	if m.errs.Name != "" {
		b.WriteString("  " + formatter.StyleRed.Render(m.errs.Name) + "\n")
	}
	if m.errs.Email != "" {
		b.WriteString("  " + formatter.StyleRed.Render(m.errs.Email) + "\n")
	}
	if m.errs.Any() {
		b.WriteString("\n")
	}

	if m.form != nil {
		b.WriteString(m.form.View())
	}
	b.WriteString("\n  ")
	b.WriteString(formatter.Dim("esc: back"))
	return b.String()
}

func (m wizardModel) viewResults() string {
	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render("  Assessment Complete"))
	if m.assessment.UserInfo != nil {
		b.WriteString(formatter.Dim(" · " + m.assessment.UserInfo.Name))
	}
	b.WriteString("\n\n")

	if m.vpReady {
		b.WriteString(m.vp.View())
	} else {
		b.WriteString(renderResults(m.assessment, m.app.Recommendations, false))
	}

	b.WriteString("\n  ")
	switch {
	case m.generating:
		b.WriteString(formatter.StyleYellow.Render("Generating PDF report..."))
	case m.reportErr != nil:
		b.WriteString(formatter.StyleRed.Render("Report failed: " + m.reportErr.Error()))
	case m.reportPath != "":
		b.WriteString(formatter.StyleGreen.Render("Report saved to " + m.reportPath))
	default:
		b.WriteString(formatter.Dim("d: download PDF  r: start over  ↑↓: scroll  q: quit"))
	}
	b.WriteString("\n")
	return b.String()
}
