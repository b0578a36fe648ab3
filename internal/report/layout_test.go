package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dojoscore/internal/catalog"
	"dojoscore/internal/domain"
)

var testGeneratedAt = time.Date(2026, 3, 7, 14, 30, 0, 0, time.UTC)

func uniformAssessment(t *testing.T, score int) *domain.Assessment {
	t.Helper()
	a := domain.NewAssessment(catalog.Categories())
	for _, c := range a.Categories() {
		require.NoError(t, a.SetScore(c.ID, score))
	}
	a.SkipContact()
	return a
}

// allText flattens every TextBlock across all pages.
func allText(doc *Document) []string {
	var out []string
	for _, p := range doc.Pages {
		for _, b := range p.Blocks {
			if tb, ok := b.(TextBlock); ok {
				out = append(out, tb.Text)
			}
		}
	}
	return out
}

func TestBuild_Deterministic(t *testing.T) {
	a := catalog.SampleAssessment()

	doc1 := Build(a, testGeneratedAt)
	doc2 := Build(a, testGeneratedAt)

	assert.Equal(t, doc1, doc2, "same assessment and timestamp must lay out identically")
}

func TestBuild_PageGeometry(t *testing.T) {
	doc := Build(catalog.SampleAssessment(), testGeneratedAt)

	assert.Equal(t, 210.0, doc.PageWidth)
	assert.Equal(t, 297.0, doc.PageHeight)
	assert.Equal(t, 15.0, doc.Margin)
	assert.Greater(t, doc.BlockCount(), 0)
}

func TestBuild_Paginates(t *testing.T) {
	doc := Build(catalog.SampleAssessment(), testGeneratedAt)

	// The 23-row breakdown table alone outgrows one A4 page.
	assert.GreaterOrEqual(t, len(doc.Pages), 2)
}

func TestBuild_BlocksStayWithinUsableHeight(t *testing.T) {
	doc := Build(catalog.SampleAssessment(), testGeneratedAt)

	for pi, p := range doc.Pages {
		for _, b := range p.Blocks {
			if rb, ok := b.(RectBlock); ok {
				assert.LessOrEqual(t, rb.Y+rb.H, doc.PageHeight-doc.Margin,
					"rect on page %d overruns the bottom margin", pi+1)
			}
		}
	}
}

func TestBuild_Header(t *testing.T) {
	a := catalog.SampleAssessment()
	a.SetUserInfo(catalog.SampleUserInfo)

	texts := allText(Build(a, testGeneratedAt))
	assert.Contains(t, texts, "Martial Arts Business Assessment")
	assert.Contains(t, texts, "Date: 3/7/2026")
	assert.Contains(t, texts, "Prepared for: John Smith")
}

func TestBuild_AllStrong(t *testing.T) {
	doc := Build(uniformAssessment(t, 5), testGeneratedAt)

	texts := allText(doc)
	assert.Contains(t, texts, "All Areas Strong")
	assert.Contains(t, texts, "Great job! You've rated yourself highly in all areas.")
}

func TestBuild_AllWeak(t *testing.T) {
	doc := Build(uniformAssessment(t, 1), testGeneratedAt)

	texts := allText(doc)
	assert.Contains(t, texts, "23 Areas Need Work")
	assert.Contains(t, texts, "You have opportunities to improve in all areas of your business.")
}

func TestBuild_FooterAndNextSteps(t *testing.T) {
	texts := allText(Build(catalog.SampleAssessment(), testGeneratedAt))

	assert.Contains(t, texts, "Recommended Next Steps")
	assert.Contains(t, texts, "1. Focus on improving your lowest-scoring areas first")
	assert.Contains(t, texts, "© 2026 The Odyssey Group. All rights reserved.")
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Martial_Arts_Business_Assessment_John_Smith_03-07-2026.pdf",
		Filename("John Smith", testGeneratedAt))
	assert.Equal(t, "Martial_Arts_Business_Assessment_user_03-07-2026.pdf",
		Filename("   ", testGeneratedAt))
}

func TestWrapText(t *testing.T) {
	lines := wrapText("a b c", 1000, 9)
	assert.Equal(t, []string{"a b c"}, lines, "everything fits on one line")

	lines = wrapText("alpha beta gamma", 20, 9)
	assert.Greater(t, len(lines), 1, "narrow width forces wrapping")
	for _, line := range lines {
		assert.LessOrEqual(t, TextWidth(line, 9), 20.0)
	}

	assert.Nil(t, wrapText("   ", 20, 9))
}

func TestTruncateToWidth(t *testing.T) {
	assert.Equal(t, "short", truncateToWidth("short", 1000, 9))

	long := "Funnels, Automations & Technology"
	got := truncateToWidth(long, 30, 9)
	assert.NotEqual(t, long, got)
	assert.True(t, len(got) < len(long))
	assert.Contains(t, got, "...")
	assert.LessOrEqual(t, TextWidth(got, 9), 30.0)
}
