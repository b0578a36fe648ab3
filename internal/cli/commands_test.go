package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dojoscore/internal/catalog"
)

func testApp() *App {
	return &App{
		Categories:      catalog.Categories(),
		Recommendations: catalog.Recommendations(),
	}
}

func execute(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd(app)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestPreviewCmd(t *testing.T) {
	out, err := execute(t, testApp(), "preview")
	require.NoError(t, err)

	assert.Contains(t, out, "Sample results for John Smith")
	assert.Contains(t, out, "6.1/10")

	// The preview uses the stricter weak cut: merchandise (1) qualifies,
	// lead-generation (3) does not.
	assert.Contains(t, out, "Merchandise")
	assert.Contains(t, out, "Curriculum")
}

func TestPreviewCmd_PDF(t *testing.T) {
	app := testApp()
	writer := &fakeReportWriter{}
	app.Reports = writer

	out, err := execute(t, app, "preview", "--pdf")
	require.NoError(t, err)

	assert.Equal(t, 1, writer.calls)
	assert.Contains(t, writer.lastFilename, "John_Smith")
	assert.Contains(t, out, "Report saved to ")
}

func TestCategoriesCmd(t *testing.T) {
	out, err := execute(t, testApp(), "categories")
	require.NoError(t, err)

	assert.Contains(t, out, "Lead Generation")
	assert.Contains(t, out, "Facility")
	assert.Contains(t, out, "5 items")
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, testApp(), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "dojoscore "+Version)
}

func TestRunCmd_RequiresTTY(t *testing.T) {
	app := testApp()
	app.IsInteractive = func() bool { return false }

	_, err := execute(t, app, "run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestRenderResults_WeakThresholds(t *testing.T) {
	sample := catalog.SampleAssessment()

	full := renderResults(sample, catalog.Recommendations(), false)
	preview := renderResults(sample, catalog.Recommendations(), true)

	// Score 3 areas count as weak on the full results but not the preview.
	assert.Contains(t, full, "16 need work")
	assert.Contains(t, preview, "7 need work")
	assert.Contains(t, preview, "Merchandise")

	assert.Contains(t, full, "YOUR STRENGTHS")
	assert.Contains(t, full, "COMPLETE SCORE BREAKDOWN")
}
