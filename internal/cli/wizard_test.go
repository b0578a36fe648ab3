package cli

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dojoscore/internal/catalog"
	"dojoscore/internal/domain"
	"dojoscore/internal/report"
	"dojoscore/internal/teatest"
)

type fakeReportWriter struct {
	calls        int
	lastDoc      *report.Document
	lastFilename string
	err          error
}

func (f *fakeReportWriter) Write(doc *report.Document, filename string) (string, error) {
	f.calls++
	f.lastDoc = doc
	f.lastFilename = filename
	if f.err != nil {
		return "", f.err
	}
	return filepath.Join("/reports", filename), nil
}

func newTestWizard(t *testing.T) (*teatest.Driver, *domain.Assessment, *fakeReportWriter) {
	t.Helper()
	app := &App{
		Categories:      catalog.Categories(),
		Recommendations: catalog.Recommendations(),
	}
	assessment := domain.NewAssessment(app.Categories)
	writer := &fakeReportWriter{}
	d := teatest.New(t, newWizardModel(app, assessment, writer), teatest.WithSize(100, 40))
	d.DrainInit()
	return d, assessment, writer
}

// advanceToContact walks from the intro through every category screen.
func advanceToContact(t *testing.T, d *teatest.Driver, a *domain.Assessment) {
	t.Helper()
	d.PressEnter() // leave intro
	for i := 0; i < len(a.Categories()); i++ {
		d.PressEnter()
	}
	require.Equal(t, domain.ScreenContact, a.Screen())
}

func TestWizard_IntroToFirstCategory(t *testing.T) {
	d, a, _ := newTestWizard(t)

	assert.Contains(t, d.View(), "Martial Arts Business Assessment")
	assert.Equal(t, domain.ScreenIntro, a.Screen())

	d.PressEnter()
	assert.Equal(t, domain.ScreenCategory, a.Screen())
	assert.Contains(t, d.View(), "Lead Generation")
	assert.Contains(t, d.View(), "Step 1 of 23")
}

func TestWizard_RateAndToggle(t *testing.T) {
	d, a, _ := newTestWizard(t)
	d.PressEnter()

	d.PressKey('4')
	r, _ := a.Result("lead-generation")
	assert.Equal(t, 4, r.Score)

	d.PressSpace()
	assert.True(t, r.Checked("lead-gen-1"))

	d.PressDown()
	d.PressSpace()
	assert.True(t, r.Checked("lead-gen-2"))

	// Toggling again unchecks.
	d.PressSpace()
	assert.False(t, r.Checked("lead-gen-2"))
}

func TestWizard_CategoryNavigation(t *testing.T) {
	d, a, _ := newTestWizard(t)
	d.PressEnter()

	d.PressEnter()
	assert.Equal(t, 2, a.CurrentStep)
	assert.Contains(t, d.View(), "Lead Nurturing")

	d.PressLeft()
	assert.Equal(t, 1, a.CurrentStep)

	d.PressLeft()
	assert.Equal(t, domain.ScreenIntro, a.Screen())
}

func TestWizard_LastCategoryShowsComplete(t *testing.T) {
	d, a, _ := newTestWizard(t)
	d.PressEnter()
	a.SetCurrentStep(len(a.Categories()))

	assert.Contains(t, d.View(), "complete assessment")
}

func TestWizard_ContactEscGoesBack(t *testing.T) {
	d, a, _ := newTestWizard(t)
	advanceToContact(t, d, a)

	d.PressEsc()
	assert.Equal(t, domain.ScreenCategory, a.Screen())
	assert.Equal(t, len(a.Categories()), a.CurrentStep)
}

func TestWizard_ContactValidationFailureStays(t *testing.T) {
	d, a, _ := newTestWizard(t)
	advanceToContact(t, d, a)

	// Submit the form with everything blank: name, email, phone, confirm.
	d.PressEnter()
	d.PressEnter()
	d.PressEnter()
	d.PressEnter()

	assert.Equal(t, domain.ScreenContact, a.Screen())
	assert.False(t, a.IsComplete)
	assert.Contains(t, d.View(), "Name is required")
	assert.Contains(t, d.View(), "Email is required")
}

func TestWizard_ContactSubmit(t *testing.T) {
	d, a, _ := newTestWizard(t)
	advanceToContact(t, d, a)

	d.Type("Jane Doe")
	d.PressEnter()
	d.Type("jane@example.com")
	d.PressEnter()
	d.PressEnter() // phone is optional
	d.PressEnter() // "Get My Results"

	require.Equal(t, domain.ScreenResults, a.Screen())
	assert.True(t, a.IsComplete)
	require.NotNil(t, a.UserInfo)
	assert.Equal(t, "Jane Doe", a.UserInfo.Name)
	assert.Equal(t, "jane@example.com", a.UserInfo.Email)
	assert.Contains(t, d.View(), "Assessment Complete")
}

func TestWizard_ContactSkip(t *testing.T) {
	d, a, _ := newTestWizard(t)
	advanceToContact(t, d, a)

	d.PressEnter()
	d.PressEnter()
	d.PressEnter()
	d.PressRight() // toggle to "Skip for now"
	d.PressEnter()

	require.Equal(t, domain.ScreenResults, a.Screen())
	assert.True(t, a.IsComplete)
	assert.Nil(t, a.UserInfo)
}

func TestWizard_DownloadReport(t *testing.T) {
	d, a, w := newTestWizard(t)
	advanceToContact(t, d, a)

	d.Type("Jane Doe")
	d.PressEnter()
	d.Type("jane@example.com")
	d.PressEnter()
	d.PressEnter()
	d.PressEnter()
	require.Equal(t, domain.ScreenResults, a.Screen())

	d.PressKey('d')

	assert.Equal(t, 1, w.calls)
	assert.Contains(t, w.lastFilename, "Jane_Doe")
	require.NotNil(t, w.lastDoc)
	assert.Contains(t, d.View(), "Report saved to "+filepath.Join("/reports", w.lastFilename))
}

func TestWizard_DownloadReportError(t *testing.T) {
	d, a, w := newTestWizard(t)
	w.err = errors.New("disk full")
	advanceToContact(t, d, a)

	d.PressEnter()
	d.PressEnter()
	d.PressEnter()
	d.PressRight()
	d.PressEnter()
	require.Equal(t, domain.ScreenResults, a.Screen())

	d.PressKey('d')

	assert.Contains(t, d.View(), "Report failed: disk full")
}

func TestWizard_ResetFromResults(t *testing.T) {
	d, a, _ := newTestWizard(t)
	advanceToContact(t, d, a)

	d.Type("Jane Doe")
	d.PressEnter()
	d.Type("jane@example.com")
	d.PressEnter()
	d.PressEnter()
	d.PressEnter()
	require.Equal(t, domain.ScreenResults, a.Screen())

	d.PressKey('r')

	assert.Equal(t, domain.ScreenIntro, a.Screen())
	assert.False(t, a.IsComplete)
	assert.Nil(t, a.UserInfo)
	for _, c := range a.Categories() {
		r, _ := a.Result(c.ID)
		assert.Equal(t, 1, r.Score)
	}
}

func TestWizard_CtrlCQuitsAnywhere(t *testing.T) {
	d, _, _ := newTestWizard(t)
	d.PressCtrlC()
	assert.True(t, d.Quitting)
}
