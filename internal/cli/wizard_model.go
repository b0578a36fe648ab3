package cli

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"dojoscore/internal/domain"
	"dojoscore/internal/report"
)

// reportDoneMsg carries the outcome of a background PDF generation.
type reportDoneMsg struct {
	path string
	err  error
}

// wizardModel is the bubbletea Model for the assessment wizard. All
// assessment state lives in the domain Assessment; the model only holds
// presentation state (cursor, form, viewport, report status).
type wizardModel struct {
	app        *App
	assessment *domain.Assessment
	reports    ReportWriter

	// Category screen: which checklist item the cursor is on.
	cursor int

	// Contact screen. The form and errs are rebuilt whenever the screen
	// is (re-)entered; contact is shared by pointer so form edits survive
	// model copies.
	contact *contactInput
	form    *huh.Form
	errs    domain.ContactErrors

	// Results screen.
	vp         viewport.Model
	vpReady    bool
	generating bool
	reportPath string
	reportErr  error

	width    int
	height   int
	quitting bool
}

func newWizardModel(app *App, assessment *domain.Assessment, reports ReportWriter) wizardModel {
	return wizardModel{
		app:        app,
		assessment: assessment,
		reports:    reports,
		contact:    &contactInput{},
		vp:         viewport.New(0, 0),
	}
}

func (m wizardModel) Init() tea.Cmd {
	return nil
}

func (m wizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = msg.Width
		m.vp.Height = msg.Height - resultsChromeLines
		m.vpReady = m.vp.Height > 0
		if m.assessment.Screen() == domain.ScreenResults {
			m.setResultsContent()
		}
		return m, nil

	case reportDoneMsg:
		m.generating = false
		m.reportPath = msg.path
		m.reportErr = msg.err
		m.setResultsContent()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
	}

	switch m.assessment.Screen() {
	case domain.ScreenIntro:
		return m.updateIntro(msg)
	case domain.ScreenCategory:
		return m.updateCategory(msg)
	case domain.ScreenContact:
		return m.updateContact(msg)
	default:
		return m.updateResults(msg)
	}
}

func (m wizardModel) updateIntro(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "enter":
		m.assessment.Begin()
		m.cursor = 0
	case "q":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m wizardModel) updateCategory(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	cat := m.assessment.CurrentCategory()
	if cat == nil {
		return m, nil
	}

	switch key.String() {
	case "1", "2", "3", "4", "5":
		score := int(key.String()[0] - '0')
		m.assessment.SetScore(cat.ID, score)

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(cat.ChecklistItems)-1 {
			m.cursor++
		}

	case " ":
		if m.cursor < len(cat.ChecklistItems) {
			m.assessment.ToggleItem(cat.ID, cat.ChecklistItems[m.cursor].ID)
		}

	case "enter", "right", "n":
		m.assessment.Next()
		m.cursor = 0
		if m.assessment.Screen() == domain.ScreenContact {
			return m.enterContact()
		}

	case "left", "p":
		m.assessment.Previous()
		m.cursor = 0

	case "q":
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// enterContact builds a fresh contact form. Previously entered values
// are kept so validation failures do not wipe the fields.
func (m wizardModel) enterContact() (tea.Model, tea.Cmd) {
	m.form = newContactForm(m.contact)
	return m, m.form.Init()
}

func (m wizardModel) updateContact(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
		// Back to the last category.
		m.assessment.SetCurrentStep(len(m.assessment.Categories()))
		m.form = nil
		return m, nil
	}

	if m.form == nil {
		return m.enterContact()
	}

	updated, cmd := m.form.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if !m.contact.submit {
		m.assessment.SkipContact()
		m.form = nil
		m.errs = domain.ContactErrors{}
		m.setResultsContent()
		return m, cmd
	}

	errs := m.assessment.SubmitContact(domain.UserInfo{
		Name:  m.contact.name,
		Email: m.contact.email,
		Phone: m.contact.phone,
	})
	if errs.Any() {
		// Stay on the contact screen; rebuild the form with the same
		// values and show what failed.
		m.errs = errs
		m.form = newContactForm(m.contact)
		return m, m.form.Init()
	}

	m.form = nil
	m.errs = domain.ContactErrors{}
	m.setResultsContent()
	return m, cmd
}

func (m wizardModel) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "d":
		if m.generating {
			return m, nil
		}
		m.generating = true
		m.reportPath = ""
		m.reportErr = nil
		m.setResultsContent()
		return m, m.generateReport()

	case "r":
		m.assessment.Reset()
		m.cursor = 0
		m.contact = &contactInput{}
		m.form = nil
		m.errs = domain.ContactErrors{}
		m.generating = false
		m.reportPath = ""
		m.reportErr = nil
		return m, nil

	case "q":
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// generateReport lays out and writes the PDF off the update loop. The
// layout is built here, before the command runs, so the document can
// never observe a reset or edited assessment.
func (m wizardModel) generateReport() tea.Cmd {
	now := time.Now()
	doc := report.Build(m.assessment, now)
	name := ""
	if m.assessment.UserInfo != nil {
		name = m.assessment.UserInfo.Name
	}
	filename := report.Filename(name, now)
	reports := m.reports
	return func() tea.Msg {
		path, err := reports.Write(doc, filename)
		return reportDoneMsg{path: path, err: err}
	}
}

// setResultsContent refreshes the viewport with the results screen text.
func (m *wizardModel) setResultsContent() {
	if m.assessment.Screen() != domain.ScreenResults {
		return
	}
	m.vp.SetContent(renderResults(m.assessment, m.app.Recommendations, false))
	m.vp.GotoTop()
}
