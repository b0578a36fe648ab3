package cli

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"dojoscore/internal/cli/formatter"
)

// dojoscoreHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func dojoscoreHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// contactInput backs the contact form fields. It lives behind a pointer
// so the huh form and the copied wizard model always see the same values.
type contactInput struct {
	name   string
	email  string
	phone  string
	submit bool
}

// newContactForm builds the contact screen form. Submission intent comes
// from the final confirm: "Get My Results" submits the details, "Skip
// for now" goes straight to results without storing anything.
func newContactForm(in *contactInput) *huh.Form {
	in.submit = true
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("Your name").
				Value(&in.name),
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				Value(&in.email),
			huh.NewInput().
				Title("Phone (optional)").
				Placeholder("(555) 123-4567").
				Value(&in.phone),
			huh.NewConfirm().
				Title("Ready to see your results?").
				Affirmative("Get My Results").
				Negative("Skip for now").
				Value(&in.submit),
		),
	).WithTheme(dojoscoreHuhTheme()).WithShowHelp(false)
}
