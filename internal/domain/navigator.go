package domain

import "strings"

// Screen identifies which wizard screen a step index maps to.
type Screen int

const (
	ScreenIntro Screen = iota
	ScreenCategory
	ScreenContact
	ScreenResults
)

// Step space for N categories: 0 is the introduction, 1..N are category
// screens, N+1 is the contact form, and anything beyond is the results
// screen. All step arithmetic lives in this file.

// Screen classifies the current step.
func (a *Assessment) Screen() Screen {
	n := len(a.categories)
	switch {
	case a.CurrentStep <= 0:
		return ScreenIntro
	case a.CurrentStep <= n:
		return ScreenCategory
	case a.CurrentStep == n+1:
		return ScreenContact
	default:
		return ScreenResults
	}
}

// CurrentCategory returns the category shown at the current step, or nil
// when the current screen is not a category screen.
func (a *Assessment) CurrentCategory() *Category {
	if a.Screen() != ScreenCategory {
		return nil
	}
	return &a.categories[a.CurrentStep-1]
}

// Begin moves from the introduction to the first category.
func (a *Assessment) Begin() {
	a.SetCurrentStep(1)
}

// Next advances one category screen, or from the last category to the
// contact form ("Complete Assessment").
func (a *Assessment) Next() {
	n := len(a.categories)
	if a.CurrentStep < n {
		a.SetCurrentStep(a.CurrentStep + 1)
	} else if a.CurrentStep == n {
		a.SetCurrentStep(n + 1)
	}
}

// Previous steps back one category screen, or from the first category to
// the introduction.
func (a *Assessment) Previous() {
	if a.CurrentStep > 1 {
		a.SetCurrentStep(a.CurrentStep - 1)
	} else if a.CurrentStep == 1 {
		a.SetCurrentStep(0)
	}
}

// ContactErrors reports which contact fields failed validation. Empty
// strings mean the field was accepted.
type ContactErrors struct {
	Name  string
	Email string
}

// Any reports whether validation failed.
func (e ContactErrors) Any() bool {
	return e.Name != "" || e.Email != ""
}

// SubmitContact validates and stores the contact info, marks the
// assessment complete, and advances to the results screen. On validation
// failure no state changes and the failing fields are reported.
func (a *Assessment) SubmitContact(info UserInfo) ContactErrors {
	info.Name = strings.TrimSpace(info.Name)
	info.Email = strings.TrimSpace(info.Email)
	info.Phone = strings.TrimSpace(info.Phone)

	var errs ContactErrors
	if info.Name == "" {
		errs.Name = "Name is required"
	}
	if info.Email == "" {
		errs.Email = "Email is required"
	}
	if errs.Any() {
		return errs
	}

	a.SetUserInfo(info)
	a.SetComplete(true)
	a.SetCurrentStep(len(a.categories) + 2)
	return ContactErrors{}
}

// SkipContact marks the assessment complete and advances to results
// without touching the contact info.
func (a *Assessment) SkipContact() {
	a.SetComplete(true)
	a.SetCurrentStep(len(a.categories) + 2)
}
