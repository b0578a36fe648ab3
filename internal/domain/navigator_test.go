package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreen_Classification(t *testing.T) {
	a := NewAssessment(testCategories()) // 3 categories

	cases := []struct {
		step   int
		screen Screen
	}{
		{0, ScreenIntro},
		{1, ScreenCategory},
		{3, ScreenCategory},
		{4, ScreenContact},
		{5, ScreenResults},
		{9, ScreenResults},
	}
	for _, tc := range cases {
		a.SetCurrentStep(tc.step)
		assert.Equal(t, tc.screen, a.Screen(), "step=%d", tc.step)
	}
}

func TestCurrentCategory(t *testing.T) {
	a := NewAssessment(testCategories())

	assert.Nil(t, a.CurrentCategory(), "intro has no category")

	a.Begin()
	require.NotNil(t, a.CurrentCategory())
	assert.Equal(t, "marketing", a.CurrentCategory().ID)

	a.Next()
	assert.Equal(t, "retention", a.CurrentCategory().ID)

	a.SetCurrentStep(4)
	assert.Nil(t, a.CurrentCategory(), "contact has no category")
}

func TestNext_LastCategoryGoesToContact(t *testing.T) {
	a := NewAssessment(testCategories())
	a.SetCurrentStep(3)

	a.Next()
	assert.Equal(t, ScreenContact, a.Screen())

	// Next on the contact screen is a no-op; the form drives advancement.
	a.Next()
	assert.Equal(t, ScreenContact, a.Screen())
}

func TestPrevious_FirstCategoryGoesToIntro(t *testing.T) {
	a := NewAssessment(testCategories())
	a.Begin()

	a.Previous()
	assert.Equal(t, ScreenIntro, a.Screen())

	a.Previous()
	assert.Equal(t, 0, a.CurrentStep, "intro stays at step 0")
}

func TestSubmitContact_Valid(t *testing.T) {
	a := NewAssessment(testCategories())
	a.SetCurrentStep(4)

	errs := a.SubmitContact(UserInfo{Name: "  Jane Doe  ", Email: " jane@example.com ", Phone: "555-0101 "})
	assert.False(t, errs.Any())

	require.NotNil(t, a.UserInfo)
	assert.Equal(t, "Jane Doe", a.UserInfo.Name, "fields are trimmed")
	assert.Equal(t, "jane@example.com", a.UserInfo.Email)
	assert.Equal(t, "555-0101", a.UserInfo.Phone)
	assert.True(t, a.IsComplete)
	assert.Equal(t, ScreenResults, a.Screen())
}

func TestSubmitContact_MissingFields(t *testing.T) {
	a := NewAssessment(testCategories())
	a.SetCurrentStep(4)

	errs := a.SubmitContact(UserInfo{Name: "   ", Email: ""})
	assert.True(t, errs.Any())
	assert.Equal(t, "Name is required", errs.Name)
	assert.Equal(t, "Email is required", errs.Email)

	// Nothing changed on failure.
	assert.Nil(t, a.UserInfo)
	assert.False(t, a.IsComplete)
	assert.Equal(t, ScreenContact, a.Screen())
}

func TestSkipContact(t *testing.T) {
	a := NewAssessment(testCategories())
	a.SetCurrentStep(4)

	a.SkipContact()

	assert.Nil(t, a.UserInfo)
	assert.True(t, a.IsComplete)
	assert.Equal(t, ScreenResults, a.Screen())
}
