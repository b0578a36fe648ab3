package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCategories() []Category {
	return []Category{
		{
			ID: "marketing", Title: "Marketing Basics",
			ChecklistItems: []ChecklistItem{
				{ID: "mk-1", Text: "Referral program"},
				{ID: "mk-2", Text: "Paid ads running"},
			},
		},
		{
			ID: "retention", Title: "Student Retention",
			ChecklistItems: []ChecklistItem{
				{ID: "rt-1", Text: "Exit interviews"},
			},
		},
		{
			ID: "finance", Title: "Financial Management",
			ChecklistItems: []ChecklistItem{
				{ID: "fin-1", Text: "Monthly P&L review"},
			},
		},
	}
}

func TestNewAssessment_InitialState(t *testing.T) {
	a := NewAssessment(testCategories())

	assert.NotEmpty(t, a.ID)
	assert.False(t, a.StartedAt.IsZero())
	assert.Equal(t, 0, a.CurrentStep)
	assert.False(t, a.IsComplete)
	assert.Nil(t, a.UserInfo)

	require.Len(t, a.Results, 3)
	for _, c := range a.Categories() {
		r, ok := a.Result(c.ID)
		require.True(t, ok, "result for %s", c.ID)
		assert.Equal(t, 1, r.Score)
		assert.Equal(t, 0, r.CheckedCount())
	}
}

func TestSetScore(t *testing.T) {
	a := NewAssessment(testCategories())

	require.NoError(t, a.SetScore("marketing", 4))
	r, _ := a.Result("marketing")
	assert.Equal(t, 4, r.Score)

	err := a.SetScore("nonexistent", 3)
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestToggleItem_Involution(t *testing.T) {
	a := NewAssessment(testCategories())
	r, _ := a.Result("marketing")

	require.NoError(t, a.ToggleItem("marketing", "mk-1"))
	assert.True(t, r.Checked("mk-1"))
	assert.Equal(t, 1, r.CheckedCount())

	require.NoError(t, a.ToggleItem("marketing", "mk-1"))
	assert.False(t, r.Checked("mk-1"))
	assert.Equal(t, 0, r.CheckedCount())
}

func TestToggleItem_Unknown(t *testing.T) {
	a := NewAssessment(testCategories())

	assert.ErrorIs(t, a.ToggleItem("nonexistent", "mk-1"), ErrUnknownCategory)
	assert.ErrorIs(t, a.ToggleItem("marketing", "rt-1"), ErrUnknownItem)

	// Failed toggles leave the checked set untouched.
	r, _ := a.Result("marketing")
	assert.Equal(t, 0, r.CheckedCount())
}

func TestReset_RestoresInitialState(t *testing.T) {
	a := NewAssessment(testCategories())
	id, started := a.ID, a.StartedAt

	require.NoError(t, a.SetScore("retention", 5))
	require.NoError(t, a.ToggleItem("retention", "rt-1"))
	a.SetCurrentStep(4)
	a.SetUserInfo(UserInfo{Name: "Jane", Email: "jane@example.com"})
	a.SetComplete(true)

	a.Reset()

	assert.Equal(t, id, a.ID, "identity survives reset")
	assert.Equal(t, started, a.StartedAt)
	assert.Equal(t, 0, a.CurrentStep)
	assert.False(t, a.IsComplete)
	assert.Nil(t, a.UserInfo)
	for _, c := range a.Categories() {
		r, _ := a.Result(c.ID)
		assert.Equal(t, 1, r.Score, "category %s", c.ID)
		assert.Equal(t, 0, r.CheckedCount(), "category %s", c.ID)
	}
}

func TestBandFor(t *testing.T) {
	cases := []struct {
		score int
		band  Band
	}{
		{1, BandWeak},
		{2, BandAverage},
		{3, BandAverage},
		{4, BandStrong},
		{5, BandStrong},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.band, BandFor(tc.score), "score=%d", tc.score)
	}
}
