package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dojoscore/internal/domain"
)

func TestCategories_WellFormed(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 23)

	seen := map[string]bool{}
	for _, c := range cats {
		assert.NotEmpty(t, c.Title, "category %s", c.ID)
		assert.NotEmpty(t, c.Description, "category %s", c.ID)
		assert.False(t, seen[c.ID], "duplicate category id %s", c.ID)
		seen[c.ID] = true

		require.Len(t, c.ChecklistItems, 5, "category %s", c.ID)
		itemSeen := map[string]bool{}
		for _, item := range c.ChecklistItems {
			assert.NotEmpty(t, item.Text, "item %s", item.ID)
			assert.False(t, itemSeen[item.ID], "duplicate item id %s in %s", item.ID, c.ID)
			itemSeen[item.ID] = true
		}
	}
}

func TestCategories_Order(t *testing.T) {
	cats := Categories()
	assert.Equal(t, "lead-generation", cats[0].ID)
	assert.Equal(t, "facility-maintenance", cats[len(cats)-1].ID)
}

func TestRecommendations_CoverEveryCategory(t *testing.T) {
	byCategory := map[string]domain.Recommendation{}
	for _, r := range Recommendations() {
		assert.NotContains(t, byCategory, r.Category, "duplicate recommendation for %s", r.Category)
		byCategory[r.Category] = r
	}

	for _, c := range Categories() {
		r, ok := byCategory[c.ID]
		require.True(t, ok, "no recommendation for %s", c.ID)
		assert.NotEmpty(t, r.Title)
		assert.NotEmpty(t, r.ResourceURL)
		assert.NotEmpty(t, r.ResourceType.Label())
	}
}

func TestSampleAssessment(t *testing.T) {
	a := SampleAssessment()

	assert.True(t, a.IsComplete)
	assert.Equal(t, domain.ScreenResults, a.Screen())
	assert.Nil(t, a.UserInfo, "sample skips the contact form")

	// Spot-check a few known sample values.
	r, ok := a.Result("curriculum")
	require.True(t, ok)
	assert.Equal(t, 5, r.Score)
	assert.Equal(t, 5, r.CheckedCount())

	r, ok = a.Result("merchandise")
	require.True(t, ok)
	assert.Equal(t, 1, r.Score)
	assert.Equal(t, 1, r.CheckedCount())
	assert.True(t, r.Checked("merch-1"))
}
