// Package scoring derives every presented number from the assessment
// state. Nothing here is cached: each function recomputes from the
// current results, so views and the report can never disagree with the
// state they were built from.
package scoring

import (
	"math"
	"sort"
	"strings"

	"dojoscore/internal/domain"
)

const (
	// WeakThresholdResults marks categories needing work on the results
	// screen and in the PDF report.
	WeakThresholdResults = 3
	// WeakThresholdPreview is the stricter cut used by the sample
	// preview, which only surfaces clearly weak areas.
	WeakThresholdPreview = 2
	// StrongThreshold marks categories counted as strengths.
	StrongThreshold = 4
)

// AverageScore returns the simple mean of all category scores.
func AverageScore(a *domain.Assessment) float64 {
	cats := a.Categories()
	if len(cats) == 0 {
		return 0
	}
	total := 0
	for _, c := range cats {
		if r, ok := a.Result(c.ID); ok {
			total += r.Score
		}
	}
	return float64(total) / float64(len(cats))
}

// ScoreOutOfTen converts the average to a /10 score, rounded to one
// decimal place.
func ScoreOutOfTen(a *domain.Assessment) float64 {
	return math.Round(AverageScore(a)*2*10) / 10
}

// WeakAreasForResults returns categories scoring at or below the results
// threshold, weakest first. Ties keep catalog order.
func WeakAreasForResults(a *domain.Assessment) []domain.Category {
	return weakAreas(a, WeakThresholdResults)
}

// WeakAreasForPreview is the preview variant with the stricter threshold.
func WeakAreasForPreview(a *domain.Assessment) []domain.Category {
	return weakAreas(a, WeakThresholdPreview)
}

func weakAreas(a *domain.Assessment, threshold int) []domain.Category {
	var out []domain.Category
	for _, c := range a.Categories() {
		if score(a, c.ID) <= threshold {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return score(a, out[i].ID) < score(a, out[j].ID)
	})
	return out
}

// StrongAreas returns categories scoring at or above the strong
// threshold, strongest first. Ties keep catalog order.
func StrongAreas(a *domain.Assessment) []domain.Category {
	var out []domain.Category
	for _, c := range a.Categories() {
		if score(a, c.ID) >= StrongThreshold {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return score(a, out[i].ID) > score(a, out[j].ID)
	})
	return out
}

// AverageAreaCount is the number of categories that are neither weak nor
// strong. It is always derived from the results threshold so the summary
// grid agrees with the three-band classifier regardless of which weak
// variant a view displays.
func AverageAreaCount(a *domain.Assessment) int {
	return len(a.Categories()) - len(WeakAreasForResults(a)) - len(StrongAreas(a))
}

// MissingCount returns how many of a category's checklist items are not
// checked.
func MissingCount(a *domain.Assessment, c domain.Category) int {
	r, ok := a.Result(c.ID)
	if !ok {
		return len(c.ChecklistItems)
	}
	missing := 0
	for _, item := range c.ChecklistItems {
		if !r.Checked(item.ID) {
			missing++
		}
	}
	return missing
}

// ChartPoint is one spoke of the score breakdown: the category reduced
// to its first word, its score, and the scale maximum.
type ChartPoint struct {
	Label    string
	Score    int
	FullMark int
}

// chartCategoryLimit caps the breakdown at the first catalog categories
// to keep it readable.
const chartCategoryLimit = 10

// ChartData maps the first ten catalog categories to breakdown points.
func ChartData(a *domain.Assessment) []ChartPoint {
	cats := a.Categories()
	if len(cats) > chartCategoryLimit {
		cats = cats[:chartCategoryLimit]
	}
	points := make([]ChartPoint, 0, len(cats))
	for _, c := range cats {
		label := c.Title
		if i := strings.IndexByte(label, ' '); i > 0 {
			label = label[:i]
		}
		points = append(points, ChartPoint{Label: label, Score: score(a, c.ID), FullMark: 5})
	}
	return points
}

func score(a *domain.Assessment, categoryID string) int {
	r, ok := a.Result(categoryID)
	if !ok {
		return 0
	}
	return r.Score
}
