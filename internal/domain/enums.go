package domain

import "strings"

// Band is the three-way classification derived from a category score.
// It drives status labels and color choices in both the terminal views
// and the PDF report.
type Band string

const (
	BandStrong  Band = "strong"
	BandAverage Band = "average"
	BandWeak    Band = "weak"
)

// BandFor classifies a 1-5 score: strong at 4+, average at 2-3, weak below.
func BandFor(score int) Band {
	switch {
	case score >= 4:
		return BandStrong
	case score >= 2:
		return BandAverage
	default:
		return BandWeak
	}
}

// Label returns the status text shown in tables and report rows.
func (b Band) Label() string {
	switch b {
	case BandStrong:
		return "Strong"
	case BandAverage:
		return "Average"
	default:
		return "Needs Work"
	}
}

type ResourceType string

const (
	ResourceVideo        ResourceType = "video"
	ResourceArticle      ResourceType = "article"
	ResourceChecklist    ResourceType = "checklist"
	ResourceGuide        ResourceType = "guide"
	ResourceConsultation ResourceType = "consultation"
)

// Label returns the capitalized display form, e.g. "Guide".
func (r ResourceType) Label() string {
	s := string(r)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ScoreLabels maps each 1-5 rating to its wizard caption.
var ScoreLabels = map[int]string{
	1: "Not Implemented",
	2: "Basic",
	3: "Adequate",
	4: "Strong",
	5: "Mastered",
}
