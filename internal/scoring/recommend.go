package scoring

import "dojoscore/internal/domain"

// RelevantRecommendations resolves each weak area to its catalog
// recommendation, preserving weak-area order (weakest first). Categories
// with no recommendation are dropped; the first match wins when the
// catalog holds duplicates.
func RelevantRecommendations(weak []domain.Category, recs []domain.Recommendation) []domain.Recommendation {
	var out []domain.Recommendation
	for _, c := range weak {
		for _, rec := range recs {
			if rec.Category == c.ID {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}
