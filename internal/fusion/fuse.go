// Package fusion blends the keyword-overlap score and the semantic
// similarity score into one overall percentage.
package fusion

import (
	"math"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Fixed fusion weights: keyword dominates because it approximates automated
// applicant-tracking-system matching, while the semantic component softens
// keyword-only blind spots. Strong semantic matches earn a bounded bonus.
const (
	keywordWeight    = 0.6
	semanticWeight   = 0.4
	bonusPerStrong   = 2.0
	maxSemanticBonus = 10.0
)

// Fuse combines the two component scores and the strong-match count into a
// fused overall score, clamped to [0,100] and rounded to one decimal. The
// returned breakdown carries the raw components, weights, and bonus so the
// final number can always be reconstructed.
func Fuse(keywordScore, semanticScore float64, strongMatches int) types.ScoreBreakdown {
	enhanced := keywordScore*keywordWeight + semanticScore*semanticWeight

	bonus := math.Min(float64(strongMatches)*bonusPerStrong, maxSemanticBonus)
	enhanced += bonus

	if enhanced > 100 {
		enhanced = 100
	}
	if enhanced < 0 {
		enhanced = 0
	}

	return types.ScoreBreakdown{
		Enhanced:          round1(enhanced),
		KeywordComponent:  round1(keywordScore),
		SemanticComponent: round1(semanticScore),
		KeywordWeight:     int(keywordWeight * 100),
		SemanticWeight:    int(semanticWeight * 100),
		SemanticBonus:     bonus,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
