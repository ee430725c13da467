// Package match holds the relevance-comparison domain: the match result
// model and the verdict classification.
package match

// Verdict tiers for a similarity score.
const (
	VerdictHighlyRelevant     = "Highly relevant"
	VerdictModeratelyRelevant = "Moderately relevant"
	VerdictLowRelevance       = "Low relevance"
)

const (
	highThreshold     = 0.85
	moderateThreshold = 0.65
)

// Result is the outcome of comparing a resume against a job description.
// Computed fresh per request; never cached or persisted.
type Result struct {
	Score      float64  `json:"score"`
	Verdict    string   `json:"verdict"`
	Highlights []string `json:"highlights"`
}

// Classify maps a similarity score to its verdict. Boundary values belong
// to the higher tier.
func Classify(score float64) string {
	switch {
	case score >= highThreshold:
		return VerdictHighlyRelevant
	case score >= moderateThreshold:
		return VerdictModeratelyRelevant
	default:
		return VerdictLowRelevance
	}
}
