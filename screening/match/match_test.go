package match

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  string
	}{
		{name: "high boundary belongs to higher tier", score: 0.85, want: VerdictHighlyRelevant},
		{name: "just under high boundary", score: 0.849999, want: VerdictModeratelyRelevant},
		{name: "moderate boundary belongs to higher tier", score: 0.65, want: VerdictModeratelyRelevant},
		{name: "just under moderate boundary", score: 0.649999, want: VerdictLowRelevance},
		{name: "perfect score", score: 1.0, want: VerdictHighlyRelevant},
		{name: "zero", score: 0, want: VerdictLowRelevance},
		{name: "negative cosine is low relevance", score: -0.2, want: VerdictLowRelevance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.score); got != tt.want {
				t.Errorf("Classify(%v) = %q, want %q", tt.score, got, tt.want)
			}
		})
	}
}
