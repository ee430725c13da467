// Package similarity scores the semantic closeness of two texts as the
// cosine similarity of their embeddings.
package similarity

import (
	"context"
	"fmt"
	"math"
)

// Embedder turns text into a fixed-dimension vector.
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float64, error)
}

type Scorer struct {
	embedder Embedder
}

func NewScorer(embedder Embedder) *Scorer {
	return &Scorer{embedder: embedder}
}

// Score embeds both texts independently and returns their cosine
// similarity rounded to four decimal places. The result is not clamped;
// in practice the embedding model keeps it non-negative.
func (s *Scorer) Score(ctx context.Context, a, b string) (float64, error) {
	va, err := s.embedder.GenerateEmbedding(ctx, a)
	if err != nil {
		return 0, err
	}

	vb, err := s.embedder.GenerateEmbedding(ctx, b)
	if err != nil {
		return 0, err
	}

	if len(va) != len(vb) {
		return 0, fmt.Errorf("embedding dimension mismatch: %d vs %d", len(va), len(vb))
	}

	return round4(cosine(va, vb)), nil
}

func cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}
