// Package embeddings generates dense vector representations of text for
// semantic similarity scoring.
package embeddings

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// Generator embeds text through the OpenAI embeddings API. One instance is
// built at process start and shared read-only by all requests; the
// underlying client is safe for concurrent use.
type Generator struct {
	client *openai.Client
}

// NewGenerator creates an embeddings generator with a bounded per-request
// timeout.
func NewGenerator(apiKey string, timeout time.Duration) *Generator {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithRequestTimeout(timeout),
	)

	return &Generator{
		client: &client,
	}
}

// GenerateEmbedding creates an embedding vector for text. Deterministic
// for a fixed model version and fixed input.
func (g *Generator) GenerateEmbedding(ctx context.Context, text string) ([]float64, error) {
	if text == "" {
		return nil, fmt.Errorf("text cannot be empty")
	}

	resp, err := g.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: []string{text},
		},
		Model: openai.EmbeddingModelTextEmbedding3Small,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("no embedding data returned")
	}

	return resp.Data[0].Embedding, nil
}
