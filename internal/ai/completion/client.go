// Package completion wraps the OpenAI chat-completion API behind the single
// call the extraction services need.
package completion

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// extractionTemperature biases the model toward literal extraction over
// creative paraphrase.
const extractionTemperature = 0.2

// Client issues single-shot completion requests. No retries, no streaming:
// a failed call surfaces immediately.
type Client struct {
	client *openai.Client
	model  string
}

// NewClient creates a completion client. Every request is bounded by
// timeout so a stalled upstream cannot hang a request forever.
func NewClient(apiKey, model string, timeout time.Duration) *Client {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithRequestTimeout(timeout),
	)

	return &Client{
		client: &client,
		model:  model,
	}
}

// Complete sends prompt as a single user message and returns the first
// choice's content.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	chatCompletion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model:       openai.ChatModel(c.model),
		Temperature: openai.Float(extractionTemperature),
	})
	if err != nil {
		return "", fmt.Errorf("openai completion error: %w", err)
	}

	if len(chatCompletion.Choices) == 0 {
		return "", errors.New("no response from openai")
	}

	return chatCompletion.Choices[0].Message.Content, nil
}
