// Package structext performs structured field extraction: free text in,
// key-value document out, via one low-temperature completion call.
package structext

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/visuscan/visuscan/pkg/kernel"
)

// Completer is the single text-completion call the extractor depends on.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type Extractor struct {
	completer Completer
}

func New(completer Completer) *Extractor {
	return &Extractor{completer: completer}
}

const promptTemplate = `%s

Return the result strictly in JSON format without markdown or explanation.

Text:
"""
%s
"""`

// Extract sends text with the field instructions and parses the response
// as strict JSON. The returned document's keys are whatever the model
// produced; no field-level validation happens here.
func (e *Extractor) Extract(ctx context.Context, text, fieldInstructions string) (kernel.Document, error) {
	prompt := fmt.Sprintf(promptTemplate, fieldInstructions, text)

	raw, err := e.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	cleaned := StripCodeFence(strings.TrimSpace(raw))

	var doc kernel.Document
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse completion response as JSON: %v\nRaw:\n%s", err, cleaned)
	}

	return doc, nil
}

// StripCodeFence removes a leading ```json (or bare ```) marker and a
// trailing ``` marker. Models sometimes fence the output despite the
// no-markdown instruction.
func StripCodeFence(s string) string {
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimLeft(s, "\r\n")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")

	return strings.TrimSpace(s)
}
