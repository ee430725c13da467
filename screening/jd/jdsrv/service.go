package jdsrv

import (
	"context"

	"github.com/visuscan/visuscan/internal/ai/structext"
	"github.com/visuscan/visuscan/pkg/kernel"
	"github.com/visuscan/visuscan/screening/jd"
)

// Service extracts structured hiring requirements from job-description text.
type Service struct {
	extractor *structext.Extractor
}

func NewService(extractor *structext.Extractor) *Service {
	return &Service{extractor: extractor}
}

func (s *Service) Parse(ctx context.Context, text string) (kernel.Document, error) {
	doc, err := s.extractor.Extract(ctx, text, jd.FieldInstructions)
	if err != nil {
		return nil, jd.ErrParseFailed().WithMessage(err.Error())
	}

	return doc, nil
}
