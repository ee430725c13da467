package resumesrv

import (
	"context"
	"errors"
	"fmt"

	"github.com/visuscan/visuscan/internal/ai/structext"
	"github.com/visuscan/visuscan/internal/textextract"
	"github.com/visuscan/visuscan/pkg/kernel"
	"github.com/visuscan/visuscan/pkg/logx"
	"github.com/visuscan/visuscan/screening/resume"
)

// Service turns an uploaded resume file into a structured document:
// text extraction first, then one structured-extraction completion call.
type Service struct {
	extractor *structext.Extractor
}

func NewService(extractor *structext.Extractor) *Service {
	return &Service{extractor: extractor}
}

// Parse extracts text from the uploaded file and runs structured field
// extraction over it. All-or-nothing: no partial documents are returned.
func (s *Service) Parse(ctx context.Context, fileName string, data []byte) (kernel.Document, error) {
	text, err := textextract.Extract(ctx, fileName, data)
	if err != nil {
		if errors.Is(err, textextract.ErrUnsupportedType) {
			return nil, resume.ErrUnsupportedFileType()
		}
		return nil, resume.ErrExtractionFailed().
			WithMessage(fmt.Sprintf("Error extracting text: %v", err))
	}

	logx.Infof("Extracted %d characters from %s", len(text), fileName)

	doc, err := s.extractor.Extract(ctx, text, resume.FieldInstructions)
	if err != nil {
		return nil, resume.ErrParseFailed().WithMessage(err.Error())
	}

	return doc, nil
}
