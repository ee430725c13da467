package match

import (
	"net/http"

	"github.com/visuscan/visuscan/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("MATCH")

var (
	CodeValidation       = ErrRegistry.Register("VALIDATION", errx.TypeValidation, http.StatusUnprocessableEntity, "Validation error")
	CodeComparisonFailed = ErrRegistry.Register("COMPARISON_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Error computing relevance")
)

func ErrValidation() *errx.Error {
	return ErrRegistry.New(CodeValidation)
}

func ErrComparisonFailed() *errx.Error {
	return ErrRegistry.New(CodeComparisonFailed)
}
