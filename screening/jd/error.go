package jd

import (
	"net/http"

	"github.com/visuscan/visuscan/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("JD")

var (
	// CodeValidation intentionally carries a generic message; field-level
	// detail from body parsing is discarded.
	CodeValidation  = ErrRegistry.Register("VALIDATION", errx.TypeValidation, http.StatusUnprocessableEntity, "Validation error")
	CodeEmptyText   = ErrRegistry.Register("EMPTY_TEXT", errx.TypeValidation, http.StatusBadRequest, "Job description text is empty")
	CodeParseFailed = ErrRegistry.Register("PARSE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to parse job description")
)

func ErrValidation() *errx.Error {
	return ErrRegistry.New(CodeValidation)
}

func ErrEmptyText() *errx.Error {
	return ErrRegistry.New(CodeEmptyText)
}

func ErrParseFailed() *errx.Error {
	return ErrRegistry.New(CodeParseFailed)
}
