package resume

import (
	"net/http"

	"github.com/visuscan/visuscan/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("RESUME")

var (
	CodeNoFileUploaded      = ErrRegistry.Register("NO_FILE", errx.TypeValidation, http.StatusBadRequest, "No file uploaded")
	CodeUnsupportedFileType = ErrRegistry.Register("UNSUPPORTED_FILE_TYPE", errx.TypeValidation, http.StatusBadRequest, "Unsupported file type")
	CodeFileReadFailed      = ErrRegistry.Register("FILE_READ_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to read uploaded file")
	CodeExtractionFailed    = ErrRegistry.Register("EXTRACTION_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Error extracting text")
	CodeParseFailed         = ErrRegistry.Register("PARSE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to parse resume")
)

func ErrNoFileUploaded() *errx.Error {
	return ErrRegistry.New(CodeNoFileUploaded)
}

func ErrUnsupportedFileType() *errx.Error {
	return ErrRegistry.New(CodeUnsupportedFileType)
}

func ErrFileReadFailed() *errx.Error {
	return ErrRegistry.New(CodeFileReadFailed)
}

func ErrExtractionFailed() *errx.Error {
	return ErrRegistry.New(CodeExtractionFailed)
}

func ErrParseFailed() *errx.Error {
	return ErrRegistry.New(CodeParseFailed)
}
