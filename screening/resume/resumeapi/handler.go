package resumeapi

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/visuscan/visuscan/pkg/apix"
	"github.com/visuscan/visuscan/screening/resume"
	"github.com/visuscan/visuscan/screening/resume/resumesrv"
)

type Handlers struct {
	service *resumesrv.Service
}

func NewHandlers(service *resumesrv.Service) *Handlers {
	return &Handlers{service: service}
}

func RegisterRoutes(app *fiber.App, h *Handlers) {
	app.Post("/api/v1/resume/parse", h.ParseResume)
}

// ParseResume parses an uploaded resume file into structured fields.
// POST /api/v1/resume/parse
func (h *Handlers) ParseResume(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return resume.ErrNoFileUploaded()
	}

	file, err := fileHeader.Open()
	if err != nil {
		return resume.ErrFileReadFailed().WithDetail("error", err.Error())
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return resume.ErrFileReadFailed().WithDetail("error", err.Error())
	}

	doc, err := h.service.Parse(c.Context(), fileHeader.Filename, data)
	if err != nil {
		return err
	}

	return c.JSON(apix.Success("Resume parsed successfully", doc))
}
