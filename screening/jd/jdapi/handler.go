package jdapi

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/visuscan/visuscan/pkg/apix"
	"github.com/visuscan/visuscan/screening/jd"
	"github.com/visuscan/visuscan/screening/jd/jdsrv"
)

type Handlers struct {
	service *jdsrv.Service
}

func NewHandlers(service *jdsrv.Service) *Handlers {
	return &Handlers{service: service}
}

func RegisterRoutes(app *fiber.App, h *Handlers) {
	app.Post("/api/v1/jd/parse", h.ParseJD)
}

// ParseJD parses raw job-description text into structured hiring
// requirements.
// POST /api/v1/jd/parse
func (h *Handlers) ParseJD(c *fiber.Ctx) error {
	var req jd.ParseRequest
	if err := c.BodyParser(&req); err != nil {
		return jd.ErrValidation()
	}

	// Rejected before any completion-service call is made.
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return jd.ErrEmptyText()
	}

	doc, err := h.service.Parse(c.Context(), text)
	if err != nil {
		return err
	}

	return c.JSON(apix.Success("Job description parsed successfully", doc))
}
