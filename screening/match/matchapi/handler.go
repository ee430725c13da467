package matchapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/visuscan/visuscan/pkg/apix"
	"github.com/visuscan/visuscan/screening/match"
	"github.com/visuscan/visuscan/screening/match/matchsrv"
)

type Handlers struct {
	service *matchsrv.Service
}

func NewHandlers(service *matchsrv.Service) *Handlers {
	return &Handlers{service: service}
}

func RegisterRoutes(app *fiber.App, h *Handlers) {
	app.Post("/api/v1/match", h.Match)
}

// Match scores a parsed resume against a parsed job description.
// POST /api/v1/match
func (h *Handlers) Match(c *fiber.Ctx) error {
	var req match.Request
	if err := c.BodyParser(&req); err != nil {
		return match.ErrValidation()
	}

	result, err := h.service.Compare(c.Context(), req.Resume, req.JD)
	if err != nil {
		return err
	}

	return c.JSON(apix.Success("Relevance computed", result))
}
