package apix

import (
	"github.com/gofiber/fiber/v2"

	"github.com/visuscan/visuscan/pkg/errx"
	"github.com/visuscan/visuscan/pkg/logx"
)

// ErrorHandler converts every error reaching fiber into the uniform
// response envelope. Unclassified errors collapse to a generic 500 so
// internals never leak to clients.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if e, ok := errx.As(err); ok {
		return c.Status(e.HTTPStatus).JSON(Error(e.Message, e.HTTPStatus))
	}

	if e, ok := err.(*fiber.Error); ok {
		return c.Status(e.Code).JSON(Error(e.Message, e.Code))
	}

	logx.Errorf("Internal server error: %v", err)
	return c.Status(fiber.StatusInternalServerError).
		JSON(Error("Internal server error", fiber.StatusInternalServerError))
}
