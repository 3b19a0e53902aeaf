package integrity

import (
	"errors"

	"mhr-catalog/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/:check", h.HandleSingleCheck)
}

// HandleIntegrityCheck runs every check.
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	return h.run(c, l)
}

// HandleSingleCheck runs the check named in the path.
func (h *Handler) HandleSingleCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	name := c.Params("check")
	l.Info("Triggering integrity check", zap.String("check", name))

	return h.run(c, l, name)
}

func (h *Handler) run(c *fiber.Ctx, l *zap.Logger, names ...string) error {
	reports, err := h.service.Run(c.Context(), names...)
	if err != nil {
		if errors.Is(err, ErrUnknownCheck) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Integrity check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	status := "ok"
	if Failed(reports) {
		status = "failed"
	}
	return c.JSON(fiber.Map{
		"status":  status,
		"reports": reports,
	})
}
