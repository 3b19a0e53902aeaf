package catalog

import (
	"errors"

	"mhr-catalog/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the catalogs.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/skills", h.HandleListSkills)
	app.Get("/skills/:id", h.HandleGetSkill)
	app.Get("/decorations", h.HandleListDecorations)
	app.Get("/decorations/:id", h.HandleGetDecoration)
	app.Get("/armors", h.HandleListArmors)
	app.Get("/armors/:id", h.HandleGetArmor)
	app.Get("/diff/:kind", h.HandleDiff)
	app.Post("/reload", h.HandleReload)
}

// HandleListSkills returns the skill catalog.
func (h *Handler) HandleListSkills(c *fiber.Ctx) error {
	skills, err := h.service.ListSkills(c.Context())
	if err != nil {
		return h.fail(c, "List skills failed", err)
	}
	return c.JSON(skills)
}

// HandleGetSkill returns one skill by id.
func (h *Handler) HandleGetSkill(c *fiber.Ctx) error {
	skill, err := h.service.GetSkill(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, "Get skill failed", err)
	}
	return c.JSON(skill)
}

// HandleListDecorations returns the decorations, filtered by ?skill= when given.
func (h *Handler) HandleListDecorations(c *fiber.Ctx) error {
	decos, err := h.service.ListDecorations(c.Context(), c.Query("skill"))
	if err != nil {
		return h.fail(c, "List decorations failed", err)
	}
	return c.JSON(decos)
}

// HandleGetDecoration returns one decoration by id.
func (h *Handler) HandleGetDecoration(c *fiber.Ctx) error {
	deco, err := h.service.GetDecoration(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, "Get decoration failed", err)
	}
	return c.JSON(deco)
}

// HandleListArmors returns the armor pieces matching ?part= and ?sex=.
func (h *Handler) HandleListArmors(c *fiber.Ctx) error {
	filter, err := ParseArmorFilter(c.Query("part"), c.Query("sex"))
	if err != nil {
		return h.fail(c, "Invalid armor filter", err)
	}

	armors, err := h.service.ListArmors(c.Context(), filter)
	if err != nil {
		return h.fail(c, "List armors failed", err)
	}
	return c.JSON(armors)
}

// HandleGetArmor returns one armor piece by id.
func (h *Handler) HandleGetArmor(c *fiber.Ctx) error {
	armor, err := h.service.GetArmor(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, "Get armor failed", err)
	}
	return c.JSON(armor)
}

// HandleDiff compares the built and published versions of a catalog. Unchanged
// entries are omitted unless ?all=true.
func (h *Handler) HandleDiff(c *fiber.Ctx) error {
	plan, err := h.service.Diff(c.Context(), c.Params("kind"), c.Query("all") != "true")
	if err != nil {
		return h.fail(c, "Catalog diff failed", err)
	}
	return c.JSON(plan)
}

// HandleReload drops the cached catalogs and loads them again.
func (h *Handler) HandleReload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Reloading catalogs")

	idx, err := h.service.Reload(c.Context())
	if err != nil {
		return h.fail(c, "Reload failed", err)
	}
	return c.JSON(fiber.Map{
		"status":      "reloaded",
		"skills":      len(idx.Catalogs.Skills),
		"decorations": len(idx.Catalogs.Decorations),
		"armors":      len(idx.Catalogs.Armors),
	})
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrUnknownKind):
		status = fiber.StatusNotFound
	case errors.Is(err, ErrInvalidFilter):
		status = fiber.StatusBadRequest
	case errors.Is(err, ErrDiffDisabled):
		status = fiber.StatusNotImplemented
	}

	l := logger.WithRayID(h.service.logger, c)
	if status == fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Debug(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
