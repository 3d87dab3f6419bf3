package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/moodlog/moodlog/internal/services"
)

// ListInterventions is public: the library with community scores is readable
// without an account. active=false widens the list to retired interventions.
func (handler *Handler) ListInterventions(c *fiber.Ctx) error {
	activeOnly := c.Query("active", "true") != "false"
	topN := parsePositiveIntQuery(c.Query("top_n"), 0, 100)

	ranked, err := handler.scoring.RankedInterventions(activeOnly, topN)
	if err != nil {
		handler.log.Errorw("list interventions failed", "error", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch interventions")
	}
	return c.JSON(ranked)
}

func (handler *Handler) CreateIntervention(c *fiber.Ctx) error {
	input := services.InterventionInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	intervention, err := handler.interventions.Submit(input)
	if err != nil {
		var validation *services.ValidationError
		if errors.As(err, &validation) {
			return fieldErrors(c, validation.Fields)
		}
		handler.log.Errorw("create intervention failed", "error", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to create intervention")
	}
	return c.Status(fiber.StatusCreated).JSON(intervention)
}

func (handler *Handler) DeactivateIntervention(c *fiber.Ctx) error {
	interventionID, ok := parseUintParam(c.Params("id"))
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid intervention id")
	}

	if err := handler.interventions.Deactivate(interventionID); err != nil {
		if errors.Is(err, services.ErrInterventionNotFound) {
			return apiError(c, fiber.StatusNotFound, "intervention not found")
		}
		handler.log.Errorw("deactivate intervention failed", "intervention_id", interventionID, "error", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to deactivate intervention")
	}
	return c.JSON(fiber.Map{"ok": true})
}
