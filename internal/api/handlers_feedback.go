package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/moodlog/moodlog/internal/services"
)

func (handler *Handler) CreateFeedback(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entryID, ok := parseUintParam(c.Params("id"))
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid entry id")
	}

	input := feedbackInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	feedback, err := handler.feedback.RecordOutcome(user.ID, entryID, input.Result)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidFeedbackResult):
			return apiError(c, fiber.StatusBadRequest, "invalid feedback result")
		case errors.Is(err, services.ErrEntryNotFound):
			return apiError(c, fiber.StatusNotFound, "entry not found")
		case errors.Is(err, services.ErrNoSuggestedIntervention):
			return apiError(c, fiber.StatusConflict, "entry has no suggested intervention")
		}
		handler.log.Errorw("record feedback failed", "user_id", user.ID, "entry_id", entryID, "error", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to record feedback")
	}

	return c.Status(fiber.StatusCreated).JSON(feedback)
}
