package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/moodlog/moodlog/internal/services"
)

func (handler *Handler) ListEntries(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	limit := parsePositiveIntQuery(c.Query("limit"), defaultRecentEntryLimit, 200)
	entries, err := handler.entries.ListRecent(user.ID, limit)
	if err != nil {
		handler.log.Errorw("list entries failed", "user_id", user.ID, "error", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch entries")
	}
	return c.JSON(entries)
}

func (handler *Handler) CreateEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := services.EntryInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	entry, suggested, err := handler.entries.LogEntry(user.ID, input, time.Now())
	if err != nil {
		var validation *services.ValidationError
		if errors.As(err, &validation) {
			return fieldErrors(c, validation.Fields)
		}
		handler.log.Errorw("create entry failed", "user_id", user.ID, "error", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to create entry")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"entry":                entry,
		"suggestion_available": suggested,
	})
}

func (handler *Handler) GetEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entryID, ok := parseUintParam(c.Params("id"))
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid entry id")
	}

	entry, err := handler.entries.GetEntry(user.ID, entryID)
	if err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			return apiError(c, fiber.StatusNotFound, "entry not found")
		}
		handler.log.Errorw("get entry failed", "user_id", user.ID, "entry_id", entryID, "error", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch entry")
	}
	return c.JSON(entry)
}

func (handler *Handler) UpdateEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entryID, ok := parseUintParam(c.Params("id"))
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid entry id")
	}

	input := services.EntryInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	entry, err := handler.entries.UpdateEntry(user.ID, entryID, input)
	if err != nil {
		var validation *services.ValidationError
		if errors.As(err, &validation) {
			return fieldErrors(c, validation.Fields)
		}
		if errors.Is(err, services.ErrEntryNotFound) {
			return apiError(c, fiber.StatusNotFound, "entry not found")
		}
		handler.log.Errorw("update entry failed", "user_id", user.ID, "entry_id", entryID, "error", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to update entry")
	}
	return c.JSON(entry)
}

func (handler *Handler) DeleteEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entryID, ok := parseUintParam(c.Params("id"))
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid entry id")
	}

	if err := handler.entries.DeleteEntry(user.ID, entryID); err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			return apiError(c, fiber.StatusNotFound, "entry not found")
		}
		handler.log.Errorw("delete entry failed", "user_id", user.ID, "entry_id", entryID, "error", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to delete entry")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
