package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const defaultHistoryDays = 7
const maxHistoryDays = 366

func (handler *Handler) History(c *fiber.Ctx) error {
	days := defaultHistoryDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > maxHistoryDays {
			return apiError(c, fiber.StatusBadRequest, handler.translate(c, "error.invalid_amount"))
		}
		days = parsed
	}

	entries, err := handler.history.LastDays(days)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load history failed")
	}
	return c.JSON(fiber.Map{"days": entries})
}

func (handler *Handler) AllHistory(c *fiber.Ctx) error {
	entries, err := handler.history.AllHistory()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load history failed")
	}
	return c.JSON(fiber.Map{"days": entries})
}
