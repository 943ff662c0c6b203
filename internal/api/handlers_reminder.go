package api

import (
	"github.com/gofiber/fiber/v2"
)

// ReminderQuickAdd handles the notification's fixed-amount response
// action: dismiss presented reminders, add, reschedule (the add path
// reschedules on its own).
func (handler *Handler) ReminderQuickAdd(c *fiber.Ctx) error {
	if handler.feed != nil {
		handler.feed.ClearReminders()
	}
	amount, err := handler.intake.QuickAdd(c.Context())
	return handler.finishAdd(c, err, amount)
}

// ReminderCustomAdd handles the notification's free-text amount reply.
func (handler *Handler) ReminderCustomAdd(c *fiber.Ctx) error {
	input := addWaterInput{}
	if err := c.BodyParser(&input); err != nil || input.Amount <= 0 {
		return apiError(c, fiber.StatusBadRequest, handler.translate(c, "error.invalid_amount"))
	}

	if handler.feed != nil {
		handler.feed.ClearReminders()
	}
	return handler.finishAdd(c, handler.intake.AddDirect(c.Context(), input.Amount), input.Amount)
}

// Feed drains pending reminders and toasts for the presentation layer.
func (handler *Handler) Feed(c *fiber.Ctx) error {
	if handler.feed == nil {
		return c.JSON(fiber.Map{"messages": []any{}})
	}
	return c.JSON(fiber.Map{"messages": handler.feed.Drain()})
}
