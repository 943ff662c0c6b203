package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/patrykmns/droply/internal/services"
)

type addWaterInput struct {
	Amount int `json:"amount"`
}

// Today is the dashboard payload: current amount, goal, progress,
// streak, undo state, and the advisory next-reminder time.
func (handler *Handler) Today(c *fiber.Ctx) error {
	amount, err := handler.intake.Today(c.Context())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load today failed")
	}

	dailyGoal := handler.preferences.DailyGoal()
	streak, err := handler.history.Streak(dailyGoal)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load streak failed")
	}

	progress := 0.0
	if dailyGoal > 0 {
		progress = float64(amount) / float64(dailyGoal)
		if progress > 1 {
			progress = 1
		}
	}

	nextAlarm := ""
	if at, ok := handler.preferences.NextAlarmTime(); ok && at.After(time.Now()) {
		nextAlarm = at.In(handler.location).Format("15:04")
	}

	return c.JSON(fiber.Map{
		"amount":     amount,
		"goal":       dailyGoal,
		"progress":   progress,
		"goal_met":   amount >= dailyGoal,
		"streak":     streak,
		"last_added": handler.intake.LastAdded(),
		"next_alarm": nextAlarm,
	})
}

func (handler *Handler) AddWater(c *fiber.Ctx) error {
	input := addWaterInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, handler.translate(c, "error.invalid_amount"))
	}
	return handler.finishAdd(c, handler.intake.Add(c.Context(), input.Amount), input.Amount)
}

func (handler *Handler) QuickAddWater(c *fiber.Ctx) error {
	amount, err := handler.intake.QuickAdd(c.Context())
	return handler.finishAdd(c, err, amount)
}

// TileAdd is the quick-settings tile surface: a single tap adds the
// configured amount, no body expected.
func (handler *Handler) TileAdd(c *fiber.Ctx) error {
	amount, err := handler.intake.QuickAdd(c.Context())
	return handler.finishAdd(c, err, amount)
}

func (handler *Handler) UndoWater(c *fiber.Ctx) error {
	undoneAmount, err := handler.intake.Undo(c.Context())
	if err != nil {
		if errors.Is(err, services.ErrNothingToUndo) {
			return apiError(c, fiber.StatusConflict, "nothing to undo")
		}
		return apiError(c, fiber.StatusInternalServerError, "undo failed")
	}
	return c.JSON(fiber.Map{"undone": undoneAmount})
}

func (handler *Handler) ResetWater(c *fiber.Ctx) error {
	if err := handler.intake.Reset(c.Context()); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "reset failed")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) finishAdd(c *fiber.Ctx, err error, amount int) error {
	if err == nil {
		return c.JSON(fiber.Map{"added": amount})
	}

	cooldown := &services.CooldownError{}
	switch {
	case errors.As(err, &cooldown):
		return apiError(c, fiber.StatusTooManyRequests, handler.translatef(c, "toast.cooldown", cooldown.SecondsLeft))
	case errors.Is(err, services.ErrInvalidAmount):
		return apiError(c, fiber.StatusBadRequest, handler.translate(c, "error.invalid_amount"))
	default:
		return apiError(c, fiber.StatusInternalServerError, "add failed")
	}
}
