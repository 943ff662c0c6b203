package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/patrykmns/droply/internal/models"
	"github.com/patrykmns/droply/internal/services"
)

func (handler *Handler) GetSettings(c *fiber.Ctx) error {
	return c.JSON(handler.settings.Load())
}

func (handler *Handler) SaveSettings(c *fiber.Ctx) error {
	input := services.Settings{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, handler.translate(c, "error.invalid_settings"))
	}

	if err := handler.settings.Save(c.Context(), input); err != nil {
		if errors.Is(err, services.ErrInvalidSettings) {
			return apiError(c, fiber.StatusBadRequest, handler.translate(c, "error.invalid_settings"))
		}
		return apiError(c, fiber.StatusInternalServerError, "save settings failed")
	}
	return c.JSON(handler.settings.Load())
}

// GoalPreview recomputes the recommended goal as the editor fields
// change, without persisting anything.
func (handler *Handler) GoalPreview(c *fiber.Ctx) error {
	weight, err := strconv.Atoi(c.Query("weight"))
	if err != nil || weight <= 0 {
		return apiError(c, fiber.StatusBadRequest, handler.translate(c, "error.invalid_amount"))
	}

	gender := c.Query("gender", models.GenderMale)
	if !models.ValidGender(gender) {
		return apiError(c, fiber.StatusBadRequest, handler.translate(c, "error.invalid_settings"))
	}

	activity := c.Query("activity", models.ActivityNone)
	if !models.ValidActivity(activity) {
		return apiError(c, fiber.StatusBadRequest, handler.translate(c, "error.invalid_settings"))
	}

	return c.JSON(fiber.Map{"goal": services.CalculateGoal(weight, gender, activity)})
}
