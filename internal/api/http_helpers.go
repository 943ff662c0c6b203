package api

import "github.com/gofiber/fiber/v2"

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func (handler *Handler) translate(c *fiber.Ctx, key string) string {
	return handler.i18n.Translate(currentLanguage(c), key)
}

func (handler *Handler) translatef(c *fiber.Ctx, key string, args ...any) string {
	return handler.i18n.Translatef(currentLanguage(c), key, args...)
}
