package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	languageCookieName = "droply_lang"
	contextLanguageKey = "current_language"
	contextMessagesKey = "current_messages"
)

func (handler *Handler) LanguageMiddleware(c *fiber.Ctx) error {
	cookieLanguage := c.Cookies(languageCookieName)
	language := handler.i18n.DetectFromAcceptLanguage(c.Get("Accept-Language"))
	if cookieLanguage != "" {
		language = handler.i18n.NormalizeLanguage(cookieLanguage)
	}

	if cookieLanguage != language {
		handler.setLanguageCookie(c, language)
	}

	c.Locals(contextLanguageKey, language)
	c.Locals(contextMessagesKey, handler.i18n.Messages(language))
	return c.Next()
}

func (handler *Handler) setLanguageCookie(c *fiber.Ctx, language string) {
	c.Cookie(&fiber.Cookie{
		Name:     languageCookieName,
		Value:    handler.i18n.NormalizeLanguage(language),
		Path:     "/",
		HTTPOnly: false,
		SameSite: "Lax",
		Expires:  time.Now().AddDate(1, 0, 0),
	})
}

func (handler *Handler) SetLanguage(c *fiber.Ctx) error {
	requested := c.Params("lang")
	normalized := handler.i18n.NormalizeLanguage(requested)
	if normalized != requested {
		return apiError(c, fiber.StatusBadRequest, handler.i18n.Translate(currentLanguage(c), "error.invalid_language"))
	}
	handler.setLanguageCookie(c, normalized)
	return c.JSON(fiber.Map{"language": normalized})
}

func currentLanguage(c *fiber.Ctx) string {
	language, _ := c.Locals(contextLanguageKey).(string)
	return language
}
