package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/lang/:lang", handler.SetLanguage)

	api := app.Group("/api")

	api.Get("/today", handler.Today)
	api.Get("/feed", handler.Feed)

	water := api.Group("/water")
	water.Post("", handler.AddWater)
	water.Post("/quick", handler.QuickAddWater)
	water.Post("/undo", handler.UndoWater)
	water.Post("/reset", handler.ResetWater)

	api.Post("/tile/add", handler.TileAdd)

	reminder := api.Group("/reminder")
	reminder.Post("/quick-add", handler.ReminderQuickAdd)
	reminder.Post("/custom", handler.ReminderCustomAdd)

	history := api.Group("/history")
	history.Get("", handler.History)
	history.Get("/all", handler.AllHistory)

	settings := api.Group("/settings")
	settings.Get("", handler.GetSettings)
	settings.Post("", handler.SaveSettings)
	settings.Get("/goal-preview", handler.GoalPreview)
}
