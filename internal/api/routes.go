package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	entries := api.Group("/entries", handler.AuthRequired)
	entries.Get("", handler.ListEntries)
	entries.Post("", handler.CreateEntry)
	entries.Get("/:id", handler.GetEntry)
	entries.Put("/:id", handler.UpdateEntry)
	entries.Delete("/:id", handler.DeleteEntry)
	entries.Post("/:id/feedback", handler.CreateFeedback)

	interventions := api.Group("/interventions")
	interventions.Get("", handler.ListInterventions)
	interventions.Post("", handler.AuthRequired, handler.CreateIntervention)
	interventions.Post("/:id/deactivate", handler.AuthRequired, handler.DeactivateIntervention)

	stats := api.Group("/stats", handler.AuthRequired)
	stats.Get("/overview", handler.GetStatsOverview)
	stats.Get("/trend", handler.GetMoodTrend)
	stats.Get("/heatmap", handler.GetHeatmap)
	stats.Get("/correlations", handler.GetTagCorrelations)
	stats.Get("/streak", handler.GetStreak)
	stats.Get("/comparison", handler.GetWeekComparison)
	stats.Get("/insights", handler.GetInsights)

	export := api.Group("/export", handler.AuthRequired)
	export.Get("/csv", handler.ExportCSV)
}
