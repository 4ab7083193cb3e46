package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"twviewer/controllers"
	"twviewer/middleware"
)

func APIRoutes(app *fiber.App, h *controllers.Controller, allowOrigins string) {
	api := app.Group("/api", cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: "GET,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	eventType := middleware.RequireEventType()

	api.Get("/tournaments", h.APITournaments)
	api.Get(tournamentPath, eventType, h.APITournament)
	api.Get(tournamentPath+"/matches", eventType, h.APIMatches)
	api.Get(tournamentPath+"/brackets", eventType, h.APIBrackets)
	api.Get(tournamentPath+"/brackets/:bracketId", eventType, h.APIBracket)
}
