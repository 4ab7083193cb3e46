package routes

import (
	"github.com/gofiber/fiber/v2"

	"twviewer/controllers"
	"twviewer/middleware"
	"twviewer/trackwrestling"
)

const tournamentPath = "/tournaments/:eventType/:tourneyId"

func PageRoutes(app *fiber.App, h *controllers.Controller, api trackwrestling.API) {
	eventType := middleware.RequireEventType()
	tournament := middleware.LoadTournament(api)

	app.Get("/", h.Home)
	app.Get("/tournaments", h.Tournaments)
	app.Get("/tournaments/:eventType", eventType, h.EventType)
	app.Get(tournamentPath, eventType, tournament, h.Detail)

	app.Get(tournamentPath+"/matches", eventType, tournament, h.Matches)
	app.Get(tournamentPath+"/matches/board", eventType, h.MatchBoard)
	app.Get(tournamentPath+"/matches/live", eventType, h.MatchesLive)
	app.Get(tournamentPath+"/matches.csv", eventType, h.MatchesCSV)

	app.Get(tournamentPath+"/brackets", eventType, tournament, h.Brackets)
}
