package handlers

import (
	"esports-tracker/services"

	"github.com/gofiber/fiber/v2"
)

func SetupTournamentRoutes(app *fiber.App, tournamentService *services.TournamentService) {
	app.Get("/tournaments", tournamentService.GetTournaments)
	app.Get("/tournaments/:id", tournamentService.GetTournamentByID)
}
