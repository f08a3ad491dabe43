package handlers

import (
	"esports-tracker/services"

	"github.com/gofiber/fiber/v2"
)

func SetupTeamRoutes(app *fiber.App, teamService *services.TeamService) {
	app.Get("/teams", teamService.GetTeams)
}
