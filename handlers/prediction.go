package handlers

import (
	"esports-tracker/services"

	"github.com/gofiber/fiber/v2"
)

func SetupPredictionRoutes(app *fiber.App, predictionService *services.PredictionService) {
	app.Get("/predictions/:match_id", predictionService.GetPrediction)
	app.Post("/predictions/:match_id", predictionService.CreatePrediction)
}
