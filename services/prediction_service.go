package services

import (
	"errors"
	"fmt"

	"esports-tracker/pandascore"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type PredictionService struct {
	Provider Provider
}

func NewPredictionService(provider Provider) *PredictionService {
	return &PredictionService{Provider: provider}
}

// GetPrediction handles GET /predictions/:match_id. Prediction logic is not
// implemented yet, so the response is a pending placeholder built from the
// match's opponents.
func (s *PredictionService) GetPrediction(c *fiber.Ctx) error {
	matchID := c.Params("match_id")

	match, err := s.Provider.GetMatch(c.Context(), matchID)
	if errors.Is(err, pandascore.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": fmt.Sprintf("match with ID %s not found", matchID),
		})
	}
	if err != nil {
		log.Error().Err(err).Str("match_id", matchID).Msg("Failed to fetch match")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to get match prediction"})
	}

	teams := []string{}
	if len(match.Opponents) == 2 {
		teams = []string{
			match.Opponents[0].Opponent.Name,
			match.Opponents[1].Opponent.Name,
		}
	}

	return c.JSON(fiber.Map{
		"match_id":   matchID,
		"teams":      teams,
		"prediction": "pending",
		"confidence": 0.0,
	})
}

// CreatePrediction handles POST /predictions/:match_id. The payload is
// validated against the match state and echoed back with a receipt id;
// predictions are not persisted yet.
func (s *PredictionService) CreatePrediction(c *fiber.Ctx) error {
	matchID := c.Params("match_id")

	var prediction map[string]interface{}
	if err := c.BodyParser(&prediction); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid prediction payload"})
	}

	match, err := s.Provider.GetMatch(c.Context(), matchID)
	if errors.Is(err, pandascore.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": fmt.Sprintf("match with ID %s not found", matchID),
		})
	}
	if err != nil {
		log.Error().Err(err).Str("match_id", matchID).Msg("Failed to validate match for prediction")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create prediction"})
	}

	if match.Status == "finished" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cannot make predictions for finished matches"})
	}

	return c.JSON(fiber.Map{
		"status":        "success",
		"message":       "Prediction recorded",
		"prediction_id": uuid.NewString(),
		"prediction":    prediction,
	})
}
