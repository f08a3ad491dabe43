package services

import (
	"fmt"
	"strconv"
	"strings"

	"esports-tracker/models"
	"esports-tracker/pandascore"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TeamService struct {
	DB       *gorm.DB
	Provider Provider
}

func NewTeamService(db *gorm.DB, provider Provider) *TeamService {
	return &TeamService{DB: db, Provider: provider}
}

// GetTeams handles GET /teams.
func (s *TeamService) GetTeams(c *fiber.Ctx) error {
	game := c.Query("game")

	if game != "" {
		if _, ok := pandascore.SupportedGames[game]; !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Unsupported game. Supported games are: %s", strings.Join(pandascore.SupportedGameList(), ", ")),
			})
		}
	}

	teams, err := s.Provider.GetTeams(c.Context(), game)
	if err != nil {
		log.Error().Err(err).Str("game", game).Msg("Failed to fetch teams")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch teams"})
	}

	if err := s.saveTeams(teams); err != nil {
		log.Error().Err(err).Msg("Failed to save teams")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save teams to database"})
	}

	return c.JSON(fiber.Map{"teams": teams})
}

// saveTeams merges the batch by external_id. Rating stays out of the update
// column set: it is written once on insert and left alone afterwards.
func (s *TeamService) saveTeams(teams []pandascore.Team) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		for _, t := range teams {
			row := mapTeam(t)
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "external_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"name", "acronym", "image_url", "game", "updated_at"}),
			}).Create(&row).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// mapTeam maps a provider record onto the persisted base fields. Roster and
// recent performance are per-request enrichment and never reach the store.
func mapTeam(t pandascore.Team) models.Team {
	name := t.Name
	if name == "" {
		name = "Unnamed Team"
	}
	game := "Unknown Game"
	if t.CurrentVideogame != nil && t.CurrentVideogame.Name != "" {
		game = t.CurrentVideogame.Name
	}

	return models.Team{
		ExternalID: strconv.FormatInt(t.ID, 10),
		Name:       name,
		Acronym:    t.Acronym,
		ImageURL:   t.ImageURL,
		Game:       game,
		Rating:     models.InitialRating,
	}
}
