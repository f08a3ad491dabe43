package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"esports-tracker/models"
	"esports-tracker/pandascore"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type TournamentService struct {
	DB       *gorm.DB
	Provider Provider
}

func NewTournamentService(db *gorm.DB, provider Provider) *TournamentService {
	return &TournamentService{DB: db, Provider: provider}
}

// GetTournaments handles GET /tournaments. The enriched fetch result is
// returned to the caller; persistence is a side effect.
func (s *TournamentService) GetTournaments(c *fiber.Ctx) error {
	game := c.Query("game")
	status := c.Query("status", pandascore.DefaultStatusFilter)

	if game != "" {
		if _, ok := pandascore.SupportedGames[game]; !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Unsupported game. Supported games are: %s", strings.Join(pandascore.SupportedGameList(), ", ")),
			})
		}
	}

	log.Info().Str("game", game).Str("status", status).Msg("Fetching tournaments")

	tournaments, err := s.Provider.GetTournaments(c.Context(), game, status)
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch tournaments")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch tournaments"})
	}

	if err := s.saveTournaments(tournaments); err != nil {
		log.Error().Err(err).Msg("Failed to save tournaments")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save tournaments to database"})
	}

	return c.JSON(fiber.Map{"tournaments": tournaments})
}

// GetTournamentByID handles GET /tournaments/:id and embeds the tournament's
// matches. Nothing is persisted on this path.
func (s *TournamentService) GetTournamentByID(c *fiber.Ctx) error {
	id := c.Params("id")

	tournament, err := s.Provider.GetTournament(c.Context(), id)
	if errors.Is(err, pandascore.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": fmt.Sprintf("tournament with ID %s not found", id),
		})
	}
	if err != nil {
		log.Error().Err(err).Str("tournament_id", id).Msg("Failed to fetch tournament details")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch tournament details"})
	}

	matches, err := s.Provider.GetMatches(c.Context(), pandascore.MatchListOptions{TournamentID: id})
	if err != nil {
		log.Error().Err(err).Str("tournament_id", id).Msg("Failed to fetch tournament matches")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch tournament details"})
	}
	tournament.Matches = matches

	return c.JSON(tournament)
}

// saveTournaments projects a fetch batch into the store. Each record is keyed
// by the provider's id: existing rows are overwritten in place, new rows are
// inserted. The whole batch commits or rolls back together.
func (s *TournamentService) saveTournaments(tournaments []pandascore.Tournament) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		for _, t := range tournaments {
			row := mapTournament(t)

			var existing models.Tournament
			err := tx.Where("external_id = ?", row.ExternalID).First(&existing).Error
			switch {
			case err == nil:
				existing.Name = row.Name
				existing.Game = row.Game
				existing.StartDate = row.StartDate
				existing.EndDate = row.EndDate
				existing.Status = row.Status
				existing.PrizePool = row.PrizePool
				if err := tx.Save(&existing).Error; err != nil {
					return err
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			default:
				return err
			}
		}
		return nil
	})
}

// mapTournament maps a provider record onto the persisted base fields.
// Enrichment blocks never reach the store.
func mapTournament(t pandascore.Tournament) models.Tournament {
	name := t.Name
	if name == "" {
		name = "Unnamed Tournament"
	}
	game := "Unknown Game"
	if t.Videogame != nil && t.Videogame.Name != "" {
		game = t.Videogame.Name
	}
	status := t.Status
	if status == "" {
		status = "unknown"
	}

	return models.Tournament{
		ExternalID: strconv.FormatInt(t.ID, 10),
		Name:       name,
		Game:       game,
		StartDate:  t.BeginAt,
		EndDate:    t.EndAt,
		Status:     status,
		PrizePool:  t.PrizePool,
	}
}
