package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"esports-tracker/config"
	"esports-tracker/handlers"
	"esports-tracker/models"
	"esports-tracker/pandascore"
	"esports-tracker/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg := config.MustLoad()
	setupLogger(cfg.LogLevel)

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := db.AutoMigrate(
		&models.Tournament{},
		&models.Team{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	provider, err := pandascore.New(cfg.PandaScoreBaseURL, cfg.PandaScoreAPIKey, cfg.PandaScoreTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize PandaScore client")
	}

	tournamentService := services.NewTournamentService(db, provider)
	teamService := services.NewTeamService(db, provider)
	predictionService := services.NewPredictionService(provider)

	if cfg.RefreshEnabled {
		tournamentService.StartRefreshScheduler(cfg.RefreshInterval)
	}

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Origins(),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to the Esports Tournament Tracker API",
			"version": "1.0.0",
			"endpoints": fiber.Map{
				"tournaments": "/tournaments",
				"teams":       "/teams",
				"predictions": "/predictions/{match_id}",
			},
		})
	})

	handlers.SetupTournamentRoutes(app, tournamentService)
	handlers.SetupTeamRoutes(app, teamService)
	handlers.SetupPredictionRoutes(app, predictionService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
			log.Error().Err(err).Msg("server error")
		}
	}()

	log.Info().Msgf("✅ Server running on http://localhost:%d", cfg.Port)
	log.Info().Msgf("✅ CORS configured for origins: %s", cfg.Origins())
	if cfg.RefreshEnabled {
		log.Info().Msgf("✅ Tournament refresh running (every %s)", cfg.RefreshInterval)
	}

	<-ctx.Done()
	log.Info().Msg("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}

func setupLogger(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}
