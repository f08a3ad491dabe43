package services

import (
	"context"
	"time"

	"esports-tracker/pandascore"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
)

// StartRefreshScheduler periodically re-syncs tournaments for every supported
// game so the store does not go stale between inbound requests. Off unless
// enabled via configuration.
func (s *TournamentService) StartRefreshScheduler(interval time.Duration) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		log.Error().Err(err).Msg("Failed to create refresh scheduler")
		return
	}
	sched.Start()

	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), interval)
			defer cancel()

			for _, game := range pandascore.SupportedGameList() {
				tournaments, err := s.Provider.GetTournaments(ctx, game, pandascore.DefaultStatusFilter)
				if err != nil {
					log.Error().Err(err).Str("game", game).Msg("[Scheduler] Failed to refresh tournaments")
					continue
				}
				if err := s.saveTournaments(tournaments); err != nil {
					log.Error().Err(err).Str("game", game).Msg("[Scheduler] Failed to save refreshed tournaments")
					continue
				}
				log.Info().Str("game", game).Int("count", len(tournaments)).Msg("[Scheduler] Tournaments refreshed")
			}
		}),
	)
	if err != nil {
		log.Error().Err(err).Msg("Failed to schedule tournament refresh")
	}
}
