package services

import (
	"context"

	"esports-tracker/pandascore"
)

// Provider is the slice of the PandaScore client the services depend on.
// *pandascore.Client satisfies it.
type Provider interface {
	GetTournaments(ctx context.Context, game, status string) ([]pandascore.Tournament, error)
	GetTournament(ctx context.Context, id string) (*pandascore.Tournament, error)
	GetTeams(ctx context.Context, game string) ([]pandascore.Team, error)
	GetMatch(ctx context.Context, id string) (*pandascore.Match, error)
	GetMatches(ctx context.Context, opts pandascore.MatchListOptions) ([]pandascore.Match, error)
}
