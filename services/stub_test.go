package services

import (
	"context"
	"testing"

	"esports-tracker/pandascore"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// stubProvider is a canned Provider for handler tests. Single-resource
// lookups fall through to ErrNotFound when no fixture is set.
type stubProvider struct {
	tournaments []pandascore.Tournament
	tournament  *pandascore.Tournament
	teams       []pandascore.Team
	match       *pandascore.Match
	matches     []pandascore.Match
	err         error
}

func (s *stubProvider) GetTournaments(ctx context.Context, game, status string) ([]pandascore.Tournament, error) {
	return s.tournaments, s.err
}

func (s *stubProvider) GetTournament(ctx context.Context, id string) (*pandascore.Tournament, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.tournament == nil {
		return nil, pandascore.ErrNotFound
	}
	return s.tournament, nil
}

func (s *stubProvider) GetTeams(ctx context.Context, game string) ([]pandascore.Team, error) {
	return s.teams, s.err
}

func (s *stubProvider) GetMatch(ctx context.Context, id string) (*pandascore.Match, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.match == nil {
		return nil, pandascore.ErrNotFound
	}
	return s.match, nil
}

func (s *stubProvider) GetMatches(ctx context.Context, opts pandascore.MatchListOptions) ([]pandascore.Match, error) {
	return s.matches, s.err
}

// setupMockDB backs a gorm.DB with sqlmock so reconcile paths can be
// exercised without a live database.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}
