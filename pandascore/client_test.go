package pandascore

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(srv.URL, "test-key", 5*time.Second)
	require.NoError(t, err)
	return client
}

func TestNew_MissingAPIKey(t *testing.T) {
	_, err := New(DefaultBaseURL, "", time.Second)
	assert.Error(t, err, "Constructor should fail without an API key")
}

func TestGetTournaments_UsesGameEndpointAndFilters(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/lol/tournaments", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "finished", r.URL.Query().Get("status"))
		assert.Equal(t, "50", r.URL.Query().Get("per_page"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{
				"id": 1,
				"name": "Worlds 2026",
				"status": "finished",
				"begin_at": "2026-09-01T12:00:00Z",
				"videogame": {"id": 1, "name": "LoL", "slug": "league-of-legends"},
				"league": {"name": "LCK", "image_url": "http://img/lck.png", "region": "KR"},
				"serie": {"name": "Summer", "season": "2026"},
				"patch_version": "16.4"
			},
			{
				"id": 2,
				"name": "Stray Valorant Event",
				"videogame": {"id": 2, "name": "Valorant", "slug": "valorant"}
			},
			{
				"id": 3,
				"name": "No Videogame Block"
			}
		]`))
	})

	client := newTestClient(t, mux)

	tournaments, err := client.GetTournaments(context.Background(), "lol", "finished")
	require.NoError(t, err)
	require.Len(t, tournaments, 1, "Mismatched records should be filtered out")

	got := tournaments[0]
	assert.Equal(t, int64(1), got.ID)

	require.NotNil(t, got.LeagueInfo)
	assert.Equal(t, "LCK", got.LeagueInfo.Name)
	assert.Equal(t, "KR", got.LeagueInfo.Region)

	require.NotNil(t, got.SeriesInfo)
	assert.Equal(t, "2026", got.SeriesInfo.Season)

	require.NotNil(t, got.GameDetails)
	assert.Equal(t, "16.4", got.GameDetails.PatchVersion)
	assert.Equal(t, "Unknown", got.GameDetails.TournamentType)
	assert.Equal(t, "International", got.GameDetails.Region)
}

func TestGetTournaments_SlugFallbackFromName(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/valorant/tournaments", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id": 10, "name": "VCT", "videogame": {"id": 2, "name": "Valorant"}},
			{"id": 11, "name": "Other", "videogame": {"id": 1, "name": "League of Legends"}}
		]`))
	})

	client := newTestClient(t, mux)

	tournaments, err := client.GetTournaments(context.Background(), "valorant", "")
	require.NoError(t, err)
	require.Len(t, tournaments, 1)
	assert.Equal(t, int64(10), tournaments[0].ID)

	require.NotNil(t, tournaments[0].GameDetails)
	assert.Equal(t, "Unknown", tournaments[0].GameDetails.Patch)
	assert.Equal(t, "Unknown", tournaments[0].GameDetails.SeriesType)
}

func TestGetTournaments_UnsupportedGame(t *testing.T) {
	client := newTestClient(t, http.NewServeMux())

	_, err := client.GetTournaments(context.Background(), "dota2", "")
	require.Error(t, err)

	var unsupported *UnsupportedGameError
	require.ErrorAs(t, err, &unsupported)
	assert.Contains(t, err.Error(), "lol, valorant")
}

func TestGetTournaments_EmptyResultIsNotAnError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/lol/tournaments", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	client := newTestClient(t, mux)

	tournaments, err := client.GetTournaments(context.Background(), "lol", "")
	require.NoError(t, err)
	assert.Empty(t, tournaments)
}

func TestGetTournaments_ProviderFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/tournaments", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broke", http.StatusInternalServerError)
	})

	client := newTestClient(t, mux)

	_, err := client.GetTournaments(context.Background(), "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestGetTeams_RosterAndRecentPerformance(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/teams", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "league-of-legends", r.URL.Query().Get("videogame"))
		_, _ = w.Write([]byte(`[
			{
				"id": 42,
				"name": "T1",
				"acronym": "T1",
				"image_url": "http://img/t1.png",
				"current_videogame": {"id": 1, "name": "LoL", "slug": "league-of-legends"},
				"players": [
					{"name": "Faker", "role": "mid", "hometown": "Seoul", "image_url": "http://img/faker.png"},
					{"name": "Keria", "role": "support"}
				]
			}
		]`))
	})
	mux.HandleFunc("/teams/42/matches", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "5", r.URL.Query().Get("per_page"))
		_, _ = w.Write([]byte(`[
			{"id": 1, "winner_id": 42},
			{"id": 2, "winner_id": 42},
			{"id": 3, "winner_id": 42},
			{"id": 4, "winner_id": 7},
			{"id": 5, "winner_id": null}
		]`))
	})

	client := newTestClient(t, mux)

	teams, err := client.GetTeams(context.Background(), "lol")
	require.NoError(t, err)
	require.Len(t, teams, 1)

	team := teams[0]
	require.Len(t, team.Roster, 2)
	assert.Equal(t, "Faker", team.Roster[0].Name)
	assert.Equal(t, "support", team.Roster[1].Role)

	require.NotNil(t, team.RecentPerformance)
	assert.Len(t, team.RecentPerformance.Matches, 5)
	assert.Equal(t, 60.0, team.RecentPerformance.WinRate)
}

func TestGetTeams_NoRecentPerformanceForOtherGames(t *testing.T) {
	matchCalls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/teams", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id": 9, "name": "Sentinels"}]`))
	})
	mux.HandleFunc("/teams/9/matches", func(w http.ResponseWriter, r *http.Request) {
		matchCalls++
		_, _ = w.Write([]byte(`[]`))
	})

	client := newTestClient(t, mux)

	teams, err := client.GetTeams(context.Background(), "valorant")
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Nil(t, teams[0].RecentPerformance)
	assert.Zero(t, matchCalls, "Secondary match fetch is lol-only")
}

func TestGetTeams_SecondaryFetchFailureIsNonFatal(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/teams", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id": 42, "name": "T1"}]`))
	})
	mux.HandleFunc("/teams/42/matches", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	})

	client := newTestClient(t, mux)

	teams, err := client.GetTeams(context.Background(), "lol")
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Nil(t, teams[0].RecentPerformance)
}

func TestGetMatch_NotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/matches/999", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	client := newTestClient(t, mux)

	_, err := client.GetMatch(context.Background(), "999")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestGetMatches_NormalizedOpponents(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/matches", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "77", r.URL.Query().Get("tournament_id"))
		assert.Equal(t, "running,upcoming", r.URL.Query().Get("status"))
		_, _ = w.Write([]byte(`[
			{
				"id": 501,
				"status": "running",
				"opponents": [
					{"type": "Team", "opponent": {"id": 42, "name": "T1", "image_url": "http://img/t1.png", "acronym": "T1", "location": "KR", "modified_at": "2026-08-01T00:00:00Z"}},
					{"type": "Team", "opponent": {"id": 7, "name": "G2", "image_url": "http://img/g2.png", "acronym": "G2"}}
				]
			}
		]`))
	})

	client := newTestClient(t, mux)

	matches, err := client.GetMatches(context.Background(), MatchListOptions{TournamentID: "77"})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Len(t, matches[0].Opponents, 2)

	first := matches[0].Opponents[0].Opponent
	assert.Equal(t, OpponentTeam{ID: 42, Name: "T1", ImageURL: "http://img/t1.png", Acronym: "T1"}, first)
}

func TestEnrichTournament_GameDetailDefaults(t *testing.T) {
	lol := Tournament{PatchVersion: "16.4"}
	enrichTournament(&lol, "lol")
	require.NotNil(t, lol.GameDetails)
	assert.Equal(t, "16.4", lol.GameDetails.PatchVersion)
	assert.Equal(t, "Unknown", lol.GameDetails.TournamentType)
	assert.Equal(t, "International", lol.GameDetails.Region)

	valorant := Tournament{Patch: "9.02", SerieType: "playoffs", Region: "EMEA"}
	enrichTournament(&valorant, "valorant")
	require.NotNil(t, valorant.GameDetails)
	assert.Equal(t, "9.02", valorant.GameDetails.Patch)
	assert.Equal(t, "playoffs", valorant.GameDetails.SeriesType)
	assert.Equal(t, "EMEA", valorant.GameDetails.Region)
}

func TestWinRate(t *testing.T) {
	id := func(v int64) *int64 { return &v }

	tests := []struct {
		name    string
		matches []Match
		want    float64
	}{
		{"no matches", nil, 0},
		{"all wins", []Match{{WinnerID: id(1)}, {WinnerID: id(1)}}, 100},
		{"three of five", []Match{{WinnerID: id(1)}, {WinnerID: id(1)}, {WinnerID: id(1)}, {WinnerID: id(2)}, {WinnerID: nil}}, 60},
		{"one of four", []Match{{WinnerID: id(1)}, {WinnerID: id(2)}, {WinnerID: id(2)}, {WinnerID: id(2)}}, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, winRate(tt.matches, 1))
		})
	}
}
