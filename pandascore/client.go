package pandascore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the PandaScore REST API root.
const DefaultBaseURL = "https://api.pandascore.co"

// DefaultStatusFilter is applied when a caller does not pass a status filter.
const DefaultStatusFilter = "running,upcoming"

const defaultPerPage = "50"

// SupportedGames maps the short game identifiers accepted on the API surface
// to the provider's videogame slugs.
var SupportedGames = map[string]string{
	"lol":      "league-of-legends",
	"valorant": "valorant",
}

// SupportedGameList returns the supported short identifiers, sorted.
func SupportedGameList() []string {
	games := make([]string, 0, len(SupportedGames))
	for game := range SupportedGames {
		games = append(games, game)
	}
	sort.Strings(games)
	return games
}

// ErrNotFound is returned when the provider reports 404 for a single
// resource fetch.
var ErrNotFound = errors.New("pandascore: resource not found")

// UnsupportedGameError is returned when a caller passes a game outside the
// supported set.
type UnsupportedGameError struct {
	Game string
}

func (e *UnsupportedGameError) Error() string {
	return fmt.Sprintf("unsupported game %q. Supported games are: %s", e.Game, strings.Join(SupportedGameList(), ", "))
}

// Client wraps the PandaScore REST API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New creates a PandaScore client. The API key is required: running without
// one is a startup error, not something to discover per request.
func New(baseURL, apiKey string, timeout time.Duration) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("pandascore: API key is not set")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// get performs a GET request against the provider. There are no retries: any
// non-success response fails the whole call.
func (c *Client) get(ctx context.Context, path string, params map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	if len(params) > 0 {
		q := req.URL.Query()
		for key, value := range params {
			q.Set(key, value)
		}
		req.URL.RawQuery = q.Encode()
	}

	log.Debug().Str("url", req.URL.String()).Msg("PandaScore request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return body, nil
	case http.StatusNotFound:
		return nil, ErrNotFound
	default:
		return nil, fmt.Errorf("provider returned status %d: %s", resp.StatusCode, string(body))
	}
}

// GetTournaments fetches tournaments, preferring the dedicated per-game
// endpoint when one exists. Records whose videogame slug does not match the
// requested game are discarded, because the generic endpoint can return
// mixed results.
func (c *Client) GetTournaments(ctx context.Context, game, status string) ([]Tournament, error) {
	if game != "" {
		if _, ok := SupportedGames[game]; !ok {
			return nil, &UnsupportedGameError{Game: game}
		}
	}
	if status == "" {
		status = DefaultStatusFilter
	}

	path := "/tournaments"
	switch game {
	case "lol":
		path = "/lol/tournaments"
	case "valorant":
		path = "/valorant/tournaments"
	}

	body, err := c.get(ctx, path, map[string]string{
		"per_page": defaultPerPage,
		"status":   status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tournaments: %w", err)
	}

	var tournaments []Tournament
	if err := json.Unmarshal(body, &tournaments); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tournaments: %w", err)
	}

	filtered := make([]Tournament, 0, len(tournaments))
	for _, t := range tournaments {
		if game != "" && !matchesGame(t.Videogame, SupportedGames[game]) {
			continue
		}
		enrichTournament(&t, game)
		filtered = append(filtered, t)
	}

	return filtered, nil
}

// GetTournament fetches a single tournament and applies the same enrichment
// as the list fetch, deciding the game from the record's videogame slug.
func (c *Client) GetTournament(ctx context.Context, id string) (*Tournament, error) {
	body, err := c.get(ctx, "/tournaments/"+id, nil)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch tournament %s: %w", id, err)
	}

	var tournament Tournament
	if err := json.Unmarshal(body, &tournament); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tournament: %w", err)
	}

	enrichTournament(&tournament, gameForVideogame(tournament.Videogame))
	return &tournament, nil
}

// GetTeams fetches teams, attaches the normalized roster from embedded player
// data and, for league-of-legends only, the recent-performance block computed
// from each team's 5 latest matches.
func (c *Client) GetTeams(ctx context.Context, game string) ([]Team, error) {
	if game != "" {
		if _, ok := SupportedGames[game]; !ok {
			return nil, &UnsupportedGameError{Game: game}
		}
	}

	params := map[string]string{"per_page": defaultPerPage}
	if game != "" {
		params["videogame"] = SupportedGames[game]
	}

	body, err := c.get(ctx, "/teams", params)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch teams: %w", err)
	}

	var teams []Team
	if err := json.Unmarshal(body, &teams); err != nil {
		return nil, fmt.Errorf("failed to unmarshal teams: %w", err)
	}

	for i := range teams {
		team := &teams[i]

		if len(team.Players) > 0 {
			team.Roster = make([]RosterEntry, 0, len(team.Players))
			for _, p := range team.Players {
				team.Roster = append(team.Roster, RosterEntry{
					Name:     p.Name,
					Role:     p.Role,
					Hometown: p.Hometown,
					ImageURL: p.ImageURL,
				})
			}
		}

		if game == "lol" {
			recent, err := c.getTeamMatches(ctx, team.ID)
			if err != nil {
				// Missing recent-match data is not fatal for the listing.
				log.Warn().Err(err).Int64("team_id", team.ID).Msg("Failed to fetch recent matches")
				continue
			}
			team.RecentPerformance = &RecentPerformance{
				Matches: recent,
				WinRate: winRate(recent, team.ID),
			}
		}
	}

	return teams, nil
}

// GetMatch fetches a single match.
func (c *Client) GetMatch(ctx context.Context, id string) (*Match, error) {
	body, err := c.get(ctx, "/matches/"+id, nil)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch match %s: %w", id, err)
	}

	var match Match
	if err := json.Unmarshal(body, &match); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}

	return &match, nil
}

// MatchListOptions filters GetMatches.
type MatchListOptions struct {
	TournamentID string
	Status       string
}

// GetMatches fetches matches, optionally scoped to a tournament.
func (c *Client) GetMatches(ctx context.Context, opts MatchListOptions) ([]Match, error) {
	status := opts.Status
	if status == "" {
		status = DefaultStatusFilter
	}

	params := map[string]string{
		"per_page": defaultPerPage,
		"status":   status,
	}
	if opts.TournamentID != "" {
		params["tournament_id"] = opts.TournamentID
	}

	body, err := c.get(ctx, "/matches", params)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch matches: %w", err)
	}

	var matches []Match
	if err := json.Unmarshal(body, &matches); err != nil {
		return nil, fmt.Errorf("failed to unmarshal matches: %w", err)
	}

	return matches, nil
}

func (c *Client) getTeamMatches(ctx context.Context, teamID int64) ([]Match, error) {
	body, err := c.get(ctx, fmt.Sprintf("/teams/%d/matches", teamID), map[string]string{"per_page": "5"})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch team matches: %w", err)
	}

	var matches []Match
	if err := json.Unmarshal(body, &matches); err != nil {
		return nil, fmt.Errorf("failed to unmarshal team matches: %w", err)
	}

	return matches, nil
}

// matchesGame reports whether a record belongs to the videogame identified by
// wantSlug. When the provider omits the slug, the videogame name is slugified
// as a fallback.
func matchesGame(v *Videogame, wantSlug string) bool {
	if v == nil {
		return false
	}
	gameSlug := v.Slug
	if gameSlug == "" && v.Name != "" {
		gameSlug = slug.Make(v.Name)
	}
	return gameSlug == wantSlug
}

// gameForVideogame maps a record's videogame back to the short identifier,
// or "" when the game is outside the supported set.
func gameForVideogame(v *Videogame) string {
	if v == nil {
		return ""
	}
	for game, s := range SupportedGames {
		if v.Slug == s {
			return game
		}
	}
	return ""
}

// enrichTournament attaches the derived league/series summaries and the
// game-specific detail block.
func enrichTournament(t *Tournament, game string) {
	if t.League != nil {
		t.LeagueInfo = &LeagueInfo{
			Name:     t.League.Name,
			ImageURL: t.League.ImageURL,
			Region:   t.League.Region,
		}
	}
	if t.Serie != nil {
		t.SeriesInfo = &SeriesInfo{
			Name:   t.Serie.Name,
			Season: t.Serie.Season,
		}
	}

	switch game {
	case "lol":
		t.GameDetails = &GameDetails{
			PatchVersion:   t.PatchVersion,
			TournamentType: withDefault(t.TournamentType, "Unknown"),
			Region:         withDefault(t.Region, "International"),
		}
	case "valorant":
		t.GameDetails = &GameDetails{
			Patch:      withDefault(t.Patch, "Unknown"),
			SeriesType: withDefault(t.SerieType, "Unknown"),
			Region:     withDefault(t.Region, "International"),
		}
	}
}

func withDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// winRate returns the percentage of matches won by the team, 0 when the team
// has no recorded matches.
func winRate(matches []Match, teamID int64) float64 {
	if len(matches) == 0 {
		return 0
	}

	wins := 0
	for _, m := range matches {
		if m.WinnerID != nil && *m.WinnerID == teamID {
			wins++
		}
	}

	return float64(wins) / float64(len(matches)) * 100
}
