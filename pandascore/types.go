package pandascore

import (
	"time"
)

// Videogame identifies which game a provider record belongs to.
type Videogame struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	Slug string `json:"slug,omitempty"`
}

// League is the raw league block embedded in tournament payloads.
type League struct {
	ID       int64  `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	Region   string `json:"region,omitempty"`
}

// Serie is the raw series block embedded in tournament payloads.
type Serie struct {
	ID     int64  `json:"id,omitempty"`
	Name   string `json:"name,omitempty"`
	Season string `json:"season,omitempty"`
}

// Tournament is a provider tournament plus the enrichment computed per
// request. Enrichment fields use pointers so absence stays visible in the
// JSON response; none of them are ever persisted.
type Tournament struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Slug      string     `json:"slug,omitempty"`
	BeginAt   *time.Time `json:"begin_at"`
	EndAt     *time.Time `json:"end_at"`
	Status    string     `json:"status,omitempty"`
	PrizePool string     `json:"prize_pool,omitempty"`

	Videogame *Videogame `json:"videogame,omitempty"`
	League    *League    `json:"league,omitempty"`
	Serie     *Serie     `json:"serie,omitempty"`

	// Raw game-specific fields; their presence depends on the videogame.
	PatchVersion   string `json:"patch_version,omitempty"`
	TournamentType string `json:"tournament_type,omitempty"`
	Patch          string `json:"patch,omitempty"`
	SerieType      string `json:"serie_type,omitempty"`
	Region         string `json:"region,omitempty"`

	// Enrichment
	LeagueInfo  *LeagueInfo  `json:"league_info,omitempty"`
	SeriesInfo  *SeriesInfo  `json:"series_info,omitempty"`
	GameDetails *GameDetails `json:"game_details,omitempty"`

	// Matches is attached by the detail endpoint only.
	Matches []Match `json:"matches,omitempty"`
}

// LeagueInfo is the derived league summary attached to tournaments.
type LeagueInfo struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	Region   string `json:"region"`
}

// SeriesInfo is the derived series summary attached to tournaments.
type SeriesInfo struct {
	Name   string `json:"name"`
	Season string `json:"season"`
}

// GameDetails carries the per-game detail block. Field names differ between
// games, so only the fields for the tournament's game are populated.
type GameDetails struct {
	// league-of-legends
	PatchVersion   string `json:"patch_version,omitempty"`
	TournamentType string `json:"tournament_type,omitempty"`
	// valorant
	Patch      string `json:"patch,omitempty"`
	SeriesType string `json:"series_type,omitempty"`

	Region string `json:"region"`
}

// Team is a provider team plus the roster and recent-performance enrichment.
type Team struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	Acronym          string     `json:"acronym,omitempty"`
	ImageURL         string     `json:"image_url,omitempty"`
	Slug             string     `json:"slug,omitempty"`
	CurrentVideogame *Videogame `json:"current_videogame,omitempty"`
	Players          []Player   `json:"players,omitempty"`

	// Enrichment
	Roster            []RosterEntry      `json:"roster,omitempty"`
	RecentPerformance *RecentPerformance `json:"recent_performance,omitempty"`
}

// Player is the raw player block embedded in team payloads.
type Player struct {
	ID       int64  `json:"id,omitempty"`
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"`
	Hometown string `json:"hometown,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// RosterEntry is the normalized player shape attached to teams.
type RosterEntry struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Hometown string `json:"hometown"`
	ImageURL string `json:"image_url"`
}

// RecentPerformance summarizes a team's latest matches.
type RecentPerformance struct {
	Matches []Match `json:"matches"`
	WinRate float64 `json:"win_rate"`
}

// Match is a provider match. Opponents are decoded into a fixed shape, so
// whatever extra structure the provider sends is dropped on the way through.
type Match struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name,omitempty"`
	Status       string     `json:"status,omitempty"`
	BeginAt      *time.Time `json:"begin_at"`
	EndAt        *time.Time `json:"end_at,omitempty"`
	WinnerID     *int64     `json:"winner_id"`
	TournamentID int64      `json:"tournament_id,omitempty"`
	Opponents    []Opponent `json:"opponents"`
}

// Opponent wraps one side of a match.
type Opponent struct {
	Opponent OpponentTeam `json:"opponent"`
}

// OpponentTeam is the normalized opponent shape.
type OpponentTeam struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	Acronym  string `json:"acronym"`
}
