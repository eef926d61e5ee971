package schedule

import (
	"fmt"
	"strings"
)

const (
	// BaseURL is the host all schedule pages are fetched from.
	BaseURL = "https://www.espn.com"

	// DefaultSlug and DefaultNameLong identify the team used when a
	// request carries no team identity at all.
	DefaultSlug     = "min"
	DefaultNameLong = "minnesota-vikings"
)

// Team identifies which team's schedule to fetch. Both fields are the
// path-safe strings ESPN uses in its team schedule URLs.
type Team struct {
	Slug     string `json:"team_slug"`
	NameLong string `json:"team_name_long"`
}

// DefaultTeam returns the fallback team used when the caller supplies none.
func DefaultTeam() Team {
	return Team{Slug: DefaultSlug, NameLong: DefaultNameLong}
}

// SchedulePath returns the URL path of the team's schedule page.
func (t Team) SchedulePath() string {
	return fmt.Sprintf("/nfl/team/schedule/_/name/%s/%s", t.Slug, t.NameLong)
}

// URL returns the full ESPN schedule page URL for the team.
func (t Team) URL() string {
	return BaseURL + t.SchedulePath()
}

// DisplayName derives the short team name used in match-up strings from the
// long name, e.g. "minnesota-vikings" -> "Minnesota".
func (t Team) DisplayName() string {
	name := t.NameLong
	if i := strings.Index(name, "-"); i >= 0 {
		name = name[:i]
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + strings.ToLower(name[1:])
}

// Game is one scheduled game. Every field is always present; a field the
// source row did not carry is an empty string, never a missing key. The
// uppercase JSON keys are fixed for existing consumers.
type Game struct {
	Week    string `json:"WK"`
	Date    string `json:"DATE"`
	MatchUp string `json:"MATCH_UP"`
	Time    string `json:"TIME"`
	GameID  string `json:"GAME_ID"`
	TV      string `json:"TV"`
}

// Result is the normalized schedule for one team. Games preserves the
// display order of the source page.
type Result struct {
	TeamSlug     string `json:"team_slug"`
	TeamNameLong string `json:"team_name_long"`
	SourceURL    string `json:"sourceUrl"`
	Games        []Game `json:"games"`
	Count        int    `json:"count"`
}

// NewResult assembles a Result, guaranteeing Games is non-nil and Count
// matches its length.
func NewResult(team Team, sourceURL string, games []Game) *Result {
	if games == nil {
		games = []Game{}
	}
	return &Result{
		TeamSlug:     team.Slug,
		TeamNameLong: team.NameLong,
		SourceURL:    sourceURL,
		Games:        games,
		Count:        len(games),
	}
}
