// Package scores implements the scrape-and-extract pipeline for ESPN game
// pages: per-period scores and final totals for both teams of one game.
//
// Unlike the schedule page, the game page does not carry its data in an
// HTML table. ESPN embeds the game state as JSON inside script tags, so
// the extractor scans script contents for linescores arrays and pairs each
// one with the team name and final score declared in the same competitor
// object. Pages whose embedded data is incomplete fall back to the summary
// meta tag.
package scores

import (
	"bytes"
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"nfl-schedule-scraper/internal/logger"
	"nfl-schedule-scraper/internal/schedule"
	"nfl-schedule-scraper/internal/scraper"
)

// ReasonScoresNotFound is the ExtractError reason for a game page that
// loaded but yielded no team scores.
const ReasonScoresNotFound = "game_scores_not_found"

// Result is the extracted scoring summary for one game: per team, a map
// from period label (1st through 4th, then OT, OT2, ...) to points, plus
// a Final entry.
type Result struct {
	Teams map[string]map[string]string `json:"teams"`
}

// GamePath returns the URL path of the ESPN game page.
func GamePath(sport, gameID string) string {
	return fmt.Sprintf("/%s/game/_/gameId/%s/", sport, gameID)
}

// GameURL returns the full ESPN game page URL.
func GameURL(sport, gameID string) string {
	return schedule.BaseURL + GamePath(sport, gameID)
}

// Scraper fetches an ESPN game page and extracts its scores.
type Scraper struct {
	client  *scraper.Client
	baseURL string
}

// New creates a Scraper backed by a default HTTP client.
func New() *Scraper {
	return &Scraper{
		client:  scraper.NewClient(),
		baseURL: schedule.BaseURL,
	}
}

// Scrape fetches the game page for sport and gameID and extracts the
// per-period scores for both teams.
func (s *Scraper) Scrape(ctx context.Context, sport, gameID string) (*Result, error) {
	url := s.baseURL + GamePath(sport, gameID)

	body, err := s.client.FetchPage(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, &scraper.ExtractError{Reason: "unparseable_html"}
	}

	teams := extractScores(doc)
	if len(teams) == 0 {
		return nil, &scraper.ExtractError{Reason: ReasonScoresNotFound}
	}

	logger.Debug("Scraped game scores", logger.Fields{
		"sport":   sport,
		"game_id": gameID,
		"teams":   len(teams),
	})

	return &Result{Teams: teams}, nil
}
