package scraper

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/PuerkitoBio/goquery"

	"nfl-schedule-scraper/internal/logger"
	"nfl-schedule-scraper/internal/schedule"
)

// Scraper fetches a team's ESPN schedule page and normalizes it into a
// schedule.Result.
type Scraper struct {
	client  *Client
	baseURL string
}

// New creates a Scraper backed by a default HTTP client.
func New() *Scraper {
	return &Scraper{
		client:  NewClient(),
		baseURL: schedule.BaseURL,
	}
}

// Scrape runs the full pipeline for one team: fetch the schedule page,
// locate the upcoming-games table, and normalize each row. Row order on the
// page is preserved in the result; a page with a schedule table but no
// upcoming games yields an empty result, not an error.
func (s *Scraper) Scrape(ctx context.Context, team schedule.Team) (*schedule.Result, error) {
	url := s.baseURL + team.SchedulePath()

	start := time.Now()
	body, err := s.client.FetchPage(ctx, url)
	logger.RecordTiming("scraper.fetch", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}

	games, err := s.parseSchedule(body, team)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", url, err)
	}

	logger.Debug("Scraped schedule", logger.Fields{
		"team_slug": team.Slug,
		"games":     len(games),
	})

	return schedule.NewResult(team, url, games), nil
}

// parseSchedule extracts and normalizes the schedule table from raw HTML.
func (s *Scraper) parseSchedule(html []byte, team schedule.Team) ([]schedule.Game, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, &ExtractError{Reason: "unparseable_html"}
	}

	table, err := extractSchedule(doc)
	if err != nil {
		return nil, err
	}

	teamName := team.DisplayName()
	games := make([]schedule.Game, 0, len(table.rows))
	for _, row := range table.rows {
		if game, ok := normalizeRow(table.layout, row, teamName); ok {
			games = append(games, game)
		}
	}
	return games, nil
}
