package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"

	"nfl-schedule-scraper/internal/logger"
	"nfl-schedule-scraper/internal/schedule"
	"nfl-schedule-scraper/internal/scraper"
)

// ErrorEnvelope is the uniform failure response body. Every field is always
// populated, even when empty, so consumers can rely on the shape.
type ErrorEnvelope struct {
	Message      string `json:"message"`
	Detail       string `json:"detail"`
	URL          string `json:"url"`
	TeamSlug     string `json:"team_slug"`
	TeamNameLong string `json:"team_name_long"`
}

// ScheduleScraper is the pipeline the handler drives; satisfied by
// *scraper.Scraper.
type ScheduleScraper interface {
	Scrape(ctx context.Context, team schedule.Team) (*schedule.Result, error)
}

// Handler runs the scrape pipeline for one invocation and renders the
// response envelope.
type Handler struct {
	scraper ScheduleScraper
}

// New creates a Handler backed by the real scraper.
func New() *Handler {
	return &Handler{scraper: scraper.New()}
}

// NewWithScraper creates a Handler with a custom pipeline.
func NewWithScraper(s ScheduleScraper) *Handler {
	return &Handler{scraper: s}
}

// Handle adapts the raw invocation payload, runs the scrape pipeline, and
// renders the response. Every failure, including a panic anywhere in the
// pipeline, becomes the 502 error envelope.
func (h *Handler) Handle(ctx context.Context, req Request) (resp events.APIGatewayProxyResponse, err error) {
	team := req.Team()
	url := team.URL()

	logger.IncrCounter("schedule.requests")
	logger.Debug("Handling schedule request", logger.Fields{
		"team_slug":      team.Slug,
		"team_name_long": team.NameLong,
		"url":            url,
	})

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Recovered from panic in pipeline", logger.Fields{"url": url}, fmt.Errorf("%v", r))
			logger.IncrCounter("schedule.errors")
			resp = h.failure(team, url, fmt.Sprintf("internal error: %v", r))
			err = nil
		}
	}()

	start := time.Now()
	result, scrapeErr := h.scraper.Scrape(ctx, team)
	logger.RecordTiming("schedule.scrape", time.Since(start))

	if scrapeErr != nil {
		logger.Error("Failed to scrape schedule", logger.Fields{
			"team_slug": team.Slug,
			"url":       url,
		}, scrapeErr)
		logger.IncrCounter("schedule.errors")
		return h.failure(team, url, scrapeErr.Error()), nil
	}

	logger.SetGauge("schedule.games", float64(result.Count))
	return jsonResponse(http.StatusOK, result), nil
}

// failure renders the uniform 502 error envelope.
func (h *Handler) failure(team schedule.Team, url, detail string) events.APIGatewayProxyResponse {
	return jsonResponse(http.StatusBadGateway, ErrorEnvelope{
		Message:      "Unable to retrieve schedule data from ESPN.",
		Detail:       detail,
		URL:          url,
		TeamSlug:     team.Slug,
		TeamNameLong: team.NameLong,
	})
}

// jsonResponse serializes payload into an API Gateway response.
func jsonResponse(status int, payload interface{}) events.APIGatewayProxyResponse {
	body, err := json.Marshal(payload)
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusBadGateway,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"message":"Unable to serialize response.","detail":"","url":"","team_slug":"","team_name_long":""}`,
		}
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}
}
