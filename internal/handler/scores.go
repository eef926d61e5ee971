package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"

	"nfl-schedule-scraper/internal/logger"
	"nfl-schedule-scraper/internal/scores"
)

// ScoresRequest is the raw invocation payload for the game-scores
// endpoint. Like Request, it mirrors the API Gateway proxy event shape and
// additionally accepts the two identifying keys at the top level for
// direct invocations.
type ScoresRequest struct {
	QueryStringParameters           map[string]string   `json:"queryStringParameters"`
	MultiValueQueryStringParameters map[string][]string `json:"multiValueQueryStringParameters"`
	PathParameters                  map[string]string   `json:"pathParameters"`
	Body                            string              `json:"body"`
	IsBase64Encoded                 bool                `json:"isBase64Encoded"`

	Sport  string `json:"sport"`
	GameID string `json:"gameId"`
}

// scoresBodyParams is the accepted JSON body shape; both camelCase and
// snake_case game id keys are recognized.
type scoresBodyParams struct {
	Sport       string `json:"sport"`
	GameID      string `json:"gameId"`
	GameIDSnake string `json:"game_id"`
}

// Params resolves the sport and game id. Sources are consulted in the same
// precedence order as the schedule endpoint: query parameters, then path
// parameters, then the JSON body, then direct top-level keys. Unlike team
// identity there is no sensible default game, so unresolved values stay
// empty and the handler rejects the request.
func (r ScoresRequest) Params() (sport, gameID string) {
	fill := func(s, id string) {
		if sport == "" && s != "" {
			sport = s
		}
		if gameID == "" && id != "" {
			gameID = id
		}
	}

	fill(r.queryParam("sport"), firstNonEmpty(r.queryParam("gameid"), r.queryParam("game_id")))
	fill(r.PathParameters["sport"], firstNonEmpty(r.PathParameters["gameid"], r.PathParameters["game_id"]))

	if body := r.decodeBody(); body != nil {
		fill(body.Sport, firstNonEmpty(body.GameID, body.GameIDSnake))
	}

	fill(r.Sport, r.GameID)

	return sport, gameID
}

func (r ScoresRequest) queryParam(key string) string {
	for k, v := range r.QueryStringParameters {
		if strings.EqualFold(k, key) && v != "" {
			return v
		}
	}
	for k, vs := range r.MultiValueQueryStringParameters {
		if strings.EqualFold(k, key) && len(vs) > 0 && vs[0] != "" {
			return vs[0]
		}
	}
	return ""
}

// decodeBody parses the JSON request body, transparently handling base64
// encoding. Best-effort like the schedule endpoint's body parsing.
func (r ScoresRequest) decodeBody() *scoresBodyParams {
	if strings.TrimSpace(r.Body) == "" {
		return nil
	}

	raw := []byte(r.Body)
	if r.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(r.Body)
		if err != nil {
			logger.Debug("Unable to base64-decode request body", logger.Fields{"error": err.Error()})
			return nil
		}
		raw = decoded
	}

	var body scoresBodyParams
	if err := json.Unmarshal(raw, &body); err != nil {
		logger.Debug("Unable to parse request body", logger.Fields{"error": err.Error()})
		return nil
	}
	return &body
}

// GameScoresScraper is the pipeline the scores handler drives; satisfied
// by *scores.Scraper.
type GameScoresScraper interface {
	Scrape(ctx context.Context, sport, gameID string) (*scores.Result, error)
}

// ScoresHandler runs the game-scores pipeline for one invocation.
type ScoresHandler struct {
	scraper GameScoresScraper
}

// NewScores creates a ScoresHandler backed by the real scraper.
func NewScores() *ScoresHandler {
	return &ScoresHandler{scraper: scores.New()}
}

// NewScoresWithScraper creates a ScoresHandler with a custom pipeline.
func NewScoresWithScraper(s GameScoresScraper) *ScoresHandler {
	return &ScoresHandler{scraper: s}
}

// scoresResponse is the success body of the scores endpoint.
type scoresResponse struct {
	Sport     string         `json:"sport"`
	GameID    string         `json:"gameId"`
	SourceURL string         `json:"sourceUrl"`
	Data      *scores.Result `json:"data"`
}

// ScoresErrorEnvelope is the uniform failure body of the scores endpoint.
type ScoresErrorEnvelope struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
	URL     string `json:"url"`
}

// Handle resolves the sport and game id, runs the scores pipeline, and
// renders the response. A request missing either parameter is a 400; every
// pipeline failure, including a panic, becomes the 502 error envelope.
func (h *ScoresHandler) Handle(ctx context.Context, req ScoresRequest) (resp events.APIGatewayProxyResponse, err error) {
	sport, gameID := req.Params()
	if sport == "" || gameID == "" {
		return jsonResponse(http.StatusBadRequest, map[string]interface{}{
			"message": "Missing required parameters.",
			"required": map[string]string{
				"sport":  "e.g. nfl",
				"gameId": "e.g. 401772834",
			},
		}), nil
	}

	url := scores.GameURL(sport, gameID)

	logger.IncrCounter("scores.requests")
	logger.Debug("Handling scores request", logger.Fields{
		"sport":   sport,
		"game_id": gameID,
		"url":     url,
	})

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Recovered from panic in pipeline", logger.Fields{"url": url}, fmt.Errorf("%v", r))
			logger.IncrCounter("scores.errors")
			resp = h.failure(url, fmt.Sprintf("internal error: %v", r))
			err = nil
		}
	}()

	start := time.Now()
	result, scrapeErr := h.scraper.Scrape(ctx, sport, gameID)
	logger.RecordTiming("scores.scrape", time.Since(start))

	if scrapeErr != nil {
		logger.Error("Failed to scrape game scores", logger.Fields{
			"sport":   sport,
			"game_id": gameID,
			"url":     url,
		}, scrapeErr)
		logger.IncrCounter("scores.errors")
		return h.failure(url, scrapeErr.Error()), nil
	}

	return jsonResponse(http.StatusOK, scoresResponse{
		Sport:     sport,
		GameID:    gameID,
		SourceURL: url,
		Data:      result,
	}), nil
}

// failure renders the uniform 502 error envelope.
func (h *ScoresHandler) failure(url, detail string) events.APIGatewayProxyResponse {
	return jsonResponse(http.StatusBadGateway, ScoresErrorEnvelope{
		Message: "Unable to retrieve game data from ESPN.",
		Detail:  detail,
		URL:     url,
	})
}
