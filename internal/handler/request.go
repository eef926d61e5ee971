package handler

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"nfl-schedule-scraper/internal/logger"
	"nfl-schedule-scraper/internal/schedule"
)

// Request is the raw invocation payload. It mirrors the API Gateway proxy
// event shape and additionally accepts the two team keys at the top level
// for direct invocations.
type Request struct {
	QueryStringParameters           map[string]string   `json:"queryStringParameters"`
	MultiValueQueryStringParameters map[string][]string `json:"multiValueQueryStringParameters"`
	PathParameters                  map[string]string   `json:"pathParameters"`
	Body                            string              `json:"body"`
	IsBase64Encoded                 bool                `json:"isBase64Encoded"`

	TeamSlug     string `json:"team_slug"`
	TeamNameLong string `json:"team_name_long"`
}

// bodyParams is the accepted JSON body shape; both snake_case and camelCase
// keys are recognized.
type bodyParams struct {
	TeamSlug          string `json:"team_slug"`
	TeamSlugCamel     string `json:"teamSlug"`
	TeamNameLong      string `json:"team_name_long"`
	TeamNameLongCamel string `json:"teamNameLong"`
}

// Team resolves the request's team identity. Sources are consulted in
// precedence order: query parameters, then path parameters, then the JSON
// body, then direct top-level keys. Each field resolves independently;
// anything still unresolved falls back to the default team. This never
// fails: malformed input degrades to defaults.
func (r Request) Team() schedule.Team {
	var team schedule.Team

	fill := func(slug, nameLong string) {
		if team.Slug == "" && slug != "" {
			team.Slug = slug
		}
		if team.NameLong == "" && nameLong != "" {
			team.NameLong = nameLong
		}
	}

	fill(r.queryParam("team_slug"), r.queryParam("team_name_long"))
	fill(r.PathParameters["team_slug"], r.PathParameters["team_name_long"])

	if body := r.decodeBody(); body != nil {
		fill(firstNonEmpty(body.TeamSlug, body.TeamSlugCamel),
			firstNonEmpty(body.TeamNameLong, body.TeamNameLongCamel))
	}

	fill(r.TeamSlug, r.TeamNameLong)

	def := schedule.DefaultTeam()
	fill(def.Slug, def.NameLong)

	return team
}

// queryParam looks up key in the single-value and multi-value query
// parameter maps, case-insensitively.
func (r Request) queryParam(key string) string {
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
// encoding. Parsing is best-effort: a malformed body is debug-logged and
// treated as absent, never as a request failure.
func (r Request) decodeBody() *bodyParams {
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

	var body bodyParams
	if err := json.Unmarshal(raw, &body); err != nil {
		logger.Debug("Unable to parse request body", logger.Fields{"error": err.Error()})
		return nil
	}
	return &body
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
