package handler

import (
	"encoding/base64"
	"testing"

	"nfl-schedule-scraper/internal/schedule"
)

func TestRequestTeamShapesAgree(t *testing.T) {
	// The same team supplied via query parameters, a JSON body, or direct
	// top-level keys must resolve identically.
	want := schedule.Team{Slug: "dal", NameLong: "dallas-cowboys"}

	tests := []struct {
		name string
		req  Request
	}{
		{
			name: "query parameters",
			req: Request{
				QueryStringParameters: map[string]string{
					"team_slug":      "dal",
					"team_name_long": "dallas-cowboys",
				},
			},
		},
		{
			name: "multi-value query parameters",
			req: Request{
				MultiValueQueryStringParameters: map[string][]string{
					"team_slug":      {"dal"},
					"team_name_long": {"dallas-cowboys"},
				},
			},
		},
		{
			name: "path parameters",
			req: Request{
				PathParameters: map[string]string{
					"team_slug":      "dal",
					"team_name_long": "dallas-cowboys",
				},
			},
		},
		{
			name: "JSON body",
			req: Request{
				Body: `{"team_slug":"dal","team_name_long":"dallas-cowboys"}`,
			},
		},
		{
			name: "JSON body with camelCase keys",
			req: Request{
				Body: `{"teamSlug":"dal","teamNameLong":"dallas-cowboys"}`,
			},
		},
		{
			name: "base64-encoded JSON body",
			req: Request{
				Body:            base64.StdEncoding.EncodeToString([]byte(`{"team_slug":"dal","team_name_long":"dallas-cowboys"}`)),
				IsBase64Encoded: true,
			},
		},
		{
			name: "direct top-level keys",
			req: Request{
				TeamSlug:     "dal",
				TeamNameLong: "dallas-cowboys",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.req.Team(); got != want {
				t.Errorf("Team() = %+v, want %+v", got, want)
			}
		})
	}
}

func TestRequestTeamPrecedence(t *testing.T) {
	// Query beats path beats body beats direct keys.
	req := Request{
		QueryStringParameters: map[string]string{"team_slug": "que"},
		PathParameters:        map[string]string{"team_slug": "pat", "team_name_long": "path-team"},
		Body:                  `{"team_slug":"bod","team_name_long":"body-team"}`,
		TeamSlug:              "dir",
		TeamNameLong:          "direct-team",
	}

	got := req.Team()
	if got.Slug != "que" {
		t.Errorf("Slug = %q, want query value %q", got.Slug, "que")
	}
	if got.NameLong != "path-team" {
		t.Errorf("NameLong = %q, want path value %q", got.NameLong, "path-team")
	}
}

func TestRequestTeamDefaults(t *testing.T) {
	tests := []struct {
		name string
		req  Request
	}{
		{name: "empty request"},
		{
			name: "malformed JSON body is absorbed",
			req:  Request{Body: `{"team_slug": `},
		},
		{
			name: "body that is not an object is absorbed",
			req:  Request{Body: `"just a string"`},
		},
		{
			name: "invalid base64 body is absorbed",
			req:  Request{Body: "%%%not-base64%%%", IsBase64Encoded: true},
		},
		{
			name: "empty parameter values are ignored",
			req: Request{
				QueryStringParameters: map[string]string{"team_slug": "", "team_name_long": ""},
			},
		},
	}

	want := schedule.DefaultTeam()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.req.Team(); got != want {
				t.Errorf("Team() = %+v, want default %+v", got, want)
			}
		})
	}
}

func TestRequestTeamPartialIdentity(t *testing.T) {
	// A request carrying only one of the two fields gets the other from
	// the default team.
	req := Request{
		QueryStringParameters: map[string]string{"team_slug": "gb"},
	}

	got := req.Team()
	if got.Slug != "gb" {
		t.Errorf("Slug = %q, want %q", got.Slug, "gb")
	}
	if got.NameLong != schedule.DefaultNameLong {
		t.Errorf("NameLong = %q, want default %q", got.NameLong, schedule.DefaultNameLong)
	}
}

func TestRequestTeamCaseInsensitiveKeys(t *testing.T) {
	req := Request{
		QueryStringParameters: map[string]string{
			"Team_Slug":      "sea",
			"TEAM_NAME_LONG": "seattle-seahawks",
		},
	}

	got := req.Team()
	if got.Slug != "sea" || got.NameLong != "seattle-seahawks" {
		t.Errorf("Team() = %+v", got)
	}
}
