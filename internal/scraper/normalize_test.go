package scraper

import (
	"testing"

	"nfl-schedule-scraper/internal/schedule"
)

// standardLayout mirrors the ESPN upcoming-games table:
// WK, DATE, OPPONENT, TIME, TV.
var standardLayout = columnLayout{week: 0, date: 1, opponent: 2, time: 3, tv: 4}

func textRow(texts ...string) Row {
	row := make(Row, 0, len(texts))
	for _, text := range texts {
		row = append(row, Cell{Text: text})
	}
	return row
}

func TestNormalizeRow(t *testing.T) {
	tests := []struct {
		name string
		row  Row
		want schedule.Game
	}{
		{
			name: "away game",
			row: Row{
				{Text: "13"},
				{Text: "Sun, Nov 30"},
				{Text: "@Seattle"},
				{Text: "4:05 PM", Href: "/nfl/game/_/gameId/401772896/vikings-seahawks"},
				{Text: "FOX"},
			},
			want: schedule.Game{
				Week:    "13",
				Date:    "Sun, Nov 30",
				MatchUp: "Minnesota @ Seattle",
				Time:    "4:05 PM EST",
				GameID:  "401772896",
				TV:      "FOX",
			},
		},
		{
			name: "home game",
			row: Row{
				{Text: "14"},
				{Text: "Sun, Dec 7"},
				{Text: "vsWashington"},
				{Text: "1:00 PM", Href: "/nfl/game/_/gameId/401772910/commanders-vikings"},
				{Text: "CBS"},
			},
			want: schedule.Game{
				Week:    "14",
				Date:    "Sun, Dec 7",
				MatchUp: "Minnesota VS Washington",
				Time:    "1:00 PM EST",
				GameID:  "401772910",
				TV:      "CBS",
			},
		},
		{
			name: "TBD time keeps no timezone suffix and has no game id",
			row:  textRow("16", "Sat, Dec 20", "@Green Bay", "TBD", ""),
			want: schedule.Game{
				Week:    "16",
				Date:    "Sat, Dec 20",
				MatchUp: "Minnesota @ Green Bay",
				Time:    "TBD",
				GameID:  "",
				TV:      "",
			},
		},
		{
			name: "missing trailing cells pad with empty strings",
			row:  textRow("17", "Sun, Dec 28", "vsDetroit"),
			want: schedule.Game{
				Week:    "17",
				Date:    "Sun, Dec 28",
				MatchUp: "Minnesota VS Detroit",
				Time:    "",
				GameID:  "",
				TV:      "",
			},
		},
		{
			name: "extra cells are ignored",
			row:  textRow("18", "Sun, Jan 4", "@Chicago", "1:00 PM", "FOX", "Tickets", "extra"),
			want: schedule.Game{
				Week:    "18",
				Date:    "Sun, Jan 4",
				MatchUp: "Minnesota @ Chicago",
				Time:    "1:00 PM EST",
				GameID:  "",
				TV:      "FOX",
			},
		},
		{
			name: "internal whitespace collapses",
			row:  textRow("16", "Sat,   Dec 20", "@Green \n Bay", "8:15  PM", "ESPN"),
			want: schedule.Game{
				Week:    "16",
				Date:    "Sat, Dec 20",
				MatchUp: "Minnesota @ Green Bay",
				Time:    "8:15 PM EST",
				GameID:  "",
				TV:      "ESPN",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := normalizeRow(standardLayout, tt.row, "Minnesota")
			if !ok {
				t.Fatal("expected row to produce a game")
			}
			if got != tt.want {
				t.Errorf("normalizeRow() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNormalizeRowSkips(t *testing.T) {
	tests := []struct {
		name string
		row  Row
	}{
		{
			name: "bye week row",
			row:  textRow("15", "BYE WEEK"),
		},
		{
			name: "bye marker in full-width row",
			row:  textRow("15", "BYE", "", "", ""),
		},
		{
			name: "repeated header row",
			row:  textRow("WK", "DATE", "OPPONENT", "TIME (ET)", "TV"),
		},
		{
			name: "played game with win result",
			row:  textRow("1", "Sun, Sep 7", "@Chicago", "W 27-24", ""),
		},
		{
			name: "played game with loss result",
			row:  textRow("2", "Sun, Sep 14", "vsAtlanta", "L 6-22", ""),
		},
		{
			name: "played game with tie result",
			row:  textRow("3", "Sun, Sep 21", "vsGreen Bay", "T 20-20", ""),
		},
		{
			name: "divider row with too few cells",
			row:  textRow("Preseason"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := normalizeRow(standardLayout, tt.row, "Minnesota"); ok {
				t.Error("expected row to be skipped")
			}
		})
	}
}

func TestMatchUp(t *testing.T) {
	tests := []struct {
		teamName string
		opponent string
		expected string
	}{
		{"Minnesota", "@Seattle", "Minnesota @ Seattle"},
		{"Minnesota", "vsWashington", "Minnesota VS Washington"},
		{"Minnesota", "vs Washington", "Minnesota VS Washington"},
		{"Minnesota", "Seattle", "Minnesota Seattle"},
		{"", "@Seattle", "@ Seattle"},
	}

	for _, tt := range tests {
		t.Run(tt.opponent, func(t *testing.T) {
			if got := matchUp(tt.teamName, tt.opponent); got != tt.expected {
				t.Errorf("matchUp(%q, %q) = %q, want %q", tt.teamName, tt.opponent, got, tt.expected)
			}
		})
	}
}

func TestIsPlayedResult(t *testing.T) {
	tests := []struct {
		text     string
		expected bool
	}{
		{"W 27-24", true},
		{"L 6-22", true},
		{"T 20-20", true},
		{"TBD", false},
		{"tbd", false},
		{"4:05 PM", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := isPlayedResult(tt.text); got != tt.expected {
				t.Errorf("isPlayedResult(%q) = %v, want %v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"  FOX  ", "FOX"},
		{"Green\n   Bay", "Green Bay"},
		{"Sun,\tDec 7", "Sun, Dec 7"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := collapseWhitespace(tt.input); got != tt.expected {
			t.Errorf("collapseWhitespace(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
