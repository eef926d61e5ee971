package scraper

import (
	"regexp"
	"strings"

	"nfl-schedule-scraper/internal/schedule"
)

var (
	whitespaceRE = regexp.MustCompile(`\s+`)
	gameIDRE     = regexp.MustCompile(`/gameId/(\d+)`)
)

// minMeaningfulCells is the cheap structural-row test: bye-week rows and
// section dividers carry only a week number and a label.
const minMeaningfulCells = 3

// normalizeRow maps one raw row onto a Game. The second return value is
// false when the row is structural (repeated header, bye week, divider) or
// records an already-played game; no record is emitted for those rows.
func normalizeRow(layout columnLayout, row Row, teamName string) (schedule.Game, bool) {
	var game schedule.Game

	if len(row) < minMeaningfulCells {
		return game, false
	}
	for _, cell := range row {
		if strings.EqualFold(cell.Text, "BYE WEEK") || strings.EqualFold(cell.Text, "BYE") {
			return game, false
		}
	}

	week := cellText(row, layout.week)
	if upper := strings.ToUpper(week); upper == "WK" || upper == "WEEK" {
		return game, false
	}

	timeText := cellText(row, layout.time)
	if isPlayedResult(timeText) {
		return game, false
	}

	game.Week = week
	game.Date = cellText(row, layout.date)

	if opponent := cellText(row, layout.opponent); opponent != "" {
		game.MatchUp = matchUp(teamName, opponent)
	}

	switch {
	case timeText == "":
	case strings.EqualFold(timeText, "TBD"):
		game.Time = timeText
	default:
		game.Time = timeText + " EST"
	}

	if layout.time >= 0 && layout.time < len(row) {
		if m := gameIDRE.FindStringSubmatch(row[layout.time].Href); m != nil {
			game.GameID = m[1]
		}
	}

	game.TV = cellText(row, layout.tv)

	return game, true
}

// cellText returns the collapsed text of the cell at idx, or "" when the
// column is absent from the layout or the row is too short.
func cellText(row Row, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return collapseWhitespace(row[idx].Text)
}

// matchUp joins the team's display name with the formatted opponent text,
// e.g. "Minnesota @ Seattle" or "Minnesota VS Washington".
func matchUp(teamName, opponent string) string {
	switch {
	case strings.HasPrefix(opponent, "@"):
		opponent = "@ " + strings.TrimSpace(opponent[1:])
	case strings.HasPrefix(strings.ToLower(opponent), "vs"):
		opponent = "VS " + strings.TrimSpace(opponent[2:])
	}
	if teamName == "" {
		return opponent
	}
	return teamName + " " + opponent
}

// isPlayedResult reports whether a time cell records a final result
// (W 24-10, L 3-17, T 20-20) rather than a kickoff time. "TBD" is a valid
// time, not a result.
func isPlayedResult(text string) bool {
	upper := strings.ToUpper(text)
	if upper == "" || upper == "TBD" {
		return false
	}
	return strings.HasPrefix(upper, "W") ||
		strings.HasPrefix(upper, "L") ||
		strings.HasPrefix(upper, "T")
}

// collapseWhitespace trims surrounding whitespace and collapses internal
// runs of whitespace to a single space.
func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(s, " "))
}
