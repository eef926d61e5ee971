package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"nfl-schedule-scraper/internal/schedule"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// parseFormat validates a --format flag value, case-insensitively.
func parseFormat(value string) (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(value))
	if format != FormatText && format != FormatJSON {
		return "", fmt.Errorf("invalid format: %s (must be 'text' or 'json')", value)
	}
	return format, nil
}

// WriteOutput writes the result to w in the specified format.
func WriteOutput(w io.Writer, result *schedule.Result, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		printSchedule(w, result)
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the full result envelope as indented JSON
func writeJSON(w io.Writer, result *schedule.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// printSchedule writes a human-readable schedule listing.
func printSchedule(w io.Writer, result *schedule.Result) {
	fmt.Fprintf(w, "Schedule for %s (%s)\n", result.TeamNameLong, result.SourceURL)

	if result.Count == 0 {
		fmt.Fprintln(w, "No upcoming games found.")
		return
	}

	for _, game := range result.Games {
		fmt.Fprintf(w, "\nWeek %s\n", orNA(game.Week))
		fmt.Fprintf(w, "  Date:     %s\n", orNA(game.Date))
		fmt.Fprintf(w, "  Match-up: %s\n", orNA(game.MatchUp))
		fmt.Fprintf(w, "  Time:     %s\n", orNA(game.Time))
		fmt.Fprintf(w, "  TV:       %s\n", orNA(game.TV))
		fmt.Fprintf(w, "  Game ID:  %s\n", orNA(game.GameID))
	}
	fmt.Fprintf(w, "\nTotal: %d upcoming game(s)\n", result.Count)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
