package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nfl-schedule-scraper/internal/handler"
	"nfl-schedule-scraper/internal/schedule"
	"nfl-schedule-scraper/internal/scraper"
	"nfl-schedule-scraper/internal/server"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagTeamSlug     string
	flagTeamNameLong string
	flagOutput       string
	flagFormat       string
	flagPrint        bool
	flagHost         string
	flagPort         int
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule-scraper",
		Short: "Scrape upcoming games from an ESPN NFL team schedule page",
		Long: `Fetches an NFL team's upcoming games from its ESPN schedule page and
writes them as normalized JSON. Defaults to the Minnesota Vikings.`,
		RunE: runScrape,
	}

	cmd.Flags().StringVar(&flagTeamSlug, "team-slug", schedule.DefaultSlug,
		"Team slug used in the ESPN URL (e.g. 'min')")
	cmd.Flags().StringVar(&flagTeamNameLong, "team-name-long", schedule.DefaultNameLong,
		"Long team name used in the ESPN URL (e.g. 'minnesota-vikings')")
	cmd.Flags().StringVar(&flagOutput, "output", "schedule.json",
		"Path to write the extracted schedule JSON")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format for --print: text or json")
	cmd.Flags().BoolVar(&flagPrint, "print", false, "Print the formatted schedule to stdout")

	cmd.AddCommand(newServeCmd())

	return cmd
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a local HTTP server exposing the schedule and scores handlers",
		RunE:  runServe,
	}
	cmd.Flags().StringVar(&flagHost, "host", "127.0.0.1", "Host to bind the server to")
	cmd.Flags().IntVar(&flagPort, "port", 5000, "Port to bind the server to")
	return cmd
}

// runScrape is the one-shot scrape logic
func runScrape(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(flagFormat)
	if err != nil {
		return err
	}

	team := schedule.Team{Slug: flagTeamSlug, NameLong: flagTeamNameLong}

	result, err := scraper.New().Scrape(cmd.Context(), team)
	if err != nil {
		return fmt.Errorf("scraping schedule: %w", err)
	}

	if flagPrint {
		if err := WriteOutput(os.Stdout, result, format); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	data, err := json.MarshalIndent(result.Games, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding schedule: %w", err)
	}
	if err := os.WriteFile(flagOutput, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", flagOutput, err)
	}

	fmt.Fprintf(os.Stdout, "Saved %d upcoming game(s) to %s\n", result.Count, flagOutput)
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := fmt.Sprintf("%s:%d", flagHost, flagPort)
	return server.New(handler.New(), handler.NewScores()).ListenAndServe(addr)
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
	os.Exit(ExitSuccess)
}
