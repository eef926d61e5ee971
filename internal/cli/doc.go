// Package cli implements the command-line interface for the schedule
// scraper.
//
// The cli package provides the Cobra-based CLI: the root command scrapes a
// team's schedule once, writes it as JSON, and optionally prints it to
// stdout as text or JSON, and the serve subcommand runs the local HTTP
// server wrapping the same handlers used in the deployed functions.
package cli
