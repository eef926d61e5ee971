package main

import (
	"nfl-schedule-scraper/internal/cli"
	"nfl-schedule-scraper/internal/logger"
)

func main() {
	logger.Setup()
	cli.Execute()
}
