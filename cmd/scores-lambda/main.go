// Command scores-lambda is the AWS Lambda entry point for the game-scores
// endpoint.
package main

import (
	"github.com/aws/aws-lambda-go/lambda"

	"nfl-schedule-scraper/internal/handler"
	"nfl-schedule-scraper/internal/logger"
)

func main() {
	logger.Setup()
	lambda.Start(handler.NewScores().Handle)
}
