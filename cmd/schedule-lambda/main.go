package main

import (
	"github.com/aws/aws-lambda-go/lambda"

	"nfl-schedule-scraper/internal/handler"
	"nfl-schedule-scraper/internal/logger"
)

func main() {
	logger.Setup()
	lambda.Start(handler.New().Handle)
}
