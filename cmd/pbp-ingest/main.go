package main

import (
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/tyler180/nfl-playbyplay-backend/internal/app/ingest"
)

func main() {
	lambda.Start(ingest.LambdaEntrypoint)
}
