package main

import (
	"github.com/joho/godotenv"

	"github.com/ToddHoff/lambda-api/internal/cli"
	"github.com/ToddHoff/lambda-api/models"
)

var (
	buildVersion = "dev"
	buildDate    string
	buildCommit  string
)

func main() {
	_ = godotenv.Load()

	cli.Execute(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}
