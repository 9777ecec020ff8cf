package main

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/ToddHoff/lambda-api/internal/api"
	"github.com/ToddHoff/lambda-api/internal/config"
	myHTTP "github.com/ToddHoff/lambda-api/internal/handler/http"
	"github.com/ToddHoff/lambda-api/internal/logger"
	"github.com/ToddHoff/lambda-api/internal/routes"
	"github.com/ToddHoff/lambda-api/internal/server"
	"github.com/ToddHoff/lambda-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// a missing .env is fine; the environment and flags still apply
	_ = godotenv.Load()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("lambda-api-server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("lambda-api-server", cfg.App.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	a, err := api.New(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating api")
	}

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	routes.New(*cfg, build, routes.NewVerifier(cfg.App), log).Register(a)
	for _, route := range a.Routes() {
		log.Debug().Str("route", route).Msg("route registered")
	}

	handler := myHTTP.NewHandler(a, cfg.Server, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
