package main

import (
	"context"
	"fmt"

	"github.com/CaioMelo204/A4PM-Challenge-TechLead/internal/config"
	"github.com/CaioMelo204/A4PM-Challenge-TechLead/internal/crypto"
	myHTTP "github.com/CaioMelo204/A4PM-Challenge-TechLead/internal/handler/http"
	"github.com/CaioMelo204/A4PM-Challenge-TechLead/internal/logger"
	"github.com/CaioMelo204/A4PM-Challenge-TechLead/internal/server"
	"github.com/CaioMelo204/A4PM-Challenge-TechLead/internal/service"
	"github.com/CaioMelo204/A4PM-Challenge-TechLead/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("recipes-api")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	repositories := store.NewRepositories(db, log)
	services := service.NewServices(repositories, crypto.NewPasswordHasher(), *cfg, log)
	handler := myHTTP.NewHandler(services, cfg.App, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
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
