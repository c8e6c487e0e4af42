// @title Shona Dictionary API
// @version 1.0
// @description Backend for the Shona dictionary: word search, community suggestions, AI-assisted translation and daily learning challenges.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"shona_dict_backend/internal/app"
	"shona_dict_backend/internal/config"
	"shona_dict_backend/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migrations and exit")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("Migration complete, exiting")
		return
	}

	application.Run()
}
