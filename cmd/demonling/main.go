package main

import (
	"os"

	"github.com/gin-gonic/gin"

	"github.com/jason-napier/demonling/internal/api"
	"github.com/jason-napier/demonling/internal/config"
	"github.com/jason-napier/demonling/internal/constants"
	"github.com/jason-napier/demonling/internal/logging"
	"github.com/jason-napier/demonling/internal/service"
	"github.com/jason-napier/demonling/internal/storage"
)

func main() {
	// Game data ships built in; DEMONLING_CONFIG points at a YAML file to
	// run a custom campaign.
	data := config.Default()
	if configPath := os.Getenv(constants.EnvConfigPath); configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			logging.Fatal("Missing or invalid game data file", err, logging.Fields{
				constants.LogFieldConfigPath: configPath,
			})
		}
		data = loaded
		logging.Info("Loaded game data", logging.Fields{constants.LogFieldConfigPath: configPath})
	}

	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = constants.DefaultDBPath
	}
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}

	repo := storage.NewSQLiteRepository(db)
	svc := service.New(repo, data)
	handler := api.NewGameHandler(svc)

	router := gin.Default()
	handler.RegisterRoutes(router)

	addr := os.Getenv(constants.EnvAddr)
	if addr == "" {
		addr = constants.DefaultAddr
	}
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
