package main

import (
	"github.com/chandu-aravapalli/BetterMind/internal/config"
	"github.com/chandu-aravapalli/BetterMind/internal/database"
	logger "github.com/chandu-aravapalli/BetterMind/internal/logging"
	"github.com/chandu-aravapalli/BetterMind/internal/router"

	"go.uber.org/zap"
)

func main() {
	// Initialize Logger
	log, err := logger.Init(".")
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	// Load configuration (file, env vars, hot reload)
	if err := config.Init(".", log); err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Initialize Database
	database.Init(log)

	// Setup router, passing the logger to it
	r := router.Setup(log)

	// Start the Gin server
	port := ":" + config.Conf.Server.Port
	log.Info("Server listening on http://localhost" + port)
	if err := r.Run(port); err != nil {
		log.Fatal("Failed to run Gin server", zap.Error(err))
	}
}
