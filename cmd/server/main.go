package main

import (
	"log/slog"
	"os"

	"github.com/Youssef-Elmorali/blood-project-frontend/internal/config"
	"github.com/Youssef-Elmorali/blood-project-frontend/internal/logging"
	"github.com/Youssef-Elmorali/blood-project-frontend/internal/server"
)

func main() {
	logging.New() // Initialize the structured logger
	cfg := config.New()

	// Create a new server instance.
	s, err := server.New(server.Dependencies{Config: cfg})
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	// Register all application routes.
	s.RegisterRoutes()

	// Start the server.
	if err := s.Start(); err != nil {
		slog.Error("Server stopped with an error", "error", err)
		os.Exit(1)
	}
}
