package main

import (
	"context"
	"os"

	"github.com/yigit/roadmap/internal/pkg/logger"
	"github.com/yigit/roadmap/internal/server"
)

// @title Course Roadmap API
// @version 1.0
// @description Course catalog, prerequisite roadmaps and term-by-term plans toward a target course

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	ctx := context.Background()

	srv, err := server.NewServer(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("Server stopped with error")
		os.Exit(1)
	}
	logger.Info().Msg("Roadmap API stopped")
}
