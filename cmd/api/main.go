package main

import (
	"github.com/enrolly/enrolly/internal/pkg/logger"
	"github.com/enrolly/enrolly/internal/server"
)

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize server")
	}

	if err := srv.Run(); err != nil {
		logger.Fatal().Err(err).Msg("Server stopped with an error")
	}
}
