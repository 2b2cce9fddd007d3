// Command mockapi runs the backend the portal client talks to: a small
// Echo server with token-checked directory endpoints. It shares the token
// secret with the client so minted credentials validate.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/webportal/portal-client/internal/api"
	"github.com/webportal/portal-client/internal/infrastructure/config"
	"github.com/webportal/portal-client/internal/infrastructure/directory"
	"github.com/webportal/portal-client/pkg/logger"
)

func main() {
	cfg, err := config.Load(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, "mockapi:", err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	dir := directory.NewMemory(directory.SeedUsers())
	e := api.NewRouter(dir, cfg.TokenSecret, log)

	log.Info().Str("port", cfg.Port).Msg("mock backend listening")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
