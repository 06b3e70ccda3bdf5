package main

import (
	"fmt"

	"github.com/amirasaad/convobot/pkg/app"
	"github.com/amirasaad/convobot/pkg/config"
	"github.com/amirasaad/convobot/webapi"
	log "github.com/charmbracelet/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	logger := app.SetupLogger(cfg.Log)

	deps, err := app.BuildDeps(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	a := app.New(deps, cfg)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting bot transport", "env", cfg.Env, "addr", addr)

	srv := webapi.NewApp(a.Engine, deps.Recorder, cfg, logger)
	return srv.Listen(addr)
}
