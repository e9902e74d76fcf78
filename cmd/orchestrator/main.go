package main

import (
	"os"

	"vpaas/internal/app"
	"vpaas/internal/config"

	"github.com/wb-go/wbf/zlog"
)

func main() {
	zlog.Init()

	cfg, err := config.MustLoad()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("Failed to load config")
	}

	orchestratorApp, err := app.NewOrchestratorApp(cfg, &zlog.Logger)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("Failed to create orchestrator")
	}

	if err := orchestratorApp.Run(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("Orchestrator failed")
	}

	zlog.Logger.Info().Msg("Orchestrator exited successfully")
	os.Exit(0)
}
