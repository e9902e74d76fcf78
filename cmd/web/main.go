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

	webApp, err := app.NewWebApp(cfg, &zlog.Logger)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("Failed to create web")
	}

	if err := webApp.Run(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("Web failed")
	}

	zlog.Logger.Info().Msg("Web exited successfully")
	os.Exit(0)
}
