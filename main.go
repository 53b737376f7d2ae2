package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"recipe-shelf/config"
	"recipe-shelf/global"
	"recipe-shelf/initialize"
	"recipe-shelf/server"
)

func main() {
	var (
		configPath = flag.String("config", "config.yaml", "Path to config file")
		host       = flag.String("host", "", "Override HTTP host")
		port       = flag.Int("port", 0, "Override HTTP port")
	)
	flag.Parse()

	app, err := initialize.Build(*configPath)
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("build app")
	}
	if *host != "" {
		app.Cfg.HTTP.Host = *host
	}
	if *port != 0 {
		app.Cfg.HTTP.Port = *port
	}

	if err := config.Watch(*configPath, func(cfg *config.Config) {
		initialize.ApplyLogLevel(cfg.LogLevel)
		global.Logger.Info().Str("level", cfg.LogLevel).Msg("config reloaded")
	}); err != nil {
		global.Logger.Warn().Err(err).Msg("config watch unavailable")
	}

	srv := server.StartHTTPServer(app.Cfg.HTTP.Host, app.Cfg.HTTP.Port, app.Router)
	global.Logger.Info().Str("host", app.Cfg.HTTP.Host).Int("port", app.Cfg.HTTP.Port).Msg("listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if err := srv.Shutdown(context.Background()); err != nil {
		global.Logger.Error().Err(err).Msg("shutdown")
	}
}
