package main

import (
	"fmt"

	"github.com/storegate/gateway/internal/config"
	handlerHTTP "github.com/storegate/gateway/internal/handler/http"
	"github.com/storegate/gateway/internal/logger"
	"github.com/storegate/gateway/internal/server"
	"github.com/storegate/gateway/internal/service"
	"github.com/storegate/gateway/internal/upstream"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("storegate-gateway")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	provider, err := upstream.NewHTTPProvider(cfg.Upstream, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating upstream provider")
	}

	services := service.NewServices(provider, provider, cfg.App, service.PrometheusObserver{}, log)

	handler := handlerHTTP.NewHandler(services, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
