package main

import (
	"fmt"

	"github.com/jaekyeom/go-bulletin-board/internal/adapter"
	"github.com/jaekyeom/go-bulletin-board/internal/client"
	"github.com/jaekyeom/go-bulletin-board/internal/config"
	"github.com/jaekyeom/go-bulletin-board/internal/logger"
	"github.com/jaekyeom/go-bulletin-board/internal/store"
	"github.com/jaekyeom/go-bulletin-board/internal/tui"
	"github.com/jaekyeom/go-bulletin-board/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("board-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	buildInfo := models.AppBuildInfo{
		Version: buildVersion,
		Date:    buildDate,
		Commit:  buildCommit,
	}

	ui, err := tui.New(serverAdapter, localStorage.Credentials, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(cfg, serverAdapter, localStorage, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
