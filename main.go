// @title CareerValid AI API
// @version 1.0
// @description Backend server for the CareerValid AI career-assistance platform.

// @host localhost:8080
// @BasePath /api

package main

import (
	"flag"
	"log"

	"github.com/madhuri-perumalla/CareerValidAI/internal/app"
	"github.com/madhuri-perumalla/CareerValidAI/internal/config"
	"github.com/madhuri-perumalla/CareerValidAI/pkg/configwatcher"
	"github.com/madhuri-perumalla/CareerValidAI/pkg/logger"
)

func main() {
	configPath := flag.String("config", "configs", "directory containing config.yaml")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	go configwatcher.WatchConfig(*configPath+"/config.yaml", func(newCfg *config.Config) {
		application.ApplyConfig(newCfg)
	})

	application.Run()
}
