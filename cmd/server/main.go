package main

import (
	"log"

	"github.com/runlog/runlog-backend-go/internal/activity"
	"github.com/runlog/runlog-backend-go/internal/api"
	"github.com/runlog/runlog-backend-go/internal/config"
	"github.com/runlog/runlog-backend-go/internal/service"
)

func main() {
	cfg := config.Load()

	client := activity.NewHTTPClient(cfg.ActivityServiceURL, cfg.RequestTimeout)
	normalizer := activity.NewNormalizer(cfg.Units)
	fetcher := activity.NewFetcher(client, normalizer)
	runService := service.NewRunService(fetcher)

	router := api.SetupRouter(cfg, runService)

	log.Printf("Server starting on port %s (units=%s, activity service=%s)",
		cfg.Port, cfg.Units, cfg.ActivityServiceURL)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
