package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/amanshaikhx1/Auto-Dashboard/adapters/coerce"
	"github.com/amanshaikhx1/Auto-Dashboard/app"
	"github.com/amanshaikhx1/Auto-Dashboard/domain/catalog"
	"github.com/amanshaikhx1/Auto-Dashboard/internal"
	"github.com/amanshaikhx1/Auto-Dashboard/internal/config"
	"github.com/amanshaikhx1/Auto-Dashboard/ui"
)

func main() {
	// Load environment variables from .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.NewDefaultLogger()

	// A broken catalog is the one unrecoverable startup failure
	registry, err := catalog.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to build business field catalog: %v", err)
	}
	logger.Info("catalog loaded: %d fields in %d categories", registry.Len(), len(catalog.Categories))

	pipeline := app.NewPipeline(registry, coerce.NewDefault(), app.Options{
		SampleSize:      cfg.Pipeline.SampleSize,
		AcceptThreshold: cfg.Pipeline.AcceptThreshold,
		MaxUploadBytes:  cfg.Server.MaxUploadBytes,
	}, logger)

	server := ui.NewServer(pipeline, registry, cfg.Server, logger)
	if err := server.Run(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
