package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"invotab/internal/config"
	"invotab/internal/handler"
	"invotab/internal/imaging"
	"invotab/internal/model"
	"invotab/internal/model/claude"
	"invotab/internal/model/gemini"
	"invotab/internal/model/openai"
	"invotab/internal/port"
	"invotab/internal/reconcile"
	"invotab/internal/router"
	"invotab/internal/service"
	"invotab/internal/spreadsheet"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func registerProviders() {
	model.RegisterProvider("gemini", func(cfg *config.ModelProviderConfig) (port.ModelClient, error) {
		return gemini.NewClient(cfg), nil
	})
	model.RegisterProvider("claude", func(cfg *config.ModelProviderConfig) (port.ModelClient, error) {
		return claude.NewClient(cfg), nil
	})
	model.RegisterProvider("openai", func(cfg *config.ModelProviderConfig) (port.ModelClient, error) {
		return openai.NewClient(cfg), nil
	})
}

// buildModelClient assembles the provider chain from config. A single
// configured provider is used directly; more than one gets the fallback
// wrapper.
func buildModelClient(cfg *config.ModelConfig) (port.ModelClient, error) {
	var clients []port.ModelClient
	var names []string

	for _, pc := range []*config.ModelProviderConfig{
		cfg.PrimaryConfig(),
		cfg.SecondaryConfig(),
		cfg.TertiaryConfig(),
	} {
		if pc == nil {
			continue
		}
		client, err := model.NewClient(pc)
		if err != nil {
			return nil, fmt.Errorf("initializing %s client: %w", pc.Provider, err)
		}
		clients = append(clients, client)
		names = append(names, pc.Provider)
	}

	if len(clients) == 0 {
		return nil, fmt.Errorf("no model providers configured")
	}
	if len(clients) == 1 {
		return clients[0], nil
	}
	return model.NewFallbackClient(clients, names), nil
}

func run() error {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	registerProviders()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	modelClient, err := buildModelClient(&cfg.Model)
	if err != nil {
		return fmt.Errorf("failed to build model client: %w", err)
	}

	// Initialize services
	pipeline := reconcile.NewPipeline()
	sheets := spreadsheet.NewProcessor()
	images := imaging.NewRecompressor(&cfg.Image)
	extractionSvc := service.NewExtractionService(modelClient, sheets, images, pipeline, &cfg.Upload)

	// Initialize handlers
	extractH := handler.NewExtractHandler(extractionSvc)
	healthH := handler.NewHealthHandler()

	// Setup router
	r := router.Setup(cfg, extractH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
