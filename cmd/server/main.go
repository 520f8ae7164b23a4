package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/presupuestador/backend/config"
	httpDelivery "github.com/presupuestador/backend/internal/delivery/http"
	"github.com/presupuestador/backend/internal/domain"
	"github.com/presupuestador/backend/internal/infrastructure/catalog"
	"github.com/presupuestador/backend/internal/infrastructure/matcher"
	"github.com/presupuestador/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Presupuestador Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Load the catalog once; everything downstream reads from an immutable view
	products, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("Failed to load catalog from %s: %v", cfg.Catalog.Path, err)
	}
	catalogView := domain.NewCatalogView(products, usecase.Normalize)
	log.Printf("Catalog loaded: %d products from %s", catalogView.Len(), cfg.Catalog.Path)

	// Initialize the Gemini matcher client
	ctx := context.Background()
	matcherClient, err := matcher.NewClient(ctx, matcher.Config{
		APIKey:            cfg.Matcher.APIKey,
		Model:             cfg.Matcher.Model,
		MaxAttempts:       cfg.Matcher.MaxAttempts,
		RequestsPerSecond: cfg.Matcher.RequestsPerSecond,
		Burst:             cfg.Matcher.Burst,
	})
	if err != nil {
		log.Fatalf("Failed to create matcher client: %v", err)
	}
	defer matcherClient.Close()

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		matcherClient.SetDebug(true)
		log.Printf("Matcher client debug mode enabled")
	}
	log.Printf("Matcher model: %s (max attempts: %d)", cfg.Matcher.Model, cfg.Matcher.MaxAttempts)

	// Initialize usecase layer
	quoteService := usecase.NewQuoteService(
		matcherClient,
		catalogView,
		usecase.DefaultExpansionTable(),
		usecase.DefaultOverrideRules(),
		usecase.QuoteServiceConfig{
			PreFilter: usecase.PreFilterConfig{
				ShortlistLimit:     cfg.Matching.ShortlistLimit,
				BackfillThreshold:  cfg.Matching.BackfillThreshold,
				BackfillLimit:      cfg.Matching.BackfillLimit,
				EnableDebugLogging: cfg.Matching.Debug,
			},
			EnableDebugLogging: cfg.Matching.Debug,
		},
	)

	log.Printf("Matching: shortlist=%d, backfill=%d/%d, debug=%v",
		cfg.Matching.ShortlistLimit,
		cfg.Matching.BackfillThreshold,
		cfg.Matching.BackfillLimit,
		cfg.Matching.Debug)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(quoteService, matcherClient, catalogView, cfg.Server.MaxUploadMB)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
