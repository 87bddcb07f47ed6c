package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tubelens/internal/handlers"
	"tubelens/internal/middlewares"
	"tubelens/internal/routes"
	"tubelens/internal/summarize"
	"tubelens/shared/ai"
	"tubelens/shared/config"
	"tubelens/shared/youtube"
)

func main() {
	logger := log.New(os.Stdout, "tubelens: ", log.Ldate|log.Ltime)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Missing credentials degrade rather than abort: without a YouTube key
	// every analysis uses placeholder metadata, and without a Gemini key the
	// service still answers /health while summarize calls fail.
	var metadata summarize.MetadataFetcher
	if ytClient, err := youtube.NewClient(ctx, cfg.YouTube.APIKey); err != nil {
		logger.Printf("YouTube client unavailable, metadata will be degraded: %v", err)
	} else {
		metadata = ytClient
	}

	var generator summarize.Generator
	if analyzer, err := ai.NewAnalyzer(ctx, &cfg.AI); err != nil {
		logger.Printf("Gemini analyzer unavailable, summarize requests will fail: %v", err)
	} else {
		generator = analyzer
	}

	service := summarize.NewService(cfg, metadata, youtube.NewTranscriptFetcher(), generator, logger)

	mw := middlewares.NewMiddlewareHandler(logger)
	healthHandler := handlers.NewHealthHandler(cfg, logger)
	analysisHandler := handlers.NewAnalysisHandler(service, logger)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      routes.SetupRoutes(mw, healthHandler, analysisHandler),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 120 * time.Second,
	}

	go func() {
		logger.Println("Server started on port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Error starting server: ", err)
		}
	}()

	<-ctx.Done()

	logger.Println("Shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Printf("Shutdown error: %v", err)
	}
}
