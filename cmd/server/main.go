package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"textlens-backend/internal/config"
	"textlens-backend/internal/database"
	"textlens-backend/internal/handlers"
	"textlens-backend/internal/repository"
	"textlens-backend/internal/router"
	"textlens-backend/internal/services"
)

func main() {
	log.Println("Starting TextLens Backend...")

	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	pool, err := database.NewPostgresPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("✗ PostgreSQL connection failed: %v", err)
	}
	defer pool.Close()
	log.Println("✓ PostgreSQL connected")

	if err := database.RunMigrations(pool, "migrations"); err != nil {
		log.Fatalf("✗ Database migration failed: %v", err)
	}
	log.Println("✓ Database migrations applied")

	summaryRepo := repository.NewSummaryRepo(pool)

	geminiService, err := services.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiConcurrentReqs)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer geminiService.Close()
	log.Println("✓ Gemini client initialized")

	analysisService := services.NewAnalysisService(geminiService)
	summarizeService := services.NewSummarizeService(geminiService, summaryRepo)
	ocrService := services.NewOCRService(cfg.OCRLanguage)
	extractService := services.NewDocumentExtractService()

	analyzeHandler := handlers.NewAnalyzeHandler(analysisService, extractService, cfg.MaxUploadBytes())
	imageHandler := handlers.NewImageHandler(ocrService, cfg.MaxUploadBytes())
	summarizeHandler := handlers.NewSummarizeHandler(summarizeService, summaryRepo)

	r := router.New(analyzeHandler, imageHandler, summarizeHandler, cfg.FrontendURL)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ TextLens Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
