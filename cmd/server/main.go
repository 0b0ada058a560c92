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

	"toolbox-backend/internal/config"
	"toolbox-backend/internal/handlers"
	"toolbox-backend/internal/router"
	"toolbox-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting AI Toolbox...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize Gemini Client ────
	var gemini *services.GeminiService
	if cfg.GeminiEnabled() {
		var err error
		gemini, err = services.NewGeminiService(cfg.GeminiAPIKey)
		if err != nil {
			log.Fatalf("✗ Gemini client initialization failed: %v", err)
		}
		defer gemini.Close()
		log.Println("✓ Gemini client initialized")
	} else {
		gemini = services.NewDisabledGeminiService()
		log.Println("– Chat disabled (set GOOGLE_API_KEY or GEMINI_API_KEY)")
	}

	// ──── Step 3: Initialize Stability Client ────
	stability := services.NewStabilityService(cfg.StabilityAPIKey)
	if cfg.StabilityEnabled() {
		log.Println("✓ Stability client initialized")
	} else {
		log.Println("– Image generation disabled (set STABILITY_API_KEY)")
	}

	// ──── Step 4: Initialize Handlers ────
	statusHandler := handlers.NewStatusHandler(cfg.GeminiEnabled(), cfg.StabilityEnabled())
	chatHandler := handlers.NewChatHandler(gemini)
	imageHandler := handlers.NewImageHandler(stability)

	// ──── Step 5: Start HTTP Server ────
	r := router.New(statusHandler, chatHandler, imageHandler, cfg.FrontendURL)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// Image generation holds the response for up to the provider's
		// 120s timeout.
		WriteTimeout: 150 * time.Second,
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

	log.Printf("✓ AI Toolbox ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/v1", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
