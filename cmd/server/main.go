package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"charchat-backend/internal/ai"
	"charchat-backend/internal/api"
	"charchat-backend/internal/config"
	"charchat-backend/internal/handlers"
	"charchat-backend/internal/services"
	"charchat-backend/internal/store"
	"charchat-backend/internal/store/memory"
	"charchat-backend/internal/store/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	log.Println("Starting CharChat Backend...")

	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}
	log.Println("Configuration loaded successfully.")

	// 2. Initialize Data Store
	// The store is chosen once here; everything downstream depends only
	// on the store.Store interface and never checks the mode again.
	var dataStore store.Store
	if cfg.DemoMode {
		dataStore = memory.NewSeededStore()
		log.Println("Demo mode: in-memory store initialized with seed data.")
	} else {
		dbCtx, dbCancel := context.WithTimeout(context.Background(), 10*time.Second) // Timeout for initial connection
		defer dbCancel()

		dbpool, err := pgxpool.New(dbCtx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("FATAL: Unable to create database connection pool: %v\n", err)
		}
		defer dbpool.Close() // Ensure pool is closed on exit

		// Ping DB to verify connection
		if err := dbpool.Ping(dbCtx); err != nil {
			log.Fatalf("FATAL: Unable to ping database: %v\n", err)
		}
		log.Println("Database connection pool established and pinged successfully.")

		dataStore = postgres.NewPostgresStore(dbpool)
		log.Println("Postgres store initialized.")
	}

	// --- Initialize AI Completion ---
	var completer ai.Completer
	if cfg.AI.Enabled() {
		llmService, err := ai.NewLLMService(context.Background(), cfg.AI)
		if err != nil {
			log.Printf("WARN: Failed to initialize LLM service, falling back to canned responses: %v", err)
		} else {
			completer = llmService
			log.Printf("LLM service initialized (model: %s).", cfg.AI.Model)
		}
	} else {
		log.Println("No AI provider credential configured, chat will use canned responses.")
	}
	responder := ai.NewResponder()

	// --- Initialize Services ---
	authService := services.NewAuthService(dataStore, cfg)
	log.Println("AuthService initialized.")
	characterService := services.NewCharacterService(dataStore)
	log.Println("CharacterService initialized.")
	sessionService := services.NewSessionService(dataStore)
	log.Println("SessionService initialized.")
	chatService := services.NewChatService(dataStore, completer, responder)
	log.Println("ChatService initialized.")

	// --- Initialize Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	log.Println("AuthHandler initialized.")
	characterHandler := handlers.NewCharacterHandler(characterService)
	log.Println("CharacterHandler initialized.")
	sessionHandler := handlers.NewSessionHandler(sessionService)
	log.Println("SessionHandler initialized.")
	chatHandler := handlers.NewChatHandler(chatService)
	log.Println("ChatHandler initialized.")

	// 3. Setup Router & Inject Dependencies
	routerDeps := api.RouterDependencies{
		AuthHandler:      authHandler,
		CharacterHandler: characterHandler,
		SessionHandler:   sessionHandler,
		ChatHandler:      chatHandler,
		Config:           cfg,
	}
	router := api.NewRouter(routerDeps)
	log.Println("HTTP router configured.")

	// 4. Configure and Start HTTP Server
	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
		// Production hardening: Set timeouts to avoid Slowloris attacks
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Channel to listen for OS signals for graceful shutdown
	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, syscall.SIGINT, syscall.SIGTERM)

	// Run server in a goroutine so it doesn't block
	go func() {
		log.Printf("Server starting and listening on port %s", cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: Could not listen on %s: %v\n", cfg.HTTPPort, err)
		}
		log.Println("Server listener routine stopped.")
	}()

	// Wait for interrupt signal
	<-stopChan
	log.Println("Shutdown signal received, initiating graceful shutdown...")

	// Create a deadline context for shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	// Attempt graceful shutdown
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("WARN: Server graceful shutdown failed: %v", err)
		log.Fatal("Forcing shutdown due to error.")
	}

	log.Println("Server shutdown complete.")
}
