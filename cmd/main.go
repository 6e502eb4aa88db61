/*
Package main is the entry point for the Serenity Hotel server.

It is responsible for loading configuration, initializing the global logging
system, connecting to PostgreSQL and the object store, wiring the application
services, and gracefully handling operating system interrupt signals
(SIGINT, SIGTERM) to ensure a smooth server shutdown.
*/
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"serenity/internal/app/chat"
	"serenity/internal/app/chatbot"
	"serenity/internal/app/db"
	"serenity/internal/app/reservation"
	"serenity/internal/app/session"
	"serenity/internal/app/storage"
	"serenity/internal/app/user"
	"serenity/internal/configs"
	"serenity/internal/handler"
	"serenity/internal/pkg/logx"
)

func main() {
	// A missing .env file is fine; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	logx.InitGlobalLogger(cfg.Environment == "development")
	logx.Logger().Info().
		Str("environment", cfg.Environment).
		Int("port", cfg.Port).
		Strs("allowed_origins", cfg.AllowedOrigins).
		Dur("bot_reply_delay", cfg.BotReplyDelay).
		Msg("Configuration loaded successfully")

	// Create a context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Database pool (runs embedded migrations on startup).
	pool, err := db.NewPool(cfg.DatabaseDSN)
	if err != nil {
		logx.Fatal(err, "Failed to connect to database")
	}
	defer pool.Close()

	// Object storage for profile pictures.
	storageService, err := storage.NewStorageService(storage.ServiceConfig{
		S3BucketName:      cfg.S3BucketName,
		S3Endpoint:        cfg.S3Endpoint,
		S3AccessKeyID:     cfg.S3AccessKeyID,
		S3SecretAccessKey: cfg.S3SecretAccessKey,
	})
	if err != nil {
		logx.Fatal(err, "Failed to initialize storage service")
	}

	// Application services.
	users := user.NewPostgresStore(pool)
	sessions := session.NewManager(session.NewPostgresStore(pool), users)
	reservations := reservation.NewPostgresStore(pool)
	chatManager := chat.NewManager(chatbot.NewEngine())

	deps := &handler.AppDeps{
		Config:         cfg,
		Users:          users,
		Sessions:       sessions,
		Reservations:   reservations,
		ChatManager:    chatManager,
		StorageService: storageService,
	}

	router := handler.NewRouter(deps)

	serverAddr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logx.Info(fmt.Sprintf("Serenity Hotel Server starting on http://localhost%s", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logx.Fatal(err, "Server failed to start")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 5 seconds.
	<-ctx.Done()
	logx.Info("Received shutdown signal. Starting graceful shutdown...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logx.Fatal(err, "Server forced to shutdown")
	}

	chatManager.Shutdown()

	logx.Info("Server gracefully stopped.")
}
