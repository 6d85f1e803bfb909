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
	"go.uber.org/zap"

	"github.com/mp-alertify/backend/internal/api"
	"github.com/mp-alertify/backend/internal/config"
	"github.com/mp-alertify/backend/internal/domain"
	"github.com/mp-alertify/backend/internal/fcm"
	"github.com/mp-alertify/backend/internal/firebase"
)

func main() {
	// Load .env file if exists
	_ = godotenv.Load()

	// Initialize logger
	logger, err := initLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Starting MP Alertify API",
		zap.String("env", cfg.Server.Env),
		zap.String("port", cfg.Server.Port),
	)

	ctx := context.Background()

	// Initialize Firebase Admin clients
	clients, err := firebase.New(ctx, cfg.Firebase.AdminJSON, cfg.Firebase.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to initialize Firebase", zap.Error(err))
	}
	logger.Info("Firebase initialized", zap.String("project_id", clients.ProjectID))

	// Access-token minter for the FCM HTTP v1 API
	minter, err := fcm.NewMinter(cfg.Firebase.AdminJSON)
	if err != nil {
		logger.Fatal("Failed to load FCM credentials", zap.Error(err))
	}

	// Initialize dependencies
	store := firebase.NewStore(clients.Database)
	directory := firebase.NewDirectory(clients.Auth)
	pushClient := fcm.NewClient(logger, minter, clients.ProjectID)

	// Initialize services
	publishService := domain.NewPublishService(store, pushClient, logger)
	accountService := domain.NewAccountService(store, directory, logger)

	// Initialize handlers
	pagesHandler, err := api.NewPagesHandler(logger)
	if err != nil {
		logger.Fatal("Failed to load templates", zap.Error(err))
	}
	reportHandler := api.NewReportHandler(publishService, logger)
	userHandler := api.NewUserHandler(accountService, logger)
	healthHandler := api.NewHealthHandler()

	// Initialize router
	router := api.NewRouter(pagesHandler, reportHandler, userHandler, healthHandler, logger)
	r := router.Setup()

	// Create server. The write timeout is generous: the notification
	// fan-out holds the response open while it sends sequentially.
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", zap.Error(err))
	}

	logger.Info("Server stopped")
}

func initLogger() (*zap.Logger, error) {
	if os.Getenv("ENV") == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
