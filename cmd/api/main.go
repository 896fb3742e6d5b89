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

	"github.com/joho/godotenv"
	"github.com/urfit-tech/lodestar-contract-api/internal/client/catalog"
	"github.com/urfit-tech/lodestar-contract-api/internal/client/order"
	"github.com/urfit-tech/lodestar-contract-api/internal/config"
	"github.com/urfit-tech/lodestar-contract-api/internal/handlers"
	"github.com/urfit-tech/lodestar-contract-api/internal/logger"
	"github.com/urfit-tech/lodestar-contract-api/internal/server"
	"github.com/urfit-tech/lodestar-contract-api/internal/services"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v\n", err)
	}

	logger.InitLogger(cfg.Stage)
	defer func() { _ = logger.Log.Sync() }()

	catalogClient := catalog.NewClient(cfg.CatalogAPIURL)
	orderClient := order.NewClient(cfg.OrderAPIURL)

	contractService := services.NewContractService(
		catalogClient,
		orderClient,
		services.NewRandomIDSource(),
		services.GrantConfig{
			CoinExchangeRate: cfg.CoinExchangeRate,
			OnboardingCoins:  cfg.OnboardingCoins,
		},
		logger.Log,
	)

	contractHandler := handlers.NewContractHandler(handlers.NewCommonServices(contractService))
	router := server.New(cfg, contractHandler)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.APIPort),
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server starting", zap.String("port", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}
