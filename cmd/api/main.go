package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"khqr-payment-gateway/config"
	"khqr-payment-gateway/internal/adapter/bakong"
	httpHandler "khqr-payment-gateway/internal/adapter/http/handler"
	"khqr-payment-gateway/internal/adapter/qrimage"
	redisStorage "khqr-payment-gateway/internal/adapter/storage/redis"
	"khqr-payment-gateway/internal/core/domain"
	"khqr-payment-gateway/internal/core/ports"
	"khqr-payment-gateway/internal/service"
	"khqr-payment-gateway/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("default_currency", cfg.Merchant.DefaultCurrency).
		Msg("Starting KHQR Payment Gateway")

	ctx := context.Background()
	merchant := merchantFromConfig(cfg.Merchant)

	// Optional Redis terminal-status cache
	var statusCache ports.StatusCache
	var healthCheckers []ports.HealthChecker
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		cache := redisStorage.NewStatusCache(rdb)
		statusCache = cache
		healthCheckers = append(healthCheckers, cache)
		log.Info().Msg("Redis status cache enabled")
	}

	// KHQR provider: external payload encoder + Bakong open API
	encoder := bakong.NewExecEncoder(cfg.Provider.EncoderCommand)
	client := bakong.NewClient(
		cfg.Provider.BaseURL,
		cfg.Merchant.Token,
		bakong.SourceInfo{
			AppIconURL:          cfg.Merchant.AppIconURL,
			AppName:             cfg.Merchant.AppName,
			AppDeepLinkCallback: cfg.Merchant.CallbackURL,
		},
		&http.Client{Timeout: cfg.Provider.Timeout},
	)
	provider := bakong.NewProvider(encoder, client)

	qrSvc := service.NewQRService(
		merchant,
		domain.Currency(cfg.Merchant.DefaultCurrency),
		provider,
		qrimage.NewRenderer(),
		statusCache,
		log,
	)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		QRSvc:          qrSvc,
		HealthCheckers: healthCheckers,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// merchantFromConfig converts the loaded config into the immutable domain
// value shared by all requests.
func merchantFromConfig(m config.MerchantConfig) domain.MerchantConfig {
	return domain.MerchantConfig{
		Token:         m.Token,
		BankAccount:   m.BankAccount,
		MerchantName:  m.Name,
		MerchantCity:  m.City,
		PhoneNumber:   m.PhoneNumber,
		TerminalLabel: m.TerminalLabel,
		StoreLabel:    m.StoreLabel,
		CallbackURL:   m.CallbackURL,
		AppIconURL:    m.AppIconURL,
		AppName:       m.AppName,
	}
}
