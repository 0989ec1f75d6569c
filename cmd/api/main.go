package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wolfman30/dialogflow-fulfillment/internal/api/router"
	"github.com/wolfman30/dialogflow-fulfillment/internal/awsconfig"
	appconfig "github.com/wolfman30/dialogflow-fulfillment/internal/config"
	"github.com/wolfman30/dialogflow-fulfillment/internal/fulfillment"
	"github.com/wolfman30/dialogflow-fulfillment/internal/observability/metrics"
	"github.com/wolfman30/dialogflow-fulfillment/pkg/logging"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting dialogflow-fulfillment webhook",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx := context.Background()

	// Conversation store. Missing credentials degrade persistence to a
	// logged no-op rather than failing startup.
	var store *fulfillment.Recorder
	if cfg.HasPersistence() {
		awsCfg, err := awsconfig.Load(ctx, cfg)
		if err != nil {
			logger.Error("failed to load AWS config", "error", err)
			os.Exit(1)
		}
		store = fulfillment.NewRecorder(dynamodb.NewFromConfig(awsCfg), cfg.ConversationsTable, logger)
	} else {
		logger.Warn("persistence credentials missing, conversation logging disabled")
		store = fulfillment.NewRecorder(nil, cfg.ConversationsTable, logger)
	}

	// Gemini fallback. Missing key degrades to a canned apology.
	var generator fulfillment.TextGenerator
	if cfg.GeminiAPIKey != "" {
		gemini, err := fulfillment.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Warn("failed to create gemini client, fallback degraded", "error", err)
		} else {
			defer gemini.Close()
			generator = gemini
		}
	} else {
		logger.Warn("gemini api key missing, fallback degraded to canned reply")
	}
	responder := fulfillment.NewFallbackResponder(generator, logger)

	webhookMetrics := metrics.NewWebhookMetrics(nil)
	webhookHandler := fulfillment.NewHandler(store, responder, webhookMetrics, logger)

	r := router.New(&router.Config{
		Logger:         logger,
		WebhookHandler: webhookHandler,
		MetricsHandler: promhttp.Handler(),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
