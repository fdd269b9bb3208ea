// ABOUTME: Main entry point for the Brief capture API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"brief-api/api"
	"brief-api/core/capture"
	"brief-api/core/extract"
	"brief-api/core/fetch"
	"brief-api/core/interfaces"
	"brief-api/core/summary"
	resendmail "brief-api/infrastructure/email/resend"
	stdhttp "brief-api/infrastructure/http/standard"
	logruslogger "brief-api/infrastructure/logger/logrus"
	"brief-api/infrastructure/textgen/gemini"
	"brief-api/pkg/config"
)

func main() {
	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	var logOutput io.Writer = os.Stdout
	if cfg.LogFile != "" {
		logOutput = &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    50, // megabytes
			MaxBackups: 5,
			MaxAge:     14, // days
			Compress:   true,
		}
	}
	logger := logruslogger.NewLogrusLogger(logOutput, logrus.InfoLevel)

	logger.Info("Starting Brief API", map[string]interface{}{
		"port":              cfg.Server.Port,
		"summarizer_model":  cfg.Summarizer.Model,
		"summarizer_active": cfg.Summarizer.APIKey != "",
	})

	httpClient := stdhttp.NewStandardHTTPClient(time.Duration(cfg.Server.HTTPTimeoutSeconds) * time.Second)
	deps := interfaces.Dependencies{
		HTTPClient: httpClient,
		Logger:     logger,
	}

	var textgenProvider interfaces.TextGenerationProvider
	if cfg.Summarizer.APIKey != "" {
		textgenProvider = gemini.NewProvider(httpClient, cfg.Summarizer.APIKey, cfg.Summarizer.Model, cfg.Summarizer.Endpoint)
	} else {
		logger.Warn("GEMINI_API_KEY not set, summaries will be unavailable", nil)
	}

	emailProvider := resendmail.NewProvider(httpClient, cfg.Email.APIKey, cfg.Email.From, cfg.Email.Endpoint)

	captureService := capture.NewService(
		deps,
		fetch.NewFetcher(deps, "", ""),
		extract.NewSocialService(deps, ""),
		summary.NewService(textgenProvider, logger),
		extract.NewNormalizer(cfg.Pipeline.MinArticleChars, cfg.Pipeline.MaxArticleChars),
		emailProvider,
	)

	router := api.NewRouter(api.Config{
		Logger:         logger,
		CaptureService: captureService,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
		// Captures fan out to slow origin sites; leave generous room.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
