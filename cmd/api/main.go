package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"boardimport/config"
	_ "boardimport/docs" // Swagger docs
	"boardimport/internal/httpserver"
	"boardimport/internal/importer/repository/boardapi"
	"boardimport/internal/importer/usecase"
	"boardimport/pkg/gcalendar"
	"boardimport/pkg/gemini"
	"boardimport/pkg/log"
)

// @title       Board Import API
// @description AI-powered task import for Kanban boards: extracts tasks from free-form text with Gemini and files them as cards via the board store API.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Board Import...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Board API URL: %s", cfg.BoardAPI.BaseURL)

	// 3. Gemini LLM client
	if cfg.Gemini.APIKey == "" {
		logger.Warn(ctx, "GEMINI_API_KEY is missing, extraction calls will fail")
	}
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
	if cfg.Gemini.Model != "" {
		geminiClient.SetModel(cfg.Gemini.Model)
	}
	logger.Infof(ctx, "Gemini model: %s", geminiClient.Model())

	// 4. Google Calendar client (optional)
	var calendarClient gcalendar.ICalendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendarClient = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 5. Board store repository
	boardClient := boardapi.NewClient(cfg.BoardAPI.BaseURL)
	boardRepo := boardapi.New(boardClient, logger)

	// 6. Importer UseCase
	importerUC := usecase.New(
		logger,
		geminiClient,
		calendarClient,
		boardRepo,
		cfg.GoogleCalendar.CalendarID,
		cfg.GoogleCalendar.Timezone,
	)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ImporterUseCase: importerUC,
		AppConfig:       cfg,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
