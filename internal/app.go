package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	catalog_api_client "listing-view-service/internal/adapters/catalog_client"
	likes_api_client "listing-view-service/internal/adapters/likes_client"
	logger_adapter "listing-view-service/internal/adapters/logger"
	"listing-view-service/internal/adapters/rest"
	"listing-view-service/internal/configs"
	"listing-view-service/internal/core/port"
	"listing-view-service/internal/core/usecase"
	"listing-view-service/internal/viewstate"

	"github.com/fluent/fluent-logger-golang/fluent"
)

type App struct {
	config    *configs.AppConfig
	apiServer *rest.Server

	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

// NewApp создает и настраивает все компоненты приложения
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}
	if err := appConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false, // текстовый формат
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	// Добавляем Fluent Bit логгер, если он включен в конфигурации
	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = logger_adapter.NewFluentClient(logger_adapter.FluentClientConfig{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName, // Используем имя приложения как префикс
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	// Создаем наш композитный логгер
	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	// --- 2. БАЗОВЫЙ ЛОГГЕР ПРИЛОЖЕНИЯ С КОНТЕКСТОМ ---
	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Debug("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 3. ИНИЦИАЛИЗАЦИЯ ИСХОДЯЩИХ АДАПТЕРОВ (КЛИЕНТОВ) ---
	catalogClient := catalog_api_client.NewCatalogAPIClient(
		appConfig.ApiClient.CatalogURL,
		time.Duration(appConfig.ApiClient.CatalogCacheTTLSeconds)*time.Second,
	)
	likesClient := likes_api_client.NewLikesAPIClient(appConfig.ApiClient.LikesURL)
	appLogger.Debug("API clients initialized", port.Fields{
		"catalog_url": appConfig.ApiClient.CatalogURL,
		"likes_url":   appConfig.ApiClient.LikesURL,
	})

	// --- 4. РАБОЧЕЕ СОСТОЯНИЕ ВИДА ---
	stateStore := viewstate.NewStore()

	// --- 5. ИНИЦИАЛИЗАЦИЯ USE CASES (ядра бизнес-логики) ---
	getListingsPageUseCase := usecase.NewGetListingsPageUseCase(catalogClient, stateStore)
	syncLikesUseCase := usecase.NewSyncLikesUseCase(likesClient, stateStore)
	toggleLikeUseCase := usecase.NewToggleLikeUseCase(likesClient, stateStore)

	// --- 6. REST API Server ---
	apiHandlers := rest.NewListingsHandler(getListingsPageUseCase, syncLikesUseCase, toggleLikeUseCase)
	apiServer := rest.NewServer(appConfig.Rest.PORT, apiHandlers, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	return &App{
		config:    appConfig,
		apiServer: apiServer,

		fluentClient: fluentClient,
		logger:       appLogger,
	}, nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if a.apiServer != nil {
			if err := a.apiServer.Stop(ctx); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// Логируем в stdout, так как fluent может быть уже недоступен
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	// Ожидание сигнала на завершение или ошибки от сервера
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-serverErrors:
		a.logger.Error("Server failed to start, shutting down", err, nil)
	}

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		// Возвращаем безопасное значение по умолчанию и логируем предупреждение
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
