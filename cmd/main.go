// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"go_5_vocab_flash/internal/config"
	"go_5_vocab_flash/internal/handlers"
	"go_5_vocab_flash/internal/middleware"
	"go_5_vocab_flash/internal/repository"
	"go_5_vocab_flash/internal/service"
	"go_5_vocab_flash/internal/session"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	// リポジトリ直下からでも cmd/ からでも起動できるようにする
	if err := config.LoadConfig("configs"); err != nil {
		if err := config.LoadConfig("../configs"); err != nil {
			slog.Error("Error loading configuration", slog.Any("error", err))
			os.Exit(1)
		}
	}

	logger := newLogger(tempLogger)
	log.Println("Log Config Loaded...")
	slog.SetDefault(logger)

	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	ctx := context.Background()

	// 1. Row Store
	store, closeStore, err := repository.NewRowStore(ctx, config.Cfg.Store, logger)
	if err != nil {
		slog.Error("Error initializing row store", slog.Any("error", err), slog.String("driver", config.Cfg.Store.Driver))
		os.Exit(1)
	}
	defer closeStore()

	// 2. 外部サービスのクライアント
	completer, err := service.NewCompleter(ctx, config.Cfg.Generation)
	if err != nil {
		slog.Error("Error initializing generation client", slog.Any("error", err), slog.String("provider", config.Cfg.Generation.Provider))
		os.Exit(1)
	}

	analyzer, err := service.NewPhraseAnalyzer()
	if err != nil {
		// ヒントなしで生成はできる
		slog.Warn("Phrase analyzer unavailable", slog.Any("error", err))
	}

	var synth service.Synthesizer
	audioEnabled := config.Cfg.Speech.Enabled
	if audioEnabled {
		s, closeSynth, err := service.NewSynthesizer(ctx, config.Cfg.Speech)
		if err != nil {
			slog.Warn("Speech synthesis disabled: could not initialize client", slog.Any("error", err), slog.String("provider", config.Cfg.Speech.Provider))
			audioEnabled = false
		} else {
			synth = s
			defer closeSynth()
		}
	}

	// 3. Dependency Injection
	entryService := service.NewEntryService(store)
	generationService := service.NewGenerationService(completer, analyzer, config.Cfg.App.RichEntries)
	speechService := service.NewSpeechService(synth, config.Cfg.Speech.Language)
	reviewService := service.NewReviewService(entryService, audioEnabled)
	draftService := service.NewDraftService(generationService, entryService)
	editService := service.NewEditService(generationService, entryService)

	pageHandler, err := handlers.NewPageHandler(draftService, editService, reviewService, speechService, handlers.PageOptions{
		Title:          config.Cfg.App.Title,
		SpreadsheetURL: config.Cfg.Store.SpreadsheetURL(),
		RichEntries:    config.Cfg.App.RichEntries,
		AudioEnabled:   audioEnabled,
	}, logger)
	if err != nil {
		slog.Error("Error parsing page templates", slog.Any("error", err))
		os.Exit(1)
	}
	entryHandler := handlers.NewEntryHandler(entryService, reviewService, generationService, speechService, logger)
	healthHandler := handlers.NewHealthHandler(store, logger)

	sessionStore := session.NewStore(config.SessionTTL)

	// 4. Setup Router
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(config.RequestTimeout))

	// 画面 (セッションあり)
	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(sessionStore))
		pageHandler.Register(r)
	})

	// API Routes (CORS は API のみ)
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	})
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(corsHandler.Handler)
		entryHandler.Register(r)
	})

	// Health Check
	r.Get("/health", healthHandler.Health)

	// 5. Start Server
	// LLM と音声合成の呼び出しがあるため WriteTimeout は Timeout ミドルウェアより長くする
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: config.RequestTimeout + 5*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1) // Listen失敗は致命的
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}

// newLogger は設定されたレベルで slog ロガーを作ります。
// APP_ENV=dev なら tint、それ以外は JSON。
func newLogger(tempLogger *slog.Logger) *slog.Logger {
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		tempLogger.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	return slog.New(handler)
}
