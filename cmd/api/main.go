package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "github.com/johnquangdev/meeting-notes-analyzer/docs"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/adapter/handler"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/adapter/repository"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-notes-analyzer/internal/infrastructure/metrics"
	aiuse "github.com/johnquangdev/meeting-notes-analyzer/internal/usecase/ai"
	meetingUsecase "github.com/johnquangdev/meeting-notes-analyzer/internal/usecase/meeting"
	pkgai "github.com/johnquangdev/meeting-notes-analyzer/pkg/ai"
	"github.com/johnquangdev/meeting-notes-analyzer/pkg/config"
	pkgvalidator "github.com/johnquangdev/meeting-notes-analyzer/pkg/validator"
)

// @title           AI Meeting Notes Analyzer API
// @version         1.0.0
// @description     Turns raw meeting notes into summaries, action items, decisions and key points.

// @BasePath  /

// maxBodySize bounds POST /api/meetings payloads
const maxBodySize = "2M"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Database
	logger.Info("📦 Connecting to database...", zap.String("driver", cfg.Database.Driver))
	db, err := database.NewDB(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB(db)

	if cfg.Database.AutoMigrate {
		n, err := database.AutoMigrate(db, cfg.Database.Driver)
		if err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}
		logger.Info("🔄 Migrations applied", zap.Int("count", n))
	} else {
		logger.Info("🔄 Skipping migrations; run cmd/migrate to manage the schema")
	}

	if cfg.LLM.APIKey == "" {
		logger.Warn("⚠️ OPENROUTER_API_KEY is not set, every analysis will fall back")
	}

	m := metrics.New()

	// Initialize repositories
	meetingRepo := repository.NewMeetingRepository(db)
	actionItemRepo := repository.NewActionItemRepository(db)

	// Initialize AI components
	llmClient := pkgai.NewOpenRouterClient(&cfg.LLM)
	analyzer := aiuse.NewAnalyzer(llmClient, llmClient.Model(), m, logger)

	meetingService := meetingUsecase.NewMeetingService(meetingRepo, actionItemRepo, analyzer, m, logger)
	meetingHandler := handler.NewMeetingHandler(meetingService, logger)

	e := newServer(cfg)

	router := handler.NewRouter(cfg, meetingHandler, m)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.GetServerAddr()
		logger.Info("🚀 Starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
			zap.String("model", llmClient.Model()),
		)

		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("❌ Server forced to shutdown", zap.Error(err))
		return
	}

	logger.Info("✅ Server stopped gracefully")
}

// newServer builds the echo instance with the middleware stack
func newServer(cfg *config.Config) *echo.Echo {
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	e.HideBanner = true
	e.HidePort = false

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${id} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins(),
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
		ExposeHeaders:    []string{echo.HeaderXRequestID},
		AllowCredentials: true,
	}))

	e.Use(middleware.BodyLimit(maxBodySize))

	return e
}

// newLogger builds a JSON logger in production and a console logger otherwise
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	zcfg := zap.NewDevelopmentConfig()
	if cfg.IsProduction() {
		zcfg = zap.NewProductionConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	return zcfg.Build()
}
