package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/commforge/community_backend/internal/config"
	"github.com/commforge/community_backend/internal/database"
	"github.com/commforge/community_backend/internal/events"
	"github.com/commforge/community_backend/internal/handlers"
	"github.com/commforge/community_backend/internal/notify"
	"github.com/commforge/community_backend/internal/repositories"
	"github.com/commforge/community_backend/internal/services"
	"github.com/commforge/community_backend/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.LogLevel, cfg.AppEnv)
	defer logger.Sync()

	logger.Info("starting community backend", "env", cfg.AppEnv)

	if cfg.AppEnv == "production" {
		if err := cfg.ValidateProductionSecurity(); err != nil {
			logger.Fatal("production security validation failed", err)
		}
	}

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("failed to run migrations", err)
	}

	if cfg.AppEnv == "development" {
		if err := database.SeedDevelopmentData(db); err != nil {
			logger.Warn("failed to seed development data", "error", err)
		}
	}

	configRepo := repositories.NewLevelConfigRepository(db)
	memberRepo := repositories.NewMemberPointsRepository(db)
	courseRepo := repositories.NewCourseRepository(db)

	dispatcher := events.NewDispatcher()
	if cfg.NotificationsEnabled() {
		notifier, err := notify.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramChatID)
		if err != nil {
			logger.Warn("telegram notifier disabled", "error", err)
		} else {
			dispatcher.Subscribe(notifier.Handle)
		}
	}

	pointsService := services.NewPointsService(configRepo, memberRepo, dispatcher)
	levelService := services.NewLevelService(configRepo, memberRepo, dispatcher)
	accessService := services.NewCourseAccessService(courseRepo, memberRepo)
	triggerService := services.NewTriggerService(pointsService)
	reportService := services.NewReportService(memberRepo, levelService)

	router := handlers.NewRouter(cfg, handlers.Deps{
		Levels:   levelService,
		Access:   accessService,
		Triggers: triggerService,
		Reports:  reportService,
	})

	server := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Info("http server listening", "port", cfg.AppPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server failed", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down gracefully")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
	logger.Info("server stopped")
}
