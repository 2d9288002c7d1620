package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/proworker-backend/internal/ai"
	"github.com/ignatzorin/proworker-backend/internal/config"
	"github.com/ignatzorin/proworker-backend/internal/db"
	"github.com/ignatzorin/proworker-backend/internal/goroutine"
	httpHandlers "github.com/ignatzorin/proworker-backend/internal/http/handlers"
	httpRouter "github.com/ignatzorin/proworker-backend/internal/http/router"
	"github.com/ignatzorin/proworker-backend/internal/logger"
	"github.com/ignatzorin/proworker-backend/internal/repository"
	"github.com/ignatzorin/proworker-backend/internal/service"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	// Инициализация логгера
	logLevel := "info"
	if cfg.Env == "development" {
		logLevel = "debug"
	}
	logger.Init(logLevel, cfg.Env)

	// Подключение к базе и миграции.
	dbConn, err := db.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("main: ошибка подключения к базе: %v", err)
	}
	defer safeClose(dbConn)

	if err := db.RunMigrations(ctx, dbConn, cfg.MigrationsPath); err != nil {
		log.Fatalf("main: ошибка миграций: %v", err)
	}

	// Репозитории.
	workerRepo := repository.NewWorkerRepository(dbConn)
	orderRepo := repository.NewOrderRepository(dbConn)
	reviewRepo := repository.NewReviewRepository(dbConn)
	mediaRepo := repository.NewMediaRepository(dbConn)
	trainingRepo := repository.NewTrainingRepository(dbConn)
	scheduleRepo := repository.NewScheduleRepository(dbConn)

	// Сервисы.
	contextService := service.NewContextService(workerRepo, orderRepo, reviewRepo, mediaRepo, trainingRepo, scheduleRepo, nil)
	cacheService := service.NewCacheService(cfg.ChatCacheTTL, nil)
	quotaService := service.NewQuotaService(cfg.ChatDailyLimit, nil)

	aiClient := ai.NewClient(cfg.AIBaseURL, cfg.AIModel, cfg.AITimeout)
	chatService := service.NewChatService(contextService, aiClient, cacheService, quotaService, cfg.ChatQueueSize, nil)
	chatService.Start(ctx)

	// Периодическая очистка кэша ответов.
	goroutine.SafeGoWithContext(ctx, func(ctx context.Context) {
		ticker := time.NewTicker(cfg.ChatCacheTTL)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				cacheService.Cleanup()
			}
		}
	})

	// HTTP хэндлеры.
	healthHandler := httpHandlers.NewHealthHandler(dbConn, chatService)
	contextHandler := httpHandlers.NewContextHandler(contextService)
	chatHandler := httpHandlers.NewChatHandler(chatService)
	wsHandler := httpHandlers.NewWSHandler(chatService, cfg.AllowedOrigins)

	// Роутер.
	engine := httpRouter.SetupRouter(cfg, healthHandler, contextHandler, chatHandler, wsHandler)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: engine,
	}

	// Завершаем сервер при получении сигнала.
	goroutine.SafeGoWithContext(ctx, func(ctx context.Context) {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("main: ошибка остановки http сервера: %v", err)
		}
	})

	log.Printf("main: HTTP сервер запущен на порту %s", cfg.HTTPPort)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("main: сервер завершился с ошибкой: %v", err)
	}
}

// safeClose закрывает соединение с базой.
func safeClose(conn *sqlx.DB) {
	if err := conn.Close(); err != nil {
		log.Printf("main: ошибка закрытия соединения с базой: %v", err)
	}
}
