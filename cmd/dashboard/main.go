package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-dashboard/internal/config"
	"github.com/BuzzLyutic/todo-dashboard/internal/dashboard"
	"github.com/BuzzLyutic/todo-dashboard/internal/handler"
	"github.com/BuzzLyutic/todo-dashboard/internal/logger"
	"github.com/BuzzLyutic/todo-dashboard/internal/repo"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Подключаем логгер
	zapLogger, err := logger.New(cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync(zapLogger)

	files := repo.NewFileRepo(cfg.SnapshotPath)

	// Источник снапшота: локальный файл или удаленный артефакт
	var source dashboard.Source = files
	if cfg.SnapshotURL != "" {
		source = dashboard.NewHTTPSource(cfg.SnapshotURL, nil)
	}

	renderer, err := dashboard.NewRenderer(time.Local)
	if err != nil {
		zapLogger.Fatal("Failed to parse templates", zap.Error(err))
	}

	h := handler.NewDashboardHandler(source, files, renderer, cfg.BasePath, zapLogger)
	r := handler.NewRouter(h, handler.RouterOptions{
		BasePath:       cfg.BasePath,
		AllowedOrigins: cfg.AllowedOrigins,
		Logger:         zapLogger,
	})

	srv := http.Server{ // Создаем сервер
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() { // Запуск сервера и обработка ошибок
		zapLogger.Info("Server started",
			zap.String("addr", srv.Addr),
			zap.String("base_path", handler.NormalizeBasePath(cfg.BasePath)),
			zap.String("snapshot_path", cfg.SnapshotPath),
			zap.String("snapshot_url", cfg.SnapshotURL),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	zapLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("Shutdown error", zap.Error(err))
	}
	zapLogger.Info("Server stopped successfully")
}
