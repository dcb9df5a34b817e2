package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	environment "recipe-bot/internal/env"
)

func main() {
	ctx := context.Background()

	env, err := environment.Setup(ctx)
	if err != nil {
		log.Fatalf("Failed to setup environment: %v", err)
	}

	logger := env.Logger
	logger.Info("запуск API рецептов")

	// Схема создаётся на старте, для :memory: база живёт вместе с процессом
	if err := env.Services.Storage.Bootstrap(ctx); err != nil {
		logger.Error("не удалось создать схему", slog.Any("error", err))
		return
	}

	if env.Servers.HTTP.Observability != nil {
		go func() {
			logger.Info("запуск observability сервера", slog.String("addr", env.Servers.HTTP.Observability.Addr))
			if err := env.Servers.HTTP.Observability.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("ошибка observability сервера", slog.Any("error", err))
			}
		}()
	}

	go func() {
		logger.Info("запуск API сервера", slog.String("addr", env.Servers.HTTP.API.Addr))
		if err := env.Servers.HTTP.API.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("ошибка API сервера", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("API запущен, Ctrl+C для остановки")
	<-quit

	logger.Info("остановка приложения...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), env.Config.ShutdownDuration)
	defer cancel()

	if err := env.Servers.HTTP.API.Shutdown(shutdownCtx); err != nil && err != http.ErrServerClosed {
		logger.Error("ошибка остановки API сервера", slog.Any("error", err))
	}

	if env.Servers.HTTP.Observability != nil {
		if err := env.Servers.HTTP.Observability.Shutdown(shutdownCtx); err != nil && err != http.ErrServerClosed {
			logger.Error("ошибка остановки observability сервера", slog.Any("error", err))
		}
	}

	for _, closer := range env.Closers {
		closer()
	}

	logger.Info("приложение остановлено")
}
