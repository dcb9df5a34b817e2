package main

import (
	"context"
	"fmt"
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
	logger.Info("запуск бота рецептов")

	// Observability сервер в фоне
	if env.Servers.HTTP.Observability != nil {
		go func() {
			logger.Info("запуск observability сервера", slog.String("addr", env.Servers.HTTP.Observability.Addr))
			if err := env.Servers.HTTP.Observability.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("ошибка observability сервера", slog.Any("error", err))
			}
		}()
	}

	if err := startTelegramBot(ctx, env); err != nil {
		logger.Error("не удалось запустить telegram бота", slog.Any("error", err))
		return
	}

	if err := env.Services.WorkerService.Start(); err != nil {
		logger.Error("не удалось запустить воркер", slog.Any("error", err))
		return
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("бот запущен, Ctrl+C для остановки")
	<-quit

	logger.Info("остановка приложения...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), env.Config.ShutdownDuration)
	defer cancel()

	if env.Services.WorkerService != nil {
		env.Services.WorkerService.Stop()
	}

	env.Clients.TelegramBot.Stop()

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

func startTelegramBot(ctx context.Context, env *environment.Env) error {
	logger := env.Logger

	if env.Clients.TelegramBot == nil {
		return fmt.Errorf("telegram bot не инициализирован - проверьте TELEGRAM_BOT_TOKEN")
	}
	if env.Services.TelegramRouter == nil {
		return fmt.Errorf("telegram router не инициализирован")
	}

	if err := env.Clients.TelegramBot.Start(ctx); err != nil {
		return fmt.Errorf("запуск telegram клиента: %w", err)
	}

	updates := env.Clients.TelegramBot.GetUpdates()

	logger.Info("слушаем обновления...")

	go func() {
		for {
			select {
			case <-ctx.Done():
				env.Clients.TelegramBot.Stop()
				return
			case update, ok := <-updates:
				// Stop закрывает канал обновлений
				if !ok {
					return
				}
				if update.Message != nil {
					logger.Debug("получено сообщение",
						slog.Int64("chat_id", update.Message.Chat.ID),
						slog.String("text", update.Message.Text))
				}

				// каждое событие в своей горутине, чаты не блокируют
				// друг друга; порядок внутри чата держит замок чата
				u := update
				go func() {
					if err := env.Services.TelegramRouter.Route(&u); err != nil {
						logger.Error("ошибка обработки обновления", slog.Any("error", err))
					}
				}()
			}
		}
	}()

	return nil
}
