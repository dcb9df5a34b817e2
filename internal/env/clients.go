package environment

import (
	"context"
	"log/slog"
	"time"

	"recipe-bot/internal/config"
	"recipe-bot/internal/infra/spoonacular"
	"recipe-bot/internal/infra/sqlite3"
	"recipe-bot/internal/infra/telegram"
	"recipe-bot/internal/recipeapi"
)

type Clients struct {
	SQLiteDB    *sqlite3.DB
	TelegramBot *telegram.Client
	RecipeAPI   *recipeapi.Client
	Spoonacular *spoonacular.Client
}

func newClients(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Clients, error) {
	sqliteDB, err := provideSQLiteDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	telegramBot, err := provideTelegramBot(cfg, logger)
	if err != nil {
		return nil, err
	}

	recipeAPI := recipeapi.NewClient(cfg.RecipeAPI.BaseURL, cfg.RecipeAPI.Timeout, logger)

	spoonacularClient := spoonacular.NewClient(
		cfg.Spoonacular.SearchURL,
		cfg.Spoonacular.ImageURL,
		cfg.Spoonacular.APIKey,
		cfg.Spoonacular.ImageSize,
		cfg.Spoonacular.Timeout,
		cfg.Spoonacular.RateLimit.RPS,
		cfg.Spoonacular.RateLimit.Burst,
		logger,
	)

	return &Clients{
		SQLiteDB:    sqliteDB,
		TelegramBot: telegramBot,
		RecipeAPI:   recipeAPI,
		Spoonacular: spoonacularClient,
	}, nil
}

func (c *Clients) Close() {
	if c.SQLiteDB != nil {
		_ = c.SQLiteDB.Close()
	}
}

func provideSQLiteDB(ctx context.Context, cfg config.Config) (*sqlite3.DB, error) {
	maxLifetimeStr := cfg.DB.MaxLifetime
	if maxLifetimeStr == "" {
		maxLifetimeStr = "5m"
	}
	maxLifetime, err := time.ParseDuration(maxLifetimeStr)
	if err != nil {
		return nil, err
	}

	opts := []sqlite3.Option{
		sqlite3.WithDSN(cfg.DB.Path),
		sqlite3.WithMaxOpenConns(cfg.DB.MaxOpenConns),
		sqlite3.WithMaxIdleConns(cfg.DB.MaxIdleConns),
		sqlite3.WithConnMaxLifetime(maxLifetime),
	}

	return sqlite3.New(ctx, opts...)
}

func provideTelegramBot(cfg config.Config, logger *slog.Logger) (*telegram.Client, error) {
	// без токена бот не создаётся, cmd/api работает без него
	if cfg.Telegram.BotToken == "" {
		return nil, nil
	}

	client, err := telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.Timeout, logger)
	if err != nil {
		return nil, err
	}

	return client, nil
}
