package environment

import (
	"context"
	"log/slog"

	"recipe-bot/internal/api"
	"recipe-bot/internal/config"
	"recipe-bot/internal/storage"
	"recipe-bot/internal/stories/recipes"
	"recipe-bot/internal/telegram"
	"recipe-bot/internal/telegram/cmds"
	"recipe-bot/internal/telegram/flows/createrecipe"
	"recipe-bot/internal/telegram/flows/updaterecipe"
	"recipe-bot/internal/telegram/states"
	"recipe-bot/internal/worker"
)

type Services struct {
	Storage        *storage.Storage
	RecipesService *recipes.Service
	APIHandler     *api.Handler

	TelegramRouter *telegram.Router
	WorkerService  *worker.Service
}

func newServices(_ context.Context, clients *Clients, cfg *config.Config, logger *slog.Logger) (*Services, error) {
	var s Services

	// Сторона API: хранилище и сервис рецептов
	storageImpl := storage.New(clients.SQLiteDB.DB)
	s.Storage = storageImpl

	recipesService := recipes.NewService(storageImpl)
	s.RecipesService = recipesService

	s.APIHandler = api.NewHandler(recipesService, clients.Spoonacular, logger)

	// Сторона бота: без telegram клиента роутер не собирается,
	// cmd/api в нём и не нуждается
	if clients.TelegramBot == nil {
		return &s, nil
	}

	stateManager := states.NewManager()

	createHandler := createrecipe.NewHandler(
		clients.TelegramBot,
		stateManager,
		clients.RecipeAPI,
		logger,
	)

	updateHandler := updaterecipe.NewHandler(
		clients.TelegramBot,
		stateManager,
		clients.RecipeAPI,
		logger,
	)

	getAllCommand := cmds.NewGetAllCommand(clients.TelegramBot, clients.RecipeAPI, logger)
	getCommand := cmds.NewGetCommand(clients.TelegramBot, clients.RecipeAPI, logger)
	deleteCommand := cmds.NewDeleteCommand(clients.TelegramBot, clients.RecipeAPI, logger)
	searchCommand := cmds.NewSearchCommand(clients.TelegramBot, clients.Spoonacular, logger)

	s.TelegramRouter = telegram.NewRouter(
		clients.TelegramBot,
		stateManager,
		createHandler,
		updateHandler,
		getAllCommand,
		getCommand,
		deleteCommand,
		searchCommand,
		logger,
	)

	s.WorkerService = worker.NewService(
		stateManager,
		clients.TelegramBot,
		cfg.Sessions.TTL,
		cfg.Sessions.SweepSpec,
		logger,
	)

	return &s, nil
}
