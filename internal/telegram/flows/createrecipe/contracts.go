package createrecipe

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"recipe-bot/internal/recipeapi"
	"recipe-bot/internal/telegram/flows"
	"recipe-bot/internal/telegram/states"
)

type (
	botApi interface {
		Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
		DownloadFile(ctx context.Context, fileID string) ([]byte, error)
	}

	stateManager interface {
		SetState(chatID int64, state states.State, data any)
		Clear(chatID int64)
		GetCreateRecipeData(chatID int64) (*flows.CreateRecipeFlowData, error)
	}

	recipeGateway interface {
		Create(ctx context.Context, recipe recipeapi.Recipe) (*recipeapi.Recipe, error)
	}
)
