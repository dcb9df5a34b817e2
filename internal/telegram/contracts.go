package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"recipe-bot/internal/telegram/states"
)

type (
	botApi interface {
		Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	}

	stateManager interface {
		GetState(chatID int64) states.State
		Clear(chatID int64)
		LockChat(chatID int64)
		UnlockChat(chatID int64)
	}

	createRecipeFlow interface {
		Start(chatID int64, name string) error
		HandlePhoto(ctx context.Context, chatID int64, fileID string) error
	}

	updateRecipeFlow interface {
		Start(chatID int64, recipeID int64, name string) error
		HandlePhoto(ctx context.Context, chatID int64, fileID string) error
	}

	getAllCommand interface {
		Execute(ctx context.Context, chatID int64) error
	}

	getCommand interface {
		Execute(ctx context.Context, chatID int64, recipeID int64) error
	}

	deleteCommand interface {
		Execute(ctx context.Context, chatID int64, recipeID int64) error
	}

	searchCommand interface {
		Execute(ctx context.Context, chatID int64, ingredient string) error
	}
)
