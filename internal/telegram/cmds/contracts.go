package cmds

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"recipe-bot/internal/infra/spoonacular"
	"recipe-bot/internal/recipeapi"
)

type (
	botApi interface {
		Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	}

	recipeGateway interface {
		ListAll(ctx context.Context) ([]recipeapi.Recipe, error)
		GetByID(ctx context.Context, id int64) (*recipeapi.Recipe, error)
		Delete(ctx context.Context, id int64) error
	}

	searchClient interface {
		SearchByIngredient(ctx context.Context, ingredient string) ([]spoonacular.Recipe, error)
	}
)
