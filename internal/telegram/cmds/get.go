package cmds

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"

	"recipe-bot/internal/recipeapi"
	"recipe-bot/internal/telegram/messages"
)

type GetCommand struct {
	bot     botApi
	gateway recipeGateway
	logger  *slog.Logger
}

func NewGetCommand(bot botApi, gateway recipeGateway, logger *slog.Logger) *GetCommand {
	return &GetCommand{
		bot:     bot,
		gateway: gateway,
		logger:  logger,
	}
}

// Execute отправляет рецепт по номеру. Отсутствующий рецепт получает
// отдельный ответ, не общую ошибку.
func (c *GetCommand) Execute(ctx context.Context, chatID int64, recipeID int64) error {
	recipe, err := c.gateway.GetByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, recipeapi.ErrNotFound) {
			return c.reply(chatID, messages.RecipeNotFound)
		}
		c.logger.Error("не удалось получить рецепт",
			slog.Int64("recipe_id", recipeID),
			slog.Any("error", err))
		return c.reply(chatID, messages.GetError)
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{
		Name:  "recipe.jpg",
		Bytes: recipe.Image,
	})
	photo.Caption = messages.FormatRecipeCaption(recipe.ID, recipe.Name)

	_, err = c.bot.Send(photo)
	return err
}

func (c *GetCommand) reply(chatID int64, text string) error {
	_, err := c.bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}
