package cmds

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"

	"recipe-bot/internal/recipeapi"
	"recipe-bot/internal/telegram/messages"
)

type DeleteCommand struct {
	bot     botApi
	gateway recipeGateway
	logger  *slog.Logger
}

func NewDeleteCommand(bot botApi, gateway recipeGateway, logger *slog.Logger) *DeleteCommand {
	return &DeleteCommand{
		bot:     bot,
		gateway: gateway,
		logger:  logger,
	}
}

// Execute удаляет рецепт по номеру. Незавершённая операция чата,
// если есть, не трогается.
func (c *DeleteCommand) Execute(ctx context.Context, chatID int64, recipeID int64) error {
	err := c.gateway.Delete(ctx, recipeID)
	if err != nil {
		if errors.Is(err, recipeapi.ErrNotFound) {
			return c.reply(chatID, messages.RecipeNotFound)
		}
		c.logger.Error("не удалось удалить рецепт",
			slog.Int64("recipe_id", recipeID),
			slog.Any("error", err))
		return c.reply(chatID, messages.DeleteError)
	}

	return c.reply(chatID, messages.RecipeDeleted)
}

func (c *DeleteCommand) reply(chatID int64, text string) error {
	_, err := c.bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}
