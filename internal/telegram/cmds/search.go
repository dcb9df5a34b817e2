package cmds

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"recipe-bot/internal/telegram/messages"
)

type SearchCommand struct {
	bot    botApi
	search searchClient
	logger *slog.Logger
}

func NewSearchCommand(bot botApi, search searchClient, logger *slog.Logger) *SearchCommand {
	return &SearchCommand{
		bot:    bot,
		search: search,
		logger: logger,
	}
}

// Execute ищет рецепты по ингредиенту и отправляет каждый найденный
// рецепт фото с названием в подписи
func (c *SearchCommand) Execute(ctx context.Context, chatID int64, ingredient string) error {
	if ingredient == "" {
		return c.reply(chatID, messages.SearchIngredientRequired)
	}

	found, err := c.search.SearchByIngredient(ctx, ingredient)
	if err != nil {
		c.logger.Error("поиск рецептов не удался",
			slog.String("ingredient", ingredient),
			slog.Any("error", err))
		return c.reply(chatID, messages.SearchError)
	}

	if len(found) == 0 {
		return c.reply(chatID, messages.FormatNoRecipesFound(ingredient))
	}

	for _, recipe := range found {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{
			Name:  "recipe.jpg",
			Bytes: recipe.Image,
		})
		photo.Caption = recipe.Name

		if _, err := c.bot.Send(photo); err != nil {
			c.logger.Error("не удалось отправить найденный рецепт",
				slog.Int64("chat_id", chatID),
				slog.Any("error", err))
			return err
		}
	}

	return nil
}

func (c *SearchCommand) reply(chatID int64, text string) error {
	_, err := c.bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}
