package cmds

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"recipe-bot/internal/telegram/messages"
)

type GetAllCommand struct {
	bot     botApi
	gateway recipeGateway
	logger  *slog.Logger
}

func NewGetAllCommand(bot botApi, gateway recipeGateway, logger *slog.Logger) *GetAllCommand {
	return &GetAllCommand{
		bot:     bot,
		gateway: gateway,
		logger:  logger,
	}
}

// Execute отправляет все рецепты, каждый отдельным фото с подписью
func (c *GetAllCommand) Execute(ctx context.Context, chatID int64) error {
	recipes, err := c.gateway.ListAll(ctx)
	if err != nil {
		c.logger.Error("не удалось получить список рецептов", slog.Any("error", err))
		return c.reply(chatID, messages.ListError)
	}

	if len(recipes) == 0 {
		return c.reply(chatID, messages.NoRecipes)
	}

	for _, recipe := range recipes {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{
			Name:  "recipe.jpg",
			Bytes: recipe.Image,
		})
		photo.Caption = messages.FormatRecipeCaption(recipe.ID, recipe.Name)

		if _, err := c.bot.Send(photo); err != nil {
			c.logger.Error("не удалось отправить рецепт",
				slog.Int64("chat_id", chatID),
				slog.Int64("recipe_id", recipe.ID),
				slog.Any("error", err))
			return err
		}
	}

	return nil
}

func (c *GetAllCommand) reply(chatID int64, text string) error {
	_, err := c.bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}
