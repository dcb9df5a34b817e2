package updaterecipe

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"

	"recipe-bot/internal/recipeapi"
	"recipe-bot/internal/telegram/flows"
	"recipe-bot/internal/telegram/messages"
	"recipe-bot/internal/telegram/states"
)

type Handler struct {
	bot          botApi
	stateManager stateManager
	gateway      recipeGateway
	logger       *slog.Logger
}

func NewHandler(
	bot botApi,
	sm stateManager,
	gateway recipeGateway,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		bot:          bot,
		stateManager: sm,
		gateway:      gateway,
		logger:       logger,
	}
}

// Start начинает флоу обновления рецепта: запоминает id с новым названием
// и просит фото. Предыдущая незавершённая операция чата перезаписывается.
func (h *Handler) Start(chatID int64, recipeID int64, name string) error {
	flowData := &flows.UpdateRecipeFlowData{RecipeID: recipeID, Name: name}
	h.stateManager.SetState(chatID, states.RecipeUpdateWaitPhoto, flowData)

	return h.reply(chatID, messages.SendNewPhotoForRecipe)
}

// HandlePhoto завершает флоу: скачивает фото, обновляет рецепт и очищает
// состояние. Состояние очищается и при ошибке, флоу не перезапускается.
func (h *Handler) HandlePhoto(ctx context.Context, chatID int64, fileID string) error {
	data, err := h.stateManager.GetUpdateRecipeData(chatID)
	if err != nil {
		h.logger.Error("данные флоу обновления потеряны", slog.Int64("chat_id", chatID), slog.Any("error", err))
		h.stateManager.Clear(chatID)
		return h.reply(chatID, messages.UpdateError)
	}

	image, err := h.bot.DownloadFile(ctx, fileID)
	if err != nil {
		h.logger.Error("не удалось скачать фото", slog.Int64("chat_id", chatID), slog.Any("error", err))
		h.stateManager.Clear(chatID)
		return h.reply(chatID, messages.UpdateError)
	}

	err = h.gateway.Update(ctx, data.RecipeID, recipeapi.Recipe{
		Name:  data.Name,
		Image: image,
	})

	h.stateManager.Clear(chatID)

	if err != nil {
		if errors.Is(err, recipeapi.ErrNotFound) {
			return h.reply(chatID, messages.RecipeNotFound)
		}
		h.logger.Error("не удалось обновить рецепт",
			slog.Int64("chat_id", chatID),
			slog.Int64("recipe_id", data.RecipeID),
			slog.Any("error", err))
		return h.reply(chatID, messages.UpdateError)
	}

	h.logger.Info("рецепт обновлён",
		slog.Int64("chat_id", chatID),
		slog.Int64("recipe_id", data.RecipeID))

	return h.reply(chatID, messages.RecipeUpdated)
}

func (h *Handler) reply(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := h.bot.Send(msg)
	return err
}
