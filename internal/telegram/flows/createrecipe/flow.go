package createrecipe

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

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

// Start начинает флоу создания рецепта: запоминает название и просит фото.
// Предыдущая незавершённая операция чата перезаписывается.
func (h *Handler) Start(chatID int64, name string) error {
	if name == "" {
		return h.reply(chatID, messages.CreateNameRequired)
	}

	flowData := &flows.CreateRecipeFlowData{Name: name}
	h.stateManager.SetState(chatID, states.RecipeCreateWaitPhoto, flowData)

	return h.reply(chatID, messages.SendPhotoForRecipe)
}

// HandlePhoto завершает флоу: скачивает фото, создаёт рецепт и очищает
// состояние. Состояние очищается и при ошибке, флоу не перезапускается.
func (h *Handler) HandlePhoto(ctx context.Context, chatID int64, fileID string) error {
	data, err := h.stateManager.GetCreateRecipeData(chatID)
	if err != nil {
		h.logger.Error("данные флоу создания потеряны", slog.Int64("chat_id", chatID), slog.Any("error", err))
		h.stateManager.Clear(chatID)
		return h.reply(chatID, messages.CreateError)
	}

	image, err := h.bot.DownloadFile(ctx, fileID)
	if err != nil {
		h.logger.Error("не удалось скачать фото", slog.Int64("chat_id", chatID), slog.Any("error", err))
		h.stateManager.Clear(chatID)
		return h.reply(chatID, messages.CreateError)
	}

	created, err := h.gateway.Create(ctx, recipeapi.Recipe{
		Name:  data.Name,
		Image: image,
	})

	h.stateManager.Clear(chatID)

	if err != nil {
		h.logger.Error("не удалось создать рецепт",
			slog.Int64("chat_id", chatID),
			slog.String("name", data.Name),
			slog.Any("error", err))
		return h.reply(chatID, messages.CreateError)
	}

	h.logger.Info("рецепт создан",
		slog.Int64("chat_id", chatID),
		slog.Int64("recipe_id", created.ID))

	return h.reply(chatID, messages.RecipeCreated)
}

func (h *Handler) reply(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := h.bot.Send(msg)
	return err
}
