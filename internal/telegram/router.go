package telegram

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"recipe-bot/internal/telegram/messages"
	"recipe-bot/internal/telegram/states"
)

type Router struct {
	bot          botApi
	stateManager stateManager
	logger       *slog.Logger

	// Handlers
	createRecipeHandler createRecipeFlow
	updateRecipeHandler updateRecipeFlow
	getAllCommand       getAllCommand
	getCommand          getCommand
	deleteCommand       deleteCommand
	searchCommand       searchCommand
}

func NewRouter(
	bot botApi,
	sm stateManager,
	createHandler createRecipeFlow,
	updateHandler updateRecipeFlow,
	getAllCmd getAllCommand,
	getCmd getCommand,
	deleteCmd deleteCommand,
	searchCmd searchCommand,
	logger *slog.Logger,
) *Router {
	return &Router{
		bot:                 bot,
		stateManager:        sm,
		logger:              logger,
		createRecipeHandler: createHandler,
		updateRecipeHandler: updateHandler,
		getAllCommand:       getAllCmd,
		getCommand:          getCmd,
		deleteCommand:       deleteCmd,
		searchCommand:       searchCmd,
	}
}

// Route обрабатывает одно событие. Обработка сериализуется по чату на всё
// время вызова, чтобы два близких события одного чата не завершили одну
// незавершённую операцию дважды. События разных чатов идут параллельно,
// каждое в своей горутине.
func (r *Router) Route(update *tgbotapi.Update) error {
	if update.Message == nil {
		return nil // бот реагирует только на сообщения
	}

	chatID := update.Message.Chat.ID

	r.stateManager.LockChat(chatID)
	defer r.stateManager.UnlockChat(chatID)

	ctx := context.Background()

	var (
		kind string
		err  error
	)
	switch {
	case len(update.Message.Photo) > 0:
		kind = "photo"
		err = r.handlePhoto(ctx, chatID, update.Message.Photo)
	case update.Message.Text != "":
		kind = "text"
		err = r.handleText(ctx, chatID, update.Message.Text)
	default:
		return nil
	}

	result := "ok"
	if err != nil {
		result = "error"
	}
	updatesTotal.WithLabelValues(kind, result).Inc()

	if err != nil {
		r.logger.Error("ошибка обработки события",
			slog.Int64("chat_id", chatID),
			slog.String("type", kind),
			slog.Any("error", err))
		// ошибка одного события не должна валить цикл обновлений
		_ = r.reply(chatID, messages.Error)
	}

	return err
}

func (r *Router) handleText(ctx context.Context, chatID int64, text string) error {
	cmd := ParseCommand(text)

	switch cmd.Kind {
	case CmdStart:
		return r.reply(chatID, messages.Help)

	case CmdCancel:
		if r.stateManager.GetState(chatID) == states.StateNone {
			return r.reply(chatID, messages.NothingToCancel)
		}
		r.stateManager.Clear(chatID)
		return r.reply(chatID, messages.FlowCancelled)

	case CmdGetAll:
		return r.getAllCommand.Execute(ctx, chatID)

	case CmdGet:
		if cmd.Invalid {
			return r.reply(chatID, messages.InvalidRecipeID)
		}
		return r.getCommand.Execute(ctx, chatID, cmd.ID)

	case CmdCreate:
		return r.createRecipeHandler.Start(chatID, cmd.Name)

	case CmdUpdate:
		if cmd.Invalid {
			return r.reply(chatID, messages.UpdateFormat)
		}
		return r.updateRecipeHandler.Start(chatID, cmd.ID, cmd.Name)

	case CmdDelete:
		if cmd.Invalid {
			return r.reply(chatID, messages.InvalidRecipeID)
		}
		return r.deleteCommand.Execute(ctx, chatID, cmd.ID)

	case CmdSearch:
		return r.searchCommand.Execute(ctx, chatID, cmd.Ingredient)

	default:
		return r.reply(chatID, messages.UnknownCommand)
	}
}

// handlePhoto направляет фото в ту незавершённую операцию, которая есть у
// чата. Фото без незавершённой операции игнорируется.
func (r *Router) handlePhoto(ctx context.Context, chatID int64, photo []tgbotapi.PhotoSize) error {
	// последний элемент - самый большой размер
	fileID := photo[len(photo)-1].FileID

	switch r.stateManager.GetState(chatID) {
	case states.RecipeCreateWaitPhoto:
		return r.createRecipeHandler.HandlePhoto(ctx, chatID, fileID)
	case states.RecipeUpdateWaitPhoto:
		return r.updateRecipeHandler.HandlePhoto(ctx, chatID, fileID)
	default:
		return nil
	}
}

func (r *Router) reply(chatID int64, text string) error {
	_, err := r.bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}
