package worker

import (
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"recipe-bot/internal/telegram/states"
)

type (
	stateManager interface {
		Entries() []states.Entry
		ClearIfStale(chatID int64, cutoff time.Time) bool
		LockChat(chatID int64)
		UnlockChat(chatID int64)
	}

	botApi interface {
		Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	}
)
