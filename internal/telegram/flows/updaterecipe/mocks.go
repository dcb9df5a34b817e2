package updaterecipe

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"recipe-bot/internal/recipeapi"
)

// MockBotApi - мок Telegram Bot API
type MockBotApi struct {
	SentMessages []tgbotapi.Chattable
	Files        map[string][]byte
	DownloadErr  error
}

func (m *MockBotApi) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	m.SentMessages = append(m.SentMessages, c)
	return tgbotapi.Message{MessageID: len(m.SentMessages)}, nil
}

func (m *MockBotApi) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	if m.DownloadErr != nil {
		return nil, m.DownloadErr
	}
	return m.Files[fileID], nil
}

// MockGateway - мок клиента CRUD-сервиса
type MockGateway struct {
	UpdatedIDs []int64
	Updated    []recipeapi.Recipe
	UpdateErr  error
}

func (m *MockGateway) Update(ctx context.Context, id int64, recipe recipeapi.Recipe) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	m.UpdatedIDs = append(m.UpdatedIDs, id)
	m.Updated = append(m.Updated, recipe)
	return nil
}
