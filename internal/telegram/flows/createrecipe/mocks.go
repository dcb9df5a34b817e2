package createrecipe

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
	Created   []recipeapi.Recipe
	CreateErr error
	NextID    int64
}

func (m *MockGateway) Create(ctx context.Context, recipe recipeapi.Recipe) (*recipeapi.Recipe, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	m.Created = append(m.Created, recipe)
	m.NextID++
	created := recipe
	created.ID = m.NextID
	return &created, nil
}
