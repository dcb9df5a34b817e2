package cmds

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"recipe-bot/internal/infra/spoonacular"
	"recipe-bot/internal/recipeapi"
)

// MockBotApi - мок Telegram Bot API
type MockBotApi struct {
	SentMessages []tgbotapi.Chattable
}

func (m *MockBotApi) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	m.SentMessages = append(m.SentMessages, c)
	return tgbotapi.Message{MessageID: len(m.SentMessages)}, nil
}

// MockGateway - мок клиента CRUD-сервиса
type MockGateway struct {
	Recipes    []recipeapi.Recipe
	ListErr    error
	GetErr     error
	DeleteErr  error
	DeletedIDs []int64
}

func (m *MockGateway) ListAll(ctx context.Context) ([]recipeapi.Recipe, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Recipes, nil
}

func (m *MockGateway) GetByID(ctx context.Context, id int64) (*recipeapi.Recipe, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	for _, r := range m.Recipes {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, recipeapi.ErrNotFound
}

func (m *MockGateway) Delete(ctx context.Context, id int64) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	for _, r := range m.Recipes {
		if r.ID == id {
			m.DeletedIDs = append(m.DeletedIDs, id)
			return nil
		}
	}
	return recipeapi.ErrNotFound
}

// MockSearchClient - мок внешнего поиска
type MockSearchClient struct {
	Results []spoonacular.Recipe
	Err     error
}

func (m *MockSearchClient) SearchByIngredient(ctx context.Context, ingredient string) ([]spoonacular.Recipe, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Results, nil
}
