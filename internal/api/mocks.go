package api

import (
	"context"
	"sort"

	"github.com/pkg/errors"

	"recipe-bot/internal/infra/spoonacular"
	"recipe-bot/internal/stories/recipes"
)

// MockRecipesService - сервис рецептов поверх карты в памяти
type MockRecipesService struct {
	Recipes map[int64]*recipes.Recipe
	NextID  int64
	Err     error
}

func NewMockRecipesService() *MockRecipesService {
	return &MockRecipesService{Recipes: make(map[int64]*recipes.Recipe)}
}

func (m *MockRecipesService) CreateRecipe(ctx context.Context, name string, image []byte) (*recipes.Recipe, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if name == "" || len(image) == 0 {
		return nil, errors.Wrap(recipes.ErrValidation, "name and image are required")
	}
	m.NextID++
	r := &recipes.Recipe{ID: m.NextID, Name: name, Image: image}
	m.Recipes[r.ID] = r
	return r, nil
}

func (m *MockRecipesService) GetRecipe(ctx context.Context, id int64) (*recipes.Recipe, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Recipes[id], nil
}

func (m *MockRecipesService) ListRecipes(ctx context.Context) ([]*recipes.Recipe, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	list := make([]*recipes.Recipe, 0, len(m.Recipes))
	for _, r := range m.Recipes {
		list = append(list, r)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (m *MockRecipesService) UpdateRecipe(ctx context.Context, id int64, name string, image []byte) (*recipes.Recipe, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if name == "" || len(image) == 0 {
		return nil, errors.Wrap(recipes.ErrValidation, "name and image are required")
	}
	r, exists := m.Recipes[id]
	if !exists {
		return nil, nil
	}
	r.Name = name
	r.Image = image
	return r, nil
}

func (m *MockRecipesService) DeleteRecipe(ctx context.Context, id int64) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	if _, exists := m.Recipes[id]; !exists {
		return false, nil
	}
	delete(m.Recipes, id)
	return true, nil
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
