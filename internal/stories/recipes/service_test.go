package recipes

import (
	"context"
	"errors"
	"testing"
)

type mockStorage struct {
	recipes          map[int64]*Recipe
	nextID           int64
	lastListCriteria ListCriteria
}

func newMockStorage() *mockStorage {
	return &mockStorage{recipes: make(map[int64]*Recipe)}
}

func (m *mockStorage) CreateRecipe(ctx context.Context, recipe Recipe) (*Recipe, error) {
	m.nextID++
	r := recipe
	r.ID = m.nextID
	m.recipes[r.ID] = &r
	return &r, nil
}

func (m *mockStorage) GetRecipe(ctx context.Context, criteria GetCriteria) (*Recipe, error) {
	if criteria.ID == nil {
		return nil, errors.New("id is required")
	}
	return m.recipes[*criteria.ID], nil
}

func (m *mockStorage) ListRecipes(ctx context.Context, criteria ListCriteria) ([]*Recipe, error) {
	m.lastListCriteria = criteria
	list := make([]*Recipe, 0, len(m.recipes))
	for _, r := range m.recipes {
		if criteria.Limit > 0 && len(list) >= criteria.Limit {
			break
		}
		list = append(list, r)
	}
	return list, nil
}

func (m *mockStorage) UpdateRecipe(ctx context.Context, criteria GetCriteria, params UpdateParams) (*Recipe, error) {
	r := m.recipes[*criteria.ID]
	if r == nil {
		return nil, nil
	}
	if params.Name != nil {
		r.Name = *params.Name
	}
	if params.Image != nil {
		r.Image = *params.Image
	}
	return r, nil
}

func (m *mockStorage) DeleteRecipe(ctx context.Context, criteria DeleteCriteria) (bool, error) {
	if _, exists := m.recipes[*criteria.ID]; !exists {
		return false, nil
	}
	delete(m.recipes, *criteria.ID)
	return true, nil
}

func TestCreateRecipeValidation(t *testing.T) {
	svc := NewService(newMockStorage())

	tests := []struct {
		name       string
		recipeName string
		image      []byte
	}{
		{name: "пустое имя", recipeName: "", image: []byte("img")},
		{name: "пустая картинка", recipeName: "Борщ", image: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateRecipe(context.Background(), tt.recipeName, tt.image)
			if !errors.Is(err, ErrValidation) {
				t.Errorf("err = %v, want ErrValidation", err)
			}
		})
	}
}

func TestCreateAndGetRecipe(t *testing.T) {
	svc := NewService(newMockStorage())

	created, err := svc.CreateRecipe(context.Background(), "Борщ", []byte("img"))
	if err != nil {
		t.Fatalf("CreateRecipe: %v", err)
	}
	if created.ID == 0 {
		t.Error("сервис не назначил ID")
	}

	got, err := svc.GetRecipe(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetRecipe: %v", err)
	}
	if got == nil || got.Name != "Борщ" {
		t.Errorf("got = %+v", got)
	}
}

func TestGetRecipeAbsent(t *testing.T) {
	svc := NewService(newMockStorage())

	got, err := svc.GetRecipe(context.Background(), 999)
	if err != nil {
		t.Fatalf("GetRecipe: %v", err)
	}
	if got != nil {
		t.Errorf("got = %+v, want nil", got)
	}
}

func TestUpdateRecipeAbsent(t *testing.T) {
	svc := NewService(newMockStorage())

	got, err := svc.UpdateRecipe(context.Background(), 999, "Паста", []byte("img"))
	if err != nil {
		t.Fatalf("UpdateRecipe: %v", err)
	}
	if got != nil {
		t.Errorf("got = %+v, want nil", got)
	}
}

func TestUpdateRecipe(t *testing.T) {
	storage := newMockStorage()
	svc := NewService(storage)

	created, err := svc.CreateRecipe(context.Background(), "Борщ", []byte("img"))
	if err != nil {
		t.Fatalf("CreateRecipe: %v", err)
	}

	updated, err := svc.UpdateRecipe(context.Background(), created.ID, "Паста", []byte("new"))
	if err != nil {
		t.Fatalf("UpdateRecipe: %v", err)
	}
	if updated == nil || updated.Name != "Паста" {
		t.Errorf("updated = %+v", updated)
	}
}

func TestListRecipesUnbounded(t *testing.T) {
	storage := newMockStorage()
	svc := NewService(storage)

	for i := 0; i < 150; i++ {
		if _, err := svc.CreateRecipe(context.Background(), "Рецепт", []byte("img")); err != nil {
			t.Fatalf("CreateRecipe: %v", err)
		}
	}

	list, err := svc.ListRecipes(context.Background())
	if err != nil {
		t.Fatalf("ListRecipes: %v", err)
	}
	// список отдаётся целиком, без скрытого лимита
	if len(list) != 150 {
		t.Errorf("len(list) = %d, want 150", len(list))
	}
	if storage.lastListCriteria.Limit != 0 || storage.lastListCriteria.Offset != 0 {
		t.Errorf("criteria = %+v, want unbounded", storage.lastListCriteria)
	}
}

func TestDeleteRecipe(t *testing.T) {
	svc := NewService(newMockStorage())

	created, err := svc.CreateRecipe(context.Background(), "Борщ", []byte("img"))
	if err != nil {
		t.Fatalf("CreateRecipe: %v", err)
	}

	deleted, err := svc.DeleteRecipe(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("DeleteRecipe: %v", err)
	}
	if !deleted {
		t.Error("deleted = false")
	}

	deleted, err = svc.DeleteRecipe(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("DeleteRecipe: %v", err)
	}
	if deleted {
		t.Error("повторное удаление должно вернуть false")
	}
}
