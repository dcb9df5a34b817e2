package recipes

import (
	"context"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// ErrValidation возвращается при некорректных входных данных
var ErrValidation = errors.New("validation failed")

// Service provides business logic for recipe operations
type Service struct {
	storage Storage
}

// NewService creates a new recipe service
func NewService(storage Storage) *Service {
	return &Service{
		storage: storage,
	}
}

func (s *Service) CreateRecipe(ctx context.Context, name string, image []byte) (*Recipe, error) {
	if name == "" {
		return nil, errors.Wrap(ErrValidation, "name is required")
	}
	if len(image) == 0 {
		return nil, errors.Wrap(ErrValidation, "image is required")
	}

	return s.storage.CreateRecipe(ctx, Recipe{
		Name:  name,
		Image: image,
	})
}

// GetRecipe возвращает рецепт по ID, nil если его нет
func (s *Service) GetRecipe(ctx context.Context, id int64) (*Recipe, error) {
	return s.storage.GetRecipe(ctx, GetCriteria{ID: lo.ToPtr(id)})
}

// ListRecipes возвращает все рецепты без ограничения: GET /recipes отдаёт
// полный список, пагинации у сервиса нет
func (s *Service) ListRecipes(ctx context.Context) ([]*Recipe, error) {
	return s.storage.ListRecipes(ctx, ListCriteria{})
}

// UpdateRecipe обновляет имя и картинку рецепта, nil если рецепта нет
func (s *Service) UpdateRecipe(ctx context.Context, id int64, name string, image []byte) (*Recipe, error) {
	if name == "" {
		return nil, errors.Wrap(ErrValidation, "name is required")
	}
	if len(image) == 0 {
		return nil, errors.Wrap(ErrValidation, "image is required")
	}

	existing, err := s.storage.GetRecipe(ctx, GetCriteria{ID: lo.ToPtr(id)})
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	return s.storage.UpdateRecipe(ctx, GetCriteria{ID: lo.ToPtr(id)}, UpdateParams{
		Name:  lo.ToPtr(name),
		Image: lo.ToPtr(image),
	})
}

// DeleteRecipe удаляет рецепт, false если рецепта не было
func (s *Service) DeleteRecipe(ctx context.Context, id int64) (bool, error) {
	return s.storage.DeleteRecipe(ctx, DeleteCriteria{ID: lo.ToPtr(id)})
}
