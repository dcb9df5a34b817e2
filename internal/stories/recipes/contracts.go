package recipes

import "context"

type (
	Storage interface {
		CreateRecipe(ctx context.Context, recipe Recipe) (*Recipe, error)
		GetRecipe(ctx context.Context, criteria GetCriteria) (*Recipe, error)
		ListRecipes(ctx context.Context, criteria ListCriteria) ([]*Recipe, error)
		UpdateRecipe(ctx context.Context, criteria GetCriteria, params UpdateParams) (*Recipe, error)
		DeleteRecipe(ctx context.Context, criteria DeleteCriteria) (bool, error)
	}
)
