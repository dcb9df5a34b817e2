package api

import (
	"context"

	"recipe-bot/internal/infra/spoonacular"
	"recipe-bot/internal/stories/recipes"
)

type (
	RecipesService interface {
		CreateRecipe(ctx context.Context, name string, image []byte) (*recipes.Recipe, error)
		GetRecipe(ctx context.Context, id int64) (*recipes.Recipe, error)
		ListRecipes(ctx context.Context) ([]*recipes.Recipe, error)
		UpdateRecipe(ctx context.Context, id int64, name string, image []byte) (*recipes.Recipe, error)
		DeleteRecipe(ctx context.Context, id int64) (bool, error)
	}

	SearchClient interface {
		SearchByIngredient(ctx context.Context, ingredient string) ([]spoonacular.Recipe, error)
	}
)
