package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"recipe-bot/internal/stories/recipes"
)

const recipesTable = "recipes"

const recipesSchema = `
CREATE TABLE IF NOT EXISTS recipes (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	image BLOB NOT NULL,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
)`

var recipeRowFields = fields(recipeRow{})

type recipeRow struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Image     []byte    `db:"image"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r recipeRow) ToModel() *recipes.Recipe {
	return &recipes.Recipe{
		ID:        r.ID,
		Name:      r.Name,
		Image:     r.Image,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Bootstrap создаёт схему. Для :memory: вызывается при каждом старте.
func (s *Storage) Bootstrap(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, recipesSchema); err != nil {
		return fmt.Errorf("create recipes table: %w", err)
	}
	return nil
}

func (s *Storage) CreateRecipe(ctx context.Context, recipe recipes.Recipe) (*recipes.Recipe, error) {
	params := map[string]interface{}{
		"name":       recipe.Name,
		"image":      recipe.Image,
		"created_at": s.now(),
		"updated_at": s.now(),
	}

	q, args, err := s.stmpBuilder().
		Insert(recipesTable).
		SetMap(params).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql query: %w", err)
	}

	result, err := s.db.ExecContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("db.ExecContext: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("result.LastInsertId: %w", err)
	}

	return s.GetRecipe(ctx, recipes.GetCriteria{ID: &id})
}

func (s *Storage) GetRecipe(ctx context.Context, criteria recipes.GetCriteria) (*recipes.Recipe, error) {
	query := s.stmpBuilder().
		Select(recipeRowFields).
		From(recipesTable).
		Limit(1)

	if criteria.ID != nil {
		query = query.Where(sq.Eq{"id": *criteria.ID})
	}

	q, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql query: %w", err)
	}

	row := s.db.QueryRowContext(ctx, q, args...)

	var r recipeRow
	err = row.Scan(&r.ID, &r.Name, &r.Image, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("row.Scan: %w", err)
	}

	return r.ToModel(), nil
}

func (s *Storage) ListRecipes(ctx context.Context, criteria recipes.ListCriteria) ([]*recipes.Recipe, error) {
	query := s.stmpBuilder().
		Select(recipeRowFields).
		From(recipesTable).
		OrderBy("id ASC")

	if criteria.Limit > 0 {
		query = query.Limit(uint64(criteria.Limit))
	}
	if criteria.Offset > 0 {
		query = query.Offset(uint64(criteria.Offset))
	}

	q, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("db.QueryContext: %w", err)
	}
	defer rows.Close()

	var result []*recipes.Recipe
	for rows.Next() {
		var r recipeRow
		if err := rows.Scan(&r.ID, &r.Name, &r.Image, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("rows.Scan: %w", err)
		}
		result = append(result, r.ToModel())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return result, nil
}

func (s *Storage) UpdateRecipe(ctx context.Context, criteria recipes.GetCriteria, params recipes.UpdateParams) (*recipes.Recipe, error) {
	query := s.stmpBuilder().
		Update(recipesTable).
		Set("updated_at", s.now())

	if criteria.ID != nil {
		query = query.Where(sq.Eq{"id": *criteria.ID})
	}

	if params.Name != nil {
		query = query.Set("name", *params.Name)
	}
	if params.Image != nil {
		query = query.Set("image", *params.Image)
	}

	q, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql query: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, q, args...); err != nil {
		return nil, fmt.Errorf("db.ExecContext: %w", err)
	}

	return s.GetRecipe(ctx, criteria)
}

func (s *Storage) DeleteRecipe(ctx context.Context, criteria recipes.DeleteCriteria) (bool, error) {
	query := s.stmpBuilder().
		Delete(recipesTable)

	if criteria.ID != nil {
		query = query.Where(sq.Eq{"id": *criteria.ID})
	}

	q, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("build sql query: %w", err)
	}

	result, err := s.db.ExecContext(ctx, q, args...)
	if err != nil {
		return false, fmt.Errorf("db.ExecContext: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("result.RowsAffected: %w", err)
	}

	return affected > 0, nil
}
