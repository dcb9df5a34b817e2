package recipes

import "time"

type Recipe struct {
	ID        int64
	Name      string
	Image     []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Критерии для получения рецепта
type GetCriteria struct {
	ID *int64
}

// Критерии для удаления рецепта
type DeleteCriteria struct {
	ID *int64
}

// Критерии для списка рецептов
type ListCriteria struct {
	Limit  int
	Offset int
}

// Параметры для обновления рецепта
type UpdateParams struct {
	Name  *string
	Image *[]byte
}
