package flows

// CreateRecipeFlowData — данные флоу создания рецепта, живут в менеджере
// состояний пока пользователь не пришлёт фото
type CreateRecipeFlowData struct {
	Name string
}

// UpdateRecipeFlowData — данные флоу обновления рецепта
type UpdateRecipeFlowData struct {
	RecipeID int64
	Name     string
}
