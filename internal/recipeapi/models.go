package recipeapi

// Recipe - рецепт в том виде, в каком его отдаёт CRUD-сервис.
// Image сериализуется в base64 средствами encoding/json.
type Recipe struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image []byte `json:"image"`
}
