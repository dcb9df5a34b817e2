package messages

import (
	"fmt"
)

// Общие
const (
	Error          = "❌ Ошибка. Пожалуйста, попробуйте позже."
	UnknownCommand = "Неизвестная команда. Отправьте /start, чтобы посмотреть список команд."
	Help           = `👋 Бот рецептов. Доступные команды:

/getall — все рецепты
/get <id> — рецепт по номеру
/create <название> — создать рецепт (дальше бот попросит фото)
/update <id>, <название> — обновить рецепт (дальше бот попросит фото)
/delete <id> — удалить рецепт
/search <ингредиент> — найти рецепты по ингредиенту
/cancel — отменить начатое создание или обновление`
)

// Ошибки разбора команд
const (
	InvalidRecipeID = "❌ Неверный номер рецепта. Укажите целое число, например: /get 3"
	UpdateFormat    = "❌ Неверный формат. Используйте: /update <id>, <новое название>"
)

// Флоу создания и обновления
const (
	CreateNameRequired    = "❌ Укажите название рецепта: /create <название>"
	SendPhotoForRecipe    = "📷 Теперь отправьте фото рецепта"
	SendNewPhotoForRecipe = "📷 Теперь отправьте новое фото рецепта"
	RecipeCreated         = "✅ Рецепт создан"
	RecipeUpdated         = "✅ Рецепт обновлён"
	CreateError           = "❌ Не удалось создать рецепт. Начните заново: /create <название>"
	UpdateError           = "❌ Не удалось обновить рецепт. Начните заново: /update <id>, <название>"
	FlowCancelled         = "Отменено"
	NothingToCancel       = "Нечего отменять"
	FlowExpired           = "⏰ Вы так и не отправили фото, операция отменена. Начните заново."
)

// Команды без состояния
const (
	RecipeNotFound           = "❌ Рецепт с таким номером не найден"
	NoRecipes                = "Рецептов пока нет. Создайте первый: /create <название>"
	RecipeDeleted            = "✅ Рецепт удалён"
	GetError                 = "❌ Не удалось получить рецепт"
	ListError                = "❌ Не удалось получить список рецептов"
	DeleteError              = "❌ Не удалось удалить рецепт"
	SearchError              = "❌ Поиск сейчас недоступен, попробуйте позже"
	SearchIngredientRequired = "❌ Укажите ингредиент: /search <ингредиент>"
)

// FormatRecipeCaption — подпись к фото рецепта
func FormatRecipeCaption(id int64, name string) string {
	return fmt.Sprintf("#%d %s", id, name)
}

// FormatNoRecipesFound — ответ на поиск без результатов
func FormatNoRecipesFound(ingredient string) string {
	return fmt.Sprintf("По ингредиенту «%s» ничего не найдено", ingredient)
}
