package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/pkg/errors"

	"recipe-bot/internal/stories/recipes"
)

// recipeDTO — представление рецепта на проводе. Image сериализуется
// encoding/json как base64.
type recipeDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image []byte `json:"image"`
}

type searchResultDTO struct {
	Name  string `json:"name"`
	Image []byte `json:"image"`
}

func toDTO(r *recipes.Recipe) recipeDTO {
	return recipeDTO{ID: r.ID, Name: r.Name, Image: r.Image}
}

type Handler struct {
	service RecipesService
	search  SearchClient
	logger  *slog.Logger
}

func NewHandler(service RecipesService, search SearchClient, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		search:  search,
		logger:  logger,
	}
}

func (h *Handler) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /recipes", h.listRecipes)
	mux.HandleFunc("POST /recipes", h.createRecipe)
	mux.HandleFunc("GET /recipes/{id}", h.getRecipe)
	mux.HandleFunc("PUT /recipes/{id}", h.updateRecipe)
	mux.HandleFunc("DELETE /recipes/{id}", h.deleteRecipe)
	mux.HandleFunc("GET /search", h.searchRecipes)
	return mux
}

func (h *Handler) listRecipes(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListRecipes(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	dtos := make([]recipeDTO, 0, len(list))
	for _, rec := range list {
		dtos = append(dtos, toDTO(rec))
	}

	h.writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) getRecipe(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	recipe, err := h.service.GetRecipe(r.Context(), id)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	if recipe == nil {
		http.Error(w, "recipe not found", http.StatusNotFound)
		return
	}

	h.writeJSON(w, http.StatusOK, toDTO(recipe))
}

func (h *Handler) createRecipe(w http.ResponseWriter, r *http.Request) {
	var dto recipeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	recipe, err := h.service.CreateRecipe(r.Context(), dto.Name, dto.Image)
	if err != nil {
		if errors.Is(err, recipes.ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.serverError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, toDTO(recipe))
}

func (h *Handler) updateRecipe(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var dto recipeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	// id в теле обязан совпадать с id в пути
	if dto.ID != id {
		http.Error(w, "id mismatch", http.StatusBadRequest)
		return
	}

	recipe, err := h.service.UpdateRecipe(r.Context(), id, dto.Name, dto.Image)
	if err != nil {
		if errors.Is(err, recipes.ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.serverError(w, r, err)
		return
	}
	if recipe == nil {
		http.Error(w, "recipe not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteRecipe(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	deleted, err := h.service.DeleteRecipe(r.Context(), id)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	if !deleted {
		http.Error(w, "recipe not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) searchRecipes(w http.ResponseWriter, r *http.Request) {
	ingredient := r.URL.Query().Get("ingredient")
	if ingredient == "" {
		http.Error(w, "ingredient is required", http.StatusBadRequest)
		return
	}

	found, err := h.search.SearchByIngredient(r.Context(), ingredient)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	dtos := make([]searchResultDTO, 0, len(found))
	for _, rec := range found {
		dtos = append(dtos, searchResultDTO{Name: rec.Name, Image: rec.Image})
	}

	h.writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid recipe id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("не удалось записать ответ", slog.Any("error", err))
	}
}

func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("ошибка обработки запроса",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
