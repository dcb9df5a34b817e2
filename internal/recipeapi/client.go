package recipeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrNotFound возвращается, когда сервис ответил 404 на запрос по ID
var ErrNotFound = errors.New("recipe not found")

// Client - типизированный клиент CRUD-сервиса рецептов
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		logger:     logger,
	}
}

// ListAll возвращает все рецепты
func (c *Client) ListAll(ctx context.Context) ([]Recipe, error) {
	resp, err := c.do(ctx, http.MethodGet, "/recipes", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("list recipes: status %d", resp.StatusCode)
	}

	var recipes []Recipe
	if err := json.NewDecoder(resp.Body).Decode(&recipes); err != nil {
		return nil, errors.Wrap(err, "decode recipes")
	}

	return recipes, nil
}

// GetByID возвращает рецепт по ID. Отсутствующий рецепт - ErrNotFound.
func (c *Client) GetByID(ctx context.Context, id int64) (*Recipe, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/recipes/%d", id), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrNotFound
	default:
		return nil, errors.Errorf("get recipe %d: status %d", id, resp.StatusCode)
	}

	var recipe Recipe
	if err := json.NewDecoder(resp.Body).Decode(&recipe); err != nil {
		return nil, errors.Wrap(err, "decode recipe")
	}

	return &recipe, nil
}

// Create создаёт рецепт, ID назначает сервис
func (c *Client) Create(ctx context.Context, recipe Recipe) (*Recipe, error) {
	resp, err := c.do(ctx, http.MethodPost, "/recipes", recipe)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, errors.Errorf("create recipe: status %d", resp.StatusCode)
	}

	var created Recipe
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, errors.Wrap(err, "decode created recipe")
	}

	return &created, nil
}

// Update обновляет рецепт. ID в теле должен совпадать с ID в пути.
func (c *Client) Update(ctx context.Context, id int64, recipe Recipe) error {
	recipe.ID = id

	resp, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/recipes/%d", id), recipe)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return errors.Errorf("update recipe %d: status %d", id, resp.StatusCode)
	}
}

// Delete удаляет рецепт. Отсутствующий рецепт - ErrNotFound.
func (c *Client) Delete(ctx context.Context, id int64) error {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/recipes/%d", id), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return errors.Errorf("delete recipe %d: status %d", id, resp.StatusCode)
	}
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "marshal request body")
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}

	requestID := uuid.New().String()
	req.Header.Set("X-Request-Id", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("запрос к recipe API не удался",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("request_id", requestID),
			slog.Any("error", err))
		return nil, errors.Wrapf(err, "%s %s", method, path)
	}

	return resp, nil
}
