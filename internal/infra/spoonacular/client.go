package spoonacular

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// maxResults - сколько рецептов максимум обогащаем картинками за один поиск
const maxResults = 10

// Recipe - результат поиска, обогащённый скачанной картинкой
type Recipe struct {
	Name  string
	Image []byte
}

type searchResponse struct {
	Results      []searchResult `json:"results"`
	Offset       int            `json:"offset"`
	Number       int            `json:"number"`
	TotalResults int            `json:"totalResults"`
}

type searchResult struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// Client wraps the ingredient search service HTTP API
type Client struct {
	httpClient *http.Client
	searchURL  string
	imageURL   string
	apiKey     string
	imageSize  int
	limiter    *rate.Limiter
	logger     *slog.Logger
}

func NewClient(searchURL, imageURL, apiKey string, imageSize int, timeout time.Duration, rps float64, burst int, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		searchURL:  searchURL,
		imageURL:   imageURL,
		apiKey:     apiKey,
		imageSize:  imageSize,
		limiter:    rate.NewLimiter(rate.Limit(rps), burst),
		logger:     logger,
	}
}

// SearchByIngredient ищет рецепты по ингредиенту и скачивает картинку для каждого.
// Ошибка скачивания любой картинки валит весь запрос.
func (c *Client) SearchByIngredient(ctx context.Context, ingredient string) ([]Recipe, error) {
	search, err := c.search(ctx, ingredient)
	if err != nil {
		return nil, err
	}

	results := search.Results
	if len(results) > maxResults {
		results = results[:maxResults]
	}

	recipes := make([]Recipe, 0, len(results))
	for _, r := range results {
		image, err := c.downloadImage(ctx, r.Image)
		if err != nil {
			return nil, errors.Wrapf(err, "download image for %q", r.Name)
		}
		recipes = append(recipes, Recipe{
			Name:  r.Name,
			Image: image,
		})
	}

	return recipes, nil
}

func (c *Client) search(ctx context.Context, ingredient string) (*searchResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "rate limiting")
	}

	query := url.Values{}
	query.Set("apiKey", c.apiKey)
	query.Set("query", ingredient)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "build search request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "search request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("search request: status %d", resp.StatusCode)
	}

	var search searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&search); err != nil {
		return nil, errors.Wrap(err, "decode search response")
	}

	c.logger.Debug("поиск по ингредиенту выполнен",
		slog.String("ingredient", ingredient),
		slog.Int("total", search.TotalResults))

	return &search, nil
}

func (c *Client) downloadImage(ctx context.Context, imageName string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "rate limiting")
	}

	imageURL := fmt.Sprintf("%s/ingredients_%dx%d/%s", c.imageURL, c.imageSize, c.imageSize, imageName)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build image request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "image request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("image request: status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
