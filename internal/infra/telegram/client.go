package telegram

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

// maxFileSize - предел на размер скачиваемого фото (20 МБ, лимит Bot API)
const maxFileSize = 20 << 20

type Client struct {
	api        *tgbotapi.BotAPI
	httpClient *http.Client
	logger     *slog.Logger
	limiter    *rate.Limiter
	updates    <-chan tgbotapi.Update
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewClient(token string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("создание telegram бота: %w", err)
	}

	// Rate limiting - 30 сообщений в секунду
	limiter := rate.NewLimiter(30, 1)

	return &Client{
		api:        bot,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		limiter:    limiter,
	}, nil
}

// Start начинает получение обновлений (long polling)
func (c *Client) Start(ctx context.Context) error {
	c.ctx, c.cancel = context.WithCancel(ctx)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updateChan := c.api.GetUpdatesChan(u)
	c.updates = updateChan

	c.logger.Info("Telegram бот запущен")
	return nil
}

// Stop останавливает получение обновлений
func (c *Client) Stop() {
	if c.cancel != nil {
		c.cancel()
	}
	c.api.StopReceivingUpdates()
	c.logger.Info("Telegram бот остановлен")
}

// GetUpdates возвращает канал с обновлениями
func (c *Client) GetUpdates() <-chan tgbotapi.Update {
	return c.updates
}

// SendMessage отправляет текстовое сообщение с rate limiting
func (c *Client) SendMessage(chatID int64, text string) error {
	if err := c.limiter.Wait(c.ctx); err != nil {
		return fmt.Errorf("rate limiting: %w", err)
	}

	msg := tgbotapi.NewMessage(chatID, text)
	_, err := c.api.Send(msg)
	if err != nil {
		c.logger.Error("ошибка отправки сообщения",
			slog.Int64("chat_id", chatID),
			slog.String("error", err.Error()))
		return fmt.Errorf("отправка сообщения: %w", err)
	}

	return nil
}

// SendPhoto отправляет фото с подписью
func (c *Client) SendPhoto(chatID int64, image []byte, caption string) error {
	if err := c.limiter.Wait(c.ctx); err != nil {
		return fmt.Errorf("rate limiting: %w", err)
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "recipe.jpg", Bytes: image})
	photo.Caption = caption

	_, err := c.api.Send(photo)
	if err != nil {
		c.logger.Error("ошибка отправки фото",
			slog.Int64("chat_id", chatID),
			slog.String("error", err.Error()))
		return fmt.Errorf("отправка фото: %w", err)
	}

	return nil
}

// DownloadFile скачивает файл из Telegram по его file_id
func (c *Client) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	file, err := c.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("получение файла %s: %w", fileID, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(c.api.Token), nil)
	if err != nil {
		return nil, fmt.Errorf("создание запроса: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("скачивание файла: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("скачивание файла: статус %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFileSize))
	if err != nil {
		return nil, fmt.Errorf("чтение файла: %w", err)
	}

	return data, nil
}

// Send отправляет любое сообщение с rate limiting (для интерфейса botApi)
func (c *Client) Send(chattable tgbotapi.Chattable) (tgbotapi.Message, error) {
	if err := c.limiter.Wait(c.ctx); err != nil {
		return tgbotapi.Message{}, fmt.Errorf("rate limiting: %w", err)
	}

	message, err := c.api.Send(chattable)
	if err != nil {
		c.logger.Error("ошибка отправки", slog.Any("error", err))
		return tgbotapi.Message{}, fmt.Errorf("отправка: %w", err)
	}

	return message, nil
}

// Request отправляет запрос к API (для интерфейса botApi)
func (c *Client) Request(chattable tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	if err := c.limiter.Wait(c.ctx); err != nil {
		return nil, fmt.Errorf("rate limiting: %w", err)
	}

	resp, err := c.api.Request(chattable)
	if err != nil {
		c.logger.Error("ошибка запроса к API", slog.Any("error", err))
		return nil, fmt.Errorf("запрос к API: %w", err)
	}

	return resp, nil
}
