package createrecipe

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"recipe-bot/internal/telegram/messages"
	"recipe-bot/internal/telegram/states"
)

func newTestHandler() (*Handler, *MockBotApi, *MockGateway, *states.Manager) {
	bot := &MockBotApi{Files: map[string][]byte{"file-1": []byte("photo-bytes")}}
	gateway := &MockGateway{}
	sm := states.NewManager()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewHandler(bot, sm, gateway, logger), bot, gateway, sm
}

func lastMessageText(t *testing.T, bot *MockBotApi) string {
	t.Helper()
	if len(bot.SentMessages) == 0 {
		t.Fatal("бот ничего не отправил")
	}
	msg, ok := bot.SentMessages[len(bot.SentMessages)-1].(tgbotapi.MessageConfig)
	if !ok {
		t.Fatalf("последнее сообщение не MessageConfig: %T", bot.SentMessages[len(bot.SentMessages)-1])
	}
	return msg.Text
}

func TestStartRequiresName(t *testing.T) {
	h, bot, _, sm := newTestHandler()

	if err := h.Start(1, ""); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if got := lastMessageText(t, bot); got != messages.CreateNameRequired {
		t.Errorf("text = %q, want %q", got, messages.CreateNameRequired)
	}
	if got := sm.GetState(1); got != states.StateNone {
		t.Errorf("state = %q, want %q", got, states.StateNone)
	}
}

func TestStartStoresNameAndPrompts(t *testing.T) {
	h, bot, _, sm := newTestHandler()

	if err := h.Start(1, "Борщ"); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if got := sm.GetState(1); got != states.RecipeCreateWaitPhoto {
		t.Fatalf("state = %q, want %q", got, states.RecipeCreateWaitPhoto)
	}
	data, err := sm.GetCreateRecipeData(1)
	if err != nil {
		t.Fatalf("GetCreateRecipeData: %v", err)
	}
	if data.Name != "Борщ" {
		t.Errorf("name = %q", data.Name)
	}
	if got := lastMessageText(t, bot); got != messages.SendPhotoForRecipe {
		t.Errorf("text = %q, want %q", got, messages.SendPhotoForRecipe)
	}
}

func TestHandlePhotoCreatesRecipe(t *testing.T) {
	h, bot, gateway, sm := newTestHandler()

	if err := h.Start(1, "Борщ"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := h.HandlePhoto(context.Background(), 1, "file-1"); err != nil {
		t.Fatalf("HandlePhoto: %v", err)
	}

	if len(gateway.Created) != 1 {
		t.Fatalf("создано %d рецептов, want 1", len(gateway.Created))
	}
	created := gateway.Created[0]
	if created.Name != "Борщ" {
		t.Errorf("name = %q", created.Name)
	}
	if !bytes.Equal(created.Image, []byte("photo-bytes")) {
		t.Errorf("image = %q", created.Image)
	}

	if got := sm.GetState(1); got != states.StateNone {
		t.Errorf("состояние не очищено: %q", got)
	}
	if got := lastMessageText(t, bot); got != messages.RecipeCreated {
		t.Errorf("text = %q, want %q", got, messages.RecipeCreated)
	}
}

func TestHandlePhotoGatewayErrorClearsState(t *testing.T) {
	h, bot, gateway, sm := newTestHandler()
	gateway.CreateErr = errors.New("backend down")

	if err := h.Start(1, "Борщ"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := h.HandlePhoto(context.Background(), 1, "file-1"); err != nil {
		t.Fatalf("HandlePhoto: %v", err)
	}

	// флоу не перезапускается, пользователь начинает заново
	if got := sm.GetState(1); got != states.StateNone {
		t.Errorf("состояние не очищено после ошибки: %q", got)
	}
	if got := lastMessageText(t, bot); got != messages.CreateError {
		t.Errorf("text = %q, want %q", got, messages.CreateError)
	}
}

func TestHandlePhotoDownloadErrorClearsState(t *testing.T) {
	h, bot, gateway, sm := newTestHandler()
	bot.DownloadErr = errors.New("file too big")

	if err := h.Start(1, "Борщ"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := h.HandlePhoto(context.Background(), 1, "file-1"); err != nil {
		t.Fatalf("HandlePhoto: %v", err)
	}

	if len(gateway.Created) != 0 {
		t.Errorf("гейтвей не должен вызываться, создано %d", len(gateway.Created))
	}
	if got := sm.GetState(1); got != states.StateNone {
		t.Errorf("состояние не очищено: %q", got)
	}
	if got := lastMessageText(t, bot); got != messages.CreateError {
		t.Errorf("text = %q, want %q", got, messages.CreateError)
	}
}
