package telegram

import (
	"context"
	"io"
	"log/slog"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"recipe-bot/internal/telegram/flows"
	"recipe-bot/internal/telegram/messages"
	"recipe-bot/internal/telegram/states"
)

type mockBot struct {
	sent []tgbotapi.Chattable
}

func (m *mockBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	m.sent = append(m.sent, c)
	return tgbotapi.Message{MessageID: len(m.sent)}, nil
}

type mockCreateFlow struct {
	startedNames []string
	photoFileIDs []string
}

func (m *mockCreateFlow) Start(chatID int64, name string) error {
	m.startedNames = append(m.startedNames, name)
	return nil
}

func (m *mockCreateFlow) HandlePhoto(ctx context.Context, chatID int64, fileID string) error {
	m.photoFileIDs = append(m.photoFileIDs, fileID)
	return nil
}

type mockUpdateFlow struct {
	startedIDs   []int64
	startedNames []string
	photoFileIDs []string
}

func (m *mockUpdateFlow) Start(chatID int64, recipeID int64, name string) error {
	m.startedIDs = append(m.startedIDs, recipeID)
	m.startedNames = append(m.startedNames, name)
	return nil
}

func (m *mockUpdateFlow) HandlePhoto(ctx context.Context, chatID int64, fileID string) error {
	m.photoFileIDs = append(m.photoFileIDs, fileID)
	return nil
}

type mockIDCommand struct {
	ids []int64
}

func (m *mockIDCommand) Execute(ctx context.Context, chatID int64, recipeID int64) error {
	m.ids = append(m.ids, recipeID)
	return nil
}

type mockChatCommand struct {
	calls int
}

func (m *mockChatCommand) Execute(ctx context.Context, chatID int64) error {
	m.calls++
	return nil
}

type mockSearchCommand struct {
	ingredients []string
}

func (m *mockSearchCommand) Execute(ctx context.Context, chatID int64, ingredient string) error {
	m.ingredients = append(m.ingredients, ingredient)
	return nil
}

type routerFixture struct {
	router     *Router
	bot        *mockBot
	sm         *states.Manager
	createFlow *mockCreateFlow
	updateFlow *mockUpdateFlow
	getAll     *mockChatCommand
	get        *mockIDCommand
	del        *mockIDCommand
	search     *mockSearchCommand
}

func newRouterFixture() *routerFixture {
	f := &routerFixture{
		bot:        &mockBot{},
		sm:         states.NewManager(),
		createFlow: &mockCreateFlow{},
		updateFlow: &mockUpdateFlow{},
		getAll:     &mockChatCommand{},
		get:        &mockIDCommand{},
		del:        &mockIDCommand{},
		search:     &mockSearchCommand{},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.router = NewRouter(f.bot, f.sm, f.createFlow, f.updateFlow, f.getAll, f.get, f.del, f.search, logger)
	return f
}

func textUpdate(chatID int64, text string) *tgbotapi.Update {
	return &tgbotapi.Update{
		Message: &tgbotapi.Message{
			Chat: &tgbotapi.Chat{ID: chatID},
			Text: text,
		},
	}
}

func photoUpdate(chatID int64, fileIDs ...string) *tgbotapi.Update {
	sizes := make([]tgbotapi.PhotoSize, 0, len(fileIDs))
	for _, id := range fileIDs {
		sizes = append(sizes, tgbotapi.PhotoSize{FileID: id})
	}
	return &tgbotapi.Update{
		Message: &tgbotapi.Message{
			Chat:  &tgbotapi.Chat{ID: chatID},
			Photo: sizes,
		},
	}
}

func (f *routerFixture) lastText(t *testing.T) string {
	t.Helper()
	if len(f.bot.sent) == 0 {
		t.Fatal("бот ничего не отправил")
	}
	msg, ok := f.bot.sent[len(f.bot.sent)-1].(tgbotapi.MessageConfig)
	if !ok {
		t.Fatalf("последнее сообщение не MessageConfig: %T", f.bot.sent[len(f.bot.sent)-1])
	}
	return msg.Text
}

func TestRouteIgnoresNonMessageUpdates(t *testing.T) {
	f := newRouterFixture()

	if err := f.router.Route(&tgbotapi.Update{}); err != nil {
		t.Fatalf("Route: %v", err)
	}
	if len(f.bot.sent) != 0 {
		t.Errorf("бот отправил %d сообщений", len(f.bot.sent))
	}
}

func TestRouteCommands(t *testing.T) {
	f := newRouterFixture()

	if err := f.router.Route(textUpdate(1, "/getall")); err != nil {
		t.Fatalf("Route: %v", err)
	}
	if f.getAll.calls != 1 {
		t.Errorf("getall вызван %d раз", f.getAll.calls)
	}

	if err := f.router.Route(textUpdate(1, "/get 42")); err != nil {
		t.Fatalf("Route: %v", err)
	}
	if len(f.get.ids) != 1 || f.get.ids[0] != 42 {
		t.Errorf("get ids = %v", f.get.ids)
	}

	if err := f.router.Route(textUpdate(1, "/delete 3")); err != nil {
		t.Fatalf("Route: %v", err)
	}
	if len(f.del.ids) != 1 || f.del.ids[0] != 3 {
		t.Errorf("delete ids = %v", f.del.ids)
	}

	if err := f.router.Route(textUpdate(1, "/search chicken")); err != nil {
		t.Fatalf("Route: %v", err)
	}
	if len(f.search.ingredients) != 1 || f.search.ingredients[0] != "chicken" {
		t.Errorf("search = %v", f.search.ingredients)
	}
}

func TestRouteCreateThenPhoto(t *testing.T) {
	f := newRouterFixture()

	if err := f.router.Route(textUpdate(1, "/create Борщ")); err != nil {
		t.Fatalf("Route: %v", err)
	}
	if len(f.createFlow.startedNames) != 1 || f.createFlow.startedNames[0] != "Борщ" {
		t.Fatalf("startedNames = %v", f.createFlow.startedNames)
	}

	// роутер читает состояние из менеджера, мок флоу его не выставил,
	// поэтому выставляем как это сделал бы настоящий обработчик
	f.sm.SetState(1, states.RecipeCreateWaitPhoto, &flows.CreateRecipeFlowData{Name: "Борщ"})

	if err := f.router.Route(photoUpdate(1, "small", "big")); err != nil {
		t.Fatalf("Route: %v", err)
	}
	if len(f.createFlow.photoFileIDs) != 1 || f.createFlow.photoFileIDs[0] != "big" {
		t.Errorf("photoFileIDs = %v, фото должно уходить в самом большом размере", f.createFlow.photoFileIDs)
	}
	if len(f.updateFlow.photoFileIDs) != 0 {
		t.Errorf("фото попало в чужой флоу: %v", f.updateFlow.photoFileIDs)
	}
}

func TestRoutePhotoWithoutSessionIgnored(t *testing.T) {
	f := newRouterFixture()

	if err := f.router.Route(photoUpdate(1, "file-1")); err != nil {
		t.Fatalf("Route: %v", err)
	}

	if len(f.createFlow.photoFileIDs) != 0 || len(f.updateFlow.photoFileIDs) != 0 {
		t.Error("фото без незавершённой операции не должно никуда уходить")
	}
	if len(f.bot.sent) != 0 {
		t.Errorf("бот отправил %d сообщений", len(f.bot.sent))
	}
}

func TestRouteInvalidArguments(t *testing.T) {
	f := newRouterFixture()

	if err := f.router.Route(textUpdate(1, "/update abc")); err != nil {
		t.Fatalf("Route: %v", err)
	}
	if got := f.lastText(t); got != messages.UpdateFormat {
		t.Errorf("text = %q, want %q", got, messages.UpdateFormat)
	}
	if len(f.updateFlow.startedIDs) != 0 {
		t.Errorf("флоу обновления не должен стартовать: %v", f.updateFlow.startedIDs)
	}
	if got := f.sm.GetState(1); got != states.StateNone {
		t.Errorf("состояние изменилось: %q", got)
	}

	if err := f.router.Route(textUpdate(1, "/get abc")); err != nil {
		t.Fatalf("Route: %v", err)
	}
	if got := f.lastText(t); got != messages.InvalidRecipeID {
		t.Errorf("text = %q, want %q", got, messages.InvalidRecipeID)
	}
	if len(f.get.ids) != 0 {
		t.Errorf("get не должен вызываться: %v", f.get.ids)
	}
}

func TestRouteUnknownCommand(t *testing.T) {
	f := newRouterFixture()

	if err := f.router.Route(textUpdate(1, "/foobar")); err != nil {
		t.Fatalf("Route: %v", err)
	}
	if got := f.lastText(t); got != messages.UnknownCommand {
		t.Errorf("text = %q, want %q", got, messages.UnknownCommand)
	}
}

func TestRouteStatelessCommandKeepsSession(t *testing.T) {
	f := newRouterFixture()

	f.sm.SetState(1, states.RecipeCreateWaitPhoto, &flows.CreateRecipeFlowData{Name: "Борщ"})

	if err := f.router.Route(textUpdate(1, "/getall")); err != nil {
		t.Fatalf("Route: %v", err)
	}

	// команды без состояния не трогают незавершённую операцию
	if got := f.sm.GetState(1); got != states.RecipeCreateWaitPhoto {
		t.Errorf("состояние сброшено: %q", got)
	}
}

func TestRouteCancel(t *testing.T) {
	f := newRouterFixture()

	if err := f.router.Route(textUpdate(1, "/cancel")); err != nil {
		t.Fatalf("Route: %v", err)
	}
	if got := f.lastText(t); got != messages.NothingToCancel {
		t.Errorf("text = %q, want %q", got, messages.NothingToCancel)
	}

	f.sm.SetState(1, states.RecipeCreateWaitPhoto, &flows.CreateRecipeFlowData{Name: "Борщ"})

	if err := f.router.Route(textUpdate(1, "/cancel")); err != nil {
		t.Fatalf("Route: %v", err)
	}
	if got := f.lastText(t); got != messages.FlowCancelled {
		t.Errorf("text = %q, want %q", got, messages.FlowCancelled)
	}
	if got := f.sm.GetState(1); got != states.StateNone {
		t.Errorf("состояние не сброшено: %q", got)
	}
}

func TestRouteChatsDoNotInterfere(t *testing.T) {
	f := newRouterFixture()

	f.sm.SetState(1, states.RecipeCreateWaitPhoto, &flows.CreateRecipeFlowData{Name: "Борщ"})
	f.sm.SetState(2, states.RecipeUpdateWaitPhoto, &flows.UpdateRecipeFlowData{RecipeID: 7, Name: "Суп"})

	if err := f.router.Route(photoUpdate(2, "file-2")); err != nil {
		t.Fatalf("Route: %v", err)
	}

	if len(f.updateFlow.photoFileIDs) != 1 {
		t.Errorf("фото чата 2 не дошло до флоу обновления: %v", f.updateFlow.photoFileIDs)
	}
	if len(f.createFlow.photoFileIDs) != 0 {
		t.Errorf("фото чата 2 попало в флоу чата 1: %v", f.createFlow.photoFileIDs)
	}
	if got := f.sm.GetState(1); got != states.RecipeCreateWaitPhoto {
		t.Errorf("состояние чата 1 пострадало: %q", got)
	}
}
