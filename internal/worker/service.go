package worker

import (
	"fmt"
	"log/slog"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/robfig/cron/v3"

	"recipe-bot/internal/telegram/messages"
)

// Service по расписанию сбрасывает незавершённые операции, к которым так
// и не пришло фото. Без этого забытый /create висел бы вечно, и случайное
// фото через неделю завершило бы давно забытую операцию.
type Service struct {
	stateManager stateManager
	bot          botApi
	ttl          time.Duration
	sweepSpec    string
	logger       *slog.Logger
	cron         *cron.Cron

	now func() time.Time
}

func NewService(sm stateManager, bot botApi, ttl time.Duration, sweepSpec string, logger *slog.Logger) *Service {
	return &Service{
		stateManager: sm,
		bot:          bot,
		ttl:          ttl,
		sweepSpec:    sweepSpec,
		logger:       logger,
		cron:         cron.New(),
		now:          time.Now,
	}
}

// Start запускает cron с обходом незавершённых операций
func (s *Service) Start() error {
	s.logger.Info("запуск воркера очистки сессий",
		slog.Duration("ttl", s.ttl),
		slog.String("spec", s.sweepSpec))

	_, err := s.cron.AddFunc(s.sweepSpec, func() {
		s.Sweep()
	})
	if err != nil {
		return fmt.Errorf("add sweep job: %w", err)
	}

	s.cron.Start()
	return nil
}

func (s *Service) Stop() {
	s.logger.Info("остановка воркера очистки сессий")
	s.cron.Stop()
}

// Sweep сбрасывает операции старше TTL и предупреждает пользователя.
// Замок чата берётся на время сброса, чтобы не гонять с обработкой
// события этого же чата. Слот перепроверяется уже под замком: между
// снимком Entries и взятием замка пользователь мог начать новый флоу,
// и тогда сбрасывать нечего.
func (s *Service) Sweep() {
	cutoff := s.now().Add(-s.ttl)

	for _, entry := range s.stateManager.Entries() {
		if entry.Touched.After(cutoff) {
			continue
		}

		s.stateManager.LockChat(entry.ChatID)
		cleared := s.stateManager.ClearIfStale(entry.ChatID, cutoff)
		s.stateManager.UnlockChat(entry.ChatID)

		if !cleared {
			continue
		}

		s.logger.Info("сброшена просроченная операция",
			slog.Int64("chat_id", entry.ChatID),
			slog.String("state", string(entry.State)))

		// уведомление необязательное, ошибка отправки не мешает очистке
		if _, err := s.bot.Send(tgbotapi.NewMessage(entry.ChatID, messages.FlowExpired)); err != nil {
			s.logger.Error("не удалось уведомить о сбросе",
				slog.Int64("chat_id", entry.ChatID),
				slog.Any("error", err))
		}
	}
}
