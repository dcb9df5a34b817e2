package states

import (
	"fmt"
	"sync"
	"time"

	"recipe-bot/internal/telegram/flows"
)

// Entry — снимок состояния одного чата для обхода из воркера
type Entry struct {
	ChatID  int64
	State   State
	Touched time.Time
}

// Manager управляет состояниями пользователей в памяти.
// Инвариант: на чат приходится не больше одной незавершённой операции.
type Manager struct {
	mu         sync.RWMutex
	userStates map[int64]State
	userData   map[int64]any
	touched    map[int64]time.Time

	chatMu    sync.Mutex
	chatLocks map[int64]*sync.Mutex

	now func() time.Time
}

// NewManager создает новый менеджер состояний
func NewManager() *Manager {
	return &Manager{
		userStates: make(map[int64]State),
		userData:   make(map[int64]any),
		touched:    make(map[int64]time.Time),
		chatLocks:  make(map[int64]*sync.Mutex),
		now:        time.Now,
	}
}

// LockChat сериализует обработку событий одного чата. Обработчик берёт
// замок на всё время обработки события, а не только на доступ к картам,
// иначе два почти одновременных фото могли бы завершить одну операцию
// дважды. Разные чаты друг друга не блокируют.
func (m *Manager) LockChat(chatID int64) {
	m.chatMu.Lock()
	lock, exists := m.chatLocks[chatID]
	if !exists {
		lock = &sync.Mutex{}
		m.chatLocks[chatID] = lock
	}
	m.chatMu.Unlock()

	lock.Lock()
}

// UnlockChat отпускает замок чата
func (m *Manager) UnlockChat(chatID int64) {
	m.chatMu.Lock()
	lock, exists := m.chatLocks[chatID]
	m.chatMu.Unlock()

	if exists {
		lock.Unlock()
	}
}

// GetState получает текущее состояние пользователя
func (m *Manager) GetState(chatID int64) State {
	m.mu.RLock()
	defer m.mu.RUnlock()

	state, exists := m.userStates[chatID]
	if !exists {
		return StateNone
	}
	return state
}

// SetState устанавливает состояние пользователя. Повторный вызов
// перезаписывает предыдущую незавершённую операцию.
func (m *Manager) SetState(chatID int64, state State, data any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.userStates[chatID] = state
	if data != nil {
		m.userData[chatID] = data
	}
	m.touched[chatID] = m.now()
}

// Clear очищает состояние пользователя
func (m *Manager) Clear(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.userStates, chatID)
	delete(m.userData, chatID)
	delete(m.touched, chatID)
}

// ClearIfStale очищает состояние, только если оно не обновлялось после
// cutoff. Слот, перезаписанный между снимком Entries и этим вызовом,
// остаётся на месте.
func (m *Manager) ClearIfStale(chatID int64, cutoff time.Time) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	touched, exists := m.touched[chatID]
	if !exists || touched.After(cutoff) {
		return false
	}

	delete(m.userStates, chatID)
	delete(m.userData, chatID)
	delete(m.touched, chatID)
	return true
}

// Entries возвращает снимок всех незавершённых операций
func (m *Manager) Entries() []Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entries := make([]Entry, 0, len(m.userStates))
	for chatID, state := range m.userStates {
		entries = append(entries, Entry{
			ChatID:  chatID,
			State:   state,
			Touched: m.touched[chatID],
		})
	}
	return entries
}

// GetCreateRecipeData получает данные флоу создания рецепта
func (m *Manager) GetCreateRecipeData(chatID int64) (*flows.CreateRecipeFlowData, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, exists := m.userData[chatID]
	if !exists {
		return nil, fmt.Errorf("no data for chat %d", chatID)
	}

	flowData, ok := data.(*flows.CreateRecipeFlowData)
	if !ok {
		return nil, fmt.Errorf("invalid data type for chat %d", chatID)
	}

	return flowData, nil
}

// GetUpdateRecipeData получает данные флоу обновления рецепта
func (m *Manager) GetUpdateRecipeData(chatID int64) (*flows.UpdateRecipeFlowData, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, exists := m.userData[chatID]
	if !exists {
		return nil, fmt.Errorf("no data for chat %d", chatID)
	}

	flowData, ok := data.(*flows.UpdateRecipeFlowData)
	if !ok {
		return nil, fmt.Errorf("invalid data type for chat %d", chatID)
	}

	return flowData, nil
}
