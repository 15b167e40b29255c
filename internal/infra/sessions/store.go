package sessions

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CustomerPortal/internal/domain"
)

// Session одна сессия мастера бронирования
// Живет только в памяти процесса: уничтожается при закрытии мастера
// (отмена, истечение, успешное подтверждение) и не переживает рестарт
type Session struct {
	ID     string
	UserID int64
	Type   domain.WizardType

	// StepIndex позиция в фиксированной последовательности Type.Steps()
	StepIndex int

	Selection domain.SelectionContext

	// Bundles результат последнего запроса бандлов
	// BundlesRevision - ревизия выбора на момент запроса: ответ с устаревшей
	// ревизией не перезаписывает более новое состояние
	Bundles         []domain.Bundle
	BundlesRevision int64

	// RenewedFromID исходный пакет для потока продления
	RenewedFromID int64

	CreatedAt time.Time

	// mu защищает мутации сессии; одна сессия обслуживает одного
	// пользователя, конкуренция возможна только между его вкладками
	mu sync.Mutex
}

// Lock захватывает мьютекс сессии
func (s *Session) Lock() {
	s.mu.Lock()
}

// Unlock освобождает мьютекс сессии
func (s *Session) Unlock() {
	s.mu.Unlock()
}

// Step возвращает текущий шаг
func (s *Session) Step() domain.WizardStep {
	steps := s.Type.Steps()
	if s.StepIndex < 0 || s.StepIndex >= len(steps) {
		return ""
	}
	return steps[s.StepIndex]
}

// IsLastStep возвращает true на финальном шаге (review)
func (s *Session) IsLastStep() bool {
	return s.StepIndex == len(s.Type.Steps())-1
}

// Store реестр активных сессий мастера
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore создает новый реестр сессий
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
	}
}

// Create создает новую сессию мастера
func (st *Store) Create(userID int64, wizardType domain.WizardType, selection domain.SelectionContext) *Session {
	session := &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      wizardType,
		Selection: selection,
		CreatedAt: time.Now(),
	}

	st.mu.Lock()
	st.sessions[session.ID] = session
	st.mu.Unlock()

	return session
}

// Get возвращает сессию по идентификатору
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	session, ok := st.sessions[id]
	return session, ok
}

// Delete удаляет сессию из реестра
func (st *Store) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

// Len возвращает количество активных сессий
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
