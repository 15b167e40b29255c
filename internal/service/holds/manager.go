package holds

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-CustomerPortal/internal/domain"
	"github.com/m04kA/SMC-CustomerPortal/internal/integrations/bookingapi"
)

const (
	// releaseTimeout таймаут фонового release-вызова после истечения TTL
	releaseTimeout = 5 * time.Second

	// Причины освобождения холда для метрик
	reasonExpired   = "expired"
	reasonCancelled = "cancelled"
	reasonAbandoned = "abandoned"
)

// entry состояние блокировки одной сессии мастера
type entry struct {
	hold    domain.ReservationHold
	state   domain.HoldState
	pending bool   // запрос блокировки еще в полете на бэкенд
	token   string // токен пользователя для фонового release
	stopCh  chan struct{}
}

// Manager менеджер блокировок расписания
//
// На сессию не более одной активной блокировки: Idle -> Held -> Released
// при снятии или истечении TTL, либо Held -> Confirmed, когда блокировку
// поглотил бэкенд. Release вызывается ровно один раз на блокировку
type Manager struct {
	client       BookingAPIClient
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger

	ttl  time.Duration
	tick time.Duration

	mu      sync.Mutex
	entries map[string]*entry
}

// Option опция конструктора менеджера
type Option func(*Manager)

// WithTTL переопределяет время жизни блокировки
func WithTTL(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.ttl = d
		}
	}
}

// WithTick переопределяет шаг обратного отсчета
func WithTick(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.tick = d
		}
	}
}

// WithTimeProvider переопределяет провайдер времени
func WithTimeProvider(tp TimeProvider) Option {
	return func(m *Manager) {
		m.timeProvider = tp
	}
}

// WithMetrics подключает метрики жизненного цикла холдов
func WithMetrics(metrics Metrics) Option {
	return func(m *Manager) {
		m.metrics = metrics
	}
}

// NewManager создает новый менеджер блокировок
func NewManager(client BookingAPIClient, logger Logger, opts ...Option) *Manager {
	m := &Manager{
		client:       client,
		metrics:      noopMetrics{},
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		ttl:          domain.DefaultHoldTTLSeconds * time.Second,
		tick:         domain.DefaultHoldTickSeconds * time.Second,
		entries:      make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Request запрашивает блокировку слотов для сессии
//
// Предусловия: в сессии нет активной блокировки, выбран бандл, количество
// выбранных слотов совпадает с требуемым для периодичности. Повторный вызов
// при активной блокировке отклоняется без обращения к бэкенду.
//
// Вызов all-or-nothing: либо бэкенд вернул blockId и запущен обратный
// отсчет, либо состояние осталось Idle и ошибка отдана вызывающему
func (m *Manager) Request(
	ctx context.Context,
	token string,
	sessionID string,
	sel *domain.SelectionContext,
	totalAmount float64,
	currency string,
) (*domain.ReservationHold, error) {
	// 1. Валидация предусловий
	if !sel.BundleChosen() {
		return nil, ErrBundleNotChosen
	}
	if !sel.SlotsComplete() {
		return nil, fmt.Errorf("%w: have %d, need %d",
			ErrSlotCountMismatch, len(sel.SelectedSlots), sel.Frequency.SlotsRequired())
	}

	// 2. Захватываем слот сессии, отклоняя повторные запросы
	m.mu.Lock()
	if e, exists := m.entries[sessionID]; exists && (e.state == domain.HoldHeld || e.pending) {
		m.mu.Unlock()
		m.logger.Warn("Request: hold already active for session=%s", sessionID)
		return nil, ErrHoldActive
	}
	// Pending-запись не дает параллельному запросу из второй вкладки
	// уйти на бэкенд, пока этот еще в полете
	pending := &entry{state: domain.HoldIdle, pending: true}
	m.entries[sessionID] = pending
	m.mu.Unlock()

	// 3. Запрашиваем атомарную блокировку на бэкенде
	blockID, err := m.client.BlockSchedule(ctx, token, bookingapi.BlockScheduleRequest{
		ScheduleIDs:     sel.ScheduleIDs(),
		AreaID:          sel.AreaID,
		DistrictID:      sel.DistrictID,
		PropertyID:      sel.PropertyID,
		ResidenceTypeID: sel.ResidenceTypeID,
		ApartmentNumber: sel.ApartmentNumber,
		ServiceID:       sel.ServiceID,
		SubServiceID:    sel.SubServiceID,
		TeamID:          sel.TeamID,
		BundleID:        sel.BundleID,
		StartDate:       sel.StartDate,
		Frequency:       sel.Frequency,
		DurationMonths:  sel.DurationMonths,
		TotalAmount:     totalAmount,
		Currency:        currency,
	})
	if err != nil {
		m.mu.Lock()
		if m.entries[sessionID] == pending {
			delete(m.entries, sessionID)
		}
		m.mu.Unlock()

		if errors.Is(err, bookingapi.ErrSlotTaken) {
			m.logger.Warn("Request: slots taken for session=%s", sessionID)
			return nil, ErrSlotTaken
		}
		m.logger.Error("Request: block failed for session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: block request failed: %v", ErrInternal, err)
	}

	// 4. Блокировка получена - запускаем обратный отсчет
	now := m.timeProvider.Now()
	hold := domain.ReservationHold{
		BlockID:   blockID,
		HeldSlots: sel.ScheduleIDs(),
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}

	m.mu.Lock()
	e := &entry{
		hold:   hold,
		state:  domain.HoldHeld,
		token:  token,
		stopCh: make(chan struct{}),
	}
	m.entries[sessionID] = e
	m.mu.Unlock()

	go m.countdown(sessionID, e)

	m.metrics.HoldRequested()
	m.logger.Info("Request: hold created for session=%s, block_id=%s, ttl=%s, slots=%v",
		sessionID, blockID, m.ttl, hold.HeldSlots)

	return &hold, nil
}

// countdown обратный отсчет блокировки с посекундным тиком
// По достижении нуля блокировка снимается автоматически - слоты не
// остаются занятыми, если пользователь бросил мастер
func (m *Manager) countdown(sessionID string, e *entry) {
	ticker := time.NewTicker(m.tick)
	defer ticker.Stop()

	remaining := int(m.ttl / m.tick)
	for {
		select {
		case <-e.stopCh:
			return
		case <-ticker.C:
			remaining--
			if remaining <= 0 {
				m.expire(sessionID, e)
				return
			}
		}
	}
}

// expire снимает блокировку по истечении TTL
// Истечение - штатное событие жизненного цикла, не ошибка
func (m *Manager) expire(sessionID string, e *entry) {
	m.mu.Lock()
	if e.state != domain.HoldHeld {
		m.mu.Unlock()
		return
	}
	e.state = domain.HoldReleased
	m.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
	defer cancel()

	if err := m.client.ReleaseSlot(ctx, e.token, e.hold.BlockID); err != nil {
		m.logger.Error("expire: failed to release block_id=%s for session=%s: %v",
			e.hold.BlockID, sessionID, err)
	} else {
		m.logger.Info("expire: hold expired and released, session=%s, block_id=%s",
			sessionID, e.hold.BlockID)
	}

	m.metrics.HoldReleased(reasonExpired)
}

// Release снимает активную блокировку по явной отмене или закрытию мастера
// No-op, если активной блокировки нет - состояние уже Released/Idle
func (m *Manager) Release(ctx context.Context, token string, sessionID string) error {
	m.mu.Lock()
	e, ok := m.entries[sessionID]
	if !ok || e.state != domain.HoldHeld {
		m.mu.Unlock()
		return nil
	}
	e.state = domain.HoldReleased
	close(e.stopCh)
	m.mu.Unlock()

	if err := m.client.ReleaseSlot(ctx, token, e.hold.BlockID); err != nil {
		m.logger.Error("Release: failed to release block_id=%s for session=%s: %v",
			e.hold.BlockID, sessionID, err)
		m.metrics.HoldReleased(reasonCancelled)
		return fmt.Errorf("%w: release failed: %v", ErrInternal, err)
	}

	m.metrics.HoldReleased(reasonCancelled)
	m.logger.Info("Release: hold released, session=%s, block_id=%s", sessionID, e.hold.BlockID)
	return nil
}

// Confirm помечает блокировку поглощенной после успешного подтверждения
// бронирования. Release не вызывается - бэкенд конвертировал блокировку сам
func (m *Manager) Confirm(sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[sessionID]
	if !ok || e.state != domain.HoldHeld {
		return ErrNoActiveHold
	}
	if e.hold.IsExpired(m.timeProvider.Now()) {
		return ErrHoldExpired
	}

	e.state = domain.HoldConfirmed
	close(e.stopCh)
	delete(m.entries, sessionID)

	m.metrics.HoldConfirmed()
	m.logger.Info("Confirm: hold consumed, session=%s, block_id=%s", sessionID, e.hold.BlockID)
	return nil
}

// Abandon сбрасывает блокировку без release-вызова
// Используется при провале подтверждения: бэкенд к этому моменту уже
// инвалидировал блокировку сам
func (m *Manager) Abandon(sessionID string) {
	m.mu.Lock()
	e, ok := m.entries[sessionID]
	if !ok || e.state != domain.HoldHeld {
		m.mu.Unlock()
		return
	}
	e.state = domain.HoldReleased
	close(e.stopCh)
	delete(m.entries, sessionID)
	m.mu.Unlock()

	m.metrics.HoldReleased(reasonAbandoned)
	m.logger.Warn("Abandon: hold dropped without release, session=%s, block_id=%s",
		sessionID, e.hold.BlockID)
}

// State возвращает состояние блокировки сессии
func (m *Manager) State(sessionID string) domain.HoldState {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[sessionID]
	if !ok {
		return domain.HoldIdle
	}
	return e.state
}

// Hold возвращает блокировку сессии, если она активна
func (m *Manager) Hold(sessionID string) (*domain.ReservationHold, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[sessionID]
	if !ok || e.state != domain.HoldHeld {
		return nil, false
	}
	hold := e.hold
	return &hold, true
}

// Remaining возвращает остаток обратного отсчета в секундах
func (m *Manager) Remaining(sessionID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[sessionID]
	if !ok || e.state != domain.HoldHeld {
		return 0
	}

	remaining := e.hold.ExpiresAt.Sub(m.timeProvider.Now())
	if remaining < 0 {
		return 0
	}
	return int(remaining / time.Second)
}

// Shutdown снимает все активные блокировки при остановке сервиса
// Best-effort: сессии не переживают процесс, слоты не должны остаться занятыми
func (m *Manager) Shutdown(ctx context.Context) {
	m.mu.Lock()
	held := make(map[string]*entry)
	for sessionID, e := range m.entries {
		if e.state == domain.HoldHeld {
			e.state = domain.HoldReleased
			close(e.stopCh)
			held[sessionID] = e
		}
	}
	m.mu.Unlock()

	for sessionID, e := range held {
		if err := m.client.ReleaseSlot(ctx, e.token, e.hold.BlockID); err != nil {
			m.logger.Error("Shutdown: failed to release block_id=%s for session=%s: %v",
				e.hold.BlockID, sessionID, err)
		}
		m.metrics.HoldReleased(reasonCancelled)
	}

	if len(held) > 0 {
		m.logger.Info("Shutdown: released %d active holds", len(held))
	}
}
