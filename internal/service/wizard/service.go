package wizard

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CustomerPortal/internal/domain"
	"github.com/m04kA/SMC-CustomerPortal/internal/infra/sessions"
	"github.com/m04kA/SMC-CustomerPortal/internal/integrations/bookingapi"
	"github.com/m04kA/SMC-CustomerPortal/internal/service/availability"
	"github.com/m04kA/SMC-CustomerPortal/pkg/ptr"
)

// Service сервис мастера бронирования - пошаговая навигация с валидацией.
// Переходы вперед охраняются заполненностью текущего шага и воротами:
// проверкой конфликта, загрузкой бандлов, активной блокировкой расписания
type Service struct {
	sessions     *sessions.Store
	bookings     BookingsClient
	availability AvailabilityService
	refdata      RefDataService
	holds        HoldManager
	logger       Logger
}

// NewService создает новый сервис мастера бронирования
func NewService(
	store *sessions.Store,
	bookings BookingsClient,
	avail AvailabilityService,
	refdata RefDataService,
	holds HoldManager,
	logger Logger,
) *Service {
	return &Service{
		sessions:     store,
		bookings:     bookings,
		availability: avail,
		refdata:      refdata,
		holds:        holds,
		logger:       logger,
	}
}

// Snapshot снимок состояния сессии мастера для отдачи клиенту
type Snapshot struct {
	SessionID string
	Type      domain.WizardType
	Step      domain.WizardStep
	StepIndex int
	Steps     []domain.WizardStep

	Selection domain.SelectionContext
	Bundles   []domain.Bundle

	HoldState     domain.HoldState
	Hold          *domain.ReservationHold
	HoldRemaining int
}

// UpdateRequest патч выбора пользователя
// nil-поля не трогаются; изменение вышестоящего поля каскадно сбрасывает
// нижестоящий выбор
type UpdateRequest struct {
	ServiceID          *int64
	SubServiceID       *int64
	SubServiceCategory *string
	AreaID             *int64
	DistrictID         *int64
	PropertyID         *int64
	ResidenceTypeID    *int64
	ApartmentNumber    *string

	Frequency      *domain.Frequency
	StartDate      *time.Time
	DurationMonths *int

	BundleID *int64
	TeamID   *int64

	SelectedSlots []domain.SelectedSlot
	Customer      *domain.CustomerDetails
}

// Open открывает новую сессию мастера
//
// Для потока продления renewBookingID обязателен: локация и параметры
// наследуются из исходного пакета, шаг локации пропускается
func (s *Service) Open(ctx context.Context, token string, userID int64, wizardType domain.WizardType, renewBookingID *int64) (*Snapshot, error) {
	// 1. Валидация типа мастера
	if err := wizardType.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var selection domain.SelectionContext
	var renewedFromID int64

	// 2. Для продления загружаем исходный пакет и наследуем выбор
	if wizardType == domain.WizardRenew {
		if renewBookingID == nil || *renewBookingID <= 0 {
			return nil, fmt.Errorf("%w: renewal requires source booking id", ErrInvalidInput)
		}

		source, err := s.loadRenewSource(ctx, token, userID, *renewBookingID)
		if err != nil {
			return nil, err
		}

		selection = source.SeedSelection()
		renewedFromID = source.ID
	}

	// 3. Создаем сессию
	session := s.sessions.Create(userID, wizardType, selection)
	session.RenewedFromID = renewedFromID

	s.logger.Info("Open: wizard session created, session=%s, user=%d, type=%s",
		session.ID, userID, wizardType)

	return s.snapshotLocked(session), nil
}

// loadRenewSource загружает и валидирует исходный пакет для продления
func (s *Service) loadRenewSource(ctx context.Context, token string, userID, bookingID int64) (*domain.BookingRecord, error) {
	records, err := s.bookings.ListBookings(ctx, token, bookingapi.BookingsFilter{
		UserID:    userID,
		BookingID: ptr.Ptr(bookingID),
	})
	if err != nil {
		s.logger.Error("loadRenewSource: fetch failed for booking=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to load source booking: %v", ErrInternal, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: booking %d not found", ErrBookingNotRenewable, bookingID)
	}

	source := records[0]
	if source.UserID != userID {
		return nil, ErrForbidden
	}
	if !source.IsPackage() || !source.IsActive() {
		return nil, fmt.Errorf("%w: booking %d is not an active package", ErrBookingNotRenewable, bookingID)
	}

	return source, nil
}

// Get возвращает снимок состояния сессии
func (s *Service) Get(sessionID string, userID int64) (*Snapshot, error) {
	session, err := s.session(sessionID, userID)
	if err != nil {
		return nil, err
	}

	session.Lock()
	defer session.Unlock()

	return s.snapshotLocked(session), nil
}

// UpdateSelection применяет патч выбора пользователя
//
// Изменение вышестоящего поля каскадно сбрасывает нижестоящий выбор:
// локация сбрасывает параметры+бандл+слоты, параметры - бандл+слоты,
// бандл - слоты. Любое изменение инкрементирует ревизию выбора.
// Сброс слотов снимает активную блокировку расписания
func (s *Service) UpdateSelection(ctx context.Context, token, sessionID string, userID int64, upd UpdateRequest) (*Snapshot, error) {
	session, err := s.session(sessionID, userID)
	if err != nil {
		return nil, err
	}

	session.Lock()
	defer session.Unlock()

	// В потоке продления локация фиксирована - наследована из пакета
	if session.Type == domain.WizardRenew && locationFieldsChanged(&upd) {
		return nil, fmt.Errorf("%w: location is inherited from the renewed package", ErrInvalidInput)
	}

	sel := &session.Selection
	slotsInvalidated := false

	// 1. Применяем поля локации и услуги
	if locationFieldsChanged(&upd) {
		applyLocation(sel, &upd)
		clearDetails(sel)
		clearBundle(session)
		clearSlots(sel)
		slotsInvalidated = true
	}

	// 2. Применяем параметры услуги
	if detailsFieldsChanged(&upd) {
		applyDetails(sel, &upd)
		clearBundle(session)
		clearSlots(sel)
		slotsInvalidated = true
	}

	// 3. Применяем выбор бандла
	if bundleFieldsChanged(&upd) {
		if upd.BundleID != nil {
			sel.BundleID = *upd.BundleID
		}
		if upd.TeamID != nil {
			sel.TeamID = *upd.TeamID
		}
		clearSlots(sel)
		slotsInvalidated = true
	}

	// 4. Применяем выбор слотов и контактные данные
	if upd.SelectedSlots != nil {
		sel.SelectedSlots = upd.SelectedSlots
		slotsInvalidated = true
	}
	if upd.Customer != nil {
		sel.Customer = *upd.Customer
	}

	sel.Revision++

	// 5. Инвалидация слотов снимает активную блокировку - бэкенд не должен
	// держать слоты, которые пользователь уже передумал брать
	if slotsInvalidated && s.holds.State(session.ID) == domain.HoldHeld {
		if err := s.holds.Release(ctx, token, session.ID); err != nil {
			s.logger.Warn("UpdateSelection: hold release failed for session=%s: %v", session.ID, err)
		}
	}

	return s.snapshotLocked(session), nil
}

// applyLocation применяет поля локации и услуги из патча
func applyLocation(sel *domain.SelectionContext, upd *UpdateRequest) {
	if upd.ServiceID != nil {
		sel.ServiceID = *upd.ServiceID
	}
	if upd.SubServiceID != nil {
		sel.SubServiceID = *upd.SubServiceID
	}
	if upd.SubServiceCategory != nil {
		sel.SubServiceCategory = *upd.SubServiceCategory
	}
	if upd.AreaID != nil {
		sel.AreaID = *upd.AreaID
	}
	if upd.DistrictID != nil {
		sel.DistrictID = *upd.DistrictID
	}
	if upd.PropertyID != nil {
		sel.PropertyID = *upd.PropertyID
	}
	if upd.ResidenceTypeID != nil {
		sel.ResidenceTypeID = *upd.ResidenceTypeID
	}
	if upd.ApartmentNumber != nil {
		sel.ApartmentNumber = *upd.ApartmentNumber
	}
}

// applyDetails применяет параметры услуги из патча
// Явная установка даты взводит DateChosenByUser - дата считается выбранной
// только после действия пользователя
func applyDetails(sel *domain.SelectionContext, upd *UpdateRequest) {
	if upd.Frequency != nil {
		sel.Frequency = *upd.Frequency
	}
	if upd.StartDate != nil {
		sel.StartDate = *upd.StartDate
		sel.DateChosenByUser = true
	}
	if upd.DurationMonths != nil {
		sel.DurationMonths = *upd.DurationMonths
	}
}

// clearDetails сбрасывает параметры услуги
func clearDetails(sel *domain.SelectionContext) {
	sel.Frequency = ""
	sel.StartDate = time.Time{}
	sel.DurationMonths = 0
	sel.DateChosenByUser = false
}

// clearBundle сбрасывает выбор бандла и загруженные бандлы
func clearBundle(session *sessions.Session) {
	session.Selection.BundleID = 0
	session.Selection.TeamID = 0
	session.Bundles = nil
	session.BundlesRevision = 0
}

// clearSlots сбрасывает выбранные слоты
func clearSlots(sel *domain.SelectionContext) {
	sel.SelectedSlots = nil
}

// Next переходит на следующий шаг мастера
//
// Текущий шаг должен быть заполнен. Уход с шага локации проверяет конфликт
// с активным пакетом, уход с шага параметров загружает бандлы, а с шага
// слотов и дальше вперед не пройти без активной блокировки расписания
func (s *Service) Next(ctx context.Context, token, sessionID string, userID int64) (*Snapshot, error) {
	session, err := s.session(sessionID, userID)
	if err != nil {
		return nil, err
	}

	session.Lock()
	defer session.Unlock()

	if session.IsLastStep() {
		return nil, fmt.Errorf("%w: already at the final step", ErrInvalidStep)
	}

	step := session.Step()
	if !s.stepComplete(session) {
		// Данные шага заполнены, но блокировки нет либо она истекла:
		// навигация вперед останавливается, пока слоты не пересобраны
		if stepDataComplete(session) && stepRequiresHold(step) {
			return nil, ErrHoldRequired
		}
		return nil, fmt.Errorf("%w: step %q", ErrStepIncomplete, step)
	}

	switch step {
	case domain.StepLocation:
		if err := s.checkConflict(ctx, token, session); err != nil {
			return nil, err
		}
	case domain.StepDetails:
		if err := s.loadBundles(ctx, token, session); err != nil {
			return nil, err
		}
		// Пока мьютекс был отпущен на время загрузки бандлов, параллельный
		// Next мог уже продвинуть сессию. Переход строго на один шаг:
		// повторный вызов не продвигает, а возвращает текущее состояние
		if session.Step() != domain.StepDetails {
			return s.snapshotLocked(session), nil
		}
	}

	session.StepIndex++
	s.logger.Info("Next: session=%s advanced to step=%s", session.ID, session.Step())

	return s.snapshotLocked(session), nil
}

// checkConflict ищет активный пакет регулярной уборки с идентичной
// шестеркой {area, district, property, residenceType, apartment, subService}
// Конфликт возвращается с найденным пакетом - клиент предлагает продление
func (s *Service) checkConflict(ctx context.Context, token string, session *sessions.Session) error {
	sel := &session.Selection
	if !sel.IsRegularCleaning() {
		return nil
	}

	records, err := s.bookings.ListBookings(ctx, token, bookingapi.BookingsFilter{
		UserID:     session.UserID,
		ActiveOnly: true,
	})
	if err != nil {
		// Недоступность списка не должна глушить мастер: конфликт
		// перехватит бэкенд на блокировке или подтверждении
		s.logger.Warn("checkConflict: bookings fetch failed for session=%s: %v", session.ID, err)
		return nil
	}

	for _, record := range records {
		if record.IsPackage() && record.IsActive() && record.MatchesLocationTuple(sel) {
			s.logger.Info("checkConflict: duplicate package %d found for session=%s",
				record.ID, session.ID)
			return &ConflictError{Existing: record}
		}
	}
	return nil
}

// loadBundles загружает бандлы для текущего выбора
//
// Сетевой вызов выполняется без мьютекса сессии; ответ с устаревшей
// ревизией выбора отбрасывается - более новое состояние не перетирается
func (s *Service) loadBundles(ctx context.Context, token string, session *sessions.Session) error {
	sel := &session.Selection
	revision := sel.Revision

	req := availability.BundlesRequest{
		StartDate:      sel.StartDate,
		Frequency:      sel.Frequency,
		DurationMonths: sel.DurationMonths,
		ServiceTypeID:  sel.SubServiceID,
	}
	propertyID := sel.PropertyID
	residenceTypeID := sel.ResidenceTypeID

	session.Unlock()
	err := s.fillBundlesContext(ctx, token, propertyID, residenceTypeID, &req)
	var bundles []domain.Bundle
	if err == nil {
		bundles, err = s.availability.Bundles(ctx, token, req)
	}
	session.Lock()

	if err != nil {
		s.logger.Error("loadBundles: failed for session=%s: %v", session.ID, err)
		return fmt.Errorf("%w: %v", ErrBundlesUnavailable, err)
	}

	if session.Selection.Revision != revision {
		s.logger.Warn("loadBundles: stale response discarded for session=%s, revision=%d, current=%d",
			session.ID, revision, session.Selection.Revision)
		return ErrStaleSelection
	}

	session.Bundles = bundles
	session.BundlesRevision = revision

	s.logger.Info("loadBundles: %d bundles loaded for session=%s, revision=%d",
		len(bundles), session.ID, revision)
	return nil
}

// fillBundlesContext дополняет запрос бандлов координатами объекта
// и длительностью услуги для типа резиденции
func (s *Service) fillBundlesContext(ctx context.Context, token string, propertyID, residenceTypeID int64, req *availability.BundlesRequest) error {
	property, err := s.refdata.Property(ctx, token, propertyID)
	if err != nil {
		return fmt.Errorf("property lookup failed: %w", err)
	}
	req.PropertyLocation = property.Location

	residenceTypes, err := s.refdata.ResidenceTypes(ctx, token)
	if err != nil {
		return fmt.Errorf("residence types lookup failed: %w", err)
	}
	for _, rt := range residenceTypes {
		if rt.ID == residenceTypeID {
			req.ServiceDurationMinutes = rt.DurationMinutes
			return nil
		}
	}
	return fmt.Errorf("residence type %d not found", residenceTypeID)
}

// Back возвращается на предыдущий шаг мастера
//
// Возврат с шага слотов снимает активную блокировку и сбрасывает
// DateChosenByUser: доступность к этому моменту могла устареть,
// пользователь обязан заново подтвердить дату
func (s *Service) Back(ctx context.Context, token, sessionID string, userID int64) (*Snapshot, error) {
	session, err := s.session(sessionID, userID)
	if err != nil {
		return nil, err
	}

	session.Lock()
	defer session.Unlock()

	if session.StepIndex == 0 {
		return nil, fmt.Errorf("%w: already at the first step", ErrInvalidStep)
	}

	if session.Step() == domain.StepSlots {
		if s.holds.State(session.ID) == domain.HoldHeld {
			if err := s.holds.Release(ctx, token, session.ID); err != nil {
				s.logger.Warn("Back: hold release failed for session=%s: %v", session.ID, err)
			}
		}
		session.Selection.DateChosenByUser = false
		session.Selection.SelectedSlots = nil
		session.Selection.Revision++
	}

	session.StepIndex--
	s.logger.Info("Back: session=%s returned to step=%s", session.ID, session.Step())

	return s.snapshotLocked(session), nil
}

// Close закрывает сессию мастера
// Защитное снятие блокировки: закрытие никогда не оставляет слоты занятыми
func (s *Service) Close(ctx context.Context, token, sessionID string, userID int64) error {
	session, err := s.session(sessionID, userID)
	if err != nil {
		return err
	}

	if s.holds.State(session.ID) == domain.HoldHeld {
		if err := s.holds.Release(ctx, token, session.ID); err != nil {
			s.logger.Warn("Close: hold release failed for session=%s: %v", session.ID, err)
		}
	}

	s.sessions.Delete(session.ID)
	s.logger.Info("Close: wizard session closed, session=%s, user=%d", session.ID, userID)
	return nil
}

// session возвращает сессию с проверкой владельца
func (s *Service) session(sessionID string, userID int64) (*sessions.Session, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	if session.UserID != userID {
		return nil, ErrForbidden
	}
	return session, nil
}

// snapshotLocked собирает снимок состояния; вызывающий держит мьютекс сессии
// либо сессия еще не опубликована
func (s *Service) snapshotLocked(session *sessions.Session) *Snapshot {
	snapshot := &Snapshot{
		SessionID: session.ID,
		Type:      session.Type,
		Step:      session.Step(),
		StepIndex: session.StepIndex,
		Steps:     session.Type.Steps(),
		Selection: session.Selection,
		Bundles:   session.Bundles,
		HoldState: s.holds.State(session.ID),
	}

	if hold, ok := s.holds.Hold(session.ID); ok {
		snapshot.Hold = hold
		snapshot.HoldRemaining = s.holds.Remaining(session.ID)
	}

	return snapshot
}
