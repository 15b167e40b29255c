package wizard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CustomerPortal/internal/domain"
	"github.com/m04kA/SMC-CustomerPortal/internal/infra/sessions"
	"github.com/m04kA/SMC-CustomerPortal/internal/integrations/bookingapi"
	"github.com/m04kA/SMC-CustomerPortal/internal/service/availability"
	"github.com/m04kA/SMC-CustomerPortal/pkg/types"
)

const (
	testUserID = int64(42)
	testToken  = "token"
)

type fakeBookings struct {
	mu         sync.Mutex
	records    []*domain.BookingRecord
	err        error
	lastFilter bookingapi.BookingsFilter
}

func (f *fakeBookings) ListBookings(_ context.Context, _ string, filter bookingapi.BookingsFilter) ([]*domain.BookingRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

type fakeAvailability struct {
	mu      sync.Mutex
	bundles []domain.Bundle
	err     error
	calls   int
	onFetch func()
}

func (f *fakeAvailability) Bundles(_ context.Context, _ string, _ availability.BundlesRequest) ([]domain.Bundle, error) {
	f.mu.Lock()
	f.calls++
	onFetch := f.onFetch
	err := f.err
	bundles := f.bundles
	f.mu.Unlock()

	if onFetch != nil {
		onFetch()
	}
	if err != nil {
		return nil, err
	}
	return bundles, nil
}

type fakeRefData struct {
	property       *domain.PropertyOption
	propertyErr    error
	residenceTypes []domain.ResidenceTypeOption
}

func (f *fakeRefData) Property(_ context.Context, _ string, _ int64) (*domain.PropertyOption, error) {
	if f.propertyErr != nil {
		return nil, f.propertyErr
	}
	return f.property, nil
}

func (f *fakeRefData) ResidenceTypes(_ context.Context, _ string) ([]domain.ResidenceTypeOption, error) {
	return f.residenceTypes, nil
}

type fakeHolds struct {
	mu       sync.Mutex
	states   map[string]domain.HoldState
	released []string
	hold     *domain.ReservationHold
}

func newFakeHolds() *fakeHolds {
	return &fakeHolds{states: make(map[string]domain.HoldState)}
}

func (f *fakeHolds) Release(_ context.Context, _ string, sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.released = append(f.released, sessionID)
	f.states[sessionID] = domain.HoldReleased
	return nil
}

func (f *fakeHolds) State(sessionID string) domain.HoldState {
	f.mu.Lock()
	defer f.mu.Unlock()
	if state, ok := f.states[sessionID]; ok {
		return state
	}
	return domain.HoldIdle
}

func (f *fakeHolds) Hold(sessionID string) (*domain.ReservationHold, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.states[sessionID] != domain.HoldHeld {
		return nil, false
	}
	return f.hold, true
}

func (f *fakeHolds) Remaining(sessionID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.states[sessionID] != domain.HoldHeld {
		return 0
	}
	return 300
}

func (f *fakeHolds) markHeld(sessionID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.states[sessionID] = domain.HoldHeld
	f.hold = &domain.ReservationHold{BlockID: "block-1", HeldSlots: []int64{100}}
}

func (f *fakeHolds) releasedSessions() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.released))
	copy(out, f.released)
	return out
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fixture struct {
	service      *Service
	store        *sessions.Store
	bookings     *fakeBookings
	availability *fakeAvailability
	refdata      *fakeRefData
	holds        *fakeHolds
}

func newFixture() *fixture {
	f := &fixture{
		store:    sessions.NewStore(),
		bookings: &fakeBookings{},
		availability: &fakeAvailability{
			bundles: []domain.Bundle{{ID: 1, Teams: []domain.BundleTeam{{ID: 20}}}},
		},
		refdata: &fakeRefData{
			property: &domain.PropertyOption{ID: 5, Location: domain.GeoPoint{Lat: 25.1, Lng: 55.2}},
			residenceTypes: []domain.ResidenceTypeOption{
				{ID: 6, Name: "2BR", DurationMinutes: 180},
			},
		},
		holds: newFakeHolds(),
	}
	f.service = NewService(f.store, f.bookings, f.availability, f.refdata, f.holds, noopLogger{})
	return f
}

func fillLocation(sel *domain.SelectionContext) {
	sel.ServiceID = 1
	sel.SubServiceID = 2
	sel.SubServiceCategory = domain.ServiceCategoryRegularCleaning
	sel.AreaID = 3
	sel.DistrictID = 4
	sel.PropertyID = 5
	sel.ResidenceTypeID = 6
	sel.ApartmentNumber = "12"
}

func fillDetails(sel *domain.SelectionContext) {
	sel.Frequency = domain.FrequencyTwice
	sel.StartDate = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	sel.DurationMonths = 3
	sel.DateChosenByUser = true
}

func fillBundle(sel *domain.SelectionContext) {
	sel.BundleID = 10
	sel.TeamID = 20
}

func fillSlots(sel *domain.SelectionContext) {
	sel.SelectedSlots = []domain.SelectedSlot{
		{Day: "monday", ScheduleID: 100, StartTime: types.TimeString("10:00"), EndTime: types.TimeString("12:00")},
		{Day: "thursday", ScheduleID: 101, StartTime: types.TimeString("14:00"), EndTime: types.TimeString("16:00")},
	}
}

// openAt открывает новую сессию и доводит ее до нужного шага,
// заполняя выбор напрямую
func (f *fixture) openAt(t *testing.T, step domain.WizardStep) *sessions.Session {
	t.Helper()

	snap, err := f.service.Open(context.Background(), testToken, testUserID, domain.WizardNew, nil)
	require.NoError(t, err)

	session, ok := f.store.Get(snap.SessionID)
	require.True(t, ok)

	steps := domain.WizardNew.Steps()
	for i, s := range steps {
		if s == step {
			session.StepIndex = i
			break
		}
	}

	sel := &session.Selection
	switch step {
	case domain.StepDetails:
		fillLocation(sel)
	case domain.StepBundle:
		fillLocation(sel)
		fillDetails(sel)
	case domain.StepSlots:
		fillLocation(sel)
		fillDetails(sel)
		fillBundle(sel)
	case domain.StepCustomer:
		fillLocation(sel)
		fillDetails(sel)
		fillBundle(sel)
		fillSlots(sel)
	}
	return session
}

func activePackage(userID int64) *domain.BookingRecord {
	return &domain.BookingRecord{
		ID:                 77,
		UserID:             userID,
		ServiceID:          1,
		SubServiceID:       2,
		SubServiceCategory: domain.ServiceCategoryRegularCleaning,
		AreaID:             3,
		DistrictID:         4,
		PropertyID:         5,
		ResidenceTypeID:    6,
		ApartmentNumber:    "12",
		Frequency:          domain.FrequencyTwice,
		DurationMonths:     3,
		Status:             domain.StatusActive,
	}
}

func TestOpen_NewWizard(t *testing.T) {
	f := newFixture()

	snap, err := f.service.Open(context.Background(), testToken, testUserID, domain.WizardNew, nil)
	require.NoError(t, err)

	assert.Equal(t, domain.WizardNew, snap.Type)
	assert.Equal(t, domain.StepLocation, snap.Step)
	assert.Equal(t, 0, snap.StepIndex)
	assert.Len(t, snap.Steps, 6)
	assert.Equal(t, domain.HoldIdle, snap.HoldState)
	assert.Equal(t, 1, f.store.Len())
}

func TestOpen_UnknownType(t *testing.T) {
	f := newFixture()

	_, err := f.service.Open(context.Background(), testToken, testUserID, domain.WizardType("bulk"), nil)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestOpen_RenewInheritsLocation(t *testing.T) {
	f := newFixture()
	f.bookings.records = []*domain.BookingRecord{activePackage(testUserID)}

	renewID := int64(77)
	snap, err := f.service.Open(context.Background(), testToken, testUserID, domain.WizardRenew, &renewID)
	require.NoError(t, err)

	assert.Equal(t, domain.WizardRenew, snap.Type)
	assert.Equal(t, domain.StepDetails, snap.Step)
	assert.Len(t, snap.Steps, 5)

	// Локация и параметры унаследованы из пакета, дата и слоты выбираются заново
	assert.Equal(t, int64(3), snap.Selection.AreaID)
	assert.Equal(t, "12", snap.Selection.ApartmentNumber)
	assert.Equal(t, domain.FrequencyTwice, snap.Selection.Frequency)
	assert.True(t, snap.Selection.StartDate.IsZero())
	assert.False(t, snap.Selection.DateChosenByUser)
	assert.Empty(t, snap.Selection.SelectedSlots)

	session, ok := f.store.Get(snap.SessionID)
	require.True(t, ok)
	assert.Equal(t, int64(77), session.RenewedFromID)
}

func TestOpen_RenewRequiresBookingID(t *testing.T) {
	f := newFixture()

	_, err := f.service.Open(context.Background(), testToken, testUserID, domain.WizardRenew, nil)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestOpen_RenewRejectsOneTimeBooking(t *testing.T) {
	f := newFixture()
	source := activePackage(testUserID)
	source.Frequency = domain.FrequencyOneTime
	f.bookings.records = []*domain.BookingRecord{source}

	renewID := int64(77)
	_, err := f.service.Open(context.Background(), testToken, testUserID, domain.WizardRenew, &renewID)
	require.ErrorIs(t, err, ErrBookingNotRenewable)
}

func TestOpen_RenewRejectsForeignBooking(t *testing.T) {
	f := newFixture()
	f.bookings.records = []*domain.BookingRecord{activePackage(999)}

	renewID := int64(77)
	_, err := f.service.Open(context.Background(), testToken, testUserID, domain.WizardRenew, &renewID)
	require.ErrorIs(t, err, ErrForbidden)
}

func TestGet_OwnerChecks(t *testing.T) {
	f := newFixture()
	session := f.openAt(t, domain.StepLocation)

	_, err := f.service.Get("missing", testUserID)
	require.ErrorIs(t, err, ErrSessionNotFound)

	_, err = f.service.Get(session.ID, testUserID+1)
	require.ErrorIs(t, err, ErrForbidden)

	snap, err := f.service.Get(session.ID, testUserID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, snap.SessionID)
}

func TestUpdateSelection_LocationChangeCascades(t *testing.T) {
	f := newFixture()
	session := f.openAt(t, domain.StepCustomer)
	session.Bundles = f.availability.bundles
	f.holds.markHeld(session.ID)
	before := session.Selection.Revision

	newArea := int64(9)
	snap, err := f.service.UpdateSelection(context.Background(), testToken, session.ID, testUserID, UpdateRequest{
		AreaID: &newArea,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(9), snap.Selection.AreaID)
	assert.Empty(t, snap.Selection.Frequency)
	assert.True(t, snap.Selection.StartDate.IsZero())
	assert.False(t, snap.Selection.DateChosenByUser)
	assert.Zero(t, snap.Selection.BundleID)
	assert.Zero(t, snap.Selection.TeamID)
	assert.Empty(t, snap.Selection.SelectedSlots)
	assert.Empty(t, snap.Bundles)
	assert.Equal(t, before+1, snap.Selection.Revision)

	// Слоты инвалидированы - блокировка снята
	assert.Equal(t, []string{session.ID}, f.holds.releasedSessions())
}

func TestUpdateSelection_DetailsChangeKeepsLocation(t *testing.T) {
	f := newFixture()
	session := f.openAt(t, domain.StepCustomer)

	freq := domain.FrequencyThree
	snap, err := f.service.UpdateSelection(context.Background(), testToken, session.ID, testUserID, UpdateRequest{
		Frequency: &freq,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), snap.Selection.AreaID)
	assert.Equal(t, domain.FrequencyThree, snap.Selection.Frequency)
	assert.Zero(t, snap.Selection.BundleID)
	assert.Empty(t, snap.Selection.SelectedSlots)
}

func TestUpdateSelection_BundleChangeClearsSlots(t *testing.T) {
	f := newFixture()
	session := f.openAt(t, domain.StepCustomer)

	newBundle := int64(11)
	snap, err := f.service.UpdateSelection(context.Background(), testToken, session.ID, testUserID, UpdateRequest{
		BundleID: &newBundle,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(11), snap.Selection.BundleID)
	assert.Equal(t, domain.FrequencyTwice, snap.Selection.Frequency)
	assert.Empty(t, snap.Selection.SelectedSlots)
}

func TestUpdateSelection_StartDateMarksDateChosen(t *testing.T) {
	f := newFixture()
	session := f.openAt(t, domain.StepDetails)
	require.False(t, session.Selection.DateChosenByUser)

	date := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	snap, err := f.service.UpdateSelection(context.Background(), testToken, session.ID, testUserID, UpdateRequest{
		StartDate: &date,
	})
	require.NoError(t, err)

	assert.True(t, snap.Selection.DateChosenByUser)
	assert.Equal(t, date, snap.Selection.StartDate)
}

func TestUpdateSelection_RenewLocationIsFixed(t *testing.T) {
	f := newFixture()
	f.bookings.records = []*domain.BookingRecord{activePackage(testUserID)}

	renewID := int64(77)
	snap, err := f.service.Open(context.Background(), testToken, testUserID, domain.WizardRenew, &renewID)
	require.NoError(t, err)

	newArea := int64(9)
	_, err = f.service.UpdateSelection(context.Background(), testToken, snap.SessionID, testUserID, UpdateRequest{
		AreaID: &newArea,
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestNext_StepIncomplete(t *testing.T) {
	f := newFixture()
	session := f.openAt(t, domain.StepLocation)

	_, err := f.service.Next(context.Background(), testToken, session.ID, testUserID)
	require.ErrorIs(t, err, ErrStepIncomplete)
	assert.Equal(t, 0, session.StepIndex)
}

func TestNext_DuplicatePackageConflict(t *testing.T) {
	f := newFixture()
	session := f.openAt(t, domain.StepDetails)
	session.StepIndex = 0 // шаг локации с заполненным выбором
	f.bookings.records = []*domain.BookingRecord{activePackage(testUserID)}

	_, err := f.service.Next(context.Background(), testToken, session.ID, testUserID)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, int64(77), conflict.Existing.ID)
	assert.Equal(t, 0, session.StepIndex)
	assert.True(t, f.bookings.lastFilter.ActiveOnly)
}

func TestNext_ConflictClearedByTupleChange(t *testing.T) {
	f := newFixture()
	session := f.openAt(t, domain.StepDetails)
	session.StepIndex = 0
	session.Selection.ApartmentNumber = "13" // другая квартира - конфликта нет
	f.bookings.records = []*domain.BookingRecord{activePackage(testUserID)}

	snap, err := f.service.Next(context.Background(), testToken, session.ID, testUserID)
	require.NoError(t, err)
	assert.Equal(t, domain.StepDetails, snap.Step)
}

func TestNext_ConflictFetchFailureDoesNotBlock(t *testing.T) {
	f := newFixture()
	session := f.openAt(t, domain.StepDetails)
	session.StepIndex = 0
	f.bookings.err = errors.New("backend down")

	// Недоступность списка не глушит мастер - конфликт перехватит бэкенд
	snap, err := f.service.Next(context.Background(), testToken, session.ID, testUserID)
	require.NoError(t, err)
	assert.Equal(t, domain.StepDetails, snap.Step)
}

func TestNext_LoadsBundlesLeavingDetails(t *testing.T) {
	f := newFixture()
	session := f.openAt(t, domain.StepBundle)
	session.StepIndex = 1 // шаг параметров с заполненным выбором

	snap, err := f.service.Next(context.Background(), testToken, session.ID, testUserID)
	require.NoError(t, err)

	assert.Equal(t, domain.StepBundle, snap.Step)
	assert.Len(t, snap.Bundles, 1)
	assert.Equal(t, 1, f.availability.calls)
}

func TestNext_BundlesUnavailableBlocksTransition(t *testing.T) {
	f := newFixture()
	session := f.openAt(t, domain.StepBundle)
	session.StepIndex = 1
	f.availability.err = errors.New("bundles backend down")

	_, err := f.service.Next(context.Background(), testToken, session.ID, testUserID)
	require.ErrorIs(t, err, ErrBundlesUnavailable)
	assert.Equal(t, 1, session.StepIndex)
}

func TestNext_StaleBundlesDiscarded(t *testing.T) {
	f := newFixture()
	session := f.openAt(t, domain.StepBundle)
	session.StepIndex = 1

	// Пока запрос бандлов в полете, выбор меняется из второй вкладки
	f.availability.onFetch = func() {
		session.Lock()
		session.Selection.Revision++
		session.Unlock()
	}

	_, err := f.service.Next(context.Background(), testToken, session.ID, testUserID)
	require.ErrorIs(t, err, ErrStaleSelection)
	assert.Equal(t, 1, session.StepIndex)
	assert.Empty(t, session.Bundles)
}

func TestNext_SlotsRequireActiveHold(t *testing.T) {
	f := newFixture()
	session := f.openAt(t, domain.StepCustomer)
	session.StepIndex = 3 // шаг слотов с выбранными слотами, блокировки нет

	_, err := f.service.Next(context.Background(), testToken, session.ID, testUserID)
	require.ErrorIs(t, err, ErrHoldRequired)
}

func TestNext_ExpiredHoldStopsCustomerStep(t *testing.T) {
	f := newFixture()
	session := f.openAt(t, domain.StepCustomer)
	session.Selection.Customer = domain.CustomerDetails{Name: "Anna", Phone: "+971501234567"}

	// Блокировка истекла, пока пользователь заполнял контакты: контакты
	// валидны, но вперед без активной блокировки не пройти
	_, err := f.service.Next(context.Background(), testToken, session.ID, testUserID)
	require.ErrorIs(t, err, ErrHoldRequired)
	assert.Equal(t, domain.StepCustomer, session.Step())

	f.holds.markHeld(session.ID)
	snap, err := f.service.Next(context.Background(), testToken, session.ID, testUserID)
	require.NoError(t, err)
	assert.Equal(t, domain.StepReview, snap.Step)
}

func TestNext_ExtraStepRequiresActiveHold(t *testing.T) {
	f := newFixture()
	f.bookings.records = []*domain.BookingRecord{activePackage(testUserID)}

	renewID := int64(77)
	snap, err := f.service.Open(context.Background(), testToken, testUserID, domain.WizardRenew, &renewID)
	require.NoError(t, err)

	session, ok := f.store.Get(snap.SessionID)
	require.True(t, ok)
	session.StepIndex = 3 // шаг extra потока продления
	require.Equal(t, domain.StepExtra, session.Step())

	_, err = f.service.Next(context.Background(), testToken, session.ID, testUserID)
	require.ErrorIs(t, err, ErrHoldRequired)

	f.holds.markHeld(session.ID)
	next, err := f.service.Next(context.Background(), testToken, session.ID, testUserID)
	require.NoError(t, err)
	assert.Equal(t, domain.StepReview, next.Step)
}

func TestNext_ConcurrentNextAdvancesOnce(t *testing.T) {
	f := newFixture()
	session := f.openAt(t, domain.StepBundle)
	session.StepIndex = 1 // шаг параметров, оба вызова уходят в загрузку бандлов

	started := make(chan struct{}, 2)
	gate := make(chan struct{})
	f.availability.onFetch = func() {
		started <- struct{}{}
		<-gate
	}

	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, err := f.service.Next(context.Background(), testToken, session.ID, testUserID)
			errs <- err
		}()
	}

	// Оба вызова зависли в запросе бандлов с отпущенным мьютексом сессии
	<-started
	<-started
	close(gate)

	require.NoError(t, <-errs)
	require.NoError(t, <-errs)

	// Двойной клик продвигает сессию ровно на один шаг
	session.Lock()
	defer session.Unlock()
	assert.Equal(t, 2, session.StepIndex)
	assert.Equal(t, domain.StepBundle, session.Step())
}

func TestNext_SlotsAdvanceWithHold(t *testing.T) {
	f := newFixture()
	session := f.openAt(t, domain.StepCustomer)
	session.StepIndex = 3
	f.holds.markHeld(session.ID)

	snap, err := f.service.Next(context.Background(), testToken, session.ID, testUserID)
	require.NoError(t, err)

	assert.Equal(t, domain.StepCustomer, snap.Step)
	assert.Equal(t, domain.HoldHeld, snap.HoldState)
	require.NotNil(t, snap.Hold)
	assert.Equal(t, "block-1", snap.Hold.BlockID)
	assert.Equal(t, 300, snap.HoldRemaining)
}

func TestNext_FinalStepRejected(t *testing.T) {
	f := newFixture()
	session := f.openAt(t, domain.StepCustomer)
	session.StepIndex = len(domain.WizardNew.Steps()) - 1

	_, err := f.service.Next(context.Background(), testToken, session.ID, testUserID)
	require.ErrorIs(t, err, ErrInvalidStep)
}

func TestBack_FirstStepRejected(t *testing.T) {
	f := newFixture()
	session := f.openAt(t, domain.StepLocation)

	_, err := f.service.Back(context.Background(), testToken, session.ID, testUserID)
	require.ErrorIs(t, err, ErrInvalidStep)
}

func TestBack_FromSlotsReleasesHoldAndResetsDate(t *testing.T) {
	f := newFixture()
	session := f.openAt(t, domain.StepCustomer)
	session.StepIndex = 3 // шаг слотов
	f.holds.markHeld(session.ID)
	before := session.Selection.Revision

	snap, err := f.service.Back(context.Background(), testToken, session.ID, testUserID)
	require.NoError(t, err)

	assert.Equal(t, domain.StepBundle, snap.Step)
	assert.False(t, snap.Selection.DateChosenByUser)
	assert.Empty(t, snap.Selection.SelectedSlots)
	assert.Equal(t, before+1, snap.Selection.Revision)
	assert.Equal(t, []string{session.ID}, f.holds.releasedSessions())
}

func TestBack_FromBundleKeepsSelection(t *testing.T) {
	f := newFixture()
	session := f.openAt(t, domain.StepBundle)

	snap, err := f.service.Back(context.Background(), testToken, session.ID, testUserID)
	require.NoError(t, err)

	assert.Equal(t, domain.StepDetails, snap.Step)
	assert.True(t, snap.Selection.DateChosenByUser)
	assert.Empty(t, f.holds.releasedSessions())
}

func TestClose_ReleasesHoldAndDeletesSession(t *testing.T) {
	f := newFixture()
	session := f.openAt(t, domain.StepCustomer)
	f.holds.markHeld(session.ID)

	require.NoError(t, f.service.Close(context.Background(), testToken, session.ID, testUserID))

	assert.Equal(t, []string{session.ID}, f.holds.releasedSessions())
	assert.Equal(t, 0, f.store.Len())
}

func TestClose_WithoutHold(t *testing.T) {
	f := newFixture()
	session := f.openAt(t, domain.StepLocation)

	require.NoError(t, f.service.Close(context.Background(), testToken, session.ID, testUserID))
	assert.Empty(t, f.holds.releasedSessions())
	assert.Equal(t, 0, f.store.Len())
}
