package confirm_booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CustomerPortal/internal/domain"
	"github.com/m04kA/SMC-CustomerPortal/internal/infra/sessions"
	"github.com/m04kA/SMC-CustomerPortal/internal/integrations/bookingapi"
)

type fakeHolds struct {
	hold         *domain.ReservationHold
	confirmCalls int
	abandonCalls int
}

func (f *fakeHolds) Hold(string) (*domain.ReservationHold, bool) {
	if f.hold == nil {
		return nil, false
	}
	return f.hold, true
}

func (f *fakeHolds) Confirm(string) error {
	f.confirmCalls++
	return nil
}

func (f *fakeHolds) Abandon(string) {
	f.abandonCalls++
}

type fakeClient struct {
	booking *domain.BookingRecord
	err     error
	lastReq bookingapi.ConfirmBookingRequest
	calls   int
}

func (f *fakeClient) ConfirmBooking(_ context.Context, _ string, req bookingapi.ConfirmBookingRequest) (*domain.BookingRecord, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.booking, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fixture struct {
	uc     *UseCase
	store  *sessions.Store
	holds  *fakeHolds
	client *fakeClient
}

func newFixture() *fixture {
	f := &fixture{
		store: sessions.NewStore(),
		holds: &fakeHolds{
			hold: &domain.ReservationHold{BlockID: "blk-42", HeldSlots: []int64{100}},
		},
		client: &fakeClient{
			booking: &domain.BookingRecord{ID: 77, UserID: 42, Status: domain.StatusActive},
		},
	}
	f.uc = NewUseCase(f.store, f.holds, f.client, noopLogger{})
	return f
}

// reviewSession создает сессию на финальном шаге с заполненными контактами
func (f *fixture) reviewSession(wizardType domain.WizardType) *sessions.Session {
	selection := domain.SelectionContext{
		ApartmentNumber: "12",
		Customer: domain.CustomerDetails{
			Name:                 "Anna",
			Phone:                "+971501234567",
			PresentDuringService: true,
			SpecialInstructions:  "ring twice",
		},
	}
	if wizardType == domain.WizardRenew {
		selection.Customer = domain.CustomerDetails{}
	}

	session := f.store.Create(42, wizardType, selection)
	session.StepIndex = len(wizardType.Steps()) - 1
	return session
}

func TestExecute_Success(t *testing.T) {
	f := newFixture()
	session := f.reviewSession(domain.WizardNew)

	resp, err := f.uc.Execute(context.Background(), "token", &Request{UserID: 42, SessionID: session.ID})
	require.NoError(t, err)

	assert.Equal(t, int64(77), resp.Booking.ID)
	assert.False(t, resp.IsRenewed)

	assert.Equal(t, "blk-42", f.client.lastReq.BlockID)
	assert.Equal(t, "+971501234567", f.client.lastReq.UserPhone)
	assert.True(t, f.client.lastReq.UserAvailableInApartment)
	assert.Equal(t, "12", f.client.lastReq.ApartmentNumber)
	assert.False(t, f.client.lastReq.IsRenewed)

	// Блокировка поглощена, сессия уничтожена
	assert.Equal(t, 1, f.holds.confirmCalls)
	assert.Equal(t, 0, f.holds.abandonCalls)
	assert.Equal(t, 0, f.store.Len())
}

func TestExecute_RenewLinksSourcePackage(t *testing.T) {
	f := newFixture()
	session := f.reviewSession(domain.WizardRenew)
	session.RenewedFromID = 55

	resp, err := f.uc.Execute(context.Background(), "token", &Request{UserID: 42, SessionID: session.ID})
	require.NoError(t, err)

	assert.True(t, resp.IsRenewed)
	assert.True(t, f.client.lastReq.IsRenewed)
	require.NotNil(t, f.client.lastReq.PrevBookingID)
	assert.Equal(t, int64(55), *f.client.lastReq.PrevBookingID)
}

func TestExecute_NotOnReviewStep(t *testing.T) {
	f := newFixture()
	session := f.reviewSession(domain.WizardNew)
	session.StepIndex = 3

	_, err := f.uc.Execute(context.Background(), "token", &Request{UserID: 42, SessionID: session.ID})
	require.ErrorIs(t, err, ErrNotOnReviewStep)
	assert.Equal(t, 0, f.client.calls)
	assert.Equal(t, 1, f.store.Len())
}

func TestExecute_MissingCustomerData(t *testing.T) {
	f := newFixture()
	session := f.reviewSession(domain.WizardNew)
	session.Selection.Customer.Phone = "123" // короче минимальной длины

	_, err := f.uc.Execute(context.Background(), "token", &Request{UserID: 42, SessionID: session.ID})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 0, f.client.calls)
}

func TestExecute_NoActiveHold(t *testing.T) {
	f := newFixture()
	session := f.reviewSession(domain.WizardNew)
	f.holds.hold = nil

	_, err := f.uc.Execute(context.Background(), "token", &Request{UserID: 42, SessionID: session.ID})
	require.ErrorIs(t, err, ErrNoActiveHold)
	assert.Equal(t, 0, f.client.calls)
}

func TestExecute_ForeignSession(t *testing.T) {
	f := newFixture()
	session := f.reviewSession(domain.WizardNew)

	_, err := f.uc.Execute(context.Background(), "token", &Request{UserID: 43, SessionID: session.ID})
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_BackendFailureIsTerminal(t *testing.T) {
	f := newFixture()
	session := f.reviewSession(domain.WizardNew)
	f.client.err = errors.New("backend down")

	_, err := f.uc.Execute(context.Background(), "token", &Request{UserID: 42, SessionID: session.ID})
	require.ErrorIs(t, err, ErrConfirmFailed)

	// Бэкенд инвалидировал блокировку сам - Abandon вместо release,
	// сессия уничтожена, мастер начинается заново
	assert.Equal(t, 1, f.holds.abandonCalls)
	assert.Equal(t, 0, f.holds.confirmCalls)
	assert.Equal(t, 0, f.store.Len())
}

func TestExecute_ExpiredHoldOnBackend(t *testing.T) {
	f := newFixture()
	session := f.reviewSession(domain.WizardNew)
	f.client.err = bookingapi.ErrHoldExpired

	_, err := f.uc.Execute(context.Background(), "token", &Request{UserID: 42, SessionID: session.ID})
	require.ErrorIs(t, err, ErrHoldExpired)
	assert.Equal(t, 1, f.holds.abandonCalls)
	assert.Equal(t, 0, f.store.Len())
}
