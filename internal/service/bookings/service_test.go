package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CustomerPortal/internal/domain"
	"github.com/m04kA/SMC-CustomerPortal/internal/integrations/bookingapi"
	"github.com/m04kA/SMC-CustomerPortal/internal/service/bookings/models"
	"github.com/m04kA/SMC-CustomerPortal/pkg/ptr"
)

type fakeClient struct {
	records []*domain.BookingRecord
	slots   []domain.TimeSlotOption
	tickets []domain.Ticket
	err     error

	cancelWholeCalls  int
	cancelSingleCalls int
	rescheduleCalls   int
	lastFilter        bookingapi.BookingsFilter
	lastReason        string
	lastVisitDate     time.Time
}

func (f *fakeClient) ListBookings(_ context.Context, _ string, filter bookingapi.BookingsFilter) ([]*domain.BookingRecord, error) {
	f.lastFilter = filter
	return f.records, f.err
}

func (f *fakeClient) ListAllBookings(_ context.Context, _ string) ([]*domain.BookingRecord, error) {
	return f.records, f.err
}

func (f *fakeClient) CancelBooking(_ context.Context, _ string, _ int64, reason string) error {
	f.cancelWholeCalls++
	f.lastReason = reason
	return f.err
}

func (f *fakeClient) CancelSingleBooking(_ context.Context, _ string, _ int64, date time.Time) error {
	f.cancelSingleCalls++
	f.lastVisitDate = date
	return f.err
}

func (f *fakeClient) RescheduleTimeslots(_ context.Context, _ string, _ int64, _ time.Time) ([]domain.TimeSlotOption, error) {
	return f.slots, f.err
}

func (f *fakeClient) Reschedule(_ context.Context, _ string, _ bookingapi.RescheduleRequest) error {
	f.rescheduleCalls++
	return f.err
}

func (f *fakeClient) ListTickets(_ context.Context, _ string, _ int64) ([]domain.Ticket, error) {
	return f.tickets, f.err
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

var today = time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)

func newTestService(client *fakeClient) *Service {
	return NewService(client, &fixedTime{now: today}, noopLogger{})
}

func TestGetUserBookings_PassesFilter(t *testing.T) {
	client := &fakeClient{
		records: []*domain.BookingRecord{
			{ID: 1, Frequency: domain.FrequencyTwice, Status: domain.StatusActive},
			{ID: 2, Frequency: domain.FrequencyOneTime, Status: domain.StatusCompleted},
		},
	}
	service := newTestService(client)

	resp, err := service.GetUserBookings(context.Background(), "token", &models.GetUserBookingsRequest{
		UserID:          42,
		PropertyID:      ptr.Ptr(int64(5)),
		ApartmentNumber: ptr.Ptr("12"),
		ActiveOnly:      true,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), client.lastFilter.UserID)
	assert.Equal(t, int64(5), *client.lastFilter.PropertyID)
	assert.True(t, client.lastFilter.ActiveOnly)

	require.Len(t, resp.Bookings, 2)
	// Продлевать можно только активный пакет
	assert.True(t, resp.Bookings[0].CanRenew)
	assert.False(t, resp.Bookings[1].CanRenew)
}

func TestCancel_WholeBooking(t *testing.T) {
	client := &fakeClient{}
	service := newTestService(client)

	err := service.Cancel(context.Background(), "token", &models.CancelBookingRequest{
		UserID:    42,
		BookingID: 77,
		Reason:    "moving out",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, client.cancelWholeCalls)
	assert.Equal(t, 0, client.cancelSingleCalls)
	assert.Equal(t, "moving out", client.lastReason)
}

func TestCancel_SingleVisit(t *testing.T) {
	client := &fakeClient{}
	service := newTestService(client)

	visitDate := today.AddDate(0, 0, 3)
	err := service.Cancel(context.Background(), "token", &models.CancelBookingRequest{
		UserID:    42,
		BookingID: 77,
		VisitDate: &visitDate,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, client.cancelWholeCalls)
	assert.Equal(t, 1, client.cancelSingleCalls)
	assert.Equal(t, visitDate, client.lastVisitDate)
}

func TestCancel_PastOrSameDayVisitRejected(t *testing.T) {
	client := &fakeClient{}
	service := newTestService(client)

	for _, date := range []time.Time{
		today.AddDate(0, 0, -1),
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), // сегодняшний визит тоже не отменяется
	} {
		err := service.Cancel(context.Background(), "token", &models.CancelBookingRequest{
			UserID:    42,
			BookingID: 77,
			VisitDate: &date,
		})
		require.ErrorIs(t, err, ErrPastDate, "date %s", date.Format("2006-01-02"))
	}
	assert.Equal(t, 0, client.cancelSingleCalls)
}

func TestCancel_InvalidBookingID(t *testing.T) {
	service := newTestService(&fakeClient{})

	err := service.Cancel(context.Background(), "token", &models.CancelBookingRequest{UserID: 42})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel_BackendRejection(t *testing.T) {
	client := &fakeClient{err: bookingapi.ErrInvalidRequest}
	service := newTestService(client)

	err := service.Cancel(context.Background(), "token", &models.CancelBookingRequest{
		UserID:    42,
		BookingID: 77,
	})
	require.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_NotFound(t *testing.T) {
	client := &fakeClient{err: bookingapi.ErrNotFound}
	service := newTestService(client)

	err := service.Cancel(context.Background(), "token", &models.CancelBookingRequest{
		UserID:    42,
		BookingID: 77,
	})
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRescheduleTimeslots_PastDateRejected(t *testing.T) {
	service := newTestService(&fakeClient{})

	_, err := service.RescheduleTimeslots(context.Background(), "token", 77, today.AddDate(0, 0, -1))
	require.ErrorIs(t, err, ErrPastDate)
}

func TestRescheduleTimeslots_Success(t *testing.T) {
	client := &fakeClient{
		slots: []domain.TimeSlotOption{{ScheduleID: 100, StartTime: "10:00", EndTime: "12:00"}},
	}
	service := newTestService(client)

	slots, err := service.RescheduleTimeslots(context.Background(), "token", 77, today.AddDate(0, 0, 5))
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, int64(100), slots[0].ScheduleID)
}

func TestReschedule_DateValidation(t *testing.T) {
	client := &fakeClient{}
	service := newTestService(client)

	base := models.RescheduleRequest{
		UserID:     42,
		BookingID:  77,
		ScheduleID: 100,
		OldDate:    today.AddDate(0, 0, 2),
		NewDate:    today.AddDate(0, 0, 5),
	}

	require.NoError(t, service.Reschedule(context.Background(), "token", &base))
	assert.Equal(t, 1, client.rescheduleCalls)

	past := base
	past.OldDate = today.AddDate(0, 0, -2)
	require.ErrorIs(t, service.Reschedule(context.Background(), "token", &past), ErrPastDate)

	missing := base
	missing.NewDate = time.Time{}
	require.ErrorIs(t, service.Reschedule(context.Background(), "token", &missing), ErrInvalidInput)
}

func TestGetTickets(t *testing.T) {
	client := &fakeClient{
		tickets: []domain.Ticket{{ID: 9, BookingID: 77, Subject: "broken vacuum", Status: "open"}},
	}
	service := newTestService(client)

	resp, err := service.GetTickets(context.Background(), "token", 42)
	require.NoError(t, err)
	require.Len(t, resp.Tickets, 1)
	assert.Equal(t, "broken vacuum", resp.Tickets[0].Subject)
}
