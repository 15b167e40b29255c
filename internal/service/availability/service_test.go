package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CustomerPortal/internal/domain"
	"github.com/m04kA/SMC-CustomerPortal/internal/integrations/bookingapi"
)

type fakeClient struct {
	calendar map[string]domain.CalendarDay
	bundles  []domain.Bundle
	err      error
	lastReq  bookingapi.BundlesRequest
	calls    int
}

func (f *fakeClient) GetCalendar(_ context.Context, _ string, _ bookingapi.CalendarRequest) (map[string]domain.CalendarDay, error) {
	f.calls++
	return f.calendar, f.err
}

func (f *fakeClient) GetBundles(_ context.Context, _ string, req bookingapi.BundlesRequest) ([]domain.Bundle, error) {
	f.calls++
	f.lastReq = req
	return f.bundles, f.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func calendarRequest() CalendarRequest {
	return CalendarRequest{
		StartDate:       time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC),
		AreaID:          3,
		DistrictID:      4,
		PropertyID:      5,
		ApartmentNumber: "12",
	}
}

func bundlesRequest() BundlesRequest {
	return BundlesRequest{
		StartDate:              time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Frequency:              domain.FrequencyTwice,
		DurationMonths:         3,
		ServiceDurationMinutes: 180,
		ServiceTypeID:          2,
		PropertyLocation:       domain.GeoPoint{Lat: 25.1, Lng: 55.2},
	}
}

func TestCalendar_Success(t *testing.T) {
	client := &fakeClient{
		calendar: map[string]domain.CalendarDay{
			"2026-09-15": {Available: true},
			"2026-09-16": {Available: false, UserBooked: true},
		},
	}
	service := NewService(client, noopLogger{})

	days, err := service.Calendar(context.Background(), "token", calendarRequest())
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.True(t, days["2026-09-15"].Available)
	assert.True(t, days["2026-09-16"].UserBooked)
}

func TestCalendar_FetchFailureGivesEmptyCalendar(t *testing.T) {
	client := &fakeClient{err: errors.New("backend down")}
	service := NewService(client, noopLogger{})

	// Провал запроса рендерится как "нет доступности", мастер остается рабочим
	days, err := service.Calendar(context.Background(), "token", calendarRequest())
	require.NoError(t, err)
	assert.Empty(t, days)
}

func TestCalendar_InvalidRangeGivesEmptyCalendar(t *testing.T) {
	client := &fakeClient{}
	service := NewService(client, noopLogger{})

	req := calendarRequest()
	req.EndDate = req.StartDate.AddDate(0, 0, -1)

	days, err := service.Calendar(context.Background(), "token", req)
	require.NoError(t, err)
	assert.Empty(t, days)
	assert.Equal(t, 0, client.calls)
}

func TestCalendar_UnauthorizedIsFatal(t *testing.T) {
	client := &fakeClient{err: bookingapi.ErrUnauthorized}
	service := NewService(client, noopLogger{})

	_, err := service.Calendar(context.Background(), "token", calendarRequest())
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestBundles_Success(t *testing.T) {
	client := &fakeClient{bundles: []domain.Bundle{{ID: 1}}}
	service := NewService(client, noopLogger{})

	bundles, err := service.Bundles(context.Background(), "token", bundlesRequest())
	require.NoError(t, err)
	require.Len(t, bundles, 1)

	assert.Equal(t, 3, client.lastReq.ServicePeriodMonths)
	assert.Equal(t, 180, client.lastReq.DurationMinutes)
	assert.Equal(t, domain.GeoPoint{Lat: 25.1, Lng: 55.2}, client.lastReq.Location)
}

func TestBundles_FetchFailureIsError(t *testing.T) {
	client := &fakeClient{err: errors.New("backend down")}
	service := NewService(client, noopLogger{})

	// В отличие от календаря, без бандлов переход по мастеру не происходит
	_, err := service.Bundles(context.Background(), "token", bundlesRequest())
	require.ErrorIs(t, err, ErrBundlesUnavailable)
}

func TestBundles_Validation(t *testing.T) {
	client := &fakeClient{}
	service := NewService(client, noopLogger{})

	req := bundlesRequest()
	req.Frequency = "weekly"
	_, err := service.Bundles(context.Background(), "token", req)
	require.ErrorIs(t, err, ErrInvalidInput)

	req = bundlesRequest()
	req.ServiceDurationMinutes = 0
	_, err = service.Bundles(context.Background(), "token", req)
	require.ErrorIs(t, err, ErrInvalidInput)

	assert.Equal(t, 0, client.calls)
}
