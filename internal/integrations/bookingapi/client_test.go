package bookingapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CustomerPortal/internal/domain"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient(server.URL, 5*time.Second, noopLogger{})
	return client, server
}

func TestBlockSchedule_Success(t *testing.T) {
	var gotBody map[string]interface{}
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/bookings/block", r.URL.Path)
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"blockId":"blk-42"}}`))
	})
	defer server.Close()

	blockID, err := client.BlockSchedule(context.Background(), "token-1", BlockScheduleRequest{
		ScheduleIDs:     []int64{100, 101},
		AreaID:          3,
		PropertyID:      5,
		ApartmentNumber: "12",
		TeamID:          20,
		BundleID:        10,
		StartDate:       time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Frequency:       domain.FrequencyTwice,
		DurationMonths:  3,
		TotalAmount:     1200,
		Currency:        "AED",
	})
	require.NoError(t, err)

	assert.Equal(t, "blk-42", blockID)
	assert.Equal(t, "2026-09-15", gotBody["startDate"])
	assert.Equal(t, "twice", gotBody["frequency"])
	assert.Equal(t, "12", gotBody["apartment_number"])
	assert.Equal(t, float64(1200), gotBody["total_amount"])
}

func TestBlockSchedule_SlotTaken(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})
	defer server.Close()

	_, err := client.BlockSchedule(context.Background(), "token", BlockScheduleRequest{})
	require.ErrorIs(t, err, ErrSlotTaken)
}

func TestBlockSchedule_EmptyBlockID(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{}}`))
	})
	defer server.Close()

	_, err := client.BlockSchedule(context.Background(), "token", BlockScheduleRequest{})
	require.ErrorIs(t, err, ErrInvalidResponse)
}

func TestReleaseSlot_NotFoundIsSuccess(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/release-slot", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	})
	defer server.Close()

	// 404 означает, что блокировка уже снята или истекла - для портала это успех
	require.NoError(t, client.ReleaseSlot(context.Background(), "token", "blk-42"))
}

func TestConfirmBooking_Success(t *testing.T) {
	var gotBody map[string]interface{}
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookings/confirm", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{
			"id": 77,
			"user_id": 42,
			"frequency": "twice",
			"start_date": "2026-09-15",
			"status": "active",
			"appartment_number": "12",
			"total_amount": 1200,
			"currency": "AED"
		}}`))
	})
	defer server.Close()

	prevID := int64(55)
	record, err := client.ConfirmBooking(context.Background(), "token", ConfirmBookingRequest{
		BlockID:       "blk-42",
		UserPhone:     "+971501234567",
		IsRenewed:     true,
		PrevBookingID: &prevID,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(77), record.ID)
	assert.Equal(t, domain.StatusActive, record.Status)
	// Историческое appartment_number нормализуется на границе API
	assert.Equal(t, "12", record.ApartmentNumber)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), record.StartDate)

	assert.Equal(t, "blk-42", gotBody["blockId"])
	assert.Equal(t, true, gotBody["is_renewed"])
	assert.Equal(t, float64(55), gotBody["prev_booking_id"])
}

func TestConfirmBooking_ConflictMeansExpiredHold(t *testing.T) {
	for _, status := range []int{http.StatusConflict, http.StatusGone} {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})

		_, err := client.ConfirmBooking(context.Background(), "token", ConfirmBookingRequest{BlockID: "blk-42"})
		require.ErrorIs(t, err, ErrHoldExpired, "status %d", status)
		server.Close()
	}
}

func TestListBookings_FilterAndNormalization(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookings", r.URL.Path)
		query := r.URL.Query()
		assert.Equal(t, "42", query.Get("userId"))
		assert.Equal(t, "5", query.Get("property"))
		assert.Equal(t, "12", query.Get("apartment"))
		assert.Equal(t, "true", query.Get("active"))

		_, _ = w.Write([]byte(`{"data":[
			{"id": 1, "user_id": 42, "apartment_number": "12", "frequency": "twice", "status": "active"},
			{"id": 2, "user_id": 42, "appartment_number": "7", "frequency": "one_time", "status": "pending"}
		]}`))
	})
	defer server.Close()

	propertyID := int64(5)
	apartment := "12"
	records, err := client.ListBookings(context.Background(), "token", BookingsFilter{
		UserID:          42,
		PropertyID:      &propertyID,
		ApartmentNumber: &apartment,
		ActiveOnly:      true,
	})
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "12", records[0].ApartmentNumber)
	assert.True(t, records[0].IsPackage())
	assert.Equal(t, "7", records[1].ApartmentNumber)
	assert.False(t, records[1].IsPackage())
}

func TestListTickets_Path(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tickets/42", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":[
			{"id": 9, "booking_id": 77, "subject": "broken vacuum", "status": "open", "created_at": "2026-08-01T10:00:00Z"}
		]}`))
	})
	defer server.Close()

	tickets, err := client.ListTickets(context.Background(), "token", 42)
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, int64(77), tickets[0].BookingID)
	assert.Equal(t, "open", tickets[0].Status)
}

func TestRescheduleTimeslots_Decode(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reschedule/timeslots", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":[
			{"scheduleId": 100, "startTime": "10:00", "endTime": "12:00"}
		]}`))
	})
	defer server.Close()

	slots, err := client.RescheduleTimeslots(context.Background(), "token", 77, time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, int64(100), slots[0].ScheduleID)
	assert.Equal(t, "10:00", string(slots[0].StartTime))
}

func TestStatusCodeMapping(t *testing.T) {
	cases := []struct {
		status  int
		wantErr error
	}{
		{http.StatusBadRequest, ErrInvalidRequest},
		{http.StatusUnprocessableEntity, ErrInvalidRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrSlotTaken},
		{http.StatusGone, ErrHoldExpired},
		{http.StatusInternalServerError, ErrInvalidResponse},
	}

	for _, tc := range cases {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		})

		_, err := client.ListAllBookings(context.Background(), "token")
		require.ErrorIs(t, err, tc.wantErr, "status %d", tc.status)
		server.Close()
	}
}
