package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CustomerPortal/internal/domain"
	"github.com/m04kA/SMC-CustomerPortal/internal/integrations/bookingapi"
)

// BookingAPIClient интерфейс клиента booking engine для работы с бронированиями
type BookingAPIClient interface {
	ListBookings(ctx context.Context, token string, filter bookingapi.BookingsFilter) ([]*domain.BookingRecord, error)
	ListAllBookings(ctx context.Context, token string) ([]*domain.BookingRecord, error)
	CancelBooking(ctx context.Context, token string, bookingID int64, reason string) error
	CancelSingleBooking(ctx context.Context, token string, bookingID int64, date time.Time) error
	RescheduleTimeslots(ctx context.Context, token string, bookingID int64, date time.Time) ([]domain.TimeSlotOption, error)
	Reschedule(ctx context.Context, token string, req bookingapi.RescheduleRequest) error
	ListTickets(ctx context.Context, token string, userID int64) ([]domain.Ticket, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
