package confirm_booking

import (
	"context"

	"github.com/m04kA/SMC-CustomerPortal/internal/domain"
	"github.com/m04kA/SMC-CustomerPortal/internal/infra/sessions"
	"github.com/m04kA/SMC-CustomerPortal/internal/integrations/bookingapi"
)

// SessionStore интерфейс реестра сессий мастера
type SessionStore interface {
	Get(id string) (*sessions.Session, bool)
	Delete(id string)
}

// HoldManager интерфейс менеджера блокировок расписания
type HoldManager interface {
	Hold(sessionID string) (*domain.ReservationHold, bool)
	Confirm(sessionID string) error
	Abandon(sessionID string)
}

// BookingAPIClient интерфейс клиента booking engine для подтверждения
type BookingAPIClient interface {
	ConfirmBooking(ctx context.Context, token string, req bookingapi.ConfirmBookingRequest) (*domain.BookingRecord, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
