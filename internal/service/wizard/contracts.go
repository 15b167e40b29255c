package wizard

import (
	"context"

	"github.com/m04kA/SMC-CustomerPortal/internal/domain"
	"github.com/m04kA/SMC-CustomerPortal/internal/integrations/bookingapi"
	"github.com/m04kA/SMC-CustomerPortal/internal/service/availability"
)

// BookingsClient интерфейс клиента booking engine для проверки конфликтов
// и загрузки исходного пакета при продлении
type BookingsClient interface {
	ListBookings(ctx context.Context, token string, filter bookingapi.BookingsFilter) ([]*domain.BookingRecord, error)
}

// AvailabilityService интерфейс сервиса доступности
type AvailabilityService interface {
	Bundles(ctx context.Context, token string, req availability.BundlesRequest) ([]domain.Bundle, error)
}

// RefDataService интерфейс сервиса справочников
type RefDataService interface {
	Property(ctx context.Context, token string, propertyID int64) (*domain.PropertyOption, error)
	ResidenceTypes(ctx context.Context, token string) ([]domain.ResidenceTypeOption, error)
}

// HoldManager интерфейс менеджера блокировок расписания
type HoldManager interface {
	Release(ctx context.Context, token string, sessionID string) error
	State(sessionID string) domain.HoldState
	Hold(sessionID string) (*domain.ReservationHold, bool)
	Remaining(sessionID string) int
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
