package availability

import (
	"context"

	"github.com/m04kA/SMC-CustomerPortal/internal/domain"
	"github.com/m04kA/SMC-CustomerPortal/internal/integrations/bookingapi"
)

// BookingAPIClient интерфейс клиента booking engine для доступности
type BookingAPIClient interface {
	GetCalendar(ctx context.Context, token string, req bookingapi.CalendarRequest) (map[string]domain.CalendarDay, error)
	GetBundles(ctx context.Context, token string, req bookingapi.BundlesRequest) ([]domain.Bundle, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
