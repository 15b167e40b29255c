package get_calendar

import (
	"context"

	"github.com/m04kA/SMC-CustomerPortal/internal/domain"
	"github.com/m04kA/SMC-CustomerPortal/internal/service/availability"
)

type AvailabilityService interface {
	Calendar(ctx context.Context, token string, req availability.CalendarRequest) (map[string]domain.CalendarDay, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
