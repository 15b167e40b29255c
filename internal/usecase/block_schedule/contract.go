package block_schedule

import (
	"context"

	"github.com/m04kA/SMC-CustomerPortal/internal/domain"
	"github.com/m04kA/SMC-CustomerPortal/internal/infra/sessions"
)

// SessionStore интерфейс реестра сессий мастера
type SessionStore interface {
	Get(id string) (*sessions.Session, bool)
}

// HoldManager интерфейс менеджера блокировок расписания
type HoldManager interface {
	Request(ctx context.Context, token string, sessionID string, sel *domain.SelectionContext, totalAmount float64, currency string) (*domain.ReservationHold, error)
	Remaining(sessionID string) int
}

// RefDataService интерфейс сервиса справочников для расчета стоимости
type RefDataService interface {
	PriceFor(ctx context.Context, token string, serviceID, residenceTypeID int64, frequency domain.Frequency) (*domain.PriceOption, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
