package holds

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CustomerPortal/internal/integrations/bookingapi"
)

// BookingAPIClient интерфейс клиента booking engine для блокировок
type BookingAPIClient interface {
	BlockSchedule(ctx context.Context, token string, req bookingapi.BlockScheduleRequest) (string, error)
	ReleaseSlot(ctx context.Context, token string, blockID string) error
}

// Metrics интерфейс метрик жизненного цикла холдов
type Metrics interface {
	HoldRequested()
	HoldReleased(reason string)
	HoldConfirmed()
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

// noopMetrics заглушка метрик, когда метрики выключены конфигурацией
type noopMetrics struct{}

func (noopMetrics) HoldRequested()      {}
func (noopMetrics) HoldReleased(string) {}
func (noopMetrics) HoldConfirmed()      {}
