package refdata

import (
	"context"

	"github.com/m04kA/SMC-CustomerPortal/internal/domain"
)

// BookingAPIClient интерфейс клиента booking engine для справочников
type BookingAPIClient interface {
	ListAreas(ctx context.Context, token string) ([]domain.Option, error)
	ListDistricts(ctx context.Context, token string, areaID int64) ([]domain.Option, error)
	ListProperties(ctx context.Context, token string, districtID int64) ([]domain.PropertyOption, error)
	GetProperty(ctx context.Context, token string, propertyID int64) (*domain.PropertyOption, error)
	ListResidenceTypes(ctx context.Context, token string) ([]domain.ResidenceTypeOption, error)
	ListServices(ctx context.Context, token string, parentID *int64) ([]domain.ServiceOption, error)
	GetPricing(ctx context.Context, token string, serviceID, residenceTypeID int64) ([]domain.PriceOption, error)
}

// Cache интерфейс TTL-кэша справочников
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) bool
	Set(ctx context.Context, key string, value interface{})
}

// Metrics интерфейс метрик кэша
type Metrics interface {
	CacheHit()
	CacheMiss()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// noopMetrics заглушка метрик, когда метрики выключены конфигурацией
type noopMetrics struct{}

func (noopMetrics) CacheHit()  {}
func (noopMetrics) CacheMiss() {}
