package refdata

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CustomerPortal/internal/domain"
	"github.com/m04kA/SMC-CustomerPortal/internal/infra/refcache"
	"github.com/m04kA/SMC-CustomerPortal/internal/integrations/bookingapi"
)

// Service сервис справочных данных мастера бронирования
// Чтение cache-aside: промах или недоступность кэша уводит запрос на бэкенд
type Service struct {
	client  BookingAPIClient
	cache   Cache
	metrics Metrics
	logger  Logger
}

// NewService создает новый сервис справочников
// cache может быть nil - тогда каждый запрос идет на бэкенд
func NewService(client BookingAPIClient, cache Cache, metrics Metrics, logger Logger) *Service {
	s := &Service{
		client:  client,
		cache:   cache,
		metrics: metrics,
		logger:  logger,
	}
	if s.metrics == nil {
		s.metrics = noopMetrics{}
	}
	return s
}

// cached выполняет cache-aside чтение: dest заполняется из кэша либо
// через fetch с последующим наполнением кэша
func cached[T any](ctx context.Context, s *Service, key string, fetch func() (T, error)) (T, error) {
	var result T

	if s.cache != nil {
		if s.cache.Get(ctx, key, &result) {
			s.metrics.CacheHit()
			return result, nil
		}
		s.metrics.CacheMiss()
	}

	result, err := fetch()
	if err != nil {
		return result, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, key, result)
	}
	return result, nil
}

// wrapClientErr конвертирует ошибки клиента в ошибки сервиса
func wrapClientErr(err error) error {
	switch {
	case errors.Is(err, bookingapi.ErrUnauthorized):
		return ErrUnauthorized
	case errors.Is(err, bookingapi.ErrNotFound):
		return ErrNotFound
	default:
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
}

// Areas возвращает список районов обслуживания
func (s *Service) Areas(ctx context.Context, token string) ([]domain.Option, error) {
	areas, err := cached(ctx, s, refcache.Key("areas"), func() ([]domain.Option, error) {
		return s.client.ListAreas(ctx, token)
	})
	if err != nil {
		s.logger.Warn("Areas: fetch failed: %v", err)
		return nil, wrapClientErr(err)
	}
	return areas, nil
}

// Districts возвращает микрорайоны выбранного района
func (s *Service) Districts(ctx context.Context, token string, areaID int64) ([]domain.Option, error) {
	if areaID <= 0 {
		return nil, fmt.Errorf("%w: areaID must be positive", ErrInternal)
	}

	districts, err := cached(ctx, s, refcache.Key("districts", areaID), func() ([]domain.Option, error) {
		return s.client.ListDistricts(ctx, token, areaID)
	})
	if err != nil {
		s.logger.Warn("Districts: fetch failed for area=%d: %v", areaID, err)
		return nil, wrapClientErr(err)
	}
	return districts, nil
}

// Properties возвращает объекты недвижимости выбранного микрорайона
func (s *Service) Properties(ctx context.Context, token string, districtID int64) ([]domain.PropertyOption, error) {
	if districtID <= 0 {
		return nil, fmt.Errorf("%w: districtID must be positive", ErrInternal)
	}

	properties, err := cached(ctx, s, refcache.Key("properties", districtID), func() ([]domain.PropertyOption, error) {
		return s.client.ListProperties(ctx, token, districtID)
	})
	if err != nil {
		s.logger.Warn("Properties: fetch failed for district=%d: %v", districtID, err)
		return nil, wrapClientErr(err)
	}
	return properties, nil
}

// Property возвращает объект недвижимости с координатами
func (s *Service) Property(ctx context.Context, token string, propertyID int64) (*domain.PropertyOption, error) {
	if propertyID <= 0 {
		return nil, fmt.Errorf("%w: propertyID must be positive", ErrInternal)
	}

	property, err := cached(ctx, s, refcache.Key("property", propertyID), func() (*domain.PropertyOption, error) {
		return s.client.GetProperty(ctx, token, propertyID)
	})
	if err != nil {
		s.logger.Warn("Property: fetch failed for property=%d: %v", propertyID, err)
		return nil, wrapClientErr(err)
	}
	return property, nil
}

// ResidenceTypes возвращает типы резиденций
func (s *Service) ResidenceTypes(ctx context.Context, token string) ([]domain.ResidenceTypeOption, error) {
	residenceTypes, err := cached(ctx, s, refcache.Key("residence-types"), func() ([]domain.ResidenceTypeOption, error) {
		return s.client.ListResidenceTypes(ctx, token)
	})
	if err != nil {
		s.logger.Warn("ResidenceTypes: fetch failed: %v", err)
		return nil, wrapClientErr(err)
	}
	return residenceTypes, nil
}

// Services возвращает каталог услуг, с parentID - подуслуги
func (s *Service) Services(ctx context.Context, token string, parentID *int64) ([]domain.ServiceOption, error) {
	key := refcache.Key("services")
	if parentID != nil {
		key = refcache.Key("services", *parentID)
	}

	services, err := cached(ctx, s, key, func() ([]domain.ServiceOption, error) {
		return s.client.ListServices(ctx, token, parentID)
	})
	if err != nil {
		s.logger.Warn("Services: fetch failed: %v", err)
		return nil, wrapClientErr(err)
	}
	return services, nil
}

// Frequencies возвращает селектор периодичностей
// Статический справочник - бэкенд не вызывается
func (s *Service) Frequencies() []domain.FrequencyOption {
	options := make([]domain.FrequencyOption, 0, len(domain.AllFrequencies))
	for _, f := range domain.AllFrequencies {
		options = append(options, domain.FrequencyOption{
			Frequency:    f,
			SlotsPerWeek: f.SlotsRequired(),
		})
	}
	return options
}

// Pricing возвращает прайс для пары {услуга, тип резиденции}
func (s *Service) Pricing(ctx context.Context, token string, serviceID, residenceTypeID int64) ([]domain.PriceOption, error) {
	if serviceID <= 0 || residenceTypeID <= 0 {
		return nil, fmt.Errorf("%w: serviceID and residenceTypeID must be positive", ErrInternal)
	}

	prices, err := cached(ctx, s, refcache.Key("pricing", serviceID, residenceTypeID), func() ([]domain.PriceOption, error) {
		return s.client.GetPricing(ctx, token, serviceID, residenceTypeID)
	})
	if err != nil {
		s.logger.Warn("Pricing: fetch failed for service=%d, residence_type=%d: %v",
			serviceID, residenceTypeID, err)
		return nil, wrapClientErr(err)
	}
	return prices, nil
}

// PriceFor возвращает строку прайса для конкретной периодичности
func (s *Service) PriceFor(ctx context.Context, token string, serviceID, residenceTypeID int64, frequency domain.Frequency) (*domain.PriceOption, error) {
	prices, err := s.Pricing(ctx, token, serviceID, residenceTypeID)
	if err != nil {
		return nil, err
	}

	for i := range prices {
		if prices[i].Frequency == frequency {
			return &prices[i], nil
		}
	}
	return nil, fmt.Errorf("%w: no price for frequency %q", ErrNotFound, frequency)
}
