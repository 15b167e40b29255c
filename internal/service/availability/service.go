package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CustomerPortal/internal/domain"
	"github.com/m04kA/SMC-CustomerPortal/internal/integrations/bookingapi"
)

// Service резолвер доступности: календарь дат и бандлы
// Без кэширования, доступность перезапрашивается при каждом изменении выбора
type Service struct {
	client BookingAPIClient
	logger Logger
}

// NewService создает новый сервис доступности
func NewService(client BookingAPIClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// CalendarRequest запрос доступности дат
type CalendarRequest struct {
	StartDate       time.Time
	EndDate         time.Time
	AreaID          int64
	DistrictID      int64
	PropertyID      int64
	ApartmentNumber string

	ExcludeBookingID *int64
	TeamID           *int64
}

// Calendar возвращает доступность дат диапазона для календаря выбора даты
//
// Дата выбираема только при available == true; userBooked подсвечивает
// даты с уже существующим бронированием пользователя.
// Ошибки сети и валидации бэкенда дают пустой результат - календарь
// рендерится как "нет доступности", мастер остается рабочим
func (s *Service) Calendar(ctx context.Context, token string, req CalendarRequest) (map[string]domain.CalendarDay, error) {
	if err := validateCalendarRequest(&req); err != nil {
		s.logger.Warn("Calendar: validation failed: %v", err)
		return map[string]domain.CalendarDay{}, nil
	}

	calendar, err := s.client.GetCalendar(ctx, token, bookingapi.CalendarRequest{
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		AreaID:           req.AreaID,
		DistrictID:       req.DistrictID,
		PropertyID:       req.PropertyID,
		ApartmentNumber:  req.ApartmentNumber,
		ExcludeBookingID: req.ExcludeBookingID,
		TeamID:           req.TeamID,
	})
	if err != nil {
		if errors.Is(err, bookingapi.ErrUnauthorized) {
			return nil, ErrUnauthorized
		}
		s.logger.Warn("Calendar: fetch failed for property=%d: %v", req.PropertyID, err)
		return map[string]domain.CalendarDay{}, nil
	}

	s.logger.Info("Calendar: fetched %d days for property=%d, range=%s..%s",
		len(calendar), req.PropertyID,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	return calendar, nil
}

// BundlesRequest запрос продаваемых бандлов
type BundlesRequest struct {
	StartDate              time.Time
	Frequency              domain.Frequency
	DurationMonths         int
	ServiceDurationMinutes int
	ServiceTypeID          int64
	PropertyLocation       domain.GeoPoint
}

// Bundles возвращает продаваемые бандлы для выбранных параметров
//
// В отличие от календаря, провал запроса бандлов - ошибка для вызывающего:
// переход со шага параметров услуги не происходит, пока бандлы не получены
func (s *Service) Bundles(ctx context.Context, token string, req BundlesRequest) ([]domain.Bundle, error) {
	if err := validateBundlesRequest(&req); err != nil {
		s.logger.Warn("Bundles: validation failed: %v", err)
		return nil, err
	}

	bundles, err := s.client.GetBundles(ctx, token, bookingapi.BundlesRequest{
		StartDate:           req.StartDate,
		Location:            req.PropertyLocation,
		Frequency:           req.Frequency,
		ServicePeriodMonths: req.DurationMonths,
		ServiceTypeID:       req.ServiceTypeID,
		DurationMinutes:     req.ServiceDurationMinutes,
	})
	if err != nil {
		if errors.Is(err, bookingapi.ErrUnauthorized) {
			return nil, ErrUnauthorized
		}
		s.logger.Error("Bundles: fetch failed for start_date=%s, frequency=%s: %v",
			req.StartDate.Format(domain.DateFormat), req.Frequency, err)
		return nil, fmt.Errorf("%w: %v", ErrBundlesUnavailable, err)
	}

	s.logger.Info("Bundles: fetched %d bundles for start_date=%s, frequency=%s, months=%d",
		len(bundles), req.StartDate.Format(domain.DateFormat), req.Frequency, req.DurationMonths)
	return bundles, nil
}
