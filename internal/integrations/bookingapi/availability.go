package bookingapi

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-CustomerPortal/internal/domain"
)

// CalendarRequest запрос доступности дат для календаря выбора даты начала
type CalendarRequest struct {
	StartDate       time.Time
	EndDate         time.Time
	AreaID          int64
	DistrictID      int64
	PropertyID      int64
	ApartmentNumber string

	// ExcludeBookingID исключает визиты переносимого бронирования
	// из подсчета занятости (используется потоком переноса)
	ExcludeBookingID *int64
	// TeamID ограничивает доступность конкретной командой
	TeamID *int64
}

// calendarRequestWire тело запроса POST /bookings/schedules/calendar
type calendarRequestWire struct {
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	Area            int64  `json:"area,omitempty"`
	District        int64  `json:"district,omitempty"`
	Property        int64  `json:"property,omitempty"`
	ApartmentNumber string `json:"apartment_number,omitempty"`
	BookingID       *int64 `json:"bookingId,omitempty"`
	TeamID          *int64 `json:"teamId,omitempty"`
}

// GetCalendar возвращает доступность дат в диапазоне:
// для каждой даты - доступна ли она и нет ли уже бронирования пользователя
func (c *Client) GetCalendar(ctx context.Context, token string, req CalendarRequest) (map[string]domain.CalendarDay, error) {
	body := calendarRequestWire{
		StartDate:       req.StartDate.Format(domain.DateFormat),
		EndDate:         req.EndDate.Format(domain.DateFormat),
		Area:            req.AreaID,
		District:        req.DistrictID,
		Property:        req.PropertyID,
		ApartmentNumber: req.ApartmentNumber,
		BookingID:       req.ExcludeBookingID,
		TeamID:          req.TeamID,
	}

	var resp struct {
		Data map[string]calendarDayWire `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/bookings/schedules/calendar", token, body, &resp); err != nil {
		return nil, err
	}

	calendar := make(map[string]domain.CalendarDay, len(resp.Data))
	for date, day := range resp.Data {
		calendar[date] = domain.CalendarDay{
			Available:  day.Available,
			UserBooked: day.UserBooked,
		}
	}
	return calendar, nil
}

// BundlesRequest запрос продаваемых бандлов
type BundlesRequest struct {
	StartDate           time.Time
	Location            domain.GeoPoint
	Frequency           domain.Frequency
	ServicePeriodMonths int
	ServiceTypeID       int64
	DurationMinutes     int
}

// bundlesRequestWire тело запроса POST /bundles
type bundlesRequestWire struct {
	StartDate string `json:"startDate"`
	Location  struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"location"`
	Frequency     string `json:"frequency"`
	ServicePeriod int    `json:"servicePeriod"`
	ServiceType   int64  `json:"serviceType"`
	Duration      int    `json:"duration"`
}

// GetBundles возвращает продаваемые бандлы (команда + расписание) для
// выбранной даты начала, периодичности, длительности пакета и локации
// Для one_time бэкенд отдает однодневные предложения
func (c *Client) GetBundles(ctx context.Context, token string, req BundlesRequest) ([]domain.Bundle, error) {
	body := bundlesRequestWire{
		StartDate:     req.StartDate.Format(domain.DateFormat),
		Frequency:     string(req.Frequency),
		ServicePeriod: req.ServicePeriodMonths,
		ServiceType:   req.ServiceTypeID,
		Duration:      req.DurationMinutes,
	}
	body.Location.Lat = req.Location.Lat
	body.Location.Lng = req.Location.Lng

	var resp struct {
		Data []bundleWire `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/bundles", token, body, &resp); err != nil {
		return nil, err
	}

	bundles := make([]domain.Bundle, 0, len(resp.Data))
	for i := range resp.Data {
		bundles = append(bundles, resp.Data[i].toDomain())
	}
	return bundles, nil
}
