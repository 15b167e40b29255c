package get_calendar

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CustomerPortal/internal/domain"
	"github.com/m04kA/SMC-CustomerPortal/internal/service/availability"
)

// CalendarRequest тело запроса календаря доступности
type CalendarRequest struct {
	StartDate       string `json:"startDate"` // "2026-09-01"
	EndDate         string `json:"endDate"`
	AreaID          int64  `json:"areaId"`
	DistrictID      int64  `json:"districtId"`
	PropertyID      int64  `json:"propertyId"`
	ApartmentNumber string `json:"apartmentNumber"`

	ExcludeBookingID *int64 `json:"excludeBookingId,omitempty"`
	TeamID           *int64 `json:"teamId,omitempty"`
}

// ToServiceRequest конвертирует wire-модель в запрос сервиса
func (r *CalendarRequest) ToServiceRequest() (availability.CalendarRequest, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return availability.CalendarRequest{}, fmt.Errorf("invalid startDate: %w", err)
	}
	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return availability.CalendarRequest{}, fmt.Errorf("invalid endDate: %w", err)
	}

	return availability.CalendarRequest{
		StartDate:        startDate,
		EndDate:          endDate,
		AreaID:           r.AreaID,
		DistrictID:       r.DistrictID,
		PropertyID:       r.PropertyID,
		ApartmentNumber:  r.ApartmentNumber,
		ExcludeBookingID: r.ExcludeBookingID,
		TeamID:           r.TeamID,
	}, nil
}

// CalendarDayWire доступность одной даты
type CalendarDayWire struct {
	Available  bool `json:"available"`
	UserBooked bool `json:"userBooked"`
}

// CalendarResponse календарь доступности по датам
type CalendarResponse struct {
	Days map[string]CalendarDayWire `json:"days"`
}

// FromDomainCalendar конвертирует календарь в wire-модель
func FromDomainCalendar(calendar map[string]domain.CalendarDay) *CalendarResponse {
	resp := &CalendarResponse{
		Days: make(map[string]CalendarDayWire, len(calendar)),
	}
	for date, day := range calendar {
		resp.Days[date] = CalendarDayWire{
			Available:  day.Available,
			UserBooked: day.UserBooked,
		}
	}
	return resp
}
