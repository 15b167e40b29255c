package reschedule_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CustomerPortal/internal/domain"
	"github.com/m04kA/SMC-CustomerPortal/internal/service/bookings/models"
)

// TimeslotsRequest тело запроса доступных слотов для переноса
type TimeslotsRequest struct {
	Date string `json:"date"` // "2026-09-15"
}

// RescheduleRequest тело запроса переноса визита
type RescheduleRequest struct {
	OldDate    string `json:"oldDate"`
	NewDate    string `json:"newDate"`
	ScheduleID int64  `json:"scheduleId"`
}

// ToServiceRequest конвертирует wire-модель в запрос сервиса
func (r *RescheduleRequest) ToServiceRequest(userID, bookingID int64) (*models.RescheduleRequest, error) {
	oldDate, err := time.Parse(domain.DateFormat, r.OldDate)
	if err != nil {
		return nil, fmt.Errorf("invalid oldDate: %w", err)
	}
	newDate, err := time.Parse(domain.DateFormat, r.NewDate)
	if err != nil {
		return nil, fmt.Errorf("invalid newDate: %w", err)
	}

	return &models.RescheduleRequest{
		UserID:     userID,
		BookingID:  bookingID,
		OldDate:    oldDate,
		NewDate:    newDate,
		ScheduleID: r.ScheduleID,
	}, nil
}
