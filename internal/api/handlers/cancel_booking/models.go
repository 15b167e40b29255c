package cancel_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CustomerPortal/internal/domain"
	"github.com/m04kA/SMC-CustomerPortal/internal/service/bookings/models"
)

// CancelBookingRequest тело запроса на отмену
// visitDate отсутствует - отмена пакета целиком, задана - отмена одного визита
type CancelBookingRequest struct {
	VisitDate *string `json:"visitDate,omitempty"` // "2026-09-15"
	Reason    string  `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует wire-модель в запрос сервиса
func (r *CancelBookingRequest) ToServiceRequest(userID, bookingID int64) (*models.CancelBookingRequest, error) {
	req := &models.CancelBookingRequest{
		UserID:    userID,
		BookingID: bookingID,
		Reason:    r.Reason,
	}

	if r.VisitDate != nil {
		visitDate, err := time.Parse(domain.DateFormat, *r.VisitDate)
		if err != nil {
			return nil, fmt.Errorf("invalid visitDate: %w", err)
		}
		req.VisitDate = &visitDate
	}

	return req, nil
}
