package reschedule_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CustomerPortal/internal/service/bookings/models"
)

type BookingService interface {
	RescheduleTimeslots(ctx context.Context, token string, bookingID int64, date time.Time) ([]models.TimeslotResponse, error)
	Reschedule(ctx context.Context, token string, req *models.RescheduleRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
