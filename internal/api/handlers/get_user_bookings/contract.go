package get_user_bookings

import (
	"context"

	"github.com/m04kA/SMC-CustomerPortal/internal/service/bookings/models"
)

type BookingService interface {
	GetUserBookings(ctx context.Context, token string, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error)
	GetAllBookings(ctx context.Context, token string, userID int64) (*models.BookingListResponse, error)
	GetTickets(ctx context.Context, token string, userID int64) (*models.TicketListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
