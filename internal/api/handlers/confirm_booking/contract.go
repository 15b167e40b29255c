package confirm_booking

import (
	"context"

	confirmBookingUC "github.com/m04kA/SMC-CustomerPortal/internal/usecase/confirm_booking"
)

type ConfirmBookingUseCase interface {
	Execute(ctx context.Context, token string, req *confirmBookingUC.Request) (*confirmBookingUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
