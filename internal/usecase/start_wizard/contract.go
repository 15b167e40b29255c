package start_wizard

import (
	"context"

	"github.com/m04kA/SMC-CustomerPortal/internal/domain"
	"github.com/m04kA/SMC-CustomerPortal/internal/service/wizard"
)

// WizardService интерфейс сервиса мастера бронирования
type WizardService interface {
	Open(ctx context.Context, token string, userID int64, wizardType domain.WizardType, renewBookingID *int64) (*wizard.Snapshot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
