package navigate_wizard

import (
	"context"

	"github.com/m04kA/SMC-CustomerPortal/internal/service/wizard"
)

type WizardService interface {
	Next(ctx context.Context, token, sessionID string, userID int64) (*wizard.Snapshot, error)
	Back(ctx context.Context, token, sessionID string, userID int64) (*wizard.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
