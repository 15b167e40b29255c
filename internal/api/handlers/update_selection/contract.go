package update_selection

import (
	"context"

	"github.com/m04kA/SMC-CustomerPortal/internal/service/wizard"
)

type WizardService interface {
	UpdateSelection(ctx context.Context, token, sessionID string, userID int64, upd wizard.UpdateRequest) (*wizard.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
