package get_wizard_state

import (
	"github.com/m04kA/SMC-CustomerPortal/internal/service/wizard"
)

type WizardService interface {
	Get(sessionID string, userID int64) (*wizard.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
