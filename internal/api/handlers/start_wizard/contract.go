package start_wizard

import (
	"context"

	startWizardUC "github.com/m04kA/SMC-CustomerPortal/internal/usecase/start_wizard"
)

type StartWizardUseCase interface {
	Execute(ctx context.Context, token string, req *startWizardUC.Request) (*startWizardUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
