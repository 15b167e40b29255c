package start_wizard

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CustomerPortal/internal/domain"
	"github.com/m04kA/SMC-CustomerPortal/internal/service/wizard"
)

// UseCase use case открытия мастера бронирования
type UseCase struct {
	wizardService WizardService
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(wizardService WizardService, logger Logger) *UseCase {
	return &UseCase{
		wizardService: wizardService,
		logger:        logger,
	}
}

// Execute открывает сессию мастера бронирования
// Для продления локация и параметры наследуются из исходного пакета
func (uc *UseCase) Execute(ctx context.Context, token string, req *Request) (*Response, error) {
	uc.logger.Info("StartWizard: user=%d, type=%s", req.UserID, req.Type)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("StartWizard: validation failed: %v", err)
		return nil, err
	}

	// 2. Открываем сессию мастера
	snapshot, err := uc.wizardService.Open(ctx, token, req.UserID, domain.WizardType(req.Type), req.RenewBookingID)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrInvalidInput):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		case errors.Is(err, wizard.ErrBookingNotRenewable):
			uc.logger.Warn("StartWizard: booking not renewable for user=%d: %v", req.UserID, err)
			return nil, ErrBookingNotRenewable
		case errors.Is(err, wizard.ErrForbidden):
			return nil, ErrAccessDenied
		default:
			uc.logger.Error("StartWizard: failed for user=%d: %v", req.UserID, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("StartWizard: session=%s opened for user=%d, step=%s",
		snapshot.SessionID, req.UserID, snapshot.Step)

	return &Response{Snapshot: snapshot}, nil
}
