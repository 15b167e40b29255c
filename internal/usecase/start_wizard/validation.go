package start_wizard

import (
	"fmt"

	"github.com/m04kA/SMC-CustomerPortal/internal/domain"
)

// validateRequest валидирует запрос на открытие мастера
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	wizardType := domain.WizardType(req.Type)
	if err := wizardType.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if wizardType == domain.WizardRenew && (req.RenewBookingID == nil || *req.RenewBookingID <= 0) {
		return fmt.Errorf("%w: renewal requires positive renewBookingId", ErrInvalidInput)
	}

	return nil
}
