package confirm_booking

import (
	"fmt"

	"github.com/m04kA/SMC-CustomerPortal/internal/domain"
)

// validateRequest валидирует запрос подтверждения
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.SessionID == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}
	return nil
}

// validateCustomer проверяет контактные данные перед подтверждением
// Для потока продления контактные данные наследуются бэкендом из пакета
func validateCustomer(wizardType domain.WizardType, c *domain.CustomerDetails) error {
	if wizardType == domain.WizardRenew {
		return nil
	}

	if c.Name == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if len(c.Phone) < domain.MinPhoneLength {
		return fmt.Errorf("%w: customer phone is required", ErrInvalidInput)
	}
	if len(c.SpecialInstructions) > domain.MaxSpecialInstructionsLength {
		return fmt.Errorf("%w: special instructions are too long", ErrInvalidInput)
	}
	return nil
}
