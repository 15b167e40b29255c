package domain

import "fmt"

// WizardType тип потока мастера бронирования
type WizardType string

const (
	// WizardNew новое бронирование - полная последовательность из 6 шагов
	WizardNew WizardType = "new"
	// WizardRenew продление пакета - локация берется из исходного пакета, 5 шагов
	WizardRenew WizardType = "renew"
)

// WizardStep шаг мастера бронирования
type WizardStep string

const (
	StepLocation WizardStep = "location" // локация + услуга (только new)
	StepDetails  WizardStep = "details"  // периодичность, дата начала, длительность
	StepBundle   WizardStep = "bundle"   // выбор бандла (команда + расписание)
	StepSlots    WizardStep = "slots"    // выбор слотов + блокировка расписания
	StepCustomer WizardStep = "customer" // контактные данные (только new)
	StepExtra    WizardStep = "extra"    // дополнительные данные (только renew)
	StepReview   WizardStep = "review"   // подтверждение
)

// newSteps последовательность шагов нового бронирования
var newSteps = []WizardStep{
	StepLocation,
	StepDetails,
	StepBundle,
	StepSlots,
	StepCustomer,
	StepReview,
}

// renewSteps последовательность шагов продления - шаг локации пропускается,
// локация наследуется из продлеваемого пакета
var renewSteps = []WizardStep{
	StepDetails,
	StepBundle,
	StepSlots,
	StepExtra,
	StepReview,
}

// Steps возвращает фиксированную последовательность шагов для типа мастера
func (t WizardType) Steps() []WizardStep {
	switch t {
	case WizardNew:
		return newSteps
	case WizardRenew:
		return renewSteps
	default:
		return nil
	}
}

// Validate проверяет, что тип мастера поддерживается
func (t WizardType) Validate() error {
	if t != WizardNew && t != WizardRenew {
		return fmt.Errorf("unknown wizard type %q", string(t))
	}
	return nil
}
