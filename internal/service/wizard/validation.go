package wizard

import (
	"github.com/m04kA/SMC-CustomerPortal/internal/domain"
	"github.com/m04kA/SMC-CustomerPortal/internal/infra/sessions"
)

// stepComplete проверяет готовность текущего шага перед переходом вперед.
// Единственный источник правды о готовности шага: решения принимаются
// здесь, а не в обработчиках
func (s *Service) stepComplete(session *sessions.Session) bool {
	if !stepDataComplete(session) {
		return false
	}
	if stepRequiresHold(session.Step()) && s.holds.State(session.ID) != domain.HoldHeld {
		return false
	}
	return true
}

// stepDataComplete проверяет заполненность данных текущего шага
func stepDataComplete(session *sessions.Session) bool {
	sel := &session.Selection

	switch session.Step() {
	case domain.StepLocation:
		return sel.LocationComplete()
	case domain.StepDetails:
		return sel.DetailsComplete()
	case domain.StepBundle:
		return sel.BundleChosen()
	case domain.StepSlots:
		return sel.SlotsComplete()
	case domain.StepCustomer:
		return validateCustomer(&sel.Customer) == nil
	case domain.StepExtra:
		// Дополнительные данные продления опциональны
		return true
	default:
		return false
	}
}

// stepRequiresHold возвращает true для шагов, с которых нельзя уйти вперед
// без активной блокировки расписания. Истекшая блокировка останавливает
// навигацию и на шагах после слотов, а не только на самом шаге слотов
func stepRequiresHold(step domain.WizardStep) bool {
	return step == domain.StepSlots ||
		step == domain.StepCustomer ||
		step == domain.StepExtra
}

// validateCustomer валидирует контактные данные клиента
func validateCustomer(c *domain.CustomerDetails) error {
	if c.Name == "" {
		return ErrInvalidInput
	}
	if len(c.Phone) < domain.MinPhoneLength {
		return ErrInvalidInput
	}
	return nil
}

// locationFieldsChanged возвращает true, если патч трогает поля локации/услуги
func locationFieldsChanged(upd *UpdateRequest) bool {
	return upd.ServiceID != nil ||
		upd.SubServiceID != nil ||
		upd.SubServiceCategory != nil ||
		upd.AreaID != nil ||
		upd.DistrictID != nil ||
		upd.PropertyID != nil ||
		upd.ResidenceTypeID != nil ||
		upd.ApartmentNumber != nil
}

// detailsFieldsChanged возвращает true, если патч трогает параметры услуги
func detailsFieldsChanged(upd *UpdateRequest) bool {
	return upd.Frequency != nil ||
		upd.StartDate != nil ||
		upd.DurationMonths != nil
}

// bundleFieldsChanged возвращает true, если патч трогает выбор бандла
func bundleFieldsChanged(upd *UpdateRequest) bool {
	return upd.BundleID != nil || upd.TeamID != nil
}
