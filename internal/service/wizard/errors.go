package wizard

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CustomerPortal/internal/domain"
)

var (
	// ErrSessionNotFound возвращается, когда сессия мастера не существует
	ErrSessionNotFound = errors.New("wizard session not found")

	// ErrForbidden возвращается при обращении к чужой сессии
	ErrForbidden = errors.New("session belongs to another user")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrStepIncomplete возвращается при попытке перехода вперед
	// с незаполненным текущим шагом
	ErrStepIncomplete = errors.New("current step is incomplete")

	// ErrInvalidStep возвращается при навигации за границы последовательности шагов
	ErrInvalidStep = errors.New("navigation out of step sequence")

	// ErrHoldRequired возвращается при попытке уйти со шага слотов
	// без активной блокировки расписания
	ErrHoldRequired = errors.New("active schedule hold required")

	// ErrStaleSelection возвращается, когда выбор изменился во время
	// фонового запроса - результат отброшен, переход не произошел
	ErrStaleSelection = errors.New("selection changed during request")

	// ErrBundlesUnavailable возвращается, когда бандлы получить не удалось -
	// переход со шага параметров услуги блокируется
	ErrBundlesUnavailable = errors.New("bundles unavailable")

	// ErrBookingNotRenewable возвращается при продлении неподходящего
	// бронирования: не пакет, не активен или принадлежит другому пользователю
	ErrBookingNotRenewable = errors.New("booking cannot be renewed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("wizard service: internal error")
)

// ConflictError конфликт с существующим активным пакетом регулярной уборки
// по той же шестерке {район, микрорайон, объект, тип резиденции, квартира,
// подуслуга}. Несет конфликтующий пакет - клиент предлагает его продление
type ConflictError struct {
	Existing *domain.BookingRecord
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("active package %d already covers this location and service", e.Existing.ID)
}
