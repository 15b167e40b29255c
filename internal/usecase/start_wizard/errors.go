package start_wizard

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("start_wizard: invalid input data")

	// ErrBookingNotRenewable возвращается, когда исходный пакет
	// не подходит для продления
	ErrBookingNotRenewable = errors.New("start_wizard: booking cannot be renewed")

	// ErrAccessDenied возвращается при обращении к чужому бронированию
	ErrAccessDenied = errors.New("start_wizard: access denied")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("start_wizard: internal error")
)
