package refdata

import "errors"

var (
	// ErrUnavailable возвращается, когда справочник недоступен
	// Не фатальна для мастера: зависимый селектор показывается пустым
	// и отключенным, пользователь может повторить выбор родительского поля
	ErrUnavailable = errors.New("reference data unavailable")

	// ErrUnauthorized возвращается при недействительном токене пользователя
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound возвращается, когда запрошенная запись справочника не найдена
	ErrNotFound = errors.New("reference record not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("refdata service: internal error")
)
