package availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrBundlesUnavailable возвращается, когда бандлы получить не удалось
	// Блокирует переход со шага параметров услуги - мастер остается на месте
	ErrBundlesUnavailable = errors.New("bundles unavailable")

	// ErrUnauthorized возвращается при недействительном токене пользователя
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability service: internal error")
)
