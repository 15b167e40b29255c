package bookingapi

import "errors"

var (
	// ErrUnauthorized возвращается при 401 от бэкенда - токен недействителен
	ErrUnauthorized = errors.New("bookingapi: unauthorized")

	// ErrNotFound возвращается, когда запрошенный ресурс не найден
	ErrNotFound = errors.New("bookingapi: resource not found")

	// ErrSlotTaken возвращается, когда слоты уже заблокированы или выкуплены другим пользователем
	ErrSlotTaken = errors.New("bookingapi: schedule slots already taken")

	// ErrHoldExpired возвращается, когда блокировка истекла на стороне бэкенда
	ErrHoldExpired = errors.New("bookingapi: hold expired on backend")

	// ErrInvalidRequest возвращается, когда бэкенд отклонил запрос как некорректный
	ErrInvalidRequest = errors.New("bookingapi: invalid request")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от бэкенда
	ErrInvalidResponse = errors.New("bookingapi client: invalid response")
)
