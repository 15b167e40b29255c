package confirm_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_booking: invalid input data")

	// ErrSessionNotFound возвращается, когда сессия мастера не существует
	ErrSessionNotFound = errors.New("confirm_booking: wizard session not found")

	// ErrAccessDenied возвращается при обращении к чужой сессии
	ErrAccessDenied = errors.New("confirm_booking: access denied")

	// ErrNotOnReviewStep возвращается при подтверждении не с финального шага
	ErrNotOnReviewStep = errors.New("confirm_booking: wizard is not on the review step")

	// ErrNoActiveHold возвращается, когда у сессии нет активной блокировки
	ErrNoActiveHold = errors.New("confirm_booking: no active hold")

	// ErrHoldExpired возвращается, когда блокировка истекла до подтверждения
	ErrHoldExpired = errors.New("confirm_booking: hold expired")

	// ErrConfirmFailed возвращается при провале подтверждения на бэкенде
	// Блокировка к этому моменту инвалидирована - мастер нужно начинать заново
	ErrConfirmFailed = errors.New("confirm_booking: confirmation failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_booking: internal error")
)
