package holds

import "errors"

var (
	// ErrHoldActive возвращается при повторном запросе блокировки,
	// пока в сессии уже есть активная - бэкенд при этом не вызывается
	ErrHoldActive = errors.New("hold already active for this session")

	// ErrNoActiveHold возвращается, когда операция требует активной блокировки
	ErrNoActiveHold = errors.New("no active hold for this session")

	// ErrHoldExpired возвращается при подтверждении истекшей блокировки
	ErrHoldExpired = errors.New("hold has expired")

	// ErrSlotCountMismatch возвращается, когда количество выбранных слотов
	// не совпадает с требуемым для выбранной периодичности
	ErrSlotCountMismatch = errors.New("selected slots count does not match frequency")

	// ErrBundleNotChosen возвращается, когда бандл еще не выбран
	ErrBundleNotChosen = errors.New("bundle is not chosen")

	// ErrSlotTaken возвращается, когда слоты успел занять другой пользователь
	ErrSlotTaken = errors.New("schedule slots already taken")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("holds service: internal error")
)
