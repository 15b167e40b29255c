package block_schedule

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("block_schedule: invalid input data")

	// ErrSessionNotFound возвращается, когда сессия мастера не существует
	ErrSessionNotFound = errors.New("block_schedule: wizard session not found")

	// ErrAccessDenied возвращается при обращении к чужой сессии
	ErrAccessDenied = errors.New("block_schedule: access denied")

	// ErrBundleNotSellable возвращается, когда выбранная комбинация
	// команды и бандла отсутствует в загруженных предложениях
	ErrBundleNotSellable = errors.New("block_schedule: selected bundle is not sellable")

	// ErrHoldActive возвращается при повторном запросе с активной блокировкой
	ErrHoldActive = errors.New("block_schedule: hold already active")

	// ErrSlotTaken возвращается, когда слоты успел занять другой пользователь
	ErrSlotTaken = errors.New("block_schedule: slots already taken")

	// ErrIncompleteSelection возвращается, когда выбор не готов к блокировке
	ErrIncompleteSelection = errors.New("block_schedule: selection is incomplete")

	// ErrPriceNotFound возвращается, когда для выбора нет строки прайса
	ErrPriceNotFound = errors.New("block_schedule: price not found for selection")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("block_schedule: internal error")
)
