package block_schedule

import "time"

// Request модель запроса блокировки расписания
type Request struct {
	UserID    int64  // ID пользователя из JWT
	SessionID string // Сессия мастера
}

// Response модель ответа с созданной блокировкой
type Response struct {
	BlockID          string    // Идентификатор блокировки на бэкенде
	HeldSlots        []int64   // Заблокированные слоты расписания
	ExpiresAt        time.Time // Момент истечения блокировки
	RemainingSeconds int       // Остаток обратного отсчета

	TotalAmount float64 // Стоимость пакета по прайсу
	Currency    string
}
