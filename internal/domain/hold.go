package domain

import "time"

// HoldState состояние блокировки расписания в рамках одной сессии мастера
type HoldState string

const (
	// HoldIdle блокировки нет
	HoldIdle HoldState = "idle"
	// HoldHeld активная блокировка с идущим обратным отсчетом
	HoldHeld HoldState = "held"
	// HoldReleased блокировка снята (отмена, истечение TTL или закрытие мастера)
	HoldReleased HoldState = "released"
	// HoldConfirmed блокировка конвертирована в подтвержденное бронирование
	// Release для неё не вызывается - бэкенд поглощает блокировку сам
	HoldConfirmed HoldState = "confirmed"
)

// ReservationHold мягкая блокировка слотов расписания на стороне бэкенда
// Инвариант: не более одной активной блокировки на сессию мастера
type ReservationHold struct {
	BlockID   string // непрозрачный токен бэкенда
	HeldSlots []int64
	CreatedAt time.Time
	ExpiresAt time.Time
}

// IsExpired возвращает true, если TTL блокировки истек к моменту now
func (h *ReservationHold) IsExpired(now time.Time) bool {
	return !now.Before(h.ExpiresAt)
}
