package domain

import "time"

// Ticket обращение в поддержку, связанное с пользователем
// Read-only проекция записи бэкенда для списков в личном кабинете
type Ticket struct {
	ID        int64
	BookingID int64
	Subject   string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
