package start_wizard

import (
	"github.com/m04kA/SMC-CustomerPortal/internal/service/wizard"
)

// Request модель запроса на открытие мастера бронирования
type Request struct {
	UserID         int64  // ID пользователя из JWT
	Type           string // Тип мастера: "new" или "renew"
	RenewBookingID *int64 // Исходный пакет для продления (обязателен при renew)
}

// Response модель ответа с созданной сессией мастера
type Response struct {
	Snapshot *wizard.Snapshot
}
