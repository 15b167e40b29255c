package confirm_booking

import "github.com/m04kA/SMC-CustomerPortal/internal/domain"

// Request модель запроса подтверждения бронирования
type Request struct {
	UserID    int64  // ID пользователя из JWT
	SessionID string // Сессия мастера
}

// Response модель ответа с подтвержденным бронированием
type Response struct {
	Booking   *domain.BookingRecord // Созданное бронирование/пакет
	IsRenewed bool                  // Бронирование создано потоком продления
}
