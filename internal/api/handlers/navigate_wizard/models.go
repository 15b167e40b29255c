package navigate_wizard

// ConflictResponse ответ 409 при конфликте с существующим пакетом
// Несет конфликтующий пакет - клиент предлагает его продление
type ConflictResponse struct {
	Error             string `json:"error"`
	ConflictBookingID int64  `json:"conflictBookingId"`
	CanRenew          bool   `json:"canRenew"`
}
