package start_wizard

// StartWizardRequest тело запроса на открытие мастера
type StartWizardRequest struct {
	Type           string `json:"type"`                     // "new" | "renew"
	RenewBookingID *int64 `json:"renewBookingId,omitempty"` // обязателен при type=renew
}
