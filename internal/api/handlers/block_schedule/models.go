package block_schedule

import (
	"time"

	blockScheduleUC "github.com/m04kA/SMC-CustomerPortal/internal/usecase/block_schedule"
)

// BlockScheduleResponse ответ с созданной блокировкой и обратным отсчетом
type BlockScheduleResponse struct {
	BlockID          string  `json:"blockId"`
	HeldSlots        []int64 `json:"heldSlots"`
	ExpiresAt        string  `json:"expiresAt"` // ISO 8601
	RemainingSeconds int     `json:"remainingSeconds"`
	TotalAmount      float64 `json:"totalAmount"`
	Currency         string  `json:"currency"`
}

// FromUseCaseResponse конвертирует ответ usecase в wire-модель
func FromUseCaseResponse(resp *blockScheduleUC.Response) *BlockScheduleResponse {
	return &BlockScheduleResponse{
		BlockID:          resp.BlockID,
		HeldSlots:        resp.HeldSlots,
		ExpiresAt:        resp.ExpiresAt.Format(time.RFC3339),
		RemainingSeconds: resp.RemainingSeconds,
		TotalAmount:      resp.TotalAmount,
		Currency:         resp.Currency,
	}
}
