package block_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CustomerPortal/internal/api/handlers"
	"github.com/m04kA/SMC-CustomerPortal/internal/api/middleware"
	blockScheduleUC "github.com/m04kA/SMC-CustomerPortal/internal/usecase/block_schedule"
)

const (
	msgUnauthorized        = "требуется авторизация"
	msgSessionNotFound     = "сессия мастера не найдена"
	msgForbidden           = "доступ запрещен"
	msgIncompleteSelection = "выбор не готов к блокировке"
	msgBundleNotSellable   = "выбранная комбинация недоступна, обновите варианты"
	msgHoldActive          = "слоты уже заблокированы"
	msgSlotTaken           = "выбранные слоты уже заняты, выберите другие"
	msgPriceNotFound       = "для выбранных параметров нет прайса"
)

type Handler struct {
	useCase BlockScheduleUseCase
	logger  Logger
}

func NewHandler(useCase BlockScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/wizard/{sessionId}/block
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	sessionID := mux.Vars(r)["sessionId"]

	result, err := h.useCase.Execute(r.Context(), middleware.GetAuthToken(r.Context()), &blockScheduleUC.Request{
		UserID:    userID,
		SessionID: sessionID,
	})
	if err != nil {
		switch {
		case errors.Is(err, blockScheduleUC.ErrSessionNotFound):
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, blockScheduleUC.ErrAccessDenied):
			h.logger.Warn("POST /wizard/{sessionId}/block - Access denied: user_id=%d, session=%s",
				userID, sessionID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, blockScheduleUC.ErrIncompleteSelection):
			handlers.RespondBadRequest(w, msgIncompleteSelection)

		case errors.Is(err, blockScheduleUC.ErrBundleNotSellable):
			handlers.RespondBadRequest(w, msgBundleNotSellable)

		case errors.Is(err, blockScheduleUC.ErrHoldActive):
			handlers.RespondConflict(w, msgHoldActive)

		case errors.Is(err, blockScheduleUC.ErrSlotTaken):
			h.logger.Info("POST /wizard/{sessionId}/block - Slots taken: session=%s", sessionID)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, blockScheduleUC.ErrPriceNotFound):
			handlers.RespondBadRequest(w, msgPriceNotFound)

		case errors.Is(err, blockScheduleUC.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /wizard/{sessionId}/block - Failed: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/{sessionId}/block - Hold created: session=%s, block_id=%s",
		sessionID, result.BlockID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
