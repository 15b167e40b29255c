package start_wizard

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CustomerPortal/internal/api/handlers"
	"github.com/m04kA/SMC-CustomerPortal/internal/api/middleware"
	startWizardUC "github.com/m04kA/SMC-CustomerPortal/internal/usecase/start_wizard"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "требуется авторизация"
	msgNotRenewable       = "пакет недоступен для продления"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	useCase StartWizardUseCase
	logger  Logger
}

func NewHandler(useCase StartWizardUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/wizard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req StartWizardRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), middleware.GetAuthToken(r.Context()), &startWizardUC.Request{
		UserID:         userID,
		Type:           req.Type,
		RenewBookingID: req.RenewBookingID,
	})
	if err != nil {
		switch {
		case errors.Is(err, startWizardUC.ErrInvalidInput):
			h.logger.Warn("POST /wizard - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, startWizardUC.ErrBookingNotRenewable):
			h.logger.Warn("POST /wizard - Booking not renewable: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgNotRenewable)

		case errors.Is(err, startWizardUC.ErrAccessDenied):
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /wizard - Failed to start wizard: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard - Wizard started: user_id=%d, session=%s", userID, result.Snapshot.SessionID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromWizardSnapshot(result.Snapshot))
}
