package update_selection

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CustomerPortal/internal/api/handlers"
	"github.com/m04kA/SMC-CustomerPortal/internal/api/middleware"
	"github.com/m04kA/SMC-CustomerPortal/internal/service/wizard"
)

const (
	msgUnauthorized       = "требуется авторизация"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSessionNotFound    = "сессия мастера не найдена"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	service WizardService
	logger  Logger
}

func NewHandler(service WizardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/wizard/{sessionId}/selection
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	sessionID := mux.Vars(r)["sessionId"]

	var req UpdateSelectionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /wizard/{sessionId}/selection - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	upd, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("PATCH /wizard/{sessionId}/selection - Invalid fields: session=%s, error=%v", sessionID, err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	snapshot, err := h.service.UpdateSelection(r.Context(), middleware.GetAuthToken(r.Context()), sessionID, userID, upd)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrForbidden):
			h.logger.Warn("PATCH /wizard/{sessionId}/selection - Access denied: user_id=%d, session=%s", userID, sessionID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, wizard.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /wizard/{sessionId}/selection - Failed: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromWizardSnapshot(snapshot))
}
