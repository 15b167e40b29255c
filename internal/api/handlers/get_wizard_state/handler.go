package get_wizard_state

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CustomerPortal/internal/api/handlers"
	"github.com/m04kA/SMC-CustomerPortal/internal/api/middleware"
	"github.com/m04kA/SMC-CustomerPortal/internal/service/wizard"
)

const (
	msgUnauthorized    = "требуется авторизация"
	msgSessionNotFound = "сессия мастера не найдена"
	msgForbidden       = "доступ запрещен"
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

// Handle GET /api/v1/wizard/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	sessionID := mux.Vars(r)["sessionId"]

	snapshot, err := h.service.Get(sessionID, userID)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrForbidden):
			h.logger.Warn("GET /wizard/{sessionId} - Access denied: user_id=%d, session=%s", userID, sessionID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /wizard/{sessionId} - Failed: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromWizardSnapshot(snapshot))
}
