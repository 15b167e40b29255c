package navigate_wizard

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
	msgSessionNotFound    = "сессия мастера не найдена"
	msgForbidden          = "доступ запрещен"
	msgStepIncomplete     = "текущий шаг заполнен не полностью"
	msgInvalidStep        = "переход за границы шагов мастера"
	msgHoldRequired       = "необходимо заблокировать выбранные слоты"
	msgStaleSelection     = "выбор изменился, повторите переход"
	msgBundlesUnavailable = "не удалось загрузить доступные варианты, попробуйте позже"
	msgDuplicatePackage   = "у вас уже есть активный пакет регулярной уборки по этому адресу"
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

// HandleNext POST /api/v1/wizard/{sessionId}/next
func (h *Handler) HandleNext(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	sessionID := mux.Vars(r)["sessionId"]

	snapshot, err := h.service.Next(r.Context(), middleware.GetAuthToken(r.Context()), sessionID, userID)
	if err != nil {
		h.respondNavigationError(w, "next", sessionID, userID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromWizardSnapshot(snapshot))
}

// HandleBack POST /api/v1/wizard/{sessionId}/back
func (h *Handler) HandleBack(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	sessionID := mux.Vars(r)["sessionId"]

	snapshot, err := h.service.Back(r.Context(), middleware.GetAuthToken(r.Context()), sessionID, userID)
	if err != nil {
		h.respondNavigationError(w, "back", sessionID, userID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromWizardSnapshot(snapshot))
}

// respondNavigationError единая раскладка ошибок навигации по HTTP-статусам
func (h *Handler) respondNavigationError(w http.ResponseWriter, direction, sessionID string, userID int64, err error) {
	var conflict *wizard.ConflictError

	switch {
	case errors.Is(err, wizard.ErrSessionNotFound):
		handlers.RespondNotFound(w, msgSessionNotFound)

	case errors.Is(err, wizard.ErrForbidden):
		h.logger.Warn("POST /wizard/{sessionId}/%s - Access denied: user_id=%d, session=%s",
			direction, userID, sessionID)
		handlers.RespondForbidden(w, msgForbidden)

	case errors.As(err, &conflict):
		h.logger.Info("POST /wizard/{sessionId}/%s - Duplicate package conflict: session=%s, booking=%d",
			direction, sessionID, conflict.Existing.ID)
		handlers.RespondJSON(w, http.StatusConflict, ConflictResponse{
			Error:             msgDuplicatePackage,
			ConflictBookingID: conflict.Existing.ID,
			CanRenew:          true,
		})

	case errors.Is(err, wizard.ErrStepIncomplete):
		handlers.RespondBadRequest(w, msgStepIncomplete)

	case errors.Is(err, wizard.ErrInvalidStep):
		handlers.RespondBadRequest(w, msgInvalidStep)

	case errors.Is(err, wizard.ErrHoldRequired):
		handlers.RespondBadRequest(w, msgHoldRequired)

	case errors.Is(err, wizard.ErrStaleSelection):
		handlers.RespondConflict(w, msgStaleSelection)

	case errors.Is(err, wizard.ErrBundlesUnavailable):
		h.logger.Warn("POST /wizard/{sessionId}/%s - Bundles unavailable: session=%s, error=%v",
			direction, sessionID, err)
		handlers.RespondError(w, http.StatusBadGateway, msgBundlesUnavailable)

	default:
		h.logger.Error("POST /wizard/{sessionId}/%s - Failed: session=%s, error=%v", direction, sessionID, err)
		handlers.RespondInternalError(w)
	}
}
