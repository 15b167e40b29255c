package get_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CustomerPortal/internal/api/handlers"
	"github.com/m04kA/SMC-CustomerPortal/internal/api/middleware"
	"github.com/m04kA/SMC-CustomerPortal/internal/service/availability"
)

const (
	msgUnauthorized       = "требуется авторизация"
	msgInvalidRequestBody = "некорректное тело запроса"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/calendar
//
// Недоступность бэкенда отдает пустой календарь, а не ошибку -
// клиент рендерит "нет доступности", мастер остается рабочим
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserID(r.Context()); !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CalendarRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /calendar - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /calendar - Invalid dates: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	calendar, err := h.service.Calendar(r.Context(), middleware.GetAuthToken(r.Context()), serviceReq)
	if err != nil {
		if errors.Is(err, availability.ErrUnauthorized) {
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}
		h.logger.Error("POST /calendar - Failed: property=%d, error=%v", req.PropertyID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainCalendar(calendar))
}
