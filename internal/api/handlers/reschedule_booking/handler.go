package reschedule_booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CustomerPortal/internal/api/handlers"
	"github.com/m04kA/SMC-CustomerPortal/internal/api/middleware"
	"github.com/m04kA/SMC-CustomerPortal/internal/domain"
	"github.com/m04kA/SMC-CustomerPortal/internal/service/bookings"
)

const (
	msgUnauthorized       = "требуется авторизация"
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "бронирование не найдено"
	msgPastDate           = "дата переноса уже прошла"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleTimeslots POST /api/v1/bookings/{bookingId}/reschedule-timeslots
func (h *Handler) HandleTimeslots(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req TimeslotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{bookingId}/reschedule-timeslots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	slots, err := h.service.RescheduleTimeslots(r.Context(), middleware.GetAuthToken(r.Context()), bookingID, date)
	if err != nil {
		h.respondServiceError(w, "POST /bookings/{bookingId}/reschedule-timeslots", bookingID, userID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, slots)
}

// HandleReschedule POST /api/v1/bookings/{bookingId}/reschedule
func (h *Handler) HandleReschedule(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req RescheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{bookingId}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(userID, bookingID)
	if err != nil {
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	if err := h.service.Reschedule(r.Context(), middleware.GetAuthToken(r.Context()), serviceReq); err != nil {
		h.respondServiceError(w, "POST /bookings/{bookingId}/reschedule", bookingID, userID, err)
		return
	}

	h.logger.Info("POST /bookings/{bookingId}/reschedule - Visit moved: booking_id=%d, user_id=%d, new_date=%s",
		bookingID, userID, req.NewDate)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, bookingID, userID int64, err error) {
	switch {
	case errors.Is(err, bookings.ErrBookingNotFound):
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, bookings.ErrPastDate):
		handlers.RespondBadRequest(w, msgPastDate)

	case errors.Is(err, bookings.ErrUnauthorized):
		handlers.RespondUnauthorized(w, msgUnauthorized)

	case errors.Is(err, bookings.ErrInvalidInput):
		handlers.RespondBadRequest(w, err.Error())

	default:
		h.logger.Error("%s - Failed: booking_id=%d, user_id=%d, error=%v", route, bookingID, userID, err)
		handlers.RespondInternalError(w)
	}
}
