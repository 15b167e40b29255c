package get_user_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-CustomerPortal/internal/api/handlers"
	"github.com/m04kA/SMC-CustomerPortal/internal/api/middleware"
	"github.com/m04kA/SMC-CustomerPortal/internal/service/bookings"
	"github.com/m04kA/SMC-CustomerPortal/internal/service/bookings/models"
)

const (
	msgUnauthorized      = "требуется авторизация"
	msgInvalidPropertyID = "некорректный ID объекта"
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

// Handle GET /api/v1/bookings?propertyId=N&apartment=X&active=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	req := &models.GetUserBookingsRequest{
		UserID:     userID,
		ActiveOnly: r.URL.Query().Get("active") == "true",
	}

	if raw := r.URL.Query().Get("propertyId"); raw != "" {
		propertyID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidPropertyID)
			return
		}
		req.PropertyID = &propertyID
	}

	if apartment := r.URL.Query().Get("apartment"); apartment != "" {
		req.ApartmentNumber = &apartment
	}

	result, err := h.service.GetUserBookings(r.Context(), middleware.GetAuthToken(r.Context()), req)
	if err != nil {
		h.respondServiceError(w, "GET /bookings", userID, err)
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved: user_id=%d, count=%d", userID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleAll GET /api/v1/bookings/all
func (h *Handler) HandleAll(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.GetAllBookings(r.Context(), middleware.GetAuthToken(r.Context()), userID)
	if err != nil {
		h.respondServiceError(w, "GET /bookings/all", userID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleTickets GET /api/v1/tickets
func (h *Handler) HandleTickets(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.GetTickets(r.Context(), middleware.GetAuthToken(r.Context()), userID)
	if err != nil {
		h.respondServiceError(w, "GET /tickets", userID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, userID int64, err error) {
	switch {
	case errors.Is(err, bookings.ErrUnauthorized):
		handlers.RespondUnauthorized(w, msgUnauthorized)

	default:
		h.logger.Error("%s - Failed: user_id=%d, error=%v", route, userID, err)
		handlers.RespondInternalError(w)
	}
}
