package confirm_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CustomerPortal/internal/api/handlers"
	"github.com/m04kA/SMC-CustomerPortal/internal/api/middleware"
	bookingModels "github.com/m04kA/SMC-CustomerPortal/internal/service/bookings/models"
	confirmBookingUC "github.com/m04kA/SMC-CustomerPortal/internal/usecase/confirm_booking"
)

const (
	msgUnauthorized    = "требуется авторизация"
	msgSessionNotFound = "сессия мастера не найдена"
	msgForbidden       = "доступ запрещен"
	msgNotOnReview     = "подтверждение доступно только с финального шага"
	msgNoActiveHold    = "нет активной блокировки слотов"
	msgHoldExpired     = "время блокировки истекло, начните бронирование заново"
	msgConfirmFailed   = "не удалось подтвердить бронирование, начните заново"
)

type Handler struct {
	useCase ConfirmBookingUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/wizard/{sessionId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	sessionID := mux.Vars(r)["sessionId"]

	result, err := h.useCase.Execute(r.Context(), middleware.GetAuthToken(r.Context()), &confirmBookingUC.Request{
		UserID:    userID,
		SessionID: sessionID,
	})
	if err != nil {
		switch {
		case errors.Is(err, confirmBookingUC.ErrSessionNotFound):
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, confirmBookingUC.ErrAccessDenied):
			h.logger.Warn("POST /wizard/{sessionId}/confirm - Access denied: user_id=%d, session=%s",
				userID, sessionID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, confirmBookingUC.ErrNotOnReviewStep):
			handlers.RespondBadRequest(w, msgNotOnReview)

		case errors.Is(err, confirmBookingUC.ErrNoActiveHold):
			handlers.RespondBadRequest(w, msgNoActiveHold)

		case errors.Is(err, confirmBookingUC.ErrHoldExpired):
			h.logger.Info("POST /wizard/{sessionId}/confirm - Hold expired: session=%s", sessionID)
			handlers.RespondGone(w, msgHoldExpired)

		case errors.Is(err, confirmBookingUC.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, confirmBookingUC.ErrConfirmFailed):
			h.logger.Error("POST /wizard/{sessionId}/confirm - Confirm failed: session=%s, error=%v",
				sessionID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgConfirmFailed)

		default:
			h.logger.Error("POST /wizard/{sessionId}/confirm - Failed: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/{sessionId}/confirm - Booking confirmed: user_id=%d, booking=%d, renewed=%v",
		userID, result.Booking.ID, result.IsRenewed)
	handlers.RespondJSON(w, http.StatusCreated, bookingModels.FromDomainBooking(result.Booking))
}
