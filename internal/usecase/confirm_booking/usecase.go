package confirm_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CustomerPortal/internal/domain"
	"github.com/m04kA/SMC-CustomerPortal/internal/integrations/bookingapi"
	"github.com/m04kA/SMC-CustomerPortal/pkg/ptr"
)

// UseCase use case подтверждения бронирования
// Конвертирует активную блокировку в подтвержденное бронирование.
// В обоих исходах сессия мастера уничтожается
type UseCase struct {
	sessions SessionStore
	holds    HoldManager
	client   BookingAPIClient
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sessions SessionStore, holdManager HoldManager, client BookingAPIClient, logger Logger) *UseCase {
	return &UseCase{
		sessions: sessions,
		holds:    holdManager,
		client:   client,
		logger:   logger,
	}
}

// Execute подтверждает бронирование из активной блокировки
func (uc *UseCase) Execute(ctx context.Context, token string, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmBooking: user=%d, session=%s", req.UserID, req.SessionID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ConfirmBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем сессию и проверяем владельца
	session, ok := uc.sessions.Get(req.SessionID)
	if !ok {
		uc.logger.Warn("ConfirmBooking: session=%s not found", req.SessionID)
		return nil, ErrSessionNotFound
	}
	if session.UserID != req.UserID {
		uc.logger.Warn("ConfirmBooking: user=%d is not the owner of session=%s", req.UserID, req.SessionID)
		return nil, ErrAccessDenied
	}

	session.Lock()
	defer session.Unlock()

	// 3. Подтверждение разрешено только с финального шага
	if !session.IsLastStep() {
		uc.logger.Warn("ConfirmBooking: session=%s is on step=%s, not review", req.SessionID, session.Step())
		return nil, ErrNotOnReviewStep
	}

	if err := validateCustomer(session.Type, &session.Selection.Customer); err != nil {
		uc.logger.Warn("ConfirmBooking: customer data invalid for session=%s: %v", req.SessionID, err)
		return nil, err
	}

	// 4. Блокировка должна быть активна
	hold, ok := uc.holds.Hold(session.ID)
	if !ok {
		uc.logger.Warn("ConfirmBooking: no active hold for session=%s", req.SessionID)
		return nil, ErrNoActiveHold
	}

	// 5. Финализируем бронирование на бэкенде
	confirmReq := bookingapi.ConfirmBookingRequest{
		BlockID:                  hold.BlockID,
		UserPhone:                session.Selection.Customer.Phone,
		UserAvailableInApartment: session.Selection.Customer.PresentDuringService,
		SpecialInstructions:      session.Selection.Customer.SpecialInstructions,
		ApartmentNumber:          session.Selection.ApartmentNumber,
	}
	isRenewed := session.Type == domain.WizardRenew
	if isRenewed {
		confirmReq.IsRenewed = true
		confirmReq.PrevBookingID = ptr.Ptr(session.RenewedFromID)
	}

	booking, err := uc.client.ConfirmBooking(ctx, token, confirmReq)
	if err != nil {
		// Провал подтверждения терминален для сессии: бэкенд инвалидировал
		// блокировку, мастер начинается заново
		uc.holds.Abandon(session.ID)
		uc.sessions.Delete(session.ID)

		if errors.Is(err, bookingapi.ErrHoldExpired) {
			uc.logger.Warn("ConfirmBooking: hold expired for session=%s, block_id=%s", req.SessionID, hold.BlockID)
			return nil, ErrHoldExpired
		}
		uc.logger.Error("ConfirmBooking: backend confirm failed for session=%s, block_id=%s: %v",
			req.SessionID, hold.BlockID, err)
		return nil, fmt.Errorf("%w: %v", ErrConfirmFailed, err)
	}

	// 6. Блокировка поглощена бэкендом - release не вызывается
	if err := uc.holds.Confirm(session.ID); err != nil {
		// Бронирование уже создано; рассинхрон локального состояния не ошибка
		uc.logger.Warn("ConfirmBooking: local hold state mismatch for session=%s: %v", req.SessionID, err)
	}
	uc.sessions.Delete(session.ID)

	uc.logger.Info("ConfirmBooking: booking=%d created for user=%d, session=%s, renewed=%v",
		booking.ID, req.UserID, req.SessionID, isRenewed)

	return &Response{
		Booking:   booking,
		IsRenewed: isRenewed,
	}, nil
}
