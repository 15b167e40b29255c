package block_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CustomerPortal/internal/service/holds"
	"github.com/m04kA/SMC-CustomerPortal/internal/service/refdata"
)

// UseCase use case блокировки расписания
// Стоимость пересчитывается по прайсу на сервере, суммы от клиента не принимаются
type UseCase struct {
	sessions SessionStore
	holds    HoldManager
	refdata  RefDataService
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sessions SessionStore, holdManager HoldManager, refdata RefDataService, logger Logger) *UseCase {
	return &UseCase{
		sessions: sessions,
		holds:    holdManager,
		refdata:  refdata,
		logger:   logger,
	}
}

// Execute выполняет блокировку слотов для сессии мастера
func (uc *UseCase) Execute(ctx context.Context, token string, req *Request) (*Response, error) {
	uc.logger.Info("BlockSchedule: user=%d, session=%s", req.UserID, req.SessionID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BlockSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем сессию и проверяем владельца
	session, ok := uc.sessions.Get(req.SessionID)
	if !ok {
		uc.logger.Warn("BlockSchedule: session=%s not found", req.SessionID)
		return nil, ErrSessionNotFound
	}
	if session.UserID != req.UserID {
		uc.logger.Warn("BlockSchedule: user=%d is not the owner of session=%s", req.UserID, req.SessionID)
		return nil, ErrAccessDenied
	}

	session.Lock()
	defer session.Unlock()

	// 3. Проверяем готовность выбора и продаваемость бандла
	if err := validateSelection(session); err != nil {
		uc.logger.Warn("BlockSchedule: selection invalid for session=%s: %v", req.SessionID, err)
		return nil, err
	}

	sel := &session.Selection

	// 4. Считаем стоимость по прайсу
	price, err := uc.refdata.PriceFor(ctx, token, sel.SubServiceID, sel.ResidenceTypeID, sel.Frequency)
	if err != nil {
		if errors.Is(err, refdata.ErrNotFound) {
			uc.logger.Warn("BlockSchedule: no price for session=%s, sub_service=%d, residence_type=%d, frequency=%s",
				req.SessionID, sel.SubServiceID, sel.ResidenceTypeID, sel.Frequency)
			return nil, ErrPriceNotFound
		}
		uc.logger.Error("BlockSchedule: price lookup failed for session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: price lookup failed: %v", ErrInternal, err)
	}

	// 5. Запрашиваем блокировку - all-or-nothing
	hold, err := uc.holds.Request(ctx, token, session.ID, sel, price.TotalAmount, price.Currency)
	if err != nil {
		switch {
		case errors.Is(err, holds.ErrHoldActive):
			return nil, ErrHoldActive
		case errors.Is(err, holds.ErrSlotTaken):
			uc.logger.Warn("BlockSchedule: slots taken for session=%s", req.SessionID)
			return nil, ErrSlotTaken
		case errors.Is(err, holds.ErrBundleNotChosen), errors.Is(err, holds.ErrSlotCountMismatch):
			return nil, fmt.Errorf("%w: %v", ErrIncompleteSelection, err)
		default:
			uc.logger.Error("BlockSchedule: hold request failed for session=%s: %v", req.SessionID, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("BlockSchedule: hold created for session=%s, block_id=%s, amount=%.2f %s",
		req.SessionID, hold.BlockID, price.TotalAmount, price.Currency)

	return &Response{
		BlockID:          hold.BlockID,
		HeldSlots:        hold.HeldSlots,
		ExpiresAt:        hold.ExpiresAt,
		RemainingSeconds: uc.holds.Remaining(session.ID),
		TotalAmount:      price.TotalAmount,
		Currency:         price.Currency,
	}, nil
}
