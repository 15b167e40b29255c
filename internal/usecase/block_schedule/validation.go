package block_schedule

import (
	"fmt"

	"github.com/m04kA/SMC-CustomerPortal/internal/domain"
	"github.com/m04kA/SMC-CustomerPortal/internal/infra/sessions"
)

// validateRequest валидирует запрос блокировки
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.SessionID == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}
	return nil
}

// validateSelection проверяет готовность выбора к блокировке
// Вызывающий держит мьютекс сессии
func validateSelection(session *sessions.Session) error {
	sel := &session.Selection

	if !sel.BundleChosen() {
		return fmt.Errorf("%w: bundle is not chosen", ErrIncompleteSelection)
	}
	if !sel.SlotsComplete() {
		return fmt.Errorf("%w: need %d slots, have %d",
			ErrIncompleteSelection, sel.Frequency.SlotsRequired(), len(sel.SelectedSlots))
	}

	// Комбинация команды и бандла должна присутствовать в загруженных
	// предложениях - защита от подмены идентификаторов клиентом
	if !bundleSellable(session.Bundles, sel.TeamID, sel.BundleID) {
		return fmt.Errorf("%w: team=%d, bundle=%d", ErrBundleNotSellable, sel.TeamID, sel.BundleID)
	}

	return nil
}

// bundleSellable ищет бандл команды в загруженных предложениях
func bundleSellable(bundles []domain.Bundle, teamID, bundleID int64) bool {
	for i := range bundles {
		if bundles[i].FindTeamBundle(teamID, bundleID) != nil {
			return true
		}
	}
	return false
}
