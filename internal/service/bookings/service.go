package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CustomerPortal/internal/integrations/bookingapi"
	"github.com/m04kA/SMC-CustomerPortal/internal/service/bookings/models"
)

// Service сервис личного кабинета: история бронирований, отмена,
// перенос визитов, обращения в поддержку. Собственного состояния не держит
type Service struct {
	client       BookingAPIClient
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый сервис бронирований
func NewService(client BookingAPIClient, timeProvider TimeProvider, logger Logger) *Service {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	return &Service{
		client:       client,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetUserBookings получает бронирования пользователя с фильтрацией
// по объекту и квартире
func (s *Service) GetUserBookings(ctx context.Context, token string, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d", req.UserID)

	bookings, err := s.client.ListBookings(ctx, token, bookingapi.BookingsFilter{
		UserID:          req.UserID,
		BookingID:       req.BookingID,
		PropertyID:      req.PropertyID,
		ApartmentNumber: req.ApartmentNumber,
		ActiveOnly:      req.ActiveOnly,
	})
	if err != nil {
		s.logger.Error("GetUserBookings: fetch failed for user=%d: %v", req.UserID, err)
		return nil, wrapClientErr(err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetAllBookings получает полную историю бронирований пользователя
// без фильтрации, включая завершенные и отмененные
func (s *Service) GetAllBookings(ctx context.Context, token string, userID int64) (*models.BookingListResponse, error) {
	s.logger.Info("GetAllBookings: fetching all bookings for user=%d", userID)

	bookings, err := s.client.ListAllBookings(ctx, token)
	if err != nil {
		s.logger.Error("GetAllBookings: fetch failed for user=%d: %v", userID, err)
		return nil, wrapClientErr(err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
//
// VisitDate nil - отмена пакета/бронирования целиком, иначе отмена одного
// будущего визита внутри пакета. Прошедшие визиты не отменяются
func (s *Service) Cancel(ctx context.Context, token string, req *models.CancelBookingRequest) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	// Отмена одного визита - дата должна быть в будущем
	if req.VisitDate != nil {
		today := dateOnly(s.timeProvider.Now())
		if req.VisitDate.Before(today) || req.VisitDate.Equal(today) {
			s.logger.Warn("Cancel: past or same-day visit date %s for booking=%d",
				req.VisitDate.Format("2006-01-02"), req.BookingID)
			return ErrPastDate
		}

		s.logger.Info("Cancel: cancelling visit %s of booking=%d for user=%d",
			req.VisitDate.Format("2006-01-02"), req.BookingID, req.UserID)

		if err := s.client.CancelSingleBooking(ctx, token, req.BookingID, *req.VisitDate); err != nil {
			s.logger.Error("Cancel: single visit cancel failed for booking=%d: %v", req.BookingID, err)
			return wrapClientErr(err)
		}
		return nil
	}

	s.logger.Info("Cancel: cancelling booking=%d for user=%d", req.BookingID, req.UserID)

	if err := s.client.CancelBooking(ctx, token, req.BookingID, req.Reason); err != nil {
		s.logger.Error("Cancel: cancel failed for booking=%d: %v", req.BookingID, err)
		return wrapClientErr(err)
	}

	s.logger.Info("Cancel: booking=%d cancelled", req.BookingID)
	return nil
}

// RescheduleTimeslots получает доступные слоты для переноса визита
// Поток переноса не использует механизм блокировок - коммит напрямую
func (s *Service) RescheduleTimeslots(ctx context.Context, token string, bookingID int64, date time.Time) ([]models.TimeslotResponse, error) {
	if bookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if date.Before(dateOnly(s.timeProvider.Now())) {
		return nil, ErrPastDate
	}

	slots, err := s.client.RescheduleTimeslots(ctx, token, bookingID, date)
	if err != nil {
		s.logger.Error("RescheduleTimeslots: fetch failed for booking=%d: %v", bookingID, err)
		return nil, wrapClientErr(err)
	}

	s.logger.Info("RescheduleTimeslots: %d slots available for booking=%d, date=%s",
		len(slots), bookingID, date.Format("2006-01-02"))
	return models.FromDomainTimeslots(slots), nil
}

// Reschedule переносит один запланированный визит на новую дату и слот
func (s *Service) Reschedule(ctx context.Context, token string, req *models.RescheduleRequest) error {
	if req.BookingID <= 0 || req.ScheduleID <= 0 {
		return fmt.Errorf("%w: bookingID and scheduleID must be positive", ErrInvalidInput)
	}
	if req.OldDate.IsZero() || req.NewDate.IsZero() {
		return fmt.Errorf("%w: both dates are required", ErrInvalidInput)
	}

	today := dateOnly(s.timeProvider.Now())
	if req.OldDate.Before(today) || req.NewDate.Before(today) {
		return ErrPastDate
	}

	s.logger.Info("Reschedule: moving visit of booking=%d from %s to %s, schedule=%d",
		req.BookingID, req.OldDate.Format("2006-01-02"), req.NewDate.Format("2006-01-02"), req.ScheduleID)

	if err := s.client.Reschedule(ctx, token, bookingapi.RescheduleRequest{
		BookingID:  req.BookingID,
		OldDate:    req.OldDate,
		NewDate:    req.NewDate,
		ScheduleID: req.ScheduleID,
	}); err != nil {
		s.logger.Error("Reschedule: failed for booking=%d: %v", req.BookingID, err)
		return wrapClientErr(err)
	}

	return nil
}

// GetTickets получает обращения пользователя в поддержку
func (s *Service) GetTickets(ctx context.Context, token string, userID int64) (*models.TicketListResponse, error) {
	tickets, err := s.client.ListTickets(ctx, token, userID)
	if err != nil {
		s.logger.Error("GetTickets: fetch failed for user=%d: %v", userID, err)
		return nil, wrapClientErr(err)
	}

	return models.FromDomainTickets(tickets), nil
}

// wrapClientErr конвертирует ошибки клиента в ошибки сервиса
func wrapClientErr(err error) error {
	switch {
	case errors.Is(err, bookingapi.ErrUnauthorized):
		return ErrUnauthorized
	case errors.Is(err, bookingapi.ErrNotFound):
		return ErrBookingNotFound
	case errors.Is(err, bookingapi.ErrInvalidRequest):
		return ErrCannotCancel
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

// dateOnly усекает время до даты
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
