package bookingapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-CustomerPortal/internal/domain"
)

// BlockScheduleRequest запрос мягкой блокировки слотов расписания
type BlockScheduleRequest struct {
	ScheduleIDs []int64

	AreaID          int64
	DistrictID      int64
	PropertyID      int64
	ResidenceTypeID int64
	ApartmentNumber string

	ServiceID    int64
	SubServiceID int64
	TeamID       int64
	BundleID     int64

	StartDate      time.Time
	Frequency      domain.Frequency
	DurationMonths int

	TotalAmount float64
	Currency    string
}

// blockRequestWire тело запроса POST /bookings/block
type blockRequestWire struct {
	Schedules       []int64 `json:"schedules"`
	Area            int64   `json:"area"`
	District        int64   `json:"district"`
	Property        int64   `json:"property"`
	ResidenceTypeID int64   `json:"residenceTypeId"`
	ApartmentNumber string  `json:"apartment_number"`
	ServiceID       int64   `json:"serviceId"`
	SubServiceID    int64   `json:"subServiceId"`
	TeamID          int64   `json:"teamId"`
	BundleID        int64   `json:"bundleId"`
	StartDate       string  `json:"startDate"`
	Frequency       string  `json:"frequency"`
	DurationMonths  int     `json:"durationMonths"`
	TotalAmount     float64 `json:"total_amount"`
	Currency        string  `json:"currency"`
}

// BlockSchedule запрашивает атомарную блокировку слотов на бэкенде
// Вызов all-or-nothing: либо возвращается blockId и бэкенд держит слоты
// в течение TTL, либо весь запрос считается неуспешным
// 409 означает, что слоты успел занять другой пользователь
func (c *Client) BlockSchedule(ctx context.Context, token string, req BlockScheduleRequest) (string, error) {
	body := blockRequestWire{
		Schedules:       req.ScheduleIDs,
		Area:            req.AreaID,
		District:        req.DistrictID,
		Property:        req.PropertyID,
		ResidenceTypeID: req.ResidenceTypeID,
		ApartmentNumber: req.ApartmentNumber,
		ServiceID:       req.ServiceID,
		SubServiceID:    req.SubServiceID,
		TeamID:          req.TeamID,
		BundleID:        req.BundleID,
		StartDate:       req.StartDate.Format(domain.DateFormat),
		Frequency:       string(req.Frequency),
		DurationMonths:  req.DurationMonths,
		TotalAmount:     req.TotalAmount,
		Currency:        req.Currency,
	}

	var resp struct {
		Data struct {
			BlockID string `json:"blockId"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/bookings/block", token, body, &resp); err != nil {
		return "", err
	}

	if resp.Data.BlockID == "" {
		return "", fmt.Errorf("%w: empty blockId in block response", ErrInvalidResponse)
	}

	return resp.Data.BlockID, nil
}

// ReleaseSlot снимает блокировку расписания
// 404 означает, что блокировка уже снята или истекла на бэкенде -
// для вызывающего это успешное снятие
func (c *Client) ReleaseSlot(ctx context.Context, token string, blockID string) error {
	body := map[string]string{"blockId": blockID}

	err := c.do(ctx, http.MethodPost, "/release-slot", token, body, nil)
	if errors.Is(err, ErrNotFound) {
		c.log.Info("ReleaseSlot: block_id=%s already released on backend", blockID)
		return nil
	}
	return err
}

// ConfirmBookingRequest запрос финализации бронирования из блокировки
type ConfirmBookingRequest struct {
	BlockID string

	UserPhone                string
	UserAvailableInApartment bool
	SpecialInstructions      string
	ApartmentNumber          string

	// Продление: связь с исходным пакетом
	IsRenewed     bool
	PrevBookingID *int64
}

// confirmRequestWire тело запроса POST /bookings/confirm
// Поле appartmentNumber - историческое написание на бэкенде,
// за пределами этого пакета используется только нормализованное имя
type confirmRequestWire struct {
	BlockID                  string `json:"blockId"`
	UserPhone                string `json:"userPhone"`
	UserAvailableInApartment bool   `json:"userAvailableInApartment"`
	SpecialInstructions      string `json:"specialInstructions"`
	ApartmentNumber          string `json:"appartmentNumber"`
	IsRenewed                bool   `json:"is_renewed,omitempty"`
	PrevBookingID            *int64 `json:"prev_booking_id,omitempty"`
}

// ConfirmBooking конвертирует активную блокировку в подтвержденное бронирование
// Блокировка поглощается бэкендом - release после успеха не вызывается
// 409/410 означает, что блокировка истекла или была снята на бэкенде
func (c *Client) ConfirmBooking(ctx context.Context, token string, req ConfirmBookingRequest) (*domain.BookingRecord, error) {
	body := confirmRequestWire{
		BlockID:                  req.BlockID,
		UserPhone:                req.UserPhone,
		UserAvailableInApartment: req.UserAvailableInApartment,
		SpecialInstructions:      req.SpecialInstructions,
		ApartmentNumber:          req.ApartmentNumber,
		IsRenewed:                req.IsRenewed,
		PrevBookingID:            req.PrevBookingID,
	}

	var resp struct {
		Data bookingWire `json:"data"`
	}
	err := c.do(ctx, http.MethodPost, "/bookings/confirm", token, body, &resp)
	if err != nil {
		// 409 на confirm означает не гонку за слот, а невалидную блокировку
		if errors.Is(err, ErrSlotTaken) {
			return nil, ErrHoldExpired
		}
		return nil, err
	}

	return resp.Data.toDomain(), nil
}

// CancelBooking отменяет бронирование или пакет целиком
func (c *Client) CancelBooking(ctx context.Context, token string, bookingID int64, reason string) error {
	body := map[string]interface{}{
		"bookingId": bookingID,
		"reason":    reason,
	}
	return c.do(ctx, http.MethodPost, "/cancel-booking", token, body, nil)
}

// CancelSingleBooking отменяет один будущий визит внутри пакета
func (c *Client) CancelSingleBooking(ctx context.Context, token string, bookingID int64, date time.Time) error {
	body := map[string]interface{}{
		"bookingId": bookingID,
		"date":      date.Format(domain.DateFormat),
	}
	return c.do(ctx, http.MethodPost, "/cancel-single-booking", token, body, nil)
}

// RescheduleTimeslots возвращает доступные слоты для переноса визита
// Поток переноса не использует механизм блокировок - коммит напрямую
func (c *Client) RescheduleTimeslots(ctx context.Context, token string, bookingID int64, date time.Time) ([]domain.TimeSlotOption, error) {
	body := map[string]interface{}{
		"bookingId": bookingID,
		"date":      date.Format(domain.DateFormat),
	}

	var resp struct {
		Data []timeSlotWire `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/reschedule/timeslots", token, body, &resp); err != nil {
		return nil, err
	}

	slots := make([]domain.TimeSlotOption, 0, len(resp.Data))
	for i := range resp.Data {
		slots = append(slots, resp.Data[i].toDomain())
	}
	return slots, nil
}

// RescheduleRequest запрос переноса одного визита на новую дату/слот
type RescheduleRequest struct {
	BookingID  int64
	OldDate    time.Time
	NewDate    time.Time
	ScheduleID int64
}

// Reschedule переносит один запланированный визит
func (c *Client) Reschedule(ctx context.Context, token string, req RescheduleRequest) error {
	body := map[string]interface{}{
		"bookingId":  req.BookingID,
		"oldDate":    req.OldDate.Format(domain.DateFormat),
		"newDate":    req.NewDate.Format(domain.DateFormat),
		"scheduleId": req.ScheduleID,
	}
	return c.do(ctx, http.MethodPost, "/reschedule", token, body, nil)
}

// BookingsFilter фильтр списка бронирований пользователя
type BookingsFilter struct {
	UserID          int64
	BookingID       *int64
	PropertyID      *int64
	ApartmentNumber *string
	ActiveOnly      bool
}

// ListBookings возвращает бронирования пользователя с фильтрацией
func (c *Client) ListBookings(ctx context.Context, token string, filter BookingsFilter) ([]*domain.BookingRecord, error) {
	query := url.Values{}
	query.Set("userId", strconv.FormatInt(filter.UserID, 10))
	if filter.BookingID != nil {
		query.Set("bookingId", strconv.FormatInt(*filter.BookingID, 10))
	}
	if filter.PropertyID != nil {
		query.Set("property", strconv.FormatInt(*filter.PropertyID, 10))
	}
	if filter.ApartmentNumber != nil {
		query.Set("apartment", *filter.ApartmentNumber)
	}
	if filter.ActiveOnly {
		query.Set("active", "true")
	}

	var resp struct {
		Data []bookingWire `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/bookings?"+query.Encode(), token, nil, &resp); err != nil {
		return nil, err
	}

	bookings := make([]*domain.BookingRecord, 0, len(resp.Data))
	for i := range resp.Data {
		bookings = append(bookings, resp.Data[i].toDomain())
	}
	return bookings, nil
}

// ListAllBookings возвращает все бронирования пользователя без фильтрации
func (c *Client) ListAllBookings(ctx context.Context, token string) ([]*domain.BookingRecord, error) {
	var resp struct {
		Data []bookingWire `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/bookings/all", token, nil, &resp); err != nil {
		return nil, err
	}

	bookings := make([]*domain.BookingRecord, 0, len(resp.Data))
	for i := range resp.Data {
		bookings = append(bookings, resp.Data[i].toDomain())
	}
	return bookings, nil
}

// ListTickets возвращает обращения пользователя в поддержку
func (c *Client) ListTickets(ctx context.Context, token string, userID int64) ([]domain.Ticket, error) {
	path := fmt.Sprintf("/tickets/%d", userID)

	var resp struct {
		Data []ticketWire `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, err
	}

	tickets := make([]domain.Ticket, 0, len(resp.Data))
	for i := range resp.Data {
		tickets = append(tickets, resp.Data[i].toDomain())
	}
	return tickets, nil
}
