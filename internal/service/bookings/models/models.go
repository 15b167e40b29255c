package models

import (
	"time"

	"github.com/m04kA/SMC-CustomerPortal/internal/domain"
)

// Request модели

// GetUserBookingsRequest запрос истории бронирований пользователя
type GetUserBookingsRequest struct {
	UserID          int64
	BookingID       *int64
	PropertyID      *int64
	ApartmentNumber *string
	ActiveOnly      bool
}

// CancelBookingRequest запрос отмены бронирования
// VisitDate nil - отмена пакета целиком, иначе отмена одного будущего визита
type CancelBookingRequest struct {
	UserID    int64
	BookingID int64
	VisitDate *time.Time
	Reason    string
}

// RescheduleRequest запрос переноса одного визита
type RescheduleRequest struct {
	UserID     int64
	BookingID  int64
	OldDate    time.Time
	NewDate    time.Time
	ScheduleID int64
}

// Response модели

// VisitResponse один запланированный визит
type VisitResponse struct {
	Date       string `json:"date"` // "2026-09-15"
	ScheduleID int64  `json:"scheduleId"`
	StartTime  string `json:"startTime"` // "10:00"
	EndTime    string `json:"endTime"`
	Completed  bool   `json:"completed"`
	Cancelled  bool   `json:"cancelled"`
}

// BookingResponse ответ с данными бронирования/пакета
type BookingResponse struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"userId"`

	ServiceID    int64  `json:"serviceId"`
	SubServiceID int64  `json:"subServiceId"`
	ServiceName  string `json:"serviceName"`

	AreaID          int64  `json:"areaId"`
	DistrictID      int64  `json:"districtId"`
	PropertyID      int64  `json:"propertyId"`
	ResidenceTypeID int64  `json:"residenceTypeId"`
	ApartmentNumber string `json:"apartmentNumber"`

	Frequency      string `json:"frequency"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate,omitempty"`
	DurationMonths int    `json:"durationMonths"`
	IsPackage      bool   `json:"isPackage"`

	Status      string          `json:"status"`
	CanCancel   bool            `json:"canCancel"`
	CanRenew    bool            `json:"canRenew"`
	Visits      []VisitResponse `json:"visits"`
	TotalAmount float64         `json:"totalAmount"`
	Currency    string          `json:"currency"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// TimeslotResponse доступный слот для переноса визита
type TimeslotResponse struct {
	ScheduleID int64  `json:"scheduleId"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
}

// TicketResponse обращение пользователя в поддержку
type TicketResponse struct {
	ID        int64  `json:"id"`
	BookingID int64  `json:"bookingId,omitempty"`
	Subject   string `json:"subject"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"` // ISO 8601
}

// TicketListResponse ответ со списком обращений
type TicketListResponse struct {
	Tickets []TicketResponse `json:"tickets"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.BookingRecord) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:              b.ID,
		UserID:          b.UserID,
		ServiceID:       b.ServiceID,
		SubServiceID:    b.SubServiceID,
		ServiceName:     b.ServiceName,
		AreaID:          b.AreaID,
		DistrictID:      b.DistrictID,
		PropertyID:      b.PropertyID,
		ResidenceTypeID: b.ResidenceTypeID,
		ApartmentNumber: b.ApartmentNumber,
		Frequency:       string(b.Frequency),
		StartDate:       b.StartDate.Format(domain.DateFormat),
		DurationMonths:  b.DurationMonths,
		IsPackage:       b.IsPackage(),
		Status:          string(b.Status),
		CanCancel:       b.CanBeCancelled(),
		CanRenew:        b.IsPackage() && b.IsActive(),
		Visits:          make([]VisitResponse, 0, len(b.Visits)),
		TotalAmount:     b.TotalAmount,
		Currency:        b.Currency,
	}

	if !b.EndDate.IsZero() {
		resp.EndDate = b.EndDate.Format(domain.DateFormat)
	}

	for _, visit := range b.Visits {
		resp.Visits = append(resp.Visits, VisitResponse{
			Date:       visit.Date.Format(domain.DateFormat),
			ScheduleID: visit.ScheduleID,
			StartTime:  visit.StartTime.String(),
			EndTime:    visit.EndTime.String(),
			Completed:  visit.Completed,
			Cancelled:  visit.Cancelled,
		})
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.BookingRecord) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// FromDomainTimeslots конвертирует слоты переноса в DTO
func FromDomainTimeslots(slots []domain.TimeSlotOption) []TimeslotResponse {
	resp := make([]TimeslotResponse, 0, len(slots))
	for _, slot := range slots {
		resp = append(resp, TimeslotResponse{
			ScheduleID: slot.ScheduleID,
			StartTime:  slot.StartTime.String(),
			EndTime:    slot.EndTime.String(),
		})
	}
	return resp
}

// FromDomainTickets конвертирует обращения в DTO
func FromDomainTickets(tickets []domain.Ticket) *TicketListResponse {
	resp := &TicketListResponse{
		Tickets: make([]TicketResponse, 0, len(tickets)),
	}
	for _, ticket := range tickets {
		resp.Tickets = append(resp.Tickets, TicketResponse{
			ID:        ticket.ID,
			BookingID: ticket.BookingID,
			Subject:   ticket.Subject,
			Status:    ticket.Status,
			CreatedAt: ticket.CreatedAt.Format(time.RFC3339),
		})
	}
	return resp
}
