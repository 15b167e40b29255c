package domain

import (
	"time"

	"github.com/m04kA/SMC-CustomerPortal/pkg/types"
)

// BookingStatus статус бронирования на бэкенде
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusActive    BookingStatus = "active"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusExpired   BookingStatus = "expired"
)

// ScheduledVisit один запланированный визит в рамках бронирования или пакета
type ScheduledVisit struct {
	Date       time.Time
	ScheduleID int64
	StartTime  types.TimeString
	EndTime    types.TimeString
	Completed  bool
	Cancelled  bool
}

// BookingRecord каноническое представление бронирования/пакета с бэкенда
// Единая нормализованная форма: варианты имен полей бэкенда
// (apartment_number / appartment_number) поглощаются на границе API,
// остальной код никогда не ветвится по вариантам полей.
// Read-only для портала - все мутации идут через бэкенд.
type BookingRecord struct {
	ID     int64
	UserID int64

	ServiceID          int64
	SubServiceID       int64
	SubServiceCategory string
	ServiceName        string

	AreaID          int64
	DistrictID      int64
	PropertyID      int64
	ResidenceTypeID int64
	ApartmentNumber string

	Frequency      Frequency
	StartDate      time.Time
	EndDate        time.Time
	DurationMonths int
	TeamID         int64

	Status BookingStatus
	Visits []ScheduledVisit

	TotalAmount float64
	Currency    string
}

// IsActive возвращает true для действующего бронирования/пакета
func (b *BookingRecord) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusActive
}

// IsPackage возвращает true для периодического пакета
func (b *BookingRecord) IsPackage() bool {
	return b.Frequency.IsRecurring()
}

// CanBeCancelled возвращает true, если бронирование можно отменить
func (b *BookingRecord) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusActive
}

// MatchesLocationTuple проверяет совпадение шестерки
// {area, district, property, residenceType, apartment, subService}
// с текущим выбором мастера. Используется для обнаружения дублирующего
// активного пакета регулярной уборки: изменение любого из шести полей
// снимает конфликт.
func (b *BookingRecord) MatchesLocationTuple(sel *SelectionContext) bool {
	return b.AreaID == sel.AreaID &&
		b.DistrictID == sel.DistrictID &&
		b.PropertyID == sel.PropertyID &&
		b.ResidenceTypeID == sel.ResidenceTypeID &&
		b.ApartmentNumber == sel.ApartmentNumber &&
		b.SubServiceID == sel.SubServiceID
}

// SeedSelection создает контекст выбора для продления этого пакета
// Локация и параметры наследуются, дата/бандл/слоты выбираются заново
func (b *BookingRecord) SeedSelection() SelectionContext {
	return SelectionContext{
		ServiceID:          b.ServiceID,
		SubServiceID:       b.SubServiceID,
		SubServiceCategory: b.SubServiceCategory,
		AreaID:             b.AreaID,
		DistrictID:         b.DistrictID,
		PropertyID:         b.PropertyID,
		ResidenceTypeID:    b.ResidenceTypeID,
		ApartmentNumber:    b.ApartmentNumber,
		Frequency:          b.Frequency,
		DurationMonths:     b.DurationMonths,
	}
}
