package bookingapi

import (
	"time"

	"github.com/m04kA/SMC-CustomerPortal/internal/domain"
	"github.com/m04kA/SMC-CustomerPortal/pkg/types"
)

// Wire-модели бэкенда. Нормализация в канонические domain-типы происходит
// здесь, на границе API: варианты имен полей (name/label,
// apartment_number/appartment_number) не покидают этот пакет.

// optionWire запись справочника
// Бэкенд отдает display-поле то как name, то как label в зависимости от справочника
type optionWire struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Label string `json:"label"`
}

func (w *optionWire) displayName() string {
	if w.Name != "" {
		return w.Name
	}
	return w.Label
}

func (w *optionWire) toDomain() domain.Option {
	return domain.Option{ID: w.ID, Name: w.displayName()}
}

type optionListWire struct {
	Data []optionWire `json:"data"`
}

// propertyWire объект недвижимости
type propertyWire struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	DistrictID int64  `json:"district_id"`
	Location   struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"location"`
}

func (w *propertyWire) toDomain() domain.PropertyOption {
	return domain.PropertyOption{
		ID:         w.ID,
		Name:       w.Name,
		DistrictID: w.DistrictID,
		Location:   domain.GeoPoint{Lat: w.Location.Lat, Lng: w.Location.Lng},
	}
}

// residenceTypeWire тип резиденции
type residenceTypeWire struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
}

func (w *residenceTypeWire) toDomain() domain.ResidenceTypeOption {
	return domain.ResidenceTypeOption{
		ID:              w.ID,
		Name:            w.Name,
		DurationMinutes: w.DurationMinutes,
	}
}

// serviceWire запись каталога услуг
type serviceWire struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Category        string `json:"category"`
	ParentID        int64  `json:"parent_id"`
	DurationMinutes int    `json:"duration_minutes"`
}

func (w *serviceWire) toDomain() domain.ServiceOption {
	return domain.ServiceOption{
		ID:              w.ID,
		Name:            w.Name,
		Category:        w.Category,
		ParentID:        w.ParentID,
		DurationMinutes: w.DurationMinutes,
	}
}

// calendarDayWire доступность одной даты
type calendarDayWire struct {
	Available  bool `json:"available"`
	UserBooked bool `json:"userBooked"`
}

// timeSlotWire слот расписания команды
type timeSlotWire struct {
	ScheduleID int64  `json:"scheduleId"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
}

func (w *timeSlotWire) toDomain() domain.TimeSlotOption {
	return domain.TimeSlotOption{
		ScheduleID: w.ScheduleID,
		StartTime:  types.TimeString(w.StartTime),
		EndTime:    types.TimeString(w.EndTime),
	}
}

// bundleWire дерево бандлов: bundle → teams → availableBundles → days → timeSlots
type bundleWire struct {
	ID    int64 `json:"id"`
	Teams []struct {
		ID               int64  `json:"id"`
		Name             string `json:"name"`
		AvailableBundles []struct {
			ID   int64 `json:"id"`
			Days []struct {
				Day       string         `json:"day"`
				TimeSlots []timeSlotWire `json:"timeSlots"`
			} `json:"days"`
		} `json:"availableBundles"`
	} `json:"teams"`
}

func (w *bundleWire) toDomain() domain.Bundle {
	bundle := domain.Bundle{ID: w.ID}
	for _, teamWire := range w.Teams {
		team := domain.BundleTeam{ID: teamWire.ID, Name: teamWire.Name}
		for _, tbWire := range teamWire.AvailableBundles {
			teamBundle := domain.TeamBundle{ID: tbWire.ID}
			for _, dayWire := range tbWire.Days {
				day := domain.BundleDay{Day: dayWire.Day}
				for _, slotWire := range dayWire.TimeSlots {
					day.TimeSlots = append(day.TimeSlots, slotWire.toDomain())
				}
				teamBundle.Days = append(teamBundle.Days, day)
			}
			team.AvailableBundles = append(team.AvailableBundles, teamBundle)
		}
		bundle.Teams = append(bundle.Teams, team)
	}
	return bundle
}

// priceWire строка прайса
type priceWire struct {
	Frequency     string  `json:"frequency"`
	UnitAmount    float64 `json:"unit_amount"`
	TotalAmount   float64 `json:"total_amount"`
	Currency      string  `json:"currency"`
	TotalServices int     `json:"total_services"`
}

func (w *priceWire) toDomain() domain.PriceOption {
	return domain.PriceOption{
		Frequency:     domain.Frequency(w.Frequency),
		UnitAmount:    w.UnitAmount,
		TotalAmount:   w.TotalAmount,
		Currency:      w.Currency,
		TotalServices: w.TotalServices,
	}
}

// visitWire один запланированный визит
type visitWire struct {
	Date       string `json:"date"`
	ScheduleID int64  `json:"scheduleId"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Completed  bool   `json:"completed"`
	Cancelled  bool   `json:"cancelled"`
}

// bookingWire бронирование/пакет
// Исторически бэкенд отдает номер квартиры то как apartment_number,
// то как appartment_number - нормализуем здесь и больше нигде
type bookingWire struct {
	ID                 int64       `json:"id"`
	UserID             int64       `json:"user_id"`
	ServiceID          int64       `json:"service_id"`
	SubServiceID       int64       `json:"sub_service_id"`
	SubServiceCategory string      `json:"sub_service_category"`
	ServiceName        string      `json:"service_name"`
	AreaID             int64       `json:"area_id"`
	DistrictID         int64       `json:"district_id"`
	PropertyID         int64       `json:"property_id"`
	ResidenceTypeID    int64       `json:"residence_type_id"`
	ApartmentNumber    string      `json:"apartment_number"`
	ApartmentNumberAlt string      `json:"appartment_number"`
	Frequency          string      `json:"frequency"`
	StartDate          string      `json:"start_date"`
	EndDate            string      `json:"end_date"`
	DurationMonths     int         `json:"duration_months"`
	TeamID             int64       `json:"team_id"`
	Status             string      `json:"status"`
	Visits             []visitWire `json:"visits"`
	TotalAmount        float64     `json:"total_amount"`
	Currency           string      `json:"currency"`
}

func (w *bookingWire) toDomain() *domain.BookingRecord {
	apartment := w.ApartmentNumber
	if apartment == "" {
		apartment = w.ApartmentNumberAlt
	}

	record := &domain.BookingRecord{
		ID:                 w.ID,
		UserID:             w.UserID,
		ServiceID:          w.ServiceID,
		SubServiceID:       w.SubServiceID,
		SubServiceCategory: w.SubServiceCategory,
		ServiceName:        w.ServiceName,
		AreaID:             w.AreaID,
		DistrictID:         w.DistrictID,
		PropertyID:         w.PropertyID,
		ResidenceTypeID:    w.ResidenceTypeID,
		ApartmentNumber:    apartment,
		Frequency:          domain.Frequency(w.Frequency),
		DurationMonths:     w.DurationMonths,
		TeamID:             w.TeamID,
		Status:             domain.BookingStatus(w.Status),
		TotalAmount:        w.TotalAmount,
		Currency:           w.Currency,
	}

	if date, err := time.Parse(domain.DateFormat, w.StartDate); err == nil {
		record.StartDate = date
	}
	if date, err := time.Parse(domain.DateFormat, w.EndDate); err == nil {
		record.EndDate = date
	}

	for _, visitW := range w.Visits {
		visit := domain.ScheduledVisit{
			ScheduleID: visitW.ScheduleID,
			StartTime:  types.TimeString(visitW.StartTime),
			EndTime:    types.TimeString(visitW.EndTime),
			Completed:  visitW.Completed,
			Cancelled:  visitW.Cancelled,
		}
		if date, err := time.Parse(domain.DateFormat, visitW.Date); err == nil {
			visit.Date = date
		}
		record.Visits = append(record.Visits, visit)
	}

	return record
}

// ticketWire обращение в поддержку
type ticketWire struct {
	ID        int64  `json:"id"`
	BookingID int64  `json:"booking_id"`
	Subject   string `json:"subject"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (w *ticketWire) toDomain() domain.Ticket {
	ticket := domain.Ticket{
		ID:        w.ID,
		BookingID: w.BookingID,
		Subject:   w.Subject,
		Status:    w.Status,
	}
	if t, err := time.Parse(time.RFC3339, w.CreatedAt); err == nil {
		ticket.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, w.UpdatedAt); err == nil {
		ticket.UpdatedAt = t
	}
	return ticket
}
