package update_selection

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CustomerPortal/internal/domain"
	"github.com/m04kA/SMC-CustomerPortal/internal/service/wizard"
	"github.com/m04kA/SMC-CustomerPortal/pkg/types"
)

// SelectedSlotWire выбранный слот в теле запроса
type SelectedSlotWire struct {
	Day        string `json:"day"`
	ScheduleID int64  `json:"scheduleId"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
}

// CustomerWire контактные данные в теле запроса
type CustomerWire struct {
	Name                 string `json:"name"`
	Phone                string `json:"phone"`
	Email                string `json:"email"`
	WhatsApp             string `json:"whatsapp"`
	PresentDuringService bool   `json:"presentDuringService"`
	SpecialInstructions  string `json:"specialInstructions"`
}

// UpdateSelectionRequest частичный патч выбора
// Отсутствующие поля не трогаются
type UpdateSelectionRequest struct {
	ServiceID          *int64  `json:"serviceId,omitempty"`
	SubServiceID       *int64  `json:"subServiceId,omitempty"`
	SubServiceCategory *string `json:"subServiceCategory,omitempty"`
	AreaID             *int64  `json:"areaId,omitempty"`
	DistrictID         *int64  `json:"districtId,omitempty"`
	PropertyID         *int64  `json:"propertyId,omitempty"`
	ResidenceTypeID    *int64  `json:"residenceTypeId,omitempty"`
	ApartmentNumber    *string `json:"apartmentNumber,omitempty"`

	Frequency      *string `json:"frequency,omitempty"`
	StartDate      *string `json:"startDate,omitempty"` // "2026-09-15"
	DurationMonths *int    `json:"durationMonths,omitempty"`

	BundleID *int64 `json:"bundleId,omitempty"`
	TeamID   *int64 `json:"teamId,omitempty"`

	SelectedSlots []SelectedSlotWire `json:"selectedSlots,omitempty"`
	Customer      *CustomerWire      `json:"customer,omitempty"`
}

// ToServiceRequest конвертирует wire-модель в запрос сервиса
func (r *UpdateSelectionRequest) ToServiceRequest() (wizard.UpdateRequest, error) {
	upd := wizard.UpdateRequest{
		ServiceID:          r.ServiceID,
		SubServiceID:       r.SubServiceID,
		SubServiceCategory: r.SubServiceCategory,
		AreaID:             r.AreaID,
		DistrictID:         r.DistrictID,
		PropertyID:         r.PropertyID,
		ResidenceTypeID:    r.ResidenceTypeID,
		ApartmentNumber:    r.ApartmentNumber,
		DurationMonths:     r.DurationMonths,
		BundleID:           r.BundleID,
		TeamID:             r.TeamID,
	}

	if r.Frequency != nil {
		frequency := domain.Frequency(*r.Frequency)
		if err := frequency.Validate(); err != nil {
			return upd, fmt.Errorf("invalid frequency: %w", err)
		}
		upd.Frequency = &frequency
	}

	if r.StartDate != nil {
		startDate, err := time.Parse(domain.DateFormat, *r.StartDate)
		if err != nil {
			return upd, fmt.Errorf("invalid startDate: %w", err)
		}
		upd.StartDate = &startDate
	}

	if r.SelectedSlots != nil {
		slots := make([]domain.SelectedSlot, 0, len(r.SelectedSlots))
		for _, slotWire := range r.SelectedSlots {
			startTime, err := types.NewTimeStringFromString(slotWire.StartTime)
			if err != nil {
				return upd, fmt.Errorf("invalid slot startTime: %w", err)
			}
			endTime, err := types.NewTimeStringFromString(slotWire.EndTime)
			if err != nil {
				return upd, fmt.Errorf("invalid slot endTime: %w", err)
			}
			slots = append(slots, domain.SelectedSlot{
				Day:        slotWire.Day,
				ScheduleID: slotWire.ScheduleID,
				StartTime:  startTime,
				EndTime:    endTime,
			})
		}
		upd.SelectedSlots = slots
	}

	if r.Customer != nil {
		upd.Customer = &domain.CustomerDetails{
			Name:                 r.Customer.Name,
			Phone:                r.Customer.Phone,
			Email:                r.Customer.Email,
			WhatsApp:             r.Customer.WhatsApp,
			PresentDuringService: r.Customer.PresentDuringService,
			SpecialInstructions:  r.Customer.SpecialInstructions,
		}
	}

	return upd, nil
}
