package handlers

import (
	"time"

	"github.com/m04kA/SMC-CustomerPortal/internal/domain"
	"github.com/m04kA/SMC-CustomerPortal/internal/service/wizard"
)

// Wire-модели снимка мастера, общие для обработчиков навигации

// SelectedSlotWire выбранный слот
type SelectedSlotWire struct {
	Day        string `json:"day"`
	ScheduleID int64  `json:"scheduleId"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
}

// CustomerWire контактные данные клиента
type CustomerWire struct {
	Name                 string `json:"name"`
	Phone                string `json:"phone"`
	Email                string `json:"email,omitempty"`
	WhatsApp             string `json:"whatsapp,omitempty"`
	PresentDuringService bool   `json:"presentDuringService"`
	SpecialInstructions  string `json:"specialInstructions,omitempty"`
}

// SelectionWire накопленный выбор сессии
type SelectionWire struct {
	ServiceID          int64  `json:"serviceId,omitempty"`
	SubServiceID       int64  `json:"subServiceId,omitempty"`
	SubServiceCategory string `json:"subServiceCategory,omitempty"`
	AreaID             int64  `json:"areaId,omitempty"`
	DistrictID         int64  `json:"districtId,omitempty"`
	PropertyID         int64  `json:"propertyId,omitempty"`
	ResidenceTypeID    int64  `json:"residenceTypeId,omitempty"`
	ApartmentNumber    string `json:"apartmentNumber,omitempty"`

	Frequency        string `json:"frequency,omitempty"`
	StartDate        string `json:"startDate,omitempty"`
	DurationMonths   int    `json:"durationMonths,omitempty"`
	DateChosenByUser bool   `json:"dateChosenByUser"`

	BundleID int64 `json:"bundleId,omitempty"`
	TeamID   int64 `json:"teamId,omitempty"`

	SelectedSlots []SelectedSlotWire `json:"selectedSlots"`
	Customer      CustomerWire       `json:"customer"`
}

// TimeSlotWire слот расписания в бандле
type TimeSlotWire struct {
	ScheduleID int64  `json:"scheduleId"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
}

// BundleDayWire предложения слотов на день недели
type BundleDayWire struct {
	Day       string         `json:"day"`
	TimeSlots []TimeSlotWire `json:"timeSlots"`
}

// TeamBundleWire бандл команды
type TeamBundleWire struct {
	ID   int64           `json:"id"`
	Days []BundleDayWire `json:"days"`
}

// BundleTeamWire команда с бандлами
type BundleTeamWire struct {
	ID               int64            `json:"id"`
	Name             string           `json:"name"`
	AvailableBundles []TeamBundleWire `json:"availableBundles"`
}

// BundleWire продаваемый бандл
type BundleWire struct {
	ID    int64            `json:"id"`
	Teams []BundleTeamWire `json:"teams"`
}

// HoldWire состояние блокировки расписания
type HoldWire struct {
	State            string  `json:"state"` // idle | held | released | confirmed
	BlockID          string  `json:"blockId,omitempty"`
	ExpiresAt        string  `json:"expiresAt,omitempty"` // ISO 8601
	RemainingSeconds int     `json:"remainingSeconds"`
	HeldSlots        []int64 `json:"heldSlots,omitempty"`
}

// WizardSnapshotResponse снимок состояния сессии мастера
type WizardSnapshotResponse struct {
	SessionID string   `json:"sessionId"`
	Type      string   `json:"type"`
	Step      string   `json:"step"`
	StepIndex int      `json:"stepIndex"`
	Steps     []string `json:"steps"`

	Selection SelectionWire `json:"selection"`
	Bundles   []BundleWire  `json:"bundles,omitempty"`
	Hold      HoldWire      `json:"hold"`
}

// FromWizardSnapshot конвертирует снимок сервиса в wire-модель
func FromWizardSnapshot(s *wizard.Snapshot) *WizardSnapshotResponse {
	resp := &WizardSnapshotResponse{
		SessionID: s.SessionID,
		Type:      string(s.Type),
		Step:      string(s.Step),
		StepIndex: s.StepIndex,
		Steps:     make([]string, 0, len(s.Steps)),
		Selection: fromSelection(&s.Selection),
		Bundles:   fromBundles(s.Bundles),
		Hold: HoldWire{
			State:            string(s.HoldState),
			RemainingSeconds: s.HoldRemaining,
		},
	}

	for _, step := range s.Steps {
		resp.Steps = append(resp.Steps, string(step))
	}

	if s.Hold != nil {
		resp.Hold.BlockID = s.Hold.BlockID
		resp.Hold.ExpiresAt = s.Hold.ExpiresAt.Format(time.RFC3339)
		resp.Hold.HeldSlots = s.Hold.HeldSlots
	}

	return resp
}

func fromSelection(sel *domain.SelectionContext) SelectionWire {
	wire := SelectionWire{
		ServiceID:          sel.ServiceID,
		SubServiceID:       sel.SubServiceID,
		SubServiceCategory: sel.SubServiceCategory,
		AreaID:             sel.AreaID,
		DistrictID:         sel.DistrictID,
		PropertyID:         sel.PropertyID,
		ResidenceTypeID:    sel.ResidenceTypeID,
		ApartmentNumber:    sel.ApartmentNumber,
		Frequency:          string(sel.Frequency),
		DurationMonths:     sel.DurationMonths,
		DateChosenByUser:   sel.DateChosenByUser,
		BundleID:           sel.BundleID,
		TeamID:             sel.TeamID,
		SelectedSlots:      make([]SelectedSlotWire, 0, len(sel.SelectedSlots)),
		Customer: CustomerWire{
			Name:                 sel.Customer.Name,
			Phone:                sel.Customer.Phone,
			Email:                sel.Customer.Email,
			WhatsApp:             sel.Customer.WhatsApp,
			PresentDuringService: sel.Customer.PresentDuringService,
			SpecialInstructions:  sel.Customer.SpecialInstructions,
		},
	}

	if !sel.StartDate.IsZero() {
		wire.StartDate = sel.StartDate.Format(domain.DateFormat)
	}

	for _, slot := range sel.SelectedSlots {
		wire.SelectedSlots = append(wire.SelectedSlots, SelectedSlotWire{
			Day:        slot.Day,
			ScheduleID: slot.ScheduleID,
			StartTime:  slot.StartTime.String(),
			EndTime:    slot.EndTime.String(),
		})
	}

	return wire
}

func fromBundles(bundles []domain.Bundle) []BundleWire {
	if len(bundles) == 0 {
		return nil
	}

	wire := make([]BundleWire, 0, len(bundles))
	for _, bundle := range bundles {
		bundleWire := BundleWire{
			ID:    bundle.ID,
			Teams: make([]BundleTeamWire, 0, len(bundle.Teams)),
		}
		for _, team := range bundle.Teams {
			teamWire := BundleTeamWire{
				ID:               team.ID,
				Name:             team.Name,
				AvailableBundles: make([]TeamBundleWire, 0, len(team.AvailableBundles)),
			}
			for _, tb := range team.AvailableBundles {
				tbWire := TeamBundleWire{
					ID:   tb.ID,
					Days: make([]BundleDayWire, 0, len(tb.Days)),
				}
				for _, day := range tb.Days {
					dayWire := BundleDayWire{
						Day:       day.Day,
						TimeSlots: make([]TimeSlotWire, 0, len(day.TimeSlots)),
					}
					for _, slot := range day.TimeSlots {
						dayWire.TimeSlots = append(dayWire.TimeSlots, TimeSlotWire{
							ScheduleID: slot.ScheduleID,
							StartTime:  slot.StartTime.String(),
							EndTime:    slot.EndTime.String(),
						})
					}
					tbWire.Days = append(tbWire.Days, dayWire)
				}
				teamWire.AvailableBundles = append(teamWire.AvailableBundles, tbWire)
			}
			bundleWire.Teams = append(bundleWire.Teams, teamWire)
		}
		wire = append(wire, bundleWire)
	}
	return wire
}
