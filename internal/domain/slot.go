package domain

import "github.com/m04kA/SMC-CustomerPortal/pkg/types"

// CalendarDay доступность одной даты в календаре выбора даты начала
type CalendarDay struct {
	Available  bool // дата доступна для бронирования
	UserBooked bool // у пользователя уже есть бронирование на эту дату
}

// TimeSlotOption слот расписания, предлагаемый командой на конкретный день
type TimeSlotOption struct {
	ScheduleID int64
	StartTime  types.TimeString
	EndTime    types.TimeString
}

// BundleDay предложения слотов на один день недели
type BundleDay struct {
	Day       string
	TimeSlots []TimeSlotOption
}

// TeamBundle продаваемый бандл команды: комбинация расписаний по дням,
// покрывающая выбранную периодичность
type TeamBundle struct {
	ID   int64
	Days []BundleDay
}

// BundleTeam команда с её доступными бандлами
type BundleTeam struct {
	ID               int64
	Name             string
	AvailableBundles []TeamBundle
}

// Bundle продаваемая комбинация команд и расписаний для выбранной
// даты начала, периодичности и длительности услуги
type Bundle struct {
	ID    int64
	Teams []BundleTeam
}

// FindTeamBundle ищет бандл команды по идентификаторам
// Возвращает nil, если комбинация не продается
func (b *Bundle) FindTeamBundle(teamID, bundleID int64) *TeamBundle {
	for ti := range b.Teams {
		if b.Teams[ti].ID != teamID {
			continue
		}
		for bi := range b.Teams[ti].AvailableBundles {
			if b.Teams[ti].AvailableBundles[bi].ID == bundleID {
				return &b.Teams[ti].AvailableBundles[bi]
			}
		}
	}
	return nil
}
