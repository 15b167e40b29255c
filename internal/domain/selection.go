package domain

import (
	"time"

	"github.com/m04kA/SMC-CustomerPortal/pkg/types"
)

// SelectedSlot выбранный пользователем слот на конкретный день недели
// Порядок выбора сохраняется - это порядок дней пакета
type SelectedSlot struct {
	Day        string // метка дня ("monday", "thursday", ...)
	ScheduleID int64  // идентификатор слота расписания на бэкенде
	StartTime  types.TimeString
	EndTime    types.TimeString
}

// CustomerDetails контактные данные клиента для подтверждения бронирования
type CustomerDetails struct {
	Name                 string
	Phone                string
	Email                string
	WhatsApp             string
	PresentDuringService bool
	SpecialInstructions  string
}

// SelectionContext накапливаемое состояние одной сессии мастера бронирования
// Создается при открытии мастера, уничтожается при закрытии - не персистится
type SelectionContext struct {
	ServiceID          int64
	SubServiceID       int64
	SubServiceCategory string
	AreaID             int64
	DistrictID         int64
	PropertyID         int64
	ResidenceTypeID    int64
	ApartmentNumber    string

	Frequency      Frequency
	StartDate      time.Time
	DurationMonths int

	BundleID int64
	TeamID   int64

	SelectedSlots []SelectedSlot
	Customer      CustomerDetails

	// DateChosenByUser true только после явного взаимодействия с выбором даты
	// Сбрасывается при возврате со шага слотов - защита от устаревшей доступности
	DateChosenByUser bool

	// Revision монотонный счетчик изменений выбора
	// Используется для отбрасывания устаревших ответов фоновых запросов
	Revision int64
}

// LocationComplete проверяет заполненность шага выбора локации и услуги
func (s *SelectionContext) LocationComplete() bool {
	return s.ServiceID > 0 &&
		s.SubServiceID > 0 &&
		s.AreaID > 0 &&
		s.DistrictID > 0 &&
		s.PropertyID > 0 &&
		s.ResidenceTypeID > 0 &&
		s.ApartmentNumber != ""
}

// DetailsComplete проверяет заполненность шага параметров услуги
// Дата считается выбранной только после явного действия пользователя
func (s *SelectionContext) DetailsComplete() bool {
	return s.Frequency.Validate() == nil &&
		!s.StartDate.IsZero() &&
		s.DurationMonths > 0 &&
		s.DateChosenByUser
}

// BundleChosen проверяет, что выбран бандл
func (s *SelectionContext) BundleChosen() bool {
	return s.BundleID > 0
}

// SlotsComplete проверяет инвариант количества слотов:
// выбрано ровно столько слотов, сколько требует периодичность
func (s *SelectionContext) SlotsComplete() bool {
	required := s.Frequency.SlotsRequired()
	return required > 0 && len(s.SelectedSlots) == required
}

// ScheduleIDs возвращает идентификаторы выбранных слотов в порядке выбора
func (s *SelectionContext) ScheduleIDs() []int64 {
	ids := make([]int64, 0, len(s.SelectedSlots))
	for _, slot := range s.SelectedSlots {
		ids = append(ids, slot.ScheduleID)
	}
	return ids
}

// IsRegularCleaning возвращает true, если выбрана регулярная уборка
func (s *SelectionContext) IsRegularCleaning() bool {
	return s.SubServiceCategory == ServiceCategoryRegularCleaning
}
