package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Hold configuration defaults
const (
	// DefaultHoldTTLSeconds время жизни блокировки расписания
	// Бэкенд держит слоты ровно столько же - оба таймера стартуют при создании блокировки
	DefaultHoldTTLSeconds = 600

	// DefaultHoldTickSeconds шаг обратного отсчета
	DefaultHoldTickSeconds = 1
)

// Service categories
const (
	// ServiceCategoryRegularCleaning категория регулярной уборки
	// Для неё действует правило запрета дублирующего активного пакета
	// по идентичному кортежу {area, district, property, residenceType, apartment, subService}
	ServiceCategoryRegularCleaning = "regular_cleaning"
)

// Validation constants
const (
	MinPhoneLength               = 7
	MinDurationMonths            = 1
	MaxDurationMonths            = 12
	MaxSpecialInstructionsLength = 500
	MaxApartmentNumberLength     = 20
)
