package domain

// Option запись справочника с устойчивым идентификатором и меткой для отображения
type Option struct {
	ID   int64
	Name string
}

// PropertyOption запись справочника объектов недвижимости
type PropertyOption struct {
	ID         int64
	Name       string
	DistrictID int64
	Location   GeoPoint
}

// GeoPoint географические координаты объекта
type GeoPoint struct {
	Lat float64
	Lng float64
}

// ResidenceTypeOption тип резиденции - определяет длительность услуги по умолчанию
type ResidenceTypeOption struct {
	ID              int64
	Name            string
	DurationMinutes int
}

// ServiceOption запись каталога услуг
// ParentID указывает на родительскую услугу для подуслуг
type ServiceOption struct {
	ID              int64
	Name            string
	Category        string
	ParentID        int64
	DurationMinutes int
}

// FrequencyOption периодичность для отображения в селекторе
type FrequencyOption struct {
	Frequency    Frequency
	SlotsPerWeek int
}

// PriceOption строка прайса для пары {услуга, тип резиденции}
type PriceOption struct {
	Frequency     Frequency
	UnitAmount    float64
	TotalAmount   float64
	Currency      string
	TotalServices int
}
