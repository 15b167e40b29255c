package list_reference_data

import "github.com/m04kA/SMC-CustomerPortal/internal/domain"

// OptionWire запись справочника
type OptionWire struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// PropertyWire объект недвижимости
type PropertyWire struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	DistrictID int64   `json:"districtId"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
}

// ResidenceTypeWire тип резиденции
type ResidenceTypeWire struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
}

// ServiceWire запись каталога услуг
type ServiceWire struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Category        string `json:"category,omitempty"`
	ParentID        int64  `json:"parentId,omitempty"`
	DurationMinutes int    `json:"durationMinutes,omitempty"`
}

// FrequencyWire периодичность
type FrequencyWire struct {
	Value        string `json:"value"`
	SlotsPerWeek int    `json:"slotsPerWeek"`
}

// PriceWire строка прайса
type PriceWire struct {
	Frequency     string  `json:"frequency"`
	UnitAmount    float64 `json:"unitAmount"`
	TotalAmount   float64 `json:"totalAmount"`
	Currency      string  `json:"currency"`
	TotalServices int     `json:"totalServices"`
}

func fromOptions(options []domain.Option) []OptionWire {
	wire := make([]OptionWire, 0, len(options))
	for _, opt := range options {
		wire = append(wire, OptionWire{ID: opt.ID, Name: opt.Name})
	}
	return wire
}

func fromProperties(properties []domain.PropertyOption) []PropertyWire {
	wire := make([]PropertyWire, 0, len(properties))
	for _, p := range properties {
		wire = append(wire, PropertyWire{
			ID:         p.ID,
			Name:       p.Name,
			DistrictID: p.DistrictID,
			Lat:        p.Location.Lat,
			Lng:        p.Location.Lng,
		})
	}
	return wire
}

func fromResidenceTypes(residenceTypes []domain.ResidenceTypeOption) []ResidenceTypeWire {
	wire := make([]ResidenceTypeWire, 0, len(residenceTypes))
	for _, rt := range residenceTypes {
		wire = append(wire, ResidenceTypeWire{
			ID:              rt.ID,
			Name:            rt.Name,
			DurationMinutes: rt.DurationMinutes,
		})
	}
	return wire
}

func fromServices(services []domain.ServiceOption) []ServiceWire {
	wire := make([]ServiceWire, 0, len(services))
	for _, svc := range services {
		wire = append(wire, ServiceWire{
			ID:              svc.ID,
			Name:            svc.Name,
			Category:        svc.Category,
			ParentID:        svc.ParentID,
			DurationMinutes: svc.DurationMinutes,
		})
	}
	return wire
}

func fromFrequencies(frequencies []domain.FrequencyOption) []FrequencyWire {
	wire := make([]FrequencyWire, 0, len(frequencies))
	for _, f := range frequencies {
		wire = append(wire, FrequencyWire{
			Value:        string(f.Frequency),
			SlotsPerWeek: f.SlotsPerWeek,
		})
	}
	return wire
}

func fromPrices(prices []domain.PriceOption) []PriceWire {
	wire := make([]PriceWire, 0, len(prices))
	for _, p := range prices {
		wire = append(wire, PriceWire{
			Frequency:     string(p.Frequency),
			UnitAmount:    p.UnitAmount,
			TotalAmount:   p.TotalAmount,
			Currency:      p.Currency,
			TotalServices: p.TotalServices,
		})
	}
	return wire
}
