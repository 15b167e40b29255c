package list_reference_data

import (
	"context"

	"github.com/m04kA/SMC-CustomerPortal/internal/domain"
)

type RefDataService interface {
	Areas(ctx context.Context, token string) ([]domain.Option, error)
	Districts(ctx context.Context, token string, areaID int64) ([]domain.Option, error)
	Properties(ctx context.Context, token string, districtID int64) ([]domain.PropertyOption, error)
	ResidenceTypes(ctx context.Context, token string) ([]domain.ResidenceTypeOption, error)
	Services(ctx context.Context, token string, parentID *int64) ([]domain.ServiceOption, error)
	Frequencies() []domain.FrequencyOption
	Pricing(ctx context.Context, token string, serviceID, residenceTypeID int64) ([]domain.PriceOption, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
