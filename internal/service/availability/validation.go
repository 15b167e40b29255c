package availability

import "fmt"

// validateCalendarRequest валидирует запрос календаря доступности
func validateCalendarRequest(req *CalendarRequest) error {
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: date range is required", ErrInvalidInput)
	}

	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: endDate must not precede startDate", ErrInvalidInput)
	}

	if req.PropertyID <= 0 {
		return fmt.Errorf("%w: propertyID must be positive", ErrInvalidInput)
	}

	return nil
}

// validateBundlesRequest валидирует запрос бандлов
func validateBundlesRequest(req *BundlesRequest) error {
	if err := req.Frequency.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if req.DurationMonths <= 0 {
		return fmt.Errorf("%w: durationMonths must be positive", ErrInvalidInput)
	}

	if req.ServiceDurationMinutes <= 0 {
		return fmt.Errorf("%w: serviceDurationMinutes must be positive", ErrInvalidInput)
	}

	return nil
}
