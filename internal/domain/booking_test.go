package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func activeBooking() BookingRecord {
	return BookingRecord{
		ID:              77,
		UserID:          42,
		SubServiceID:    2,
		AreaID:          3,
		DistrictID:      4,
		PropertyID:      5,
		ResidenceTypeID: 6,
		ApartmentNumber: "12",
		Frequency:       FrequencyTwice,
		DurationMonths:  3,
		Status:          StatusActive,
	}
}

func TestBooking_IsPackage(t *testing.T) {
	booking := activeBooking()
	assert.True(t, booking.IsPackage())

	booking.Frequency = FrequencyOneTime
	assert.False(t, booking.IsPackage())
}

func TestBooking_IsActive(t *testing.T) {
	booking := activeBooking()
	assert.True(t, booking.IsActive())

	booking.Status = StatusPending
	assert.True(t, booking.IsActive())

	booking.Status = StatusCancelled
	assert.False(t, booking.IsActive())
}

func TestBooking_MatchesLocationTuple(t *testing.T) {
	booking := activeBooking()
	sel := completeSelection()
	assert.True(t, booking.MatchesLocationTuple(&sel))

	// Изменение любого из шести полей кортежа снимает конфликт
	mutations := []func(*SelectionContext){
		func(s *SelectionContext) { s.AreaID = 99 },
		func(s *SelectionContext) { s.DistrictID = 99 },
		func(s *SelectionContext) { s.PropertyID = 99 },
		func(s *SelectionContext) { s.ResidenceTypeID = 99 },
		func(s *SelectionContext) { s.ApartmentNumber = "99" },
		func(s *SelectionContext) { s.SubServiceID = 99 },
	}
	for i, mutate := range mutations {
		changed := completeSelection()
		mutate(&changed)
		assert.False(t, booking.MatchesLocationTuple(&changed), "mutation %d", i)
	}
}

func TestBooking_SeedSelection(t *testing.T) {
	booking := activeBooking()
	seed := booking.SeedSelection()

	// Локация и параметры наследуются
	assert.Equal(t, booking.AreaID, seed.AreaID)
	assert.Equal(t, booking.ApartmentNumber, seed.ApartmentNumber)
	assert.Equal(t, booking.Frequency, seed.Frequency)
	assert.Equal(t, booking.DurationMonths, seed.DurationMonths)

	// Дата, бандл и слоты выбираются заново
	assert.True(t, seed.StartDate.IsZero())
	assert.False(t, seed.DateChosenByUser)
	assert.Zero(t, seed.BundleID)
	assert.Empty(t, seed.SelectedSlots)
}
