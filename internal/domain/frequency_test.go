package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrequency_SlotsRequired(t *testing.T) {
	cases := []struct {
		frequency Frequency
		want      int
	}{
		{FrequencyOneTime, 1},
		{FrequencyOnce, 1},
		{FrequencyTwice, 2},
		{FrequencyThree, 3},
		{FrequencySix, 6},
		{Frequency("weekly"), 0},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.frequency.SlotsRequired(), "frequency %q", tc.frequency)
	}
}

func TestFrequency_IsRecurring(t *testing.T) {
	assert.False(t, FrequencyOneTime.IsRecurring())
	assert.False(t, Frequency("").IsRecurring())
	assert.True(t, FrequencyOnce.IsRecurring())
	assert.True(t, FrequencySix.IsRecurring())
}

func TestFrequency_Validate(t *testing.T) {
	for _, f := range AllFrequencies {
		require.NoError(t, f.Validate())
	}
	require.Error(t, Frequency("weekly").Validate())
	require.Error(t, Frequency("").Validate())
}
