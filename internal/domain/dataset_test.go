package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func obs(region, year, value string) Observation {
	return Observation{Key: []string{region, year}, Values: []string{value}}
}

func TestObservationAccessors(t *testing.T) {
	o := obs("0114", "2018", "4.2")
	assert.Equal(t, "0114", o.Region())
	assert.Equal(t, "2018", o.Year())
	assert.Equal(t, "4.2", o.Value())
	assert.False(t, o.Missing())

	assert.True(t, obs("0114", "2018", MissingValue).Missing())

	var empty Observation
	assert.Empty(t, empty.Region())
	assert.Empty(t, empty.Year())
	assert.Empty(t, empty.Value())
}

func TestDatasetYears(t *testing.T) {
	tests := []struct {
		name     string
		data     Dataset
		expected []string
	}{
		{
			name:     "deduplicated and sorted",
			data:     Dataset{Observations: []Observation{obs("01", "2019", "1"), obs("02", "2018", "1"), obs("01", "2018", "1")}},
			expected: []string{"2018", "2019"},
		},
		{
			name:     "string order not numeric order",
			data:     Dataset{Observations: []Observation{obs("01", "9", "1"), obs("01", "10", "1")}},
			expected: []string{"10", "9"},
		},
		{
			name:     "missing values still define a year",
			data:     Dataset{Observations: []Observation{obs("01", "2020", MissingValue)}},
			expected: []string{"2020"},
		},
		{
			name:     "empty dataset",
			data:     Dataset{},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.data.Years())
		})
	}
}

func TestDatasetValidate(t *testing.T) {
	t.Run("well formed", func(t *testing.T) {
		data := Dataset{Observations: []Observation{obs("01", "2019", "5.0")}}
		require.NoError(t, data.Validate())
	})

	t.Run("short key", func(t *testing.T) {
		data := Dataset{Observations: []Observation{{Key: []string{"01"}, Values: []string{"5.0"}}}}
		err := data.Validate()
		require.ErrorIs(t, err, ErrParse)
		assert.Contains(t, err.Error(), "key")
	})

	t.Run("no values", func(t *testing.T) {
		data := Dataset{Observations: []Observation{{Key: []string{"01", "2019"}}}}
		require.ErrorIs(t, data.Validate(), ErrParse)
	})
}

func TestDatasetMissingCount(t *testing.T) {
	data := Dataset{Observations: []Observation{
		obs("01", "2019", "5.0"),
		obs("02", "2019", MissingValue),
		obs("03", "2019", MissingValue),
	}}
	assert.Equal(t, 2, data.MissingCount())
}
