package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoordinatesRange(t *testing.T) {
	cases := []struct {
		name    string
		lat     float64
		lon     float64
		wantErr bool
	}{
		{"origin", 0, 0, false},
		{"corners", -90, 180, false},
		{"lat too high", 90.01, 0, true},
		{"lon too low", 0, -180.5, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := NewCoordinates(tc.lat, tc.lon)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []float64{tc.lon, tc.lat}, c.CoordsToList())
			assert.Equal(t, []float64{tc.lat, tc.lon}, c.LatLng())
		})
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode(" Local ")
	require.NoError(t, err)
	assert.Equal(t, ModeLocal, m)

	m, err = ParseMode("global")
	require.NoError(t, err)
	assert.Equal(t, ModeGlobal, m)

	_, err = ParseMode("sea")
	var invalid *InvalidModeError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "sea", invalid.Mode)
}

func TestParseEquipmentAge(t *testing.T) {
	age, ok := ParseEquipmentAge("old")
	assert.True(t, ok)
	assert.Equal(t, EquipmentOld, age)

	age, ok = ParseEquipmentAge("New")
	assert.True(t, ok)
	assert.Equal(t, EquipmentNew, age)

	_, ok = ParseEquipmentAge("refurbished")
	assert.False(t, ok)
}

func TestGeocodeErrorNoMatch(t *testing.T) {
	noMatch := &GeocodeError{Place: "Atlantis", Err: ErrNoGeocodeMatch}
	assert.True(t, noMatch.NoMatch())
	assert.ErrorIs(t, fmt.Errorf("resolve: %w", noMatch), ErrNoGeocodeMatch)

	down := &GeocodeError{Place: "Paris", Err: errors.New("connection refused")}
	assert.False(t, down.NoMatch())
}

func TestValidationErrorListsFieldsSorted(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{
		"pickup":       "is required",
		"manufacturer": "is required",
	}}
	assert.Equal(t, "invalid request: manufacturer: is required; pickup: is required", err.Error())
}
