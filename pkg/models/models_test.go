package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRideOptionPrice(t *testing.T) {
	prices := map[string]string{}
	for _, r := range DefaultRideOptions() {
		prices[r.ID] = r.Price()
	}
	assert.Equal(t, map[string]string{
		"standard":  "R25.50",
		"campus":    "R12.75",
		"group":     "R38.25",
		"latenight": "R28.50",
		"express":   "R35.00",
	}, prices)
}

func TestParseScreen(t *testing.T) {
	s, ok := ParseScreen("tracking")
	require.True(t, ok)
	assert.Equal(t, ScreenTracking, s)

	_, ok = ParseScreen("settings")
	assert.False(t, ok)
}

func TestSignupFormNextEmpty(t *testing.T) {
	var f SignupForm
	field, ok := f.NextEmpty()
	require.True(t, ok)
	assert.Equal(t, FieldFirstName, field)

	for _, fl := range SignupFields {
		require.True(t, f.Set(fl, "x"))
	}
	_, ok = f.NextEmpty()
	assert.False(t, ok)
	assert.False(t, f.Set("nickname", "x"))
}

func TestCatalogLookups(t *testing.T) {
	c := DefaultCatalog()
	assert.Len(t, c.Areas, 9)

	r, ok := c.RideByID("express")
	require.True(t, ok)
	assert.Equal(t, "Express Ride", r.Name)

	_, ok = c.RideByID("helicopter")
	assert.False(t, ok)

	inst, ok := c.InstitutionByID("wits")
	require.True(t, ok)
	assert.Equal(t, "University of the Witwatersrand", inst.Name)
}
