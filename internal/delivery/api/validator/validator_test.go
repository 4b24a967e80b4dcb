package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	Lat float64 `json:"lat" validate:"latitude"`
}

type request struct {
	Name   string  `json:"name" validate:"required"`
	Count  int     `json:"count" validate:"gte=1"`
	Points []point `json:"points" validate:"min=1,dive"`
}

func TestValidator_Valid(t *testing.T) {
	v := New()

	err := v.Validate(&request{Name: "a", Count: 1, Points: []point{{Lat: 25}}})
	assert.NoError(t, err)
}

func TestValidator_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&request{Count: 0, Points: []point{{Lat: 91}}})
	require.Error(t, err)

	assert.Contains(t, err.Error(), "name is required")
	assert.Contains(t, err.Error(), "count must be at least 1")
	assert.Contains(t, err.Error(), "points[0].lat must be a valid latitude")
}
