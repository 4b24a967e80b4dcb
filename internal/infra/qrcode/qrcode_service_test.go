package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "M"},
		{"High error correction", "Q"},
		{"Highest error correction", "H"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(256, tt.errorCorrectionLevel, "")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateRouteQR(t *testing.T) {
	sizes := []int{128, 256, 512}

	for _, size := range sizes {
		service := NewQRCodeService(size, "M", "https://fleet.example.com/")

		qrBytes, err := service.GenerateRouteQR(uuid.New(), 2)
		require.NoError(t, err)
		require.Greater(t, len(qrBytes), 4)

		// PNG magic number
		assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
	}
}

func TestQRCodeService_ParseRouteQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "")
	planID := uuid.New()

	jsonData, err := json.Marshal(RouteSheetData{Type: routeSheetType, PlanID: planID.String(), RouteID: 3})
	require.NoError(t, err)

	parsedPlan, parsedRoute, err := service.ParseRouteQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, planID, parsedPlan)
	assert.Equal(t, 3, parsedRoute)
}

func TestQRCodeService_ParseRouteQR_Invalid(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"invalid json", "invalid json", "failed to unmarshal QR code data"},
		{"wrong type", `{"type":"subscription","plan_id":"` + uuid.NewString() + `","route_id":1}`, "invalid QR code type"},
		{"bad uuid", `{"type":"route_sheet","plan_id":"nope","route_id":1}`, "failed to parse plan ID"},
		{"zero route", `{"type":"route_sheet","plan_id":"` + uuid.NewString() + `","route_id":0}`, "invalid route ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := service.ParseRouteQR(tt.data)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
