package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"fleetplan/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const routeSheetType = "route_sheet"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// RouteSheetData is the payload encoded in a route QR code
type RouteSheetData struct {
	Type    string `json:"type"`
	PlanID  string `json:"plan_id"`
	RouteID int    `json:"route_id"`
	URL     string `json:"url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance. baseURL, when set,
// is used to embed a link to the plan's GeoJSON in the payload.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimSuffix(baseURL, "/"),
	}
}

// GenerateRouteQR renders a PNG a driver can scan to open one route of a plan
func (s *qrcodeService) GenerateRouteQR(planID uuid.UUID, routeID int) ([]byte, error) {
	data := RouteSheetData{
		Type:    routeSheetType,
		PlanID:  planID.String(),
		RouteID: routeID,
	}
	if s.baseURL != "" {
		data.URL = fmt.Sprintf("%s/api/v1/plans/%s/routes.geojson", s.baseURL, planID)
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseRouteQR parses scanned QR data back into plan and route ids
func (s *qrcodeService) ParseRouteQR(qrData string) (uuid.UUID, int, error) {
	var data RouteSheetData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, 0, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != routeSheetType {
		return uuid.Nil, 0, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	planID, err := uuid.Parse(data.PlanID)
	if err != nil {
		return uuid.Nil, 0, fmt.Errorf("failed to parse plan ID: %w", err)
	}
	if data.RouteID < 1 {
		return uuid.Nil, 0, fmt.Errorf("invalid route ID: %d", data.RouteID)
	}

	return planID, data.RouteID, nil
}
