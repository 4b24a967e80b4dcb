package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders route sheets as QR codes for drivers
type QRCodeService interface {
	// GenerateRouteQR encodes a link to one route of a plan as a PNG image
	GenerateRouteQR(planID uuid.UUID, routeID int) ([]byte, error)

	// ParseRouteQR extracts the plan and route ids from scanned QR data
	ParseRouteQR(qrData string) (uuid.UUID, int, error)
}
