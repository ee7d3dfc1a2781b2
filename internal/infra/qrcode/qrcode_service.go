package qrcode

import (
	"encoding/json"
	"fmt"

	"clubhub/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	EventID string `json:"event_id"`
	Type    string `json:"type"`
}

const checkInType = "event_checkin"

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
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
	}
}

// GenerateCheckInQR generates a QR code for event check-in
func (s *qrcodeService) GenerateCheckInQR(eventID string) ([]byte, error) {
	// Create QR code data
	data := QRCodeData{
		EventID: eventID,
		Type:    checkInType,
	}

	// Convert to JSON
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	// Generate QR code
	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseCheckInQR parses QR code data and returns the event ID
func (s *qrcodeService) ParseCheckInQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != checkInType {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.EventID == "" {
		return "", fmt.Errorf("QR code missing event ID")
	}

	return data.EventID, nil
}
