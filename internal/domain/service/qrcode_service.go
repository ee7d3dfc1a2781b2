package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateCheckInQR generates a QR code image for event check-in.
	GenerateCheckInQR(eventID string) ([]byte, error)

	// ParseCheckInQR parses QR code data and returns the event ID.
	ParseCheckInQR(qrData string) (string, error)
}
