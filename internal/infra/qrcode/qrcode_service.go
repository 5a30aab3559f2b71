// Package qrcode generates the printable QR code that links dine-in
// customers to the online menu.
package qrcode

import (
	"fmt"
	"strings"

	"lanche/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	menuURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance pointing at the
// menu page of the given base URL.
func NewQRCodeService(baseURL string, size int, errorCorrectionLevel string) service.QRCodeService {
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
		menuURL:              strings.TrimRight(baseURL, "/") + "/menu",
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateMenuQR returns a PNG image encoding the menu page URL.
func (s *qrcodeService) GenerateMenuQR() ([]byte, error) {
	png, err := qrcode.Encode(s.menuURL, s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate menu QR code: %w", err)
	}

	return png, nil
}
