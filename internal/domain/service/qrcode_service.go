// Package service defines interfaces for infrastructure services consumed
// by the delivery layer.
package service

// QRCodeService generates QR codes for printed material (table cards that
// point dine-in customers at the online menu).
type QRCodeService interface {
	// GenerateMenuQR returns a PNG image encoding the menu page URL.
	GenerateMenuQR() ([]byte, error)
}
