package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GeneratePharmacyQR returns a PNG QR code linking to the pharmacy's public page.
	GeneratePharmacyQR(pharmacyID uuid.UUID) ([]byte, error)
}
