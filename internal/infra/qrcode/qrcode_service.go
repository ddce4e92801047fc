package qrcode

import (
	"strings"

	"pharmaduty/config"
	"pharmaduty/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance from the qrcode config section.
func NewQRCodeService(cfg *config.Config) (service.QRCodeService, error) {
	qrCfg := cfg.QRCode
	if qrCfg == nil || strings.TrimSpace(qrCfg.BaseURL) == "" {
		return nil, errors.New("qrcode base URL must be provided")
	}

	return newQRCodeService(qrCfg.BaseURL, qrCfg.Size, qrCfg.ErrorCorrectionLevel), nil
}

func newQRCodeService(baseURL string, size int, errorCorrectionLevel string) *qrcodeService {
	return &qrcodeService{
		baseURL:              strings.TrimRight(baseURL, "/"),
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// PharmacyURL returns the public page encoded in a pharmacy's QR code.
func (s *qrcodeService) PharmacyURL(pharmacyID uuid.UUID) string {
	return s.baseURL + "/" + pharmacyID.String()
}

// GeneratePharmacyQR generates a PNG QR code pointing at the pharmacy's public page.
func (s *qrcodeService) GeneratePharmacyQR(pharmacyID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.PharmacyURL(pharmacyID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
