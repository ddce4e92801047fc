package impl

import (
	"strings"
	"unicode/utf8"

	domainerrors "pharmaduty/internal/domain/errors"
	"pharmaduty/internal/usecase"
)

const (
	minPharmacyNameRunes    = 2
	minPharmacyAddressRunes = 5
	minPharmacyCityRunes    = 2
	minPharmacyPhoneRunes   = 8
	minFeedbackRunes        = 10
	maxFeedbackRunes        = 1000
)

func coordinateFields(lat, lon float64) []domainerrors.FieldError {
	var fields []domainerrors.FieldError
	if lat < -90 || lat > 90 {
		fields = append(fields, domainerrors.FieldError{Field: "latitude", Reason: "must be between -90 and 90"})
	}
	if lon < -180 || lon > 180 {
		fields = append(fields, domainerrors.FieldError{Field: "longitude", Reason: "must be between -180 and 180"})
	}

	return fields
}

func minRunes(fields []domainerrors.FieldError, name, value string, minimum int) []domainerrors.FieldError {
	if utf8.RuneCountInString(strings.TrimSpace(value)) < minimum {
		if strings.TrimSpace(value) == "" {
			return append(fields, domainerrors.FieldError{Field: name, Reason: "required"})
		}

		return append(fields, domainerrors.FieldError{Field: name, Reason: "too short"})
	}

	return fields
}

// validatePharmacyInput applies the rules shared by registration and update.
func validatePharmacyInput(input *usecase.PharmacyInput) error {
	var fields []domainerrors.FieldError
	fields = minRunes(fields, "name", input.Name, minPharmacyNameRunes)
	fields = minRunes(fields, "address", input.Address, minPharmacyAddressRunes)
	fields = minRunes(fields, "city", input.City, minPharmacyCityRunes)
	fields = minRunes(fields, "phone", input.Phone, minPharmacyPhoneRunes)

	fields = append(fields, coordinateFields(input.Latitude, input.Longitude)...)

	if len(fields) > 0 {
		return domainerrors.NewValidationError(fields...)
	}

	return nil
}
