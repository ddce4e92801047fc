package errors

import (
	"fmt"
	"net/http"
	"strings"

	"pharmaduty/internal/errors"

	"github.com/google/uuid"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// PayloadError is implemented by errors that carry structured details for the client.
type PayloadError interface {
	error
	Payload() any
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying detailed error information.
// The copy still matches the original through errors.Is.
func (e *BaseError) WithDetails(details string) error {
	return &detailedError{
		BaseError: &BaseError{
			httpCode:  e.httpCode,
			errorCode: e.errorCode,
			message:   e.message,
			details:   details,
		},
		origin: e,
	}
}

type detailedError struct {
	*BaseError
	origin *BaseError
}

func (e *detailedError) Unwrap() error {
	return e.origin
}

// Predefined error types
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Les données envoyées sont invalides",
		"",
	)

	ErrDutyOverlap = NewBaseError(
		http.StatusConflict,
		"DUTY_PERIOD_OVERLAP",
		"Cette période chevauche une garde existante",
		"",
	)

	ErrConcurrencyConflict = NewBaseError(
		http.StatusConflict,
		"CONCURRENCY_CONFLICT",
		"Une modification concurrente a eu lieu, veuillez réessayer",
		"",
	)

	// Not-found family
	ErrPharmacyNotFound = NewBaseError(
		http.StatusNotFound,
		"PHARMACY_NOT_FOUND",
		"Pharmacie non trouvée",
		"",
	)

	ErrDutyPeriodNotFound = NewBaseError(
		http.StatusNotFound,
		"DUTY_PERIOD_NOT_FOUND",
		"Période de garde non trouvée",
		"",
	)

	ErrRatingNotFound = NewBaseError(
		http.StatusNotFound,
		"RATING_NOT_FOUND",
		"Avis non trouvé",
		"",
	)

	ErrFeedbackNotFound = NewBaseError(
		http.StatusNotFound,
		"FEEDBACK_NOT_FOUND",
		"Signalement non trouvé",
		"",
	)

	ErrPharmacyAlreadyExists = NewBaseError(
		http.StatusConflict,
		"PHARMACY_ALREADY_EXISTS",
		"Vous avez déjà une pharmacie enregistrée",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentification requise",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Accès refusé",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Échec de la transaction",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Erreur interne du serveur",
		"",
	)
)

// FieldError describes why a single input field was rejected.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError is ErrValidationFailed with field-level details.
type ValidationError struct {
	*BaseError
	Fields []FieldError
}

// NewValidationError builds a validation error for the given fields.
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{BaseError: ErrValidationFailed, Fields: fields}
}

// Invalid is a shorthand for a single-field validation error.
func Invalid(field, reason string) *ValidationError {
	return NewValidationError(FieldError{Field: field, Reason: reason})
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return e.BaseError
}

// Payload returns the rejected fields.
func (e *ValidationError) Payload() any {
	return e.Fields
}

// OverlapError is ErrDutyOverlap carrying the ids of the conflicting periods.
type OverlapError struct {
	*BaseError
	PharmacyID  uuid.UUID
	ConflictIDs []uuid.UUID
}

// NewOverlapError builds an overlap error for pharmacyID.
func NewOverlapError(pharmacyID uuid.UUID, conflictIDs ...uuid.UUID) *OverlapError {
	return &OverlapError{BaseError: ErrDutyOverlap, PharmacyID: pharmacyID, ConflictIDs: conflictIDs}
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("duty period overlaps %d existing period(s) of pharmacy %s", len(e.ConflictIDs), e.PharmacyID)
}

func (e *OverlapError) Unwrap() error {
	return e.BaseError
}

// Payload returns the conflicting period ids.
func (e *OverlapError) Payload() any {
	return map[string]any{"conflictingPeriodIds": e.ConflictIDs}
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed: "+e.details).Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Erreur lors de l'accès aux données"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
