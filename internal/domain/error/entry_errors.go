package error

import "errors"

// Entry domain errors.
var (
	// ErrEntryNotFound is returned when an entry does not exist.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrUnauthorizedEntryAccess is returned when the entry belongs to another user.
	ErrUnauthorizedEntryAccess = errors.New("unauthorized access to entry")

	// ErrInvalidEntryValue is returned for a negative revenue value.
	ErrInvalidEntryValue = errors.New("entry value must not be negative")

	// ErrInvalidTripCount is returned for a negative trip count.
	ErrInvalidTripCount = errors.New("trip count must not be negative")

	// ErrInvalidKmDriven is returned for a negative distance.
	ErrInvalidKmDriven = errors.New("km driven must not be negative")

	// ErrInvalidHoursWorked is returned when hours worked is not in HH:MM form.
	ErrInvalidHoursWorked = errors.New("hours worked must be in HH:MM format")

	// ErrMissingEntrySource is returned when the platform is empty.
	ErrMissingEntrySource = errors.New("source is required")
)

// EntryErrorCode defines error codes for entry errors.
// Format: ENT-XXYYYY where XX is category and YYYY is specific error.
type EntryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEntryNotFound           EntryErrorCode = "ENT-010001"
	ErrCodeUnauthorizedEntryAccess EntryErrorCode = "ENT-010002"
	ErrCodeInvalidEntryValue       EntryErrorCode = "ENT-010003"
	ErrCodeInvalidTripCount        EntryErrorCode = "ENT-010004"
	ErrCodeInvalidKmDriven         EntryErrorCode = "ENT-010005"
	ErrCodeInvalidHoursWorked      EntryErrorCode = "ENT-010006"
	ErrCodeMissingEntryFields      EntryErrorCode = "ENT-010007"

	// Internal errors (99XXXX)
	ErrCodeEntryInternalError EntryErrorCode = "ENT-990001"
)

// EntryError represents an entry error with code and message.
type EntryError struct {
	Code    EntryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EntryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EntryError) Unwrap() error {
	return e.Err
}

// NewEntryError creates a new EntryError with the given code and message.
func NewEntryError(code EntryErrorCode, message string, err error) *EntryError {
	return &EntryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
