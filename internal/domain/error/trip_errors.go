package error

import "errors"

// Trip domain errors.
var (
	// ErrTripNotFound is returned when a trip does not exist.
	ErrTripNotFound = errors.New("trip not found")

	// ErrUnauthorizedTripAccess is returned when the trip belongs to another user.
	ErrUnauthorizedTripAccess = errors.New("unauthorized access to trip")

	// ErrInvalidTripAmount is returned for a negative fare.
	ErrInvalidTripAmount = errors.New("trip amount must not be negative")

	// ErrInvalidTripDistance is returned for a negative distance.
	ErrInvalidTripDistance = errors.New("trip distance must not be negative")

	// ErrInvalidTripDuration is returned for a negative duration.
	ErrInvalidTripDuration = errors.New("trip duration must not be negative")

	// ErrMissingTripPlatform is returned when the platform is empty.
	ErrMissingTripPlatform = errors.New("platform is required")
)

// TripErrorCode defines error codes for trip errors.
// Format: TRP-XXYYYY where XX is category and YYYY is specific error.
type TripErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeTripNotFound           TripErrorCode = "TRP-010001"
	ErrCodeUnauthorizedTripAccess TripErrorCode = "TRP-010002"
	ErrCodeInvalidTripAmount      TripErrorCode = "TRP-010003"
	ErrCodeInvalidTripDistance    TripErrorCode = "TRP-010004"
	ErrCodeInvalidTripDuration    TripErrorCode = "TRP-010005"
	ErrCodeMissingTripFields      TripErrorCode = "TRP-010006"

	// Internal errors (99XXXX)
	ErrCodeTripInternalError TripErrorCode = "TRP-990001"
)

// TripError represents a trip error with code and message.
type TripError struct {
	Code    TripErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TripError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TripError) Unwrap() error {
	return e.Err
}

// NewTripError creates a new TripError with the given code and message.
func NewTripError(code TripErrorCode, message string, err error) *TripError {
	return &TripError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
