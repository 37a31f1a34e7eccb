package error

import "errors"

// Dashboard domain errors.
var (
	// ErrInvalidPeriodKind is returned when the period is not day, week, month or year.
	ErrInvalidPeriodKind = errors.New("period must be: day, week, month, or year")

	// ErrInvalidDateFormat is returned when date format is invalid.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidTrendYear is returned when the trend year is missing or out of range.
	ErrInvalidTrendYear = errors.New("invalid year")

	// ErrInvalidMonthsBack is returned when the weeks picker range is out of bounds.
	ErrInvalidMonthsBack = errors.New("months must be between 0 and 24")
)

// DashboardErrorCode defines error codes for dashboard errors.
// Format: DSH-XXYYYY where XX is category and YYYY is specific error.
type DashboardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPeriodKind DashboardErrorCode = "DSH-010004"
	ErrCodeInvalidDateFormat DashboardErrorCode = "DSH-010006"
	ErrCodeInvalidTrendYear  DashboardErrorCode = "DSH-010007"
	ErrCodeInvalidMonthsBack DashboardErrorCode = "DSH-010008"

	// Internal errors (99XXXX)
	ErrCodeDashboardInternalError DashboardErrorCode = "DSH-990001"
)

// DashboardError represents a dashboard error with code and message.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DashboardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
