package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrUnauthorizedGoalAccess is returned when user is not authorized to access a goal.
	ErrUnauthorizedGoalAccess = errors.New("unauthorized access to goal")

	// ErrInvalidGoalPeriod is returned when the goal year or month is out of range.
	ErrInvalidGoalPeriod = errors.New("invalid goal period")

	// ErrInvalidGoalAmount is returned when a target amount is negative.
	ErrInvalidGoalAmount = errors.New("goal amounts must not be negative")

	// ErrInvalidDaysWorkedPerWeek is returned when days worked per week is outside 1..7.
	ErrInvalidDaysWorkedPerWeek = errors.New("days worked per week must be between 1 and 7")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound             GoalErrorCode = "GOL-010001"
	ErrCodeInvalidGoalAmount        GoalErrorCode = "GOL-010003"
	ErrCodeUnauthorizedGoalAccess   GoalErrorCode = "GOL-010006"
	ErrCodeInvalidGoalPeriod        GoalErrorCode = "GOL-010007"
	ErrCodeMissingGoalFields        GoalErrorCode = "GOL-010008"
	ErrCodeInvalidDaysWorkedPerWeek GoalErrorCode = "GOL-010009"

	// Internal errors (99XXXX)
	ErrCodeGoalInternalError GoalErrorCode = "GOL-990001"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
