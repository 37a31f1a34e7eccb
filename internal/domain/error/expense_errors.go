package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense does not exist.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrUnauthorizedExpenseAccess is returned when the expense belongs to another user.
	ErrUnauthorizedExpenseAccess = errors.New("unauthorized access to expense")

	// ErrInvalidExpenseAmount is returned for a negative amount.
	ErrInvalidExpenseAmount = errors.New("expense amount must not be negative")

	// ErrInvalidExpenseScope is returned when scope is neither vehicle nor family.
	ErrInvalidExpenseScope = errors.New("expense scope must be vehicle or family")

	// ErrMissingExpenseCategory is returned when the category is empty.
	ErrMissingExpenseCategory = errors.New("category is required")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeExpenseNotFound           ExpenseErrorCode = "EXP-010001"
	ErrCodeUnauthorizedExpenseAccess ExpenseErrorCode = "EXP-010002"
	ErrCodeInvalidExpenseAmount      ExpenseErrorCode = "EXP-010003"
	ErrCodeInvalidExpenseScope       ExpenseErrorCode = "EXP-010004"
	ErrCodeMissingExpenseFields      ExpenseErrorCode = "EXP-010005"

	// Internal errors (99XXXX)
	ErrCodeExpenseInternalError ExpenseErrorCode = "EXP-990001"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
