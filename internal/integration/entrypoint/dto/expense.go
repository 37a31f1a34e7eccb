package dto

import (
	"time"

	"github.com/driver-ledger/backend/internal/application/usecase/expense"
	"github.com/driver-ledger/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	Date        string  `json:"date" binding:"required"`
	Scope       string  `json:"scope,omitempty"`
	Category    string  `json:"category" binding:"required,min=1,max=50"`
	Description string  `json:"description" binding:"max=255"`
	Amount      float64 `json:"amount"`
}

// UpdateExpenseRequest represents the request body for expense update.
type UpdateExpenseRequest struct {
	Date        *string  `json:"date,omitempty"`
	Scope       *string  `json:"scope,omitempty"`
	Category    *string  `json:"category,omitempty" binding:"omitempty,min=1,max=50"`
	Description *string  `json:"description,omitempty" binding:"omitempty,max=255"`
	Amount      *float64 `json:"amount,omitempty"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Scope       string    `json:"scope"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    string            `json:"total"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID.String(),
		Date:        FormatDate(e.Date),
		Scope:       string(e.Scope),
		Category:    e.Category,
		Description: e.Description,
		Amount:      Money(e.Amount),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ToExpenseListResponse converts a ListExpensesOutput to an ExpenseListResponse DTO.
func ToExpenseListResponse(output *expense.ListExpensesOutput) ExpenseListResponse {
	response := ExpenseListResponse{
		Expenses: make([]ExpenseResponse, len(output.Expenses)),
		Total:    Money(output.Total),
	}
	for i, e := range output.Expenses {
		response.Expenses[i] = ToExpenseResponse(e)
	}
	return response
}
