// Package expense contains use cases for vehicle and family expenses.
package expense

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/driver-ledger/backend/internal/application/adapter"
	"github.com/driver-ledger/backend/internal/domain/entity"
	domainerror "github.com/driver-ledger/backend/internal/domain/error"
)

// CreateExpenseInput represents the input for expense creation.
// An empty Scope defaults to vehicle.
type CreateExpenseInput struct {
	UserID      uuid.UUID
	Scope       entity.ExpenseScope
	Category    string
	Description string
	Amount      decimal.Decimal
	Date        time.Time
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	scope := input.Scope
	if scope == "" {
		scope = entity.ExpenseScopeVehicle
	}
	if !entity.IsValidExpenseScope(scope) {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseScope,
			"scope must be 'vehicle' or 'family'",
			domainerror.ErrInvalidExpenseScope,
		)
	}

	category := strings.ToLower(strings.TrimSpace(input.Category))
	if category == "" {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeMissingExpenseFields,
			"category is required",
			domainerror.ErrMissingExpenseCategory,
		)
	}

	if input.Amount.IsNegative() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount must not be negative",
			domainerror.ErrInvalidExpenseAmount,
		)
	}

	expense := entity.NewExpense(
		input.UserID,
		scope,
		category,
		strings.TrimSpace(input.Description),
		input.Amount,
		input.Date,
	)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return &CreateExpenseOutput{
		Expense: expense,
	}, nil
}
