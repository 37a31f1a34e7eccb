package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/driver-ledger/backend/internal/application/adapter"
	"github.com/driver-ledger/backend/internal/domain/entity"
	domainerror "github.com/driver-ledger/backend/internal/domain/error"
)

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	UserID    uuid.UUID
	DateRange adapter.DateRange
	Scope     *entity.ExpenseScope
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses []*entity.Expense
	Total    decimal.Decimal
}

// ListExpensesUseCase handles listing expenses logic.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense listing.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	if input.Scope != nil && !entity.IsValidExpenseScope(*input.Scope) {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseScope,
			"scope must be 'vehicle' or 'family'",
			domainerror.ErrInvalidExpenseScope,
		)
	}

	expenses, err := uc.expenseRepo.FindByFilter(ctx, adapter.ExpenseFilter{
		UserID:    input.UserID,
		DateRange: input.DateRange,
		Scope:     input.Scope,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}

	return &ListExpensesOutput{
		Expenses: expenses,
		Total:    total,
	}, nil
}
