package expense

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/driver-ledger/backend/internal/application/adapter"
	"github.com/driver-ledger/backend/internal/domain/entity"
	domainerror "github.com/driver-ledger/backend/internal/domain/error"
)

// UpdateExpenseInput represents the input for expense update. Nil fields are left unchanged.
type UpdateExpenseInput struct {
	ExpenseID   uuid.UUID
	UserID      uuid.UUID
	Scope       *entity.ExpenseScope
	Category    *string
	Description *string
	Amount      *decimal.Decimal
	Date        *time.Time
}

// UpdateExpenseOutput represents the output of expense update.
type UpdateExpenseOutput struct {
	Expense *entity.Expense
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	expense, err := findOwnedExpense(ctx, uc.expenseRepo, input.ExpenseID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Scope != nil {
		if !entity.IsValidExpenseScope(*input.Scope) {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidExpenseScope,
				"scope must be 'vehicle' or 'family'",
				domainerror.ErrInvalidExpenseScope,
			)
		}
		expense.Scope = *input.Scope
	}
	if input.Category != nil {
		category := strings.ToLower(strings.TrimSpace(*input.Category))
		if category == "" {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeMissingExpenseFields,
				"category is required",
				domainerror.ErrMissingExpenseCategory,
			)
		}
		expense.Category = category
	}
	if input.Description != nil {
		expense.Description = strings.TrimSpace(*input.Description)
	}
	if input.Amount != nil {
		if input.Amount.IsNegative() {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidExpenseAmount,
				"amount must not be negative",
				domainerror.ErrInvalidExpenseAmount,
			)
		}
		expense.Amount = *input.Amount
	}
	if input.Date != nil {
		expense.Date = *input.Date
	}

	expense.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return &UpdateExpenseOutput{
		Expense: expense,
	}, nil
}

func findOwnedExpense(ctx context.Context, repo adapter.ExpenseRepository, expenseID, userID uuid.UUID) (*entity.Expense, error) {
	expense, err := repo.FindByID(ctx, expenseID)
	if err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseNotFound,
				"expense not found",
				domainerror.ErrExpenseNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}

	if expense.UserID != userID {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeUnauthorizedExpenseAccess,
			"not authorized to access this expense",
			domainerror.ErrUnauthorizedExpenseAccess,
		)
	}

	return expense, nil
}
