package expense

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driver-ledger/backend/internal/application/adapter/adaptertest"
	"github.com/driver-ledger/backend/internal/domain/entity"
	domainerror "github.com/driver-ledger/backend/internal/domain/error"
)

func expenseCode(t *testing.T, err error) domainerror.ExpenseErrorCode {
	t.Helper()
	var expenseErr *domainerror.ExpenseError
	require.True(t, errors.As(err, &expenseErr), "expected ExpenseError, got %v", err)
	return expenseErr.Code
}

func TestCreateExpense_DefaultsToVehicle(t *testing.T) {
	out, err := NewCreateExpenseUseCase(adaptertest.NewExpenseRepository()).Execute(context.Background(), CreateExpenseInput{
		UserID:   uuid.New(),
		Category: " Fuel ",
		Amount:   decimal.NewFromInt(120),
		Date:     time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ExpenseScopeVehicle, out.Expense.Scope)
	assert.Equal(t, entity.ExpenseCategoryFuel, out.Expense.Category)
}

func TestCreateExpense_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input CreateExpenseInput
		code  domainerror.ExpenseErrorCode
	}{
		{"bad scope", CreateExpenseInput{Scope: "office", Category: "fuel"}, domainerror.ErrCodeInvalidExpenseScope},
		{"missing category", CreateExpenseInput{Category: " "}, domainerror.ErrCodeMissingExpenseFields},
		{"negative amount", CreateExpenseInput{Category: "fuel", Amount: decimal.NewFromInt(-1)}, domainerror.ErrCodeInvalidExpenseAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCreateExpenseUseCase(adaptertest.NewExpenseRepository()).Execute(context.Background(), tt.input)
			assert.Equal(t, tt.code, expenseCode(t, err))
		})
	}
}

func TestListExpenses_ScopeAndTotal(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	repo := adaptertest.NewExpenseRepository()
	create := NewCreateExpenseUseCase(repo)

	for _, in := range []CreateExpenseInput{
		{UserID: userID, Scope: entity.ExpenseScopeVehicle, Category: "fuel", Amount: decimal.NewFromInt(100), Date: time.Now()},
		{UserID: userID, Scope: entity.ExpenseScopeVehicle, Category: "tolls", Amount: decimal.NewFromInt(20), Date: time.Now()},
		{UserID: userID, Scope: entity.ExpenseScopeFamily, Category: "food", Amount: decimal.NewFromInt(300), Date: time.Now()},
	} {
		_, err := create.Execute(ctx, in)
		require.NoError(t, err)
	}

	all, err := NewListExpensesUseCase(repo).Execute(ctx, ListExpensesInput{UserID: userID})
	require.NoError(t, err)
	assert.Len(t, all.Expenses, 3)
	assert.Equal(t, "420", all.Total.String())

	vehicle := entity.ExpenseScopeVehicle
	onlyVehicle, err := NewListExpensesUseCase(repo).Execute(ctx, ListExpensesInput{UserID: userID, Scope: &vehicle})
	require.NoError(t, err)
	assert.Len(t, onlyVehicle.Expenses, 2)
	assert.Equal(t, "120", onlyVehicle.Total.String())

	bad := entity.ExpenseScope("office")
	_, err = NewListExpensesUseCase(repo).Execute(ctx, ListExpensesInput{UserID: userID, Scope: &bad})
	assert.Equal(t, domainerror.ErrCodeInvalidExpenseScope, expenseCode(t, err))
}

func TestUpdateAndDeleteExpense(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	repo := adaptertest.NewExpenseRepository()
	created, err := NewCreateExpenseUseCase(repo).Execute(ctx, CreateExpenseInput{
		UserID: owner, Category: "maintenance", Amount: decimal.NewFromInt(80), Date: time.Now(),
	})
	require.NoError(t, err)
	id := created.Expense.ID

	family := entity.ExpenseScopeFamily
	out, err := NewUpdateExpenseUseCase(repo).Execute(ctx, UpdateExpenseInput{ExpenseID: id, UserID: owner, Scope: &family})
	require.NoError(t, err)
	assert.Equal(t, entity.ExpenseScopeFamily, out.Expense.Scope)
	assert.Equal(t, "maintenance", out.Expense.Category)

	_, err = NewUpdateExpenseUseCase(repo).Execute(ctx, UpdateExpenseInput{ExpenseID: id, UserID: uuid.New()})
	assert.Equal(t, domainerror.ErrCodeUnauthorizedExpenseAccess, expenseCode(t, err))

	require.NoError(t, NewDeleteExpenseUseCase(repo).Execute(ctx, DeleteExpenseInput{ExpenseID: id, UserID: owner}))

	err = NewDeleteExpenseUseCase(repo).Execute(ctx, DeleteExpenseInput{ExpenseID: id, UserID: owner})
	assert.Equal(t, domainerror.ErrCodeExpenseNotFound, expenseCode(t, err))
}
