package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/driver-ledger/backend/internal/domain/entity"
)

// ExpenseFilter defines filter options for listing expenses.
type ExpenseFilter struct {
	UserID    uuid.UUID
	DateRange DateRange
	Scope     *entity.ExpenseScope
}

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindByFilter retrieves expenses matching the filter, newest first.
	FindByFilter(ctx context.Context, filter ExpenseFilter) ([]*entity.Expense, error)

	// Update updates an existing expense in the database.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes an expense from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
