package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/driver-ledger/backend/internal/application/adapter"
	"github.com/driver-ledger/backend/internal/domain/entity"
	domainerror "github.com/driver-ledger/backend/internal/domain/error"
	"github.com/driver-ledger/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create creates a new expense in the database.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	return r.db.WithContext(ctx).Create(model.ExpenseFromEntity(expense)).Error
}

// FindByID retrieves an expense by its ID.
func (r *expenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	var expenseModel model.ExpenseModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&expenseModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrExpenseNotFound
		}
		return nil, err
	}
	return expenseModel.ToEntity(), nil
}

// FindByFilter retrieves expenses matching the filter, newest first.
func (r *expenseRepository) FindByFilter(ctx context.Context, filter adapter.ExpenseFilter) ([]*entity.Expense, error) {
	query := r.db.WithContext(ctx).Scopes(ownedBy(filter.UserID), withinDates(filter.DateRange))
	if filter.Scope != nil {
		query = query.Where("scope = ?", string(*filter.Scope))
	}

	var expenseModels []model.ExpenseModel
	if err := query.Order("date DESC").Find(&expenseModels).Error; err != nil {
		return nil, err
	}

	expenses := make([]*entity.Expense, len(expenseModels))
	for i := range expenseModels {
		expenses[i] = expenseModels[i].ToEntity()
	}
	return expenses, nil
}

// Update updates an existing expense in the database.
func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	return r.db.WithContext(ctx).Save(model.ExpenseFromEntity(expense)).Error
}

// Delete removes an expense from the database (soft delete).
func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ExpenseModel{}, "id = ?", id).Error
}
