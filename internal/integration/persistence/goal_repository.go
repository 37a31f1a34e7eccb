// Package persistence implements repository interfaces for database operations.
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

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{
		db: db,
	}
}

// Create creates a new goal in the database.
func (r *goalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	goalModel := model.GoalFromEntity(goal)
	result := r.db.WithContext(ctx).Create(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a goal by its ID.
func (r *goalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	var goalModel model.GoalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindByUserID retrieves the user's goals, newest month first.
func (r *goalRepository) FindByUserID(ctx context.Context, userID uuid.UUID, year *int) ([]*entity.Goal, error) {
	query := r.db.WithContext(ctx).Scopes(ownedBy(userID))
	if year != nil {
		query = query.Where("year = ?", *year)
	}

	var goalModels []model.GoalModel
	result := query.Order("year DESC, month DESC, updated_at DESC").Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.Goal, len(goalModels))
	for i := range goalModels {
		goals[i] = goalModels[i].ToEntity()
	}
	return goals, nil
}

// FindByUserAndMonth retrieves the most recently updated goal for a month.
func (r *goalRepository) FindByUserAndMonth(ctx context.Context, userID uuid.UUID, year, month int) (*entity.Goal, error) {
	var goalModel model.GoalModel
	result := r.db.WithContext(ctx).
		Scopes(ownedBy(userID)).
		Where("year = ? AND month = ?", year, month).
		Order("updated_at DESC").
		First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// Update updates an existing goal in the database.
func (r *goalRepository) Update(ctx context.Context, goal *entity.Goal) error {
	goalModel := model.GoalFromEntity(goal)
	result := r.db.WithContext(ctx).Save(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a goal from the database (soft delete).
func (r *goalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.GoalModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
