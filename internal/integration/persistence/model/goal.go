// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/driver-ledger/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
// (user_id, year, month) is indexed but not unique.
type GoalModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;index:idx_goals_user_month"`
	Year              int       `gorm:"not null;index:idx_goals_user_month"`
	Month             int       `gorm:"not null;index:idx_goals_user_month"`
	DaysWorkedPerWeek *int
	Revenue           decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Profit            decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Expense           decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time       `gorm:"not null"`
	DeletedAt         gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:                m.ID,
		UserID:            m.UserID,
		Year:              m.Year,
		Month:             m.Month,
		DaysWorkedPerWeek: m.DaysWorkedPerWeek,
		Revenue:           m.Revenue,
		Profit:            m.Profit,
		Expense:           m.Expense,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	return &GoalModel{
		ID:                goal.ID,
		UserID:            goal.UserID,
		Year:              goal.Year,
		Month:             goal.Month,
		DaysWorkedPerWeek: goal.DaysWorkedPerWeek,
		Revenue:           goal.Revenue,
		Profit:            goal.Profit,
		Expense:           goal.Expense,
		CreatedAt:         goal.CreatedAt,
		UpdatedAt:         goal.UpdatedAt,
	}
}
