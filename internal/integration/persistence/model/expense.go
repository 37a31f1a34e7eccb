package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/driver-ledger/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_expenses_user_date"`
	Scope       string          `gorm:"type:varchar(20);not null;default:'vehicle'"`
	Category    string          `gorm:"type:varchar(50);not null"`
	Description string          `gorm:"type:varchar(255)"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date        time.Time       `gorm:"not null;index:idx_expenses_user_date"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
	DeletedAt   gorm.DeletedAt  `gorm:"index"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:          m.ID,
		UserID:      m.UserID,
		Scope:       entity.ExpenseScope(m.Scope),
		Category:    m.Category,
		Description: m.Description,
		Amount:      m.Amount,
		Date:        m.Date,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(e *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:          e.ID,
		UserID:      e.UserID,
		Scope:       string(e.Scope),
		Category:    e.Category,
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
