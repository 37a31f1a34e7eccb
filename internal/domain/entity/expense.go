// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseScope separates running costs of the car from household spending.
type ExpenseScope string

const (
	ExpenseScopeVehicle ExpenseScope = "vehicle"
	ExpenseScopeFamily  ExpenseScope = "family"
)

// Well-known expense categories. Category is free text; these are the ones the app suggests.
const (
	ExpenseCategoryFuel        = "fuel"
	ExpenseCategoryMaintenance = "maintenance"
	ExpenseCategoryInsurance   = "insurance"
	ExpenseCategoryRental      = "rental"
	ExpenseCategoryFinancing   = "financing"
	ExpenseCategoryTolls       = "tolls"
	ExpenseCategoryFood        = "food"
	ExpenseCategoryHousing     = "housing"
	ExpenseCategoryHealth      = "health"
	ExpenseCategoryEducation   = "education"
	ExpenseCategoryOther       = "other"
)

// Expense represents money spent by the driver.
type Expense struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Scope       ExpenseScope
	Category    string
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(
	userID uuid.UUID,
	scope ExpenseScope,
	category string,
	description string,
	amount decimal.Decimal,
	date time.Time,
) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:          uuid.New(),
		UserID:      userID,
		Scope:       scope,
		Category:    category,
		Description: description,
		Amount:      amount,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsValidExpenseScope validates the expense scope.
func IsValidExpenseScope(scope ExpenseScope) bool {
	return scope == ExpenseScopeVehicle || scope == ExpenseScopeFamily
}
