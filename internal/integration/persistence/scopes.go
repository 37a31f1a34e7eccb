package persistence

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/driver-ledger/backend/internal/application/adapter"
)

// ownedBy restricts a query to one user's rows.
func ownedBy(userID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

// withinDates applies an inclusive date range on the date column.
func withinDates(dateRange adapter.DateRange) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if dateRange.Start != nil {
			db = db.Where("date >= ?", *dateRange.Start)
		}
		if dateRange.End != nil {
			db = db.Where("date <= ?", *dateRange.End)
		}
		return db
	}
}
