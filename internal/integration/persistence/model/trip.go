package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/driver-ledger/backend/internal/domain/entity"
)

// TripModel represents the trips table in the database.
type TripModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index:idx_trips_user_date"`
	Platform        string          `gorm:"type:varchar(50);not null"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Distance        decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	DurationMinutes int             `gorm:"not null;default:0"`
	Date            time.Time       `gorm:"not null;index:idx_trips_user_date"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`
	DeletedAt       gorm.DeletedAt  `gorm:"index"`
}

// TableName returns the table name for the TripModel.
func (TripModel) TableName() string {
	return "trips"
}

// ToEntity converts a TripModel to a domain Trip entity.
func (m *TripModel) ToEntity() *entity.Trip {
	return &entity.Trip{
		ID:              m.ID,
		UserID:          m.UserID,
		Platform:        m.Platform,
		Amount:          m.Amount,
		Distance:        m.Distance,
		DurationMinutes: m.DurationMinutes,
		Date:            m.Date,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// TripFromEntity creates a TripModel from a domain Trip entity.
func TripFromEntity(t *entity.Trip) *TripModel {
	return &TripModel{
		ID:              t.ID,
		UserID:          t.UserID,
		Platform:        t.Platform,
		Amount:          t.Amount,
		Distance:        t.Distance,
		DurationMinutes: t.DurationMinutes,
		Date:            t.Date,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}
