package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/driver-ledger/backend/internal/domain/entity"
)

// EntryModel represents the entries table in the database.
type EntryModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_entries_user_date"`
	Date        time.Time       `gorm:"not null;index:idx_entries_user_date"`
	Source      string          `gorm:"type:varchar(50);not null"`
	Value       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TripCount   int             `gorm:"not null;default:0"`
	KmDriven    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	HoursWorked string          `gorm:"type:varchar(8)"`
	Notes       *string         `gorm:"type:text"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
	DeletedAt   gorm.DeletedAt  `gorm:"index"`
}

// TableName returns the table name for the EntryModel.
func (EntryModel) TableName() string {
	return "entries"
}

// ToEntity converts an EntryModel to a domain Entry entity.
func (m *EntryModel) ToEntity() *entity.Entry {
	return &entity.Entry{
		ID:          m.ID,
		UserID:      m.UserID,
		Date:        m.Date,
		Source:      m.Source,
		Value:       m.Value,
		TripCount:   m.TripCount,
		KmDriven:    m.KmDriven,
		HoursWorked: m.HoursWorked,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// EntryFromEntity creates an EntryModel from a domain Entry entity.
func EntryFromEntity(e *entity.Entry) *EntryModel {
	return &EntryModel{
		ID:          e.ID,
		UserID:      e.UserID,
		Date:        e.Date,
		Source:      e.Source,
		Value:       e.Value,
		TripCount:   e.TripCount,
		KmDriven:    e.KmDriven,
		HoursWorked: e.HoursWorked,
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
