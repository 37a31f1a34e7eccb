package dto

import (
	"time"

	"github.com/driver-ledger/backend/internal/domain/entity"
)

// CreateEntryRequest represents the request body for entry creation.
type CreateEntryRequest struct {
	Date        string  `json:"date" binding:"required"`
	Source      string  `json:"source" binding:"required,min=1,max=50"`
	Value       float64 `json:"value"`
	TripCount   int     `json:"trip_count"`
	KmDriven    float64 `json:"km_driven"`
	HoursWorked string  `json:"hours_worked,omitempty"`
	Notes       *string `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// UpdateEntryRequest represents the request body for entry update.
type UpdateEntryRequest struct {
	Date        *string  `json:"date,omitempty"`
	Source      *string  `json:"source,omitempty" binding:"omitempty,min=1,max=50"`
	Value       *float64 `json:"value,omitempty"`
	TripCount   *int     `json:"trip_count,omitempty"`
	KmDriven    *float64 `json:"km_driven,omitempty"`
	HoursWorked *string  `json:"hours_worked,omitempty"`
	Notes       *string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// EntryResponse represents a single entry in API responses.
type EntryResponse struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Source      string    `json:"source"`
	Value       string    `json:"value"`
	TripCount   int       `json:"trip_count"`
	KmDriven    string    `json:"km_driven"`
	HoursWorked string    `json:"hours_worked"`
	Notes       *string   `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EntryListResponse represents the response for listing entries.
type EntryListResponse struct {
	Entries []EntryResponse `json:"entries"`
}

// ToEntryResponse converts a domain Entry entity to an EntryResponse DTO.
func ToEntryResponse(e *entity.Entry) EntryResponse {
	return EntryResponse{
		ID:          e.ID.String(),
		Date:        FormatDate(e.Date),
		Source:      e.Source,
		Value:       Money(e.Value),
		TripCount:   e.TripCount,
		KmDriven:    Money(e.KmDriven),
		HoursWorked: e.HoursWorked,
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ToEntryListResponse converts a list of entries to an EntryListResponse DTO.
func ToEntryListResponse(entries []*entity.Entry) EntryListResponse {
	response := EntryListResponse{Entries: make([]EntryResponse, len(entries))}
	for i, e := range entries {
		response.Entries[i] = ToEntryResponse(e)
	}
	return response
}
