package dto

import (
	"time"

	"github.com/driver-ledger/backend/internal/domain/entity"
)

// CreateTripRequest represents the request body for trip creation.
type CreateTripRequest struct {
	Date            string  `json:"date" binding:"required"`
	Platform        string  `json:"platform" binding:"required,min=1,max=50"`
	Amount          float64 `json:"amount"`
	Distance        float64 `json:"distance"`
	DurationMinutes int     `json:"duration_minutes"`
}

// UpdateTripRequest represents the request body for trip update.
type UpdateTripRequest struct {
	Date            *string  `json:"date,omitempty"`
	Platform        *string  `json:"platform,omitempty" binding:"omitempty,min=1,max=50"`
	Amount          *float64 `json:"amount,omitempty"`
	Distance        *float64 `json:"distance,omitempty"`
	DurationMinutes *int     `json:"duration_minutes,omitempty"`
}

// TripResponse represents a single trip in API responses.
type TripResponse struct {
	ID              string    `json:"id"`
	Date            string    `json:"date"`
	Platform        string    `json:"platform"`
	Amount          string    `json:"amount"`
	Distance        string    `json:"distance"`
	DurationMinutes int       `json:"duration_minutes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TripListResponse represents the response for listing trips.
type TripListResponse struct {
	Trips []TripResponse `json:"trips"`
}

// ToTripResponse converts a domain Trip entity to a TripResponse DTO.
func ToTripResponse(t *entity.Trip) TripResponse {
	return TripResponse{
		ID:              t.ID.String(),
		Date:            FormatDate(t.Date),
		Platform:        t.Platform,
		Amount:          Money(t.Amount),
		Distance:        Money(t.Distance),
		DurationMinutes: t.DurationMinutes,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

// ToTripListResponse converts a list of trips to a TripListResponse DTO.
func ToTripListResponse(trips []*entity.Trip) TripListResponse {
	response := TripListResponse{Trips: make([]TripResponse, len(trips))}
	for i, t := range trips {
		response.Trips[i] = ToTripResponse(t)
	}
	return response
}
