package dto

import (
	"time"

	"github.com/driver-ledger/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Year              int     `json:"year" binding:"required"`
	Month             int     `json:"month" binding:"required"`
	DaysWorkedPerWeek *int    `json:"days_worked_per_week,omitempty"`
	Revenue           float64 `json:"revenue"`
	Profit            float64 `json:"profit"`
	Expense           float64 `json:"expense"`
}

// UpdateGoalRequest represents the request body for goal update.
type UpdateGoalRequest struct {
	Year              *int     `json:"year,omitempty"`
	Month             *int     `json:"month,omitempty"`
	DaysWorkedPerWeek *int     `json:"days_worked_per_week,omitempty"`
	ClearDaysWorked   bool     `json:"clear_days_worked_per_week,omitempty"`
	Revenue           *float64 `json:"revenue,omitempty"`
	Profit            *float64 `json:"profit,omitempty"`
	Expense           *float64 `json:"expense,omitempty"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID                string    `json:"id"`
	Year              int       `json:"year"`
	Month             int       `json:"month"`
	DaysWorkedPerWeek *int      `json:"days_worked_per_week"`
	Revenue           string    `json:"revenue"`
	Profit            string    `json:"profit"`
	Expense           string    `json:"expense"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	return GoalResponse{
		ID:                g.ID.String(),
		Year:              g.Year,
		Month:             g.Month,
		DaysWorkedPerWeek: g.DaysWorkedPerWeek,
		Revenue:           Money(g.Revenue),
		Profit:            Money(g.Profit),
		Expense:           Money(g.Expense),
		CreatedAt:         g.CreatedAt,
		UpdatedAt:         g.UpdatedAt,
	}
}

// ToGoalListResponse converts a list of goals to a GoalListResponse DTO.
func ToGoalListResponse(goals []*entity.Goal) GoalListResponse {
	response := GoalListResponse{Goals: make([]GoalResponse, len(goals))}
	for i, g := range goals {
		response.Goals[i] = ToGoalResponse(g)
	}
	return response
}
