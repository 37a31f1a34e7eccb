// Package trip contains use cases for individual rides and deliveries.
package trip

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/driver-ledger/backend/internal/application/adapter"
	"github.com/driver-ledger/backend/internal/domain/entity"
	domainerror "github.com/driver-ledger/backend/internal/domain/error"
)

// CreateTripInput represents the input for trip creation.
type CreateTripInput struct {
	UserID          uuid.UUID
	Platform        string
	Amount          decimal.Decimal
	Distance        decimal.Decimal
	DurationMinutes int
	Date            time.Time
}

// CreateTripOutput represents the output of trip creation.
type CreateTripOutput struct {
	Trip *entity.Trip
}

// CreateTripUseCase handles trip creation logic.
type CreateTripUseCase struct {
	tripRepo adapter.TripRepository
}

// NewCreateTripUseCase creates a new CreateTripUseCase instance.
func NewCreateTripUseCase(tripRepo adapter.TripRepository) *CreateTripUseCase {
	return &CreateTripUseCase{
		tripRepo: tripRepo,
	}
}

// Execute performs the trip creation.
func (uc *CreateTripUseCase) Execute(ctx context.Context, input CreateTripInput) (*CreateTripOutput, error) {
	platform := strings.TrimSpace(input.Platform)
	if platform == "" {
		return nil, domainerror.NewTripError(
			domainerror.ErrCodeMissingTripFields,
			"platform is required",
			domainerror.ErrMissingTripPlatform,
		)
	}

	if err := validateTripFigures(input.Amount, input.Distance, input.DurationMinutes); err != nil {
		return nil, err
	}

	trip := entity.NewTrip(input.UserID, platform, input.Amount, input.Distance, input.DurationMinutes, input.Date)

	if err := uc.tripRepo.Create(ctx, trip); err != nil {
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}

	return &CreateTripOutput{
		Trip: trip,
	}, nil
}

func validateTripFigures(amount, distance decimal.Decimal, durationMinutes int) error {
	switch {
	case amount.IsNegative():
		return domainerror.NewTripError(
			domainerror.ErrCodeInvalidTripAmount,
			"amount must not be negative",
			domainerror.ErrInvalidTripAmount,
		)
	case distance.IsNegative():
		return domainerror.NewTripError(
			domainerror.ErrCodeInvalidTripDistance,
			"distance must not be negative",
			domainerror.ErrInvalidTripDistance,
		)
	case durationMinutes < 0:
		return domainerror.NewTripError(
			domainerror.ErrCodeInvalidTripDuration,
			"duration must not be negative",
			domainerror.ErrInvalidTripDuration,
		)
	}
	return nil
}
