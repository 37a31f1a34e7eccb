package trip

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/driver-ledger/backend/internal/application/adapter"
	"github.com/driver-ledger/backend/internal/domain/entity"
	domainerror "github.com/driver-ledger/backend/internal/domain/error"
)

// UpdateTripInput represents the input for trip update. Nil fields are left unchanged.
type UpdateTripInput struct {
	TripID          uuid.UUID
	UserID          uuid.UUID
	Platform        *string
	Amount          *decimal.Decimal
	Distance        *decimal.Decimal
	DurationMinutes *int
	Date            *time.Time
}

// UpdateTripOutput represents the output of trip update.
type UpdateTripOutput struct {
	Trip *entity.Trip
}

// UpdateTripUseCase handles trip update logic.
type UpdateTripUseCase struct {
	tripRepo adapter.TripRepository
}

// NewUpdateTripUseCase creates a new UpdateTripUseCase instance.
func NewUpdateTripUseCase(tripRepo adapter.TripRepository) *UpdateTripUseCase {
	return &UpdateTripUseCase{
		tripRepo: tripRepo,
	}
}

// Execute performs the trip update.
func (uc *UpdateTripUseCase) Execute(ctx context.Context, input UpdateTripInput) (*UpdateTripOutput, error) {
	trip, err := findOwnedTrip(ctx, uc.tripRepo, input.TripID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Platform != nil {
		platform := strings.TrimSpace(*input.Platform)
		if platform == "" {
			return nil, domainerror.NewTripError(
				domainerror.ErrCodeMissingTripFields,
				"platform is required",
				domainerror.ErrMissingTripPlatform,
			)
		}
		trip.Platform = platform
	}
	if input.Amount != nil {
		trip.Amount = *input.Amount
	}
	if input.Distance != nil {
		trip.Distance = *input.Distance
	}
	if input.DurationMinutes != nil {
		trip.DurationMinutes = *input.DurationMinutes
	}
	if input.Date != nil {
		trip.Date = *input.Date
	}

	if err := validateTripFigures(trip.Amount, trip.Distance, trip.DurationMinutes); err != nil {
		return nil, err
	}

	trip.UpdatedAt = time.Now().UTC()

	if err := uc.tripRepo.Update(ctx, trip); err != nil {
		return nil, fmt.Errorf("failed to update trip: %w", err)
	}

	return &UpdateTripOutput{
		Trip: trip,
	}, nil
}

func findOwnedTrip(ctx context.Context, repo adapter.TripRepository, tripID, userID uuid.UUID) (*entity.Trip, error) {
	trip, err := repo.FindByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTripNotFound) {
			return nil, domainerror.NewTripError(
				domainerror.ErrCodeTripNotFound,
				"trip not found",
				domainerror.ErrTripNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find trip: %w", err)
	}

	if trip.UserID != userID {
		return nil, domainerror.NewTripError(
			domainerror.ErrCodeUnauthorizedTripAccess,
			"not authorized to access this trip",
			domainerror.ErrUnauthorizedTripAccess,
		)
	}

	return trip, nil
}
