package trip

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/driver-ledger/backend/internal/application/adapter"
	"github.com/driver-ledger/backend/internal/domain/entity"
)

// ListTripsInput represents the input for listing trips.
type ListTripsInput struct {
	UserID    uuid.UUID
	DateRange adapter.DateRange
}

// ListTripsOutput represents the output of listing trips.
type ListTripsOutput struct {
	Trips []*entity.Trip
}

// ListTripsUseCase handles listing trips logic.
type ListTripsUseCase struct {
	tripRepo adapter.TripRepository
}

// NewListTripsUseCase creates a new ListTripsUseCase instance.
func NewListTripsUseCase(tripRepo adapter.TripRepository) *ListTripsUseCase {
	return &ListTripsUseCase{
		tripRepo: tripRepo,
	}
}

// Execute performs the trip listing.
func (uc *ListTripsUseCase) Execute(ctx context.Context, input ListTripsInput) (*ListTripsOutput, error) {
	trips, err := uc.tripRepo.FindByUser(ctx, input.UserID, input.DateRange)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}

	return &ListTripsOutput{
		Trips: trips,
	}, nil
}
