package trip

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/driver-ledger/backend/internal/application/adapter"
)

// DeleteTripInput represents the input for trip deletion.
type DeleteTripInput struct {
	TripID uuid.UUID
	UserID uuid.UUID
}

// DeleteTripUseCase handles trip deletion logic.
type DeleteTripUseCase struct {
	tripRepo adapter.TripRepository
}

// NewDeleteTripUseCase creates a new DeleteTripUseCase instance.
func NewDeleteTripUseCase(tripRepo adapter.TripRepository) *DeleteTripUseCase {
	return &DeleteTripUseCase{
		tripRepo: tripRepo,
	}
}

// Execute performs the trip deletion.
func (uc *DeleteTripUseCase) Execute(ctx context.Context, input DeleteTripInput) error {
	if _, err := findOwnedTrip(ctx, uc.tripRepo, input.TripID, input.UserID); err != nil {
		return err
	}

	if err := uc.tripRepo.Delete(ctx, input.TripID); err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}

	return nil
}
