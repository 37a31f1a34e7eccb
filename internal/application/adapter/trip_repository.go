package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/driver-ledger/backend/internal/domain/entity"
)

// TripRepository defines the interface for trip persistence operations.
type TripRepository interface {
	// Create creates a new trip in the database.
	Create(ctx context.Context, trip *entity.Trip) error

	// FindByID retrieves a trip by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Trip, error)

	// FindByUser retrieves the user's trips inside the range, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID, dateRange DateRange) ([]*entity.Trip, error)

	// Update updates an existing trip in the database.
	Update(ctx context.Context, trip *entity.Trip) error

	// Delete removes a trip from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
