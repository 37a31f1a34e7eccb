package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/driver-ledger/backend/internal/domain/entity"
)

// EntryRepository defines the interface for entry persistence operations.
type EntryRepository interface {
	// Create creates a new entry in the database.
	Create(ctx context.Context, entry *entity.Entry) error

	// FindByID retrieves an entry by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Entry, error)

	// FindByUser retrieves the user's entries inside the range, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID, dateRange DateRange) ([]*entity.Entry, error)

	// Update updates an existing entry in the database.
	Update(ctx context.Context, entry *entity.Entry) error

	// Delete removes an entry from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
