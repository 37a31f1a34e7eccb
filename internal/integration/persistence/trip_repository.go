package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/driver-ledger/backend/internal/application/adapter"
	"github.com/driver-ledger/backend/internal/domain/entity"
	domainerror "github.com/driver-ledger/backend/internal/domain/error"
	"github.com/driver-ledger/backend/internal/integration/persistence/model"
)

// tripRepository implements the adapter.TripRepository interface.
type tripRepository struct {
	db *gorm.DB
}

// NewTripRepository creates a new trip repository instance.
func NewTripRepository(db *gorm.DB) adapter.TripRepository {
	return &tripRepository{
		db: db,
	}
}

// Create creates a new trip in the database.
func (r *tripRepository) Create(ctx context.Context, trip *entity.Trip) error {
	return r.db.WithContext(ctx).Create(model.TripFromEntity(trip)).Error
}

// FindByID retrieves a trip by its ID.
func (r *tripRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Trip, error) {
	var tripModel model.TripModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&tripModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTripNotFound
		}
		return nil, err
	}
	return tripModel.ToEntity(), nil
}

// FindByUser retrieves the user's trips inside the range, newest first.
func (r *tripRepository) FindByUser(ctx context.Context, userID uuid.UUID, dateRange adapter.DateRange) ([]*entity.Trip, error) {
	var tripModels []model.TripModel
	err := r.db.WithContext(ctx).
		Scopes(ownedBy(userID), withinDates(dateRange)).
		Order("date DESC").
		Find(&tripModels).Error
	if err != nil {
		return nil, err
	}

	trips := make([]*entity.Trip, len(tripModels))
	for i := range tripModels {
		trips[i] = tripModels[i].ToEntity()
	}
	return trips, nil
}

// Update updates an existing trip in the database.
func (r *tripRepository) Update(ctx context.Context, trip *entity.Trip) error {
	return r.db.WithContext(ctx).Save(model.TripFromEntity(trip)).Error
}

// Delete removes a trip from the database (soft delete).
func (r *tripRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.TripModel{}, "id = ?", id).Error
}
