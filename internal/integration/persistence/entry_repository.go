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

// entryRepository implements the adapter.EntryRepository interface.
type entryRepository struct {
	db *gorm.DB
}

// NewEntryRepository creates a new entry repository instance.
func NewEntryRepository(db *gorm.DB) adapter.EntryRepository {
	return &entryRepository{
		db: db,
	}
}

// Create creates a new entry in the database.
func (r *entryRepository) Create(ctx context.Context, entry *entity.Entry) error {
	return r.db.WithContext(ctx).Create(model.EntryFromEntity(entry)).Error
}

// FindByID retrieves an entry by its ID.
func (r *entryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Entry, error) {
	var entryModel model.EntryModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&entryModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEntryNotFound
		}
		return nil, err
	}
	return entryModel.ToEntity(), nil
}

// FindByUser retrieves the user's entries inside the range, newest first.
func (r *entryRepository) FindByUser(ctx context.Context, userID uuid.UUID, dateRange adapter.DateRange) ([]*entity.Entry, error) {
	var entryModels []model.EntryModel
	err := r.db.WithContext(ctx).
		Scopes(ownedBy(userID), withinDates(dateRange)).
		Order("date DESC, created_at DESC").
		Find(&entryModels).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*entity.Entry, len(entryModels))
	for i := range entryModels {
		entries[i] = entryModels[i].ToEntity()
	}
	return entries, nil
}

// Update updates an existing entry in the database.
func (r *entryRepository) Update(ctx context.Context, entry *entity.Entry) error {
	return r.db.WithContext(ctx).Save(model.EntryFromEntity(entry)).Error
}

// Delete removes an entry from the database (soft delete).
func (r *entryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.EntryModel{}, "id = ?", id).Error
}
