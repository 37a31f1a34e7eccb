package entry

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

// UpdateEntryInput represents the input for entry update. Nil fields are left unchanged.
type UpdateEntryInput struct {
	EntryID     uuid.UUID
	UserID      uuid.UUID
	Date        *time.Time
	Source      *string
	Value       *decimal.Decimal
	TripCount   *int
	KmDriven    *decimal.Decimal
	HoursWorked *string
	Notes       *string
}

// UpdateEntryOutput represents the output of entry update.
type UpdateEntryOutput struct {
	Entry *entity.Entry
}

// UpdateEntryUseCase handles entry update logic.
type UpdateEntryUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewUpdateEntryUseCase creates a new UpdateEntryUseCase instance.
func NewUpdateEntryUseCase(entryRepo adapter.EntryRepository) *UpdateEntryUseCase {
	return &UpdateEntryUseCase{
		entryRepo: entryRepo,
	}
}

// Execute performs the entry update.
func (uc *UpdateEntryUseCase) Execute(ctx context.Context, input UpdateEntryInput) (*UpdateEntryOutput, error) {
	entry, err := findOwnedEntry(ctx, uc.entryRepo, input.EntryID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Date != nil {
		entry.Date = *input.Date
	}
	if input.Source != nil {
		source := strings.TrimSpace(*input.Source)
		if source == "" {
			return nil, domainerror.NewEntryError(
				domainerror.ErrCodeMissingEntryFields,
				"source is required",
				domainerror.ErrMissingEntrySource,
			)
		}
		entry.Source = source
	}
	if input.Value != nil {
		entry.Value = *input.Value
	}
	if input.TripCount != nil {
		entry.TripCount = *input.TripCount
	}
	if input.KmDriven != nil {
		entry.KmDriven = *input.KmDriven
	}
	if input.HoursWorked != nil {
		entry.HoursWorked = strings.TrimSpace(*input.HoursWorked)
	}
	if input.Notes != nil {
		entry.Notes = input.Notes
	}

	if err := validateEntryFigures(entry.Value, entry.TripCount, entry.KmDriven, entry.HoursWorked); err != nil {
		return nil, err
	}

	entry.UpdatedAt = time.Now().UTC()

	if err := uc.entryRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}

	return &UpdateEntryOutput{
		Entry: entry,
	}, nil
}

// findOwnedEntry loads an entry and checks it belongs to userID.
func findOwnedEntry(ctx context.Context, repo adapter.EntryRepository, entryID, userID uuid.UUID) (*entity.Entry, error) {
	entry, err := repo.FindByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrEntryNotFound) {
			return nil, domainerror.NewEntryError(
				domainerror.ErrCodeEntryNotFound,
				"entry not found",
				domainerror.ErrEntryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find entry: %w", err)
	}

	if entry.UserID != userID {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeUnauthorizedEntryAccess,
			"not authorized to access this entry",
			domainerror.ErrUnauthorizedEntryAccess,
		)
	}

	return entry, nil
}
