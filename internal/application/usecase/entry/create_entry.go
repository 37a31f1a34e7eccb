// Package entry contains use cases for daily revenue entries.
package entry

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

// CreateEntryInput represents the input for entry creation.
type CreateEntryInput struct {
	UserID      uuid.UUID
	Date        time.Time
	Source      string
	Value       decimal.Decimal
	TripCount   int
	KmDriven    decimal.Decimal
	HoursWorked string
	Notes       *string
}

// CreateEntryOutput represents the output of entry creation.
type CreateEntryOutput struct {
	Entry *entity.Entry
}

// CreateEntryUseCase handles entry creation logic.
type CreateEntryUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewCreateEntryUseCase creates a new CreateEntryUseCase instance.
func NewCreateEntryUseCase(entryRepo adapter.EntryRepository) *CreateEntryUseCase {
	return &CreateEntryUseCase{
		entryRepo: entryRepo,
	}
}

// Execute performs the entry creation.
func (uc *CreateEntryUseCase) Execute(ctx context.Context, input CreateEntryInput) (*CreateEntryOutput, error) {
	source := strings.TrimSpace(input.Source)
	if source == "" {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeMissingEntryFields,
			"source is required",
			domainerror.ErrMissingEntrySource,
		)
	}

	hoursWorked := strings.TrimSpace(input.HoursWorked)
	if err := validateEntryFigures(input.Value, input.TripCount, input.KmDriven, hoursWorked); err != nil {
		return nil, err
	}

	entry := entity.NewEntry(
		input.UserID,
		input.Date,
		source,
		input.Value,
		input.TripCount,
		input.KmDriven,
		hoursWorked,
		input.Notes,
	)

	if err := uc.entryRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	return &CreateEntryOutput{
		Entry: entry,
	}, nil
}

// validateEntryFigures checks the numeric fields shared by create and update.
func validateEntryFigures(value decimal.Decimal, tripCount int, kmDriven decimal.Decimal, hoursWorked string) error {
	if value.IsNegative() {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryValue,
			"value must not be negative",
			domainerror.ErrInvalidEntryValue,
		)
	}
	if tripCount < 0 {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidTripCount,
			"trip count must not be negative",
			domainerror.ErrInvalidTripCount,
		)
	}
	if kmDriven.IsNegative() {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidKmDriven,
			"km driven must not be negative",
			domainerror.ErrInvalidKmDriven,
		)
	}
	if !entity.IsValidHoursWorked(hoursWorked) {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidHoursWorked,
			"hours worked must be in HH:MM format",
			domainerror.ErrInvalidHoursWorked,
		)
	}
	return nil
}
