package entry

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/driver-ledger/backend/internal/application/adapter"
	"github.com/driver-ledger/backend/internal/domain/entity"
)

// ListEntriesInput represents the input for listing entries.
type ListEntriesInput struct {
	UserID    uuid.UUID
	DateRange adapter.DateRange
}

// ListEntriesOutput represents the output of listing entries.
type ListEntriesOutput struct {
	Entries []*entity.Entry
}

// ListEntriesUseCase handles listing entries logic.
type ListEntriesUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewListEntriesUseCase creates a new ListEntriesUseCase instance.
func NewListEntriesUseCase(entryRepo adapter.EntryRepository) *ListEntriesUseCase {
	return &ListEntriesUseCase{
		entryRepo: entryRepo,
	}
}

// Execute lists the caller's entries, newest first.
func (uc *ListEntriesUseCase) Execute(ctx context.Context, input ListEntriesInput) (*ListEntriesOutput, error) {
	entries, err := uc.entryRepo.FindByUser(ctx, input.UserID, input.DateRange)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	return &ListEntriesOutput{
		Entries: entries,
	}, nil
}
