package entry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driver-ledger/backend/internal/application/adapter"
	"github.com/driver-ledger/backend/internal/application/adapter/adaptertest"
	domainerror "github.com/driver-ledger/backend/internal/domain/error"
)

func entryCode(t *testing.T, err error) domainerror.EntryErrorCode {
	t.Helper()
	var entryErr *domainerror.EntryError
	require.True(t, errors.As(err, &entryErr), "expected EntryError, got %v", err)
	return entryErr.Code
}

func validInput(userID uuid.UUID) CreateEntryInput {
	return CreateEntryInput{
		UserID:      userID,
		Date:        time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		Source:      " Uber ",
		Value:       decimal.NewFromInt(250),
		TripCount:   11,
		KmDriven:    decimal.NewFromInt(140),
		HoursWorked: "07:30",
	}
}

func TestCreateEntry(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("creates entry", func(t *testing.T) {
		repo := adaptertest.NewEntryRepository()
		out, err := NewCreateEntryUseCase(repo).Execute(ctx, validInput(userID))
		require.NoError(t, err)
		assert.Equal(t, "Uber", out.Entry.Source)
		assert.Equal(t, userID, out.Entry.UserID)

		stored, err := repo.FindByID(ctx, out.Entry.ID)
		require.NoError(t, err)
		assert.Equal(t, "07:30", stored.HoursWorked)
	})

	tests := []struct {
		name   string
		mutate func(*CreateEntryInput)
		code   domainerror.EntryErrorCode
	}{
		{"empty source", func(i *CreateEntryInput) { i.Source = "  " }, domainerror.ErrCodeMissingEntryFields},
		{"negative value", func(i *CreateEntryInput) { i.Value = decimal.NewFromInt(-1) }, domainerror.ErrCodeInvalidEntryValue},
		{"negative trips", func(i *CreateEntryInput) { i.TripCount = -1 }, domainerror.ErrCodeInvalidTripCount},
		{"negative km", func(i *CreateEntryInput) { i.KmDriven = decimal.NewFromInt(-3) }, domainerror.ErrCodeInvalidKmDriven},
		{"bad hours", func(i *CreateEntryInput) { i.HoursWorked = "7h30" }, domainerror.ErrCodeInvalidHoursWorked},
		{"minutes out of range", func(i *CreateEntryInput) { i.HoursWorked = "01:75" }, domainerror.ErrCodeInvalidHoursWorked},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput(userID)
			tt.mutate(&input)
			_, err := NewCreateEntryUseCase(adaptertest.NewEntryRepository()).Execute(ctx, input)
			assert.Equal(t, tt.code, entryCode(t, err))
		})
	}

	t.Run("empty hours are allowed", func(t *testing.T) {
		input := validInput(userID)
		input.HoursWorked = ""
		_, err := NewCreateEntryUseCase(adaptertest.NewEntryRepository()).Execute(ctx, input)
		assert.NoError(t, err)
	})
}

func TestListEntries(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	repo := adaptertest.NewEntryRepository()
	create := NewCreateEntryUseCase(repo)

	for day := 1; day <= 3; day++ {
		input := validInput(userID)
		input.Date = time.Date(2024, 5, day, 0, 0, 0, 0, time.UTC)
		_, err := create.Execute(ctx, input)
		require.NoError(t, err)
	}
	other := validInput(uuid.New())
	_, err := create.Execute(ctx, other)
	require.NoError(t, err)

	out, err := NewListEntriesUseCase(repo).Execute(ctx, ListEntriesInput{UserID: userID})
	require.NoError(t, err)
	require.Len(t, out.Entries, 3)
	assert.Equal(t, 3, out.Entries[0].Date.Day())

	out, err = NewListEntriesUseCase(repo).Execute(ctx, ListEntriesInput{
		UserID:    userID,
		DateRange: adapter.NewDateRange(time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), time.Date(2024, 5, 2, 23, 59, 59, 0, time.UTC)),
	})
	require.NoError(t, err)
	assert.Len(t, out.Entries, 1)
}

func TestUpdateAndDeleteEntry(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	repo := adaptertest.NewEntryRepository()
	created, err := NewCreateEntryUseCase(repo).Execute(ctx, validInput(owner))
	require.NoError(t, err)
	id := created.Entry.ID

	t.Run("partial update keeps other fields", func(t *testing.T) {
		value := decimal.NewFromInt(300)
		out, err := NewUpdateEntryUseCase(repo).Execute(ctx, UpdateEntryInput{EntryID: id, UserID: owner, Value: &value})
		require.NoError(t, err)
		assert.True(t, out.Entry.Value.Equal(value))
		assert.Equal(t, 11, out.Entry.TripCount)
	})

	t.Run("invalid hours rejected", func(t *testing.T) {
		hours := "abc"
		_, err := NewUpdateEntryUseCase(repo).Execute(ctx, UpdateEntryInput{EntryID: id, UserID: owner, HoursWorked: &hours})
		assert.Equal(t, domainerror.ErrCodeInvalidHoursWorked, entryCode(t, err))
	})

	t.Run("other user cannot touch it", func(t *testing.T) {
		_, err := NewUpdateEntryUseCase(repo).Execute(ctx, UpdateEntryInput{EntryID: id, UserID: uuid.New()})
		assert.Equal(t, domainerror.ErrCodeUnauthorizedEntryAccess, entryCode(t, err))

		err = NewDeleteEntryUseCase(repo).Execute(ctx, DeleteEntryInput{EntryID: id, UserID: uuid.New()})
		assert.Equal(t, domainerror.ErrCodeUnauthorizedEntryAccess, entryCode(t, err))
	})

	t.Run("owner deletes", func(t *testing.T) {
		require.NoError(t, NewDeleteEntryUseCase(repo).Execute(ctx, DeleteEntryInput{EntryID: id, UserID: owner}))

		err := NewDeleteEntryUseCase(repo).Execute(ctx, DeleteEntryInput{EntryID: id, UserID: owner})
		assert.Equal(t, domainerror.ErrCodeEntryNotFound, entryCode(t, err))
	})
}
