// Package adaptertest provides in-memory implementations of the adapter
// interfaces for use case tests.
package adaptertest

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/driver-ledger/backend/internal/application/adapter"
	"github.com/driver-ledger/backend/internal/domain/entity"
	domainerror "github.com/driver-ledger/backend/internal/domain/error"
)

// ErrForced is returned by a repository whose Err field is set.
var ErrForced = errors.New("forced failure")

func inRange(t time.Time, r adapter.DateRange) bool {
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && t.After(*r.End) {
		return false
	}
	return true
}

// UserRepository is an in-memory adapter.UserRepository.
type UserRepository struct {
	mu    sync.Mutex
	users map[uuid.UUID]entity.User
	Err   error
}

// NewUserRepository creates a UserRepository seeded with users.
func NewUserRepository(users ...*entity.User) *UserRepository {
	r := &UserRepository{users: make(map[uuid.UUID]entity.User)}
	for _, u := range users {
		r.users[u.ID] = *u
	}
	return r
}

func (r *UserRepository) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.users[user.ID] = *user
	return nil
}

func (r *UserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	if errors.Is(err, domainerror.ErrUserNotFound) {
		return false, nil
	}
	return err == nil, err
}

// EntryRepository is an in-memory adapter.EntryRepository.
type EntryRepository struct {
	mu      sync.Mutex
	entries map[uuid.UUID]entity.Entry
	Err     error
}

// NewEntryRepository creates an EntryRepository holding entries.
func NewEntryRepository(entries ...*entity.Entry) *EntryRepository {
	r := &EntryRepository{entries: make(map[uuid.UUID]entity.Entry)}
	for _, e := range entries {
		r.entries[e.ID] = *e
	}
	return r
}

func (r *EntryRepository) Create(_ context.Context, entry *entity.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.entries[entry.ID] = *entry
	return nil
}

func (r *EntryRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return nil, domainerror.ErrEntryNotFound
	}
	return &e, nil
}

func (r *EntryRepository) FindByUser(_ context.Context, userID uuid.UUID, dateRange adapter.DateRange) ([]*entity.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	result := make([]*entity.Entry, 0)
	for _, e := range r.entries {
		if e.UserID == userID && inRange(e.Date, dateRange) {
			e := e
			result = append(result, &e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.After(result[j].Date) })
	return result, nil
}

func (r *EntryRepository) Update(_ context.Context, entry *entity.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[entry.ID]; !ok {
		return domainerror.ErrEntryNotFound
	}
	r.entries[entry.ID] = *entry
	return nil
}

func (r *EntryRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return domainerror.ErrEntryNotFound
	}
	delete(r.entries, id)
	return nil
}

// TripRepository is an in-memory adapter.TripRepository.
type TripRepository struct {
	mu    sync.Mutex
	trips map[uuid.UUID]entity.Trip
	Err   error
}

// NewTripRepository creates a TripRepository holding trips.
func NewTripRepository(trips ...*entity.Trip) *TripRepository {
	r := &TripRepository{trips: make(map[uuid.UUID]entity.Trip)}
	for _, t := range trips {
		r.trips[t.ID] = *t
	}
	return r
}

func (r *TripRepository) Create(_ context.Context, trip *entity.Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.trips[trip.ID] = *trip
	return nil
}

func (r *TripRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.trips[id]
	if !ok {
		return nil, domainerror.ErrTripNotFound
	}
	return &t, nil
}

func (r *TripRepository) FindByUser(_ context.Context, userID uuid.UUID, dateRange adapter.DateRange) ([]*entity.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	result := make([]*entity.Trip, 0)
	for _, t := range r.trips {
		if t.UserID == userID && inRange(t.Date, dateRange) {
			t := t
			result = append(result, &t)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.After(result[j].Date) })
	return result, nil
}

func (r *TripRepository) Update(_ context.Context, trip *entity.Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.trips[trip.ID]; !ok {
		return domainerror.ErrTripNotFound
	}
	r.trips[trip.ID] = *trip
	return nil
}

func (r *TripRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.trips[id]; !ok {
		return domainerror.ErrTripNotFound
	}
	delete(r.trips, id)
	return nil
}

// ExpenseRepository is an in-memory adapter.ExpenseRepository.
type ExpenseRepository struct {
	mu       sync.Mutex
	expenses map[uuid.UUID]entity.Expense
	Err      error
}

// NewExpenseRepository creates an ExpenseRepository holding expenses.
func NewExpenseRepository(expenses ...*entity.Expense) *ExpenseRepository {
	r := &ExpenseRepository{expenses: make(map[uuid.UUID]entity.Expense)}
	for _, e := range expenses {
		r.expenses[e.ID] = *e
	}
	return r
}

func (r *ExpenseRepository) Create(_ context.Context, expense *entity.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.expenses[expense.ID] = *expense
	return nil
}

func (r *ExpenseRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.expenses[id]
	if !ok {
		return nil, domainerror.ErrExpenseNotFound
	}
	return &e, nil
}

func (r *ExpenseRepository) FindByFilter(_ context.Context, filter adapter.ExpenseFilter) ([]*entity.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	result := make([]*entity.Expense, 0)
	for _, e := range r.expenses {
		if e.UserID != filter.UserID || !inRange(e.Date, filter.DateRange) {
			continue
		}
		if filter.Scope != nil && e.Scope != *filter.Scope {
			continue
		}
		e := e
		result = append(result, &e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.After(result[j].Date) })
	return result, nil
}

func (r *ExpenseRepository) Update(_ context.Context, expense *entity.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.expenses[expense.ID]; !ok {
		return domainerror.ErrExpenseNotFound
	}
	r.expenses[expense.ID] = *expense
	return nil
}

func (r *ExpenseRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.expenses[id]; !ok {
		return domainerror.ErrExpenseNotFound
	}
	delete(r.expenses, id)
	return nil
}

// GoalRepository is an in-memory adapter.GoalRepository.
type GoalRepository struct {
	mu    sync.Mutex
	goals map[uuid.UUID]entity.Goal
	Err   error
}

// NewGoalRepository creates a GoalRepository holding goals.
func NewGoalRepository(goals ...*entity.Goal) *GoalRepository {
	r := &GoalRepository{goals: make(map[uuid.UUID]entity.Goal)}
	for _, g := range goals {
		r.goals[g.ID] = *g
	}
	return r
}

func (r *GoalRepository) Create(_ context.Context, goal *entity.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.goals[goal.ID] = *goal
	return nil
}

func (r *GoalRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.goals[id]
	if !ok {
		return nil, domainerror.ErrGoalNotFound
	}
	return &g, nil
}

func (r *GoalRepository) FindByUserID(_ context.Context, userID uuid.UUID, year *int) ([]*entity.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	result := make([]*entity.Goal, 0)
	for _, g := range r.goals {
		if g.UserID != userID || (year != nil && g.Year != *year) {
			continue
		}
		g := g
		result = append(result, &g)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Year != result[j].Year {
			return result[i].Year > result[j].Year
		}
		return result[i].Month > result[j].Month
	})
	return result, nil
}

func (r *GoalRepository) FindByUserAndMonth(_ context.Context, userID uuid.UUID, year, month int) (*entity.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	var found *entity.Goal
	for _, g := range r.goals {
		if g.UserID != userID || g.Year != year || g.Month != month {
			continue
		}
		if found == nil || g.UpdatedAt.After(found.UpdatedAt) {
			g := g
			found = &g
		}
	}
	if found == nil {
		return nil, domainerror.ErrGoalNotFound
	}
	return found, nil
}

func (r *GoalRepository) Update(_ context.Context, goal *entity.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.goals[goal.ID]; !ok {
		return domainerror.ErrGoalNotFound
	}
	r.goals[goal.ID] = *goal
	return nil
}

func (r *GoalRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.goals[id]; !ok {
		return domainerror.ErrGoalNotFound
	}
	delete(r.goals, id)
	return nil
}
