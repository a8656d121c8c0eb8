// Package repo contains the trip storage for the Wayko API.
// The store is deliberately in-memory: it stands in for a real booking backend
// and holds the session's trips behind the same interface a database-backed
// implementation would satisfy. No business logic lives here.
package repo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wayko-app/backend/internal/domain"
)

// TripRepo defines the persistence operations for Trips.
// The service layer depends on this interface, not the concrete in-memory
// implementation, which allows the service to be unit-tested with a mock and
// a real backend to be slotted in later without touching services.
type TripRepo interface {
	// Create inserts a new trip. Returns domain.ErrDuplicate if a trip with
	// the same ID is already stored.
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip by ID.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// List returns all trips in insertion order.
	List(ctx context.Context) ([]domain.Trip, error)

	// Update merges the non-nil fields of patch into the stored trip and
	// returns the updated record. Returns domain.ErrNotFound if no trip with
	// that ID exists.
	Update(ctx context.Context, id uuid.UUID, patch domain.TripPatch) (domain.Trip, error)

	// AppendExpense appends a manual expense to the trip's expense list.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	AppendExpense(ctx context.Context, id uuid.UUID, exp domain.ManualExpense) (domain.Trip, error)

	// Delete removes a trip by ID. Deleting an absent ID is a no-op, so
	// Delete is idempotent and never returns domain.ErrNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}

// memTripRepo is the in-memory implementation of TripRepo.
// A single RWMutex serializes writes: the UI drives the store from one logical
// thread, but any future background work gets a safe store for free.
type memTripRepo struct {
	mu    sync.RWMutex
	trips map[uuid.UUID]domain.Trip
	order []uuid.UUID // insertion order for List
}

// NewMemTripRepo constructs an empty in-memory TripRepo.
// Construct one per application session and pass it explicitly — there is no
// package-level singleton.
func NewMemTripRepo() TripRepo {
	return &memTripRepo{trips: make(map[uuid.UUID]domain.Trip)}
}

// Create inserts a new trip, rejecting duplicate IDs.
func (r *memTripRepo) Create(_ context.Context, trip domain.Trip) (domain.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.trips[trip.ID]; ok {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %s: %w", trip.ID, domain.ErrDuplicate)
	}

	r.trips[trip.ID] = cloneTrip(trip)
	r.order = append(r.order, trip.ID)
	return trip, nil
}

// GetByID retrieves a trip by ID.
func (r *memTripRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	trip, ok := r.trips[id]
	if !ok {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", domain.ErrNotFound)
	}
	return cloneTrip(trip), nil
}

// List returns all trips in the order they were created.
func (r *memTripRepo) List(_ context.Context) ([]domain.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	trips := make([]domain.Trip, 0, len(r.order))
	for _, id := range r.order {
		trips = append(trips, cloneTrip(r.trips[id]))
	}
	return trips, nil
}

// Update merges patch into the stored trip.
func (r *memTripRepo) Update(_ context.Context, id uuid.UUID, patch domain.TripPatch) (domain.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	trip, ok := r.trips[id]
	if !ok {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", domain.ErrNotFound)
	}

	if patch.Name != nil {
		trip.Name = *patch.Name
	}
	if patch.Destination != nil {
		trip.Destination = *patch.Destination
	}
	if patch.StartDate != nil {
		trip.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		trip.EndDate = *patch.EndDate
	}
	if patch.Travelers != nil {
		trip.Travelers = *patch.Travelers
	}
	if patch.Budget != nil {
		trip.Budget = *patch.Budget
	}
	if patch.Currency != nil {
		trip.Currency = *patch.Currency
	}
	if patch.TotalSpent != nil {
		trip.TotalSpent = *patch.TotalSpent
	}
	trip.UpdatedAt = time.Now().UTC()

	r.trips[id] = trip
	return cloneTrip(trip), nil
}

// AppendExpense appends a manual expense to the stored trip.
func (r *memTripRepo) AppendExpense(_ context.Context, id uuid.UUID, exp domain.ManualExpense) (domain.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	trip, ok := r.trips[id]
	if !ok {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.AppendExpense: %w", domain.ErrNotFound)
	}

	trip = cloneTrip(trip)
	trip.ManualExpenses = append(trip.ManualExpenses, exp)
	trip.UpdatedAt = time.Now().UTC()

	r.trips[id] = trip
	return cloneTrip(trip), nil
}

// Delete removes a trip. Absent IDs are ignored.
func (r *memTripRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.trips[id]; !ok {
		return nil
	}

	delete(r.trips, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// cloneTrip deep-copies the trip's slices so callers can never mutate stored
// state through a returned value (or vice versa).
func cloneTrip(t domain.Trip) domain.Trip {
	t.Flights = append([]domain.Flight(nil), t.Flights...)
	t.Hotels = append([]domain.Hotel(nil), t.Hotels...)
	t.Rentals = append([]domain.Rental(nil), t.Rentals...)
	t.Itinerary = append([]domain.ItineraryItem(nil), t.Itinerary...)
	t.ManualExpenses = append([]domain.ManualExpense(nil), t.ManualExpenses...)
	return t
}
