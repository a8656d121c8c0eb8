// Package domain contains the core data types for the Wayko travel planner.
// This package has no dependencies on other internal packages and is imported
// by every other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Trip represents a single planned journey.
// It is the root aggregate: flights, hotels, rentals, manual expenses, and the
// itinerary cache all live and die with their trip.
type Trip struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Destination string    `json:"destination"` // free-text "City, Region"
	StartDate   time.Time `json:"start_date"`  // date-only, UTC midnight
	EndDate     time.Time `json:"end_date"`    // date-only, never before StartDate
	Travelers   int       `json:"travelers"`

	Budget   decimal.Decimal `json:"budget"`
	Currency string          `json:"currency"` // 3-letter code, shared by all bookings

	// UniqueEmail is the synthetic "forward your booking emails here" address
	// derived from destination and name at generation time. Informational only.
	UniqueEmail string `json:"unique_email"`

	// TotalSpent is a cosmetic snapshot set by the trip generator.
	// It is NOT kept in sync with the booking prices; use the expense
	// breakdown for the real sum.
	TotalSpent decimal.Decimal `json:"total_spent"`

	Flights []Flight `json:"flights"`
	Hotels  []Hotel  `json:"hotels"`
	Rentals []Rental `json:"rentals"`

	// Itinerary is a denormalized cache of the flight/hotel/rental events,
	// sorted ascending by (date, time). Rebuilt whenever bookings change.
	Itinerary []ItineraryItem `json:"itinerary"`

	// ManualExpenses are user-entered costs appended during the trip's lifetime.
	ManualExpenses []ManualExpense `json:"manual_expenses,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DurationDays returns the trip length in whole days (end − start).
// A same-day trip has duration 0.
func (t Trip) DurationDays() int {
	return int(t.EndDate.Sub(t.StartDate).Hours() / 24)
}

// FindFlight resolves a flight by ID within this trip.
// The second return value is false when no such flight exists.
func (t Trip) FindFlight(id uuid.UUID) (Flight, bool) {
	for _, f := range t.Flights {
		if f.ID == id {
			return f, true
		}
	}
	return Flight{}, false
}

// FindHotel resolves a hotel by ID within this trip.
func (t Trip) FindHotel(id uuid.UUID) (Hotel, bool) {
	for _, h := range t.Hotels {
		if h.ID == id {
			return h, true
		}
	}
	return Hotel{}, false
}

// FindRental resolves a rental by ID within this trip.
func (t Trip) FindRental(id uuid.UUID) (Rental, bool) {
	for _, r := range t.Rentals {
		if r.ID == id {
			return r, true
		}
	}
	return Rental{}, false
}

// TripForm carries the user-entered parameters from which a trip is generated.
// The service layer validates it before handing it to the generator.
type TripForm struct {
	Name        string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Travelers   int
	Budget      decimal.Decimal
	Currency    string
}

// TripPatch describes a partial update to a trip. Nil fields are left
// untouched; the repo merges the rest into the stored record.
// Bookings are not editable post-creation, so they have no patch fields.
type TripPatch struct {
	Name        *string
	Destination *string
	StartDate   *time.Time
	EndDate     *time.Time
	Travelers   *int
	Budget      *decimal.Decimal
	Currency    *string
	TotalSpent  *decimal.Decimal
}
