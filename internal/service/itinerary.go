// Package service contains the business logic for the Wayko API.
// Services validate inputs, enforce business rules, and orchestrate repo
// calls. The derived views (itinerary, expense breakdown, countdown) are pure
// functions over a trip — they recompute from the booking lists on every call
// so they are always correct after any mutation.
package service

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/wayko-app/backend/internal/domain"
)

// BuildItinerary produces the day-grouped, chronologically ordered event view
// of a trip's bookings: one event per flight, two per hotel (check-in and
// check-out), two per rental (pickup and return).
//
// Events are sorted ascending by (date, time). Ties keep source order —
// flights, then hotels, then rentals, each in slice order — via a stable
// sort, so the output is deterministic even though the events originate from
// three independent lists.
//
// Each day bucket carries a 1-based day number relative to the trip start.
// A trip with no bookings yields an empty (non-nil) slice.
func BuildItinerary(trip domain.Trip) []domain.ItineraryDay {
	events := BuildEvents(trip)

	days := []domain.ItineraryDay{}
	for _, ev := range events {
		n := len(days)
		if n == 0 || !days[n-1].Date.Equal(ev.Date) {
			days = append(days, domain.ItineraryDay{
				Date: ev.Date,
				Day:  1 + wholeDays(trip.StartDate, ev.Date),
			})
			n++
		}
		days[n-1].Events = append(days[n-1].Events, ev)
	}
	return days
}

// BuildEvents returns the flat, sorted event list backing BuildItinerary.
// The generator uses it to populate the trip's denormalized itinerary cache.
func BuildEvents(trip domain.Trip) []domain.ItineraryItem {
	events := make([]domain.ItineraryItem, 0, len(trip.Flights)+2*len(trip.Hotels)+2*len(trip.Rentals))

	for _, f := range trip.Flights {
		events = append(events, domain.ItineraryItem{
			ID:       uuid.New(),
			Kind:     domain.EventFlight,
			Date:     f.Date,
			Time:     f.Time,
			Title:    fmt.Sprintf("Flight %s", f.FlightNumber),
			Subtitle: fmt.Sprintf("%s → %s", f.FromAirport, f.ToAirport),
			Icon:     "plane",
			Related:  domain.EventRef{Kind: domain.EventFlight, ID: f.ID},
		})
	}
	for _, h := range trip.Hotels {
		events = append(events,
			domain.ItineraryItem{
				ID:       uuid.New(),
				Kind:     domain.EventHotel,
				Date:     h.CheckInDate,
				Time:     h.CheckInTime,
				Title:    "Check-in",
				Subtitle: h.Name,
				Icon:     "hotel",
				Related:  domain.EventRef{Kind: domain.EventHotel, ID: h.ID},
			},
			domain.ItineraryItem{
				ID:       uuid.New(),
				Kind:     domain.EventHotel,
				Date:     h.CheckOutDate,
				Time:     h.CheckOutTime,
				Title:    "Check-out",
				Subtitle: h.Name,
				Icon:     "hotel",
				Related:  domain.EventRef{Kind: domain.EventHotel, ID: h.ID},
			},
		)
	}
	for _, r := range trip.Rentals {
		events = append(events,
			domain.ItineraryItem{
				ID:       uuid.New(),
				Kind:     domain.EventRental,
				Date:     r.PickUpDate,
				Time:     r.PickUpTime,
				Title:    "Car pickup",
				Subtitle: r.Company,
				Icon:     "car",
				Related:  domain.EventRef{Kind: domain.EventRental, ID: r.ID},
			},
			domain.ItineraryItem{
				ID:       uuid.New(),
				Kind:     domain.EventRental,
				Date:     r.ReturnDate,
				Time:     r.ReturnTime,
				Title:    "Car return",
				Subtitle: r.Company,
				Icon:     "car",
				Related:  domain.EventRef{Kind: domain.EventRental, ID: r.ID},
			},
		)
	}

	// SortStableFunc keeps the append order above for equal (date, time) keys.
	// "HH:MM" strings compare correctly as plain strings.
	slices.SortStableFunc(events, func(a, b domain.ItineraryItem) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		if a.Time < b.Time {
			return -1
		}
		if a.Time > b.Time {
			return 1
		}
		return 0
	})

	return events
}

// wholeDays returns the number of whole days from a to b for date-only values.
func wholeDays(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
