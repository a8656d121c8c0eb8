package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventKind identifies which booking list an itinerary event came from.
type EventKind string

const (
	EventFlight EventKind = "flight"
	EventHotel  EventKind = "hotel"
	EventRental EventKind = "rental"
)

// EventRef is a typed weak reference from an itinerary item back to its
// originating booking. It is lookup-only: resolve it through the trip's
// FindFlight/FindHotel/FindRental methods, which report a missing target
// instead of crashing. The booking may have been removed since the itinerary
// was cached.
type EventRef struct {
	Kind EventKind `json:"kind"`
	ID   uuid.UUID `json:"id"`
}

// ItineraryItem is one display-ready event in a trip's itinerary: a flight
// departure, a hotel check-in/check-out, or a rental pickup/return.
type ItineraryItem struct {
	ID       uuid.UUID `json:"id"`
	Kind     EventKind `json:"kind"`
	Date     time.Time `json:"date"`
	Time     string    `json:"time"` // "HH:MM"
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
	Icon     string    `json:"icon"` // symbolic tag: "plane", "hotel", "car"
	Related  EventRef  `json:"related"`
}

// ItineraryDay is one calendar-day bucket of itinerary events.
// Day is 1-based: 1 + whole days between the bucket date and the trip start.
type ItineraryDay struct {
	Date   time.Time       `json:"date"`
	Day    int             `json:"day"`
	Events []ItineraryItem `json:"events"`
}
