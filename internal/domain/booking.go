package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FlightKind distinguishes the two legs of a round trip.
type FlightKind string

const (
	FlightOutbound FlightKind = "outbound"
	FlightReturn   FlightKind = "return"
)

// Flight is a single booked flight leg.
// Times are local "HH:MM" strings with no timezone semantics — they sort
// correctly as plain strings.
type Flight struct {
	ID           uuid.UUID       `json:"id"`
	Kind         FlightKind      `json:"kind"`
	FromAirport  string          `json:"from_airport"` // 3-letter code
	ToAirport    string          `json:"to_airport"`   // 3-letter code
	Date         time.Time       `json:"date"`
	Time         string          `json:"time"`
	Airline      string          `json:"airline"`
	FlightNumber string          `json:"flight_number"`
	Reference    string          `json:"reference"`
	Price        decimal.Decimal `json:"price"`
}

// Hotel is a booked hotel stay. Price is the total cost for the whole stay,
// not a nightly rate. CheckOut is never before CheckIn; a same-day stay is
// legal and yields two itinerary events on the same day.
type Hotel struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Address      string          `json:"address"`
	CheckInDate  time.Time       `json:"check_in_date"`
	CheckInTime  string          `json:"check_in_time"`
	CheckOutDate time.Time       `json:"check_out_date"`
	CheckOutTime string          `json:"check_out_time"`
	Price        decimal.Decimal `json:"price"`
	Reference    string          `json:"reference"`
}

// Rental is a booked car rental. Price is the total for the rental period.
type Rental struct {
	ID            uuid.UUID       `json:"id"`
	Company       string          `json:"company"`
	AgencyAddress string          `json:"agency_address"`
	PickUpDate    time.Time       `json:"pick_up_date"`
	PickUpTime    string          `json:"pick_up_time"`
	ReturnDate    time.Time       `json:"return_date"`
	ReturnTime    string          `json:"return_time"`
	Price         decimal.Decimal `json:"price"`
	Reference     string          `json:"reference"`
}
