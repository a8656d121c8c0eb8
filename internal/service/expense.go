package service

import (
	"fmt"

	"github.com/wayko-app/backend/internal/domain"
)

// ComputeBreakdown sums a trip's costs by category: flight prices as
// transport, hotel stays, car rentals, and manual expenses. Total is exactly
// the sum of the four components — decimal arithmetic, no float drift.
//
// Everything is recomputed from the booking lists on each call. Trips hold
// tens of items at most, so O(n) per call buys guaranteed freshness for free.
func ComputeBreakdown(trip domain.Trip) domain.ExpenseBreakdown {
	var b domain.ExpenseBreakdown

	for _, f := range trip.Flights {
		b.Transport = b.Transport.Add(f.Price)
	}
	for _, h := range trip.Hotels {
		b.Hotel = b.Hotel.Add(h.Price)
	}
	for _, r := range trip.Rentals {
		b.Rental = b.Rental.Add(r.Price)
	}
	for _, e := range trip.ManualExpenses {
		b.Manual = b.Manual.Add(e.Amount)
	}

	b.Total = b.Transport.Add(b.Hotel).Add(b.Rental).Add(b.Manual)
	return b
}

// CategorySections builds the per-category line-item view of a trip's
// expenses: flight routes under Transport, hotel names under Hotel, rental
// companies under Rental, and one section per manual-expense category.
// Categories with no items produce no section.
func CategorySections(trip domain.Trip) []domain.ExpenseSection {
	sections := []domain.ExpenseSection{}

	if len(trip.Flights) > 0 {
		s := domain.ExpenseSection{Title: "Transport", Icon: "plane"}
		for _, f := range trip.Flights {
			s.Items = append(s.Items, domain.ExpenseLine{
				Title:    fmt.Sprintf("%s → %s", f.FromAirport, f.ToAirport),
				Amount:   f.Price,
				Currency: trip.Currency,
			})
			s.Total = s.Total.Add(f.Price)
		}
		sections = append(sections, s)
	}

	if len(trip.Hotels) > 0 {
		s := domain.ExpenseSection{Title: "Hotel", Icon: "hotel"}
		for _, h := range trip.Hotels {
			s.Items = append(s.Items, domain.ExpenseLine{
				Title:    h.Name,
				Amount:   h.Price,
				Currency: trip.Currency,
			})
			s.Total = s.Total.Add(h.Price)
		}
		sections = append(sections, s)
	}

	if len(trip.Rentals) > 0 {
		s := domain.ExpenseSection{Title: "Rental", Icon: "car"}
		for _, r := range trip.Rentals {
			s.Items = append(s.Items, domain.ExpenseLine{
				Title:    r.Company,
				Amount:   r.Price,
				Currency: trip.Currency,
			})
			s.Total = s.Total.Add(r.Price)
		}
		sections = append(sections, s)
	}

	if len(trip.ManualExpenses) > 0 {
		s := domain.ExpenseSection{Title: "Other expenses", Icon: "receipt"}
		for _, e := range trip.ManualExpenses {
			currency := e.Currency
			if currency == "" {
				currency = trip.Currency
			}
			s.Items = append(s.Items, domain.ExpenseLine{
				Title:    e.Title,
				Amount:   e.Amount,
				Currency: currency,
			})
			s.Total = s.Total.Add(e.Amount)
		}
		sections = append(sections, s)
	}

	return sections
}
