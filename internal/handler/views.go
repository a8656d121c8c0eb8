package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wayko-app/backend/internal/domain"
	"github.com/wayko-app/backend/internal/service"
)

// handleGetItinerary handles GET /trips/{tripID}/itinerary.
// The view is rebuilt from the trip's bookings on every call; the cached
// trip.Itinerary is never served here.
func (s *Server) handleGetItinerary(w http.ResponseWriter, r *http.Request) {
	id, err := tripID(r)
	if err != nil {
		writeNotFound(w, "trip not found")
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "trip not found")
			return
		}
		writeInternal(w, err)
		return
	}

	writeJSON(w, http.StatusOK, daysToPayload(service.BuildItinerary(trip)))
}

// handleGetExpenses handles GET /trips/{tripID}/expenses.
// Returns the category breakdown, the budget comparison, and the per-category
// line items.
func (s *Server) handleGetExpenses(w http.ResponseWriter, r *http.Request) {
	id, err := tripID(r)
	if err != nil {
		writeNotFound(w, "trip not found")
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "trip not found")
			return
		}
		writeInternal(w, err)
		return
	}

	b := service.ComputeBreakdown(trip)
	writeJSON(w, http.StatusOK, breakdownResponse{
		Transport:   b.Transport,
		Hotel:       b.Hotel,
		Rental:      b.Rental,
		Manual:      b.Manual,
		Total:       b.Total,
		Budget:      trip.Budget,
		BudgetDelta: b.BudgetDelta(trip.Budget),
		Currency:    trip.Currency,
		Sections:    sectionsToPayload(service.CategorySections(trip)),
	})
}

// handleAddExpense handles POST /trips/{tripID}/expenses.
func (s *Server) handleAddExpense(w http.ResponseWriter, r *http.Request) {
	id, err := tripID(r)
	if err != nil {
		writeNotFound(w, "trip not found")
		return
	}

	var body addExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	updated, err := s.trips.AddExpense(r.Context(), id, requestToExpense(body))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeNotFound(w, "trip not found")
		case errors.Is(err, domain.ErrValidation):
			writeValidationError(w, err)
		default:
			writeInternal(w, err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, tripToResponse(updated))
}
