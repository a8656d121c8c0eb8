package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/wayko-app/backend/internal/domain"
)

// tripID extracts and parses the {tripID} URL parameter.
func tripID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "tripID"))
}

// handleCreateTrip handles POST /trips.
// The body carries the user's form parameters; the service generates the full
// booking graph from them.
func (s *Server) handleCreateTrip(w http.ResponseWriter, r *http.Request) {
	var body createTripRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	created, err := s.trips.Create(r.Context(), requestToForm(body))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			writeValidationError(w, err)
		case errors.Is(err, domain.ErrDuplicate):
			writeConflict(w, "trip id already exists")
		default:
			writeInternal(w, err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, tripToResponse(created))
}

// handleListTrips handles GET /trips.
func (s *Server) handleListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.trips.List(r.Context())
	if err != nil {
		writeInternal(w, err)
		return
	}

	data := make([]tripResponse, 0, len(trips))
	for _, t := range trips {
		data = append(data, tripToResponse(t))
	}
	writeJSON(w, http.StatusOK, data)
}

// handleGetTrip handles GET /trips/{tripID}.
func (s *Server) handleGetTrip(w http.ResponseWriter, r *http.Request) {
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

	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// handleUpdateTrip handles PATCH /trips/{tripID}.
// Only the fields present in the body are changed.
func (s *Server) handleUpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, err := tripID(r)
	if err != nil {
		writeNotFound(w, "trip not found")
		return
	}

	var body updateTripRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	updated, err := s.trips.Update(r.Context(), id, requestToPatch(body))
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

	writeJSON(w, http.StatusOK, tripToResponse(updated))
}

// handleDeleteTrip handles DELETE /trips/{tripID}.
// Deletion is idempotent: unknown IDs still return 204.
func (s *Server) handleDeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, err := tripID(r)
	if err != nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := s.trips.Delete(r.Context(), id); err != nil {
		writeInternal(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
