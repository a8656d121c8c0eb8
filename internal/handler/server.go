// Package handler implements the HTTP handlers for the Wayko API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, trip.go, expense.go, places.go) but all share the same
// Server struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/wayko-app/backend/internal/domain"
	"github.com/wayko-app/backend/internal/places"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the store or service layer.
type TripServicer interface {
	Create(ctx context.Context, form domain.TripForm) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	List(ctx context.Context) ([]domain.Trip, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.TripPatch) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddExpense(ctx context.Context, tripID uuid.UUID, exp domain.ManualExpense) (domain.Trip, error)
}

// ImageResolver resolves a destination to an image URL. It never fails —
// implementations degrade to a fixed default URL.
type ImageResolver interface {
	ImageURL(ctx context.Context, destination string) string
}

// PlaceSearcher returns capped autocomplete suggestions for a query.
// It never fails — implementations degrade to an empty list.
type PlaceSearcher interface {
	Search(ctx context.Context, query string) []places.Suggestion
}

// Server holds the dependencies shared by all HTTP handlers.
// Wire it in main.go via Routes().
type Server struct {
	trips  TripServicer
	images ImageResolver
	search PlaceSearcher
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, images ImageResolver, search PlaceSearcher) *Server {
	return &Server{trips: trips, images: images, search: search}
}

// Routes builds the chi router for the full API surface.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.handleHealth)

	r.Route("/trips", func(r chi.Router) {
		r.Get("/", s.handleListTrips)
		r.Post("/", s.handleCreateTrip)
		r.Route("/{tripID}", func(r chi.Router) {
			r.Get("/", s.handleGetTrip)
			r.Patch("/", s.handleUpdateTrip)
			r.Delete("/", s.handleDeleteTrip)
			r.Get("/itinerary", s.handleGetItinerary)
			r.Get("/expenses", s.handleGetExpenses)
			r.Post("/expenses", s.handleAddExpense)
		})
	})

	r.Route("/places", func(r chi.Router) {
		r.Get("/search", s.handlePlaceSearch)
		r.Get("/image", s.handlePlaceImage)
	})

	return r
}
