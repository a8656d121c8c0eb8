package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayko-app/backend/internal/domain"
)

// ---- GET /trips/{tripID}/itinerary -----------------------------------------

func TestHandleGetItinerary_OK(t *testing.T) {
	trip := sampleTrip()
	svc := &mockTripService{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return trip, nil
		},
	}
	router := newTestServer(svc)

	req := httptest.NewRequest(http.MethodGet, "/trips/"+trip.ID.String()+"/itinerary", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []struct {
		Date   string `json:"date"`
		Day    int    `json:"day"`
		Events []struct {
			Kind  string `json:"kind"`
			Time  string `json:"time"`
			Title string `json:"title"`
			Icon  string `json:"icon"`
		} `json:"events"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	// sampleTrip has one outbound flight and a hotel spanning the full week:
	// day 1 carries the flight and the check-in, day 8 the check-out.
	require.Len(t, got, 2)
	assert.Equal(t, "2024-12-15", got[0].Date)
	assert.Equal(t, 1, got[0].Day)
	require.Len(t, got[0].Events, 2)
	assert.Equal(t, "flight", got[0].Events[0].Kind)
	assert.Equal(t, "plane", got[0].Events[0].Icon)
	assert.Equal(t, "Check-in", got[1].Events[0].Title)
	assert.Equal(t, 8, got[1].Day)
}

func TestHandleGetItinerary_NotFound(t *testing.T) {
	svc := &mockTripService{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
	router := newTestServer(svc)

	req := httptest.NewRequest(http.MethodGet, "/trips/"+uuid.NewString()+"/itinerary", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- GET /trips/{tripID}/expenses ------------------------------------------

func TestHandleGetExpenses_OK(t *testing.T) {
	trip := sampleTrip()
	trip.ManualExpenses = []domain.ManualExpense{
		{ID: uuid.New(), Category: domain.CategoryFood, Title: "Tacos", Amount: decimal.NewFromFloat(45.50), Currency: "EUR"},
	}
	svc := &mockTripService{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return trip, nil
		},
	}
	router := newTestServer(svc)

	req := httptest.NewRequest(http.MethodGet, "/trips/"+trip.ID.String()+"/expenses", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Transport   string `json:"transport"`
		Hotel       string `json:"hotel"`
		Manual      string `json:"manual"`
		Total       string `json:"total"`
		Budget      string `json:"budget"`
		BudgetDelta string `json:"budget_delta"`
		Currency    string `json:"currency"`
		Sections    []struct {
			Title string `json:"title"`
			Items []struct {
				Title string `json:"title"`
			} `json:"items"`
		} `json:"sections"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	// 650 flight + 1050 hotel + 45.50 manual = 1745.50, well under the 5000 budget.
	assert.Equal(t, "650", got.Transport)
	assert.Equal(t, "1050", got.Hotel)
	assert.Equal(t, "45.5", got.Manual)
	assert.Equal(t, "1745.5", got.Total)
	assert.Equal(t, "5000", got.Budget)
	assert.Equal(t, "-3254.5", got.BudgetDelta)
	assert.Equal(t, "EUR", got.Currency)

	require.Len(t, got.Sections, 3) // transport, hotel, other — no rentals on this trip
	assert.Equal(t, "Transport", got.Sections[0].Title)
	require.Len(t, got.Sections[2].Items, 1)
	assert.Equal(t, "Tacos", got.Sections[2].Items[0].Title)
}

// ---- POST /trips/{tripID}/expenses -----------------------------------------

func TestHandleAddExpense_Created(t *testing.T) {
	trip := sampleTrip()
	svc := &mockTripService{
		addExpense: func(_ context.Context, tripID uuid.UUID, exp domain.ManualExpense) (domain.Trip, error) {
			assert.Equal(t, trip.ID, tripID)
			assert.Equal(t, domain.CategoryFood, exp.Category)
			assert.Equal(t, "Tacos", exp.Title)
			assert.True(t, exp.Amount.Equal(decimal.NewFromFloat(12.50)))
			exp.ID = uuid.New()
			trip.ManualExpenses = append(trip.ManualExpenses, exp)
			return trip, nil
		},
	}
	router := newTestServer(svc)

	body := `{"category":"food","title":"Tacos","amount":12.50,"date":"2024-12-16"}`
	req := httptest.NewRequest(http.MethodPost, "/trips/"+trip.ID.String()+"/expenses", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got struct {
		ManualExpenses []struct {
			Title string `json:"title"`
		} `json:"manual_expenses"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.ManualExpenses, 1)
	assert.Equal(t, "Tacos", got.ManualExpenses[0].Title)
}

func TestHandleAddExpense_ValidationError(t *testing.T) {
	svc := &mockTripService{
		addExpense: func(_ context.Context, _ uuid.UUID, _ domain.ManualExpense) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrValidation
		},
	}
	router := newTestServer(svc)

	body := `{"category":"gambling","title":"Casino","amount":100,"date":"2024-12-16"}`
	req := httptest.NewRequest(http.MethodPost, "/trips/"+uuid.NewString()+"/expenses", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
