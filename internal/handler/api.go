package handler

import (
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"

	"github.com/wayko-app/backend/internal/domain"
)

// Wire types for the JSON API. Dates use openapi_types.Date so date-only
// fields marshal as "2006-01-02" instead of full RFC 3339 timestamps.

type createTripRequest struct {
	Name        string            `json:"name"`
	Destination string            `json:"destination"`
	StartDate   openapi_types.Date `json:"start_date"`
	EndDate     openapi_types.Date `json:"end_date"`
	Travelers   int               `json:"travelers"`
	Budget      decimal.Decimal   `json:"budget"`
	Currency    string            `json:"currency"`
}

type updateTripRequest struct {
	Name        *string             `json:"name,omitempty"`
	Destination *string             `json:"destination,omitempty"`
	StartDate   *openapi_types.Date `json:"start_date,omitempty"`
	EndDate     *openapi_types.Date `json:"end_date,omitempty"`
	Travelers   *int                `json:"travelers,omitempty"`
	Budget      *decimal.Decimal    `json:"budget,omitempty"`
	Currency    *string             `json:"currency,omitempty"`
	TotalSpent  *decimal.Decimal    `json:"total_spent,omitempty"`
}

type addExpenseRequest struct {
	Category    string             `json:"category"`
	Title       string             `json:"title"`
	Amount      decimal.Decimal    `json:"amount"`
	Currency    string             `json:"currency,omitempty"`
	Date        openapi_types.Date `json:"date"`
	Description string             `json:"description,omitempty"`
}

type flightPayload struct {
	ID           uuid.UUID          `json:"id"`
	Kind         string             `json:"kind"`
	FromAirport  string             `json:"from_airport"`
	ToAirport    string             `json:"to_airport"`
	Date         openapi_types.Date `json:"date"`
	Time         string             `json:"time"`
	Airline      string             `json:"airline"`
	FlightNumber string             `json:"flight_number"`
	Reference    string             `json:"reference"`
	Price        decimal.Decimal    `json:"price"`
}

type hotelPayload struct {
	ID           uuid.UUID          `json:"id"`
	Name         string             `json:"name"`
	Address      string             `json:"address"`
	CheckInDate  openapi_types.Date `json:"check_in_date"`
	CheckInTime  string             `json:"check_in_time"`
	CheckOutDate openapi_types.Date `json:"check_out_date"`
	CheckOutTime string             `json:"check_out_time"`
	Price        decimal.Decimal    `json:"price"`
	Reference    string             `json:"reference"`
}

type rentalPayload struct {
	ID            uuid.UUID          `json:"id"`
	Company       string             `json:"company"`
	AgencyAddress string             `json:"agency_address"`
	PickUpDate    openapi_types.Date `json:"pick_up_date"`
	PickUpTime    string             `json:"pick_up_time"`
	ReturnDate    openapi_types.Date `json:"return_date"`
	ReturnTime    string             `json:"return_time"`
	Price         decimal.Decimal    `json:"price"`
	Reference     string             `json:"reference"`
}

type eventRefPayload struct {
	Kind string    `json:"kind"`
	ID   uuid.UUID `json:"id"`
}

type itineraryItemPayload struct {
	ID       uuid.UUID          `json:"id"`
	Kind     string             `json:"kind"`
	Date     openapi_types.Date `json:"date"`
	Time     string             `json:"time"`
	Title    string             `json:"title"`
	Subtitle string             `json:"subtitle"`
	Icon     string             `json:"icon"`
	Related  eventRefPayload    `json:"related"`
}

type itineraryDayPayload struct {
	Date   openapi_types.Date     `json:"date"`
	Day    int                    `json:"day"`
	Events []itineraryItemPayload `json:"events"`
}

type expensePayload struct {
	ID          uuid.UUID          `json:"id"`
	Category    string             `json:"category"`
	Title       string             `json:"title"`
	Amount      decimal.Decimal    `json:"amount"`
	Currency    string             `json:"currency"`
	Date        openapi_types.Date `json:"date"`
	Description string             `json:"description,omitempty"`
}

type expenseLinePayload struct {
	Title    string          `json:"title"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

type expenseSectionPayload struct {
	Title string               `json:"title"`
	Icon  string               `json:"icon"`
	Items []expenseLinePayload `json:"items"`
	Total decimal.Decimal      `json:"total"`
}

type breakdownResponse struct {
	Transport   decimal.Decimal         `json:"transport"`
	Hotel       decimal.Decimal         `json:"hotel"`
	Rental      decimal.Decimal         `json:"rental"`
	Manual      decimal.Decimal         `json:"manual"`
	Total       decimal.Decimal         `json:"total"`
	Budget      decimal.Decimal         `json:"budget"`
	BudgetDelta decimal.Decimal         `json:"budget_delta"` // total − budget; ≥ 0 means over budget
	Currency    string                  `json:"currency"`
	Sections    []expenseSectionPayload `json:"sections"`
}

type tripResponse struct {
	ID             uuid.UUID              `json:"id"`
	Name           string                 `json:"name"`
	Destination    string                 `json:"destination"`
	StartDate      openapi_types.Date     `json:"start_date"`
	EndDate        openapi_types.Date     `json:"end_date"`
	Travelers      int                    `json:"travelers"`
	Budget         decimal.Decimal        `json:"budget"`
	Currency       string                 `json:"currency"`
	UniqueEmail    string                 `json:"unique_email"`
	TotalSpent     decimal.Decimal        `json:"total_spent"`
	Flights        []flightPayload        `json:"flights"`
	Hotels         []hotelPayload         `json:"hotels"`
	Rentals        []rentalPayload        `json:"rentals"`
	Itinerary      []itineraryItemPayload `json:"itinerary"`
	ManualExpenses []expensePayload       `json:"manual_expenses"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

// --- mapping helpers --------------------------------------------------------

func date(t time.Time) openapi_types.Date {
	return openapi_types.Date{Time: t}
}

// requestToForm converts a create request body into a domain.TripForm.
func requestToForm(body createTripRequest) domain.TripForm {
	return domain.TripForm{
		Name:        body.Name,
		Destination: body.Destination,
		StartDate:   body.StartDate.Time,
		EndDate:     body.EndDate.Time,
		Travelers:   body.Travelers,
		Budget:      body.Budget,
		Currency:    body.Currency,
	}
}

// requestToPatch converts an update request body into a domain.TripPatch.
func requestToPatch(body updateTripRequest) domain.TripPatch {
	p := domain.TripPatch{
		Name:        body.Name,
		Destination: body.Destination,
		Travelers:   body.Travelers,
		Budget:      body.Budget,
		Currency:    body.Currency,
		TotalSpent:  body.TotalSpent,
	}
	if body.StartDate != nil {
		p.StartDate = &body.StartDate.Time
	}
	if body.EndDate != nil {
		p.EndDate = &body.EndDate.Time
	}
	return p
}

// requestToExpense converts an expense request body into a domain.ManualExpense.
// The service fills in the ID and default currency.
func requestToExpense(body addExpenseRequest) domain.ManualExpense {
	return domain.ManualExpense{
		Category:    domain.ExpenseCategory(body.Category),
		Title:       body.Title,
		Amount:      body.Amount,
		Currency:    body.Currency,
		Date:        body.Date.Time,
		Description: body.Description,
	}
}

// tripToResponse converts a domain.Trip into its wire representation.
// Slices are always non-nil so clients can iterate without null checks.
func tripToResponse(t domain.Trip) tripResponse {
	resp := tripResponse{
		ID:             t.ID,
		Name:           t.Name,
		Destination:    t.Destination,
		StartDate:      date(t.StartDate),
		EndDate:        date(t.EndDate),
		Travelers:      t.Travelers,
		Budget:         t.Budget,
		Currency:       t.Currency,
		UniqueEmail:    t.UniqueEmail,
		TotalSpent:     t.TotalSpent,
		Flights:        []flightPayload{},
		Hotels:         []hotelPayload{},
		Rentals:        []rentalPayload{},
		Itinerary:      []itineraryItemPayload{},
		ManualExpenses: []expensePayload{},
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
	for _, f := range t.Flights {
		resp.Flights = append(resp.Flights, flightPayload{
			ID:           f.ID,
			Kind:         string(f.Kind),
			FromAirport:  f.FromAirport,
			ToAirport:    f.ToAirport,
			Date:         date(f.Date),
			Time:         f.Time,
			Airline:      f.Airline,
			FlightNumber: f.FlightNumber,
			Reference:    f.Reference,
			Price:        f.Price,
		})
	}
	for _, h := range t.Hotels {
		resp.Hotels = append(resp.Hotels, hotelPayload{
			ID:           h.ID,
			Name:         h.Name,
			Address:      h.Address,
			CheckInDate:  date(h.CheckInDate),
			CheckInTime:  h.CheckInTime,
			CheckOutDate: date(h.CheckOutDate),
			CheckOutTime: h.CheckOutTime,
			Price:        h.Price,
			Reference:    h.Reference,
		})
	}
	for _, r := range t.Rentals {
		resp.Rentals = append(resp.Rentals, rentalPayload{
			ID:            r.ID,
			Company:       r.Company,
			AgencyAddress: r.AgencyAddress,
			PickUpDate:    date(r.PickUpDate),
			PickUpTime:    r.PickUpTime,
			ReturnDate:    date(r.ReturnDate),
			ReturnTime:    r.ReturnTime,
			Price:         r.Price,
			Reference:     r.Reference,
		})
	}
	for _, it := range t.Itinerary {
		resp.Itinerary = append(resp.Itinerary, itemToPayload(it))
	}
	for _, e := range t.ManualExpenses {
		resp.ManualExpenses = append(resp.ManualExpenses, expensePayload{
			ID:          e.ID,
			Category:    string(e.Category),
			Title:       e.Title,
			Amount:      e.Amount,
			Currency:    e.Currency,
			Date:        date(e.Date),
			Description: e.Description,
		})
	}
	return resp
}

func itemToPayload(it domain.ItineraryItem) itineraryItemPayload {
	return itineraryItemPayload{
		ID:       it.ID,
		Kind:     string(it.Kind),
		Date:     date(it.Date),
		Time:     it.Time,
		Title:    it.Title,
		Subtitle: it.Subtitle,
		Icon:     it.Icon,
		Related:  eventRefPayload{Kind: string(it.Related.Kind), ID: it.Related.ID},
	}
}

func daysToPayload(days []domain.ItineraryDay) []itineraryDayPayload {
	out := make([]itineraryDayPayload, 0, len(days))
	for _, d := range days {
		day := itineraryDayPayload{Date: date(d.Date), Day: d.Day, Events: []itineraryItemPayload{}}
		for _, ev := range d.Events {
			day.Events = append(day.Events, itemToPayload(ev))
		}
		out = append(out, day)
	}
	return out
}

func sectionsToPayload(sections []domain.ExpenseSection) []expenseSectionPayload {
	out := make([]expenseSectionPayload, 0, len(sections))
	for _, s := range sections {
		sec := expenseSectionPayload{Title: s.Title, Icon: s.Icon, Items: []expenseLinePayload{}, Total: s.Total}
		for _, it := range s.Items {
			sec.Items = append(sec.Items, expenseLinePayload{Title: it.Title, Amount: it.Amount, Currency: it.Currency})
		}
		out = append(out, sec)
	}
	return out
}
