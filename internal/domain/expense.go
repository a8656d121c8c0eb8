package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseCategory classifies a manual expense.
type ExpenseCategory string

const (
	CategoryTransport  ExpenseCategory = "transport"
	CategoryHotel      ExpenseCategory = "hotel"
	CategoryFood       ExpenseCategory = "food"
	CategoryActivities ExpenseCategory = "activities"
	CategoryShopping   ExpenseCategory = "shopping"
	CategoryOther      ExpenseCategory = "other"
)

// Valid reports whether c is one of the known categories.
func (c ExpenseCategory) Valid() bool {
	switch c {
	case CategoryTransport, CategoryHotel, CategoryFood,
		CategoryActivities, CategoryShopping, CategoryOther:
		return true
	}
	return false
}

// ManualExpense is a user-entered cost not tied to a flight/hotel/rental
// booking. Expenses may carry their own currency, but aggregation assumes
// same-currency summation across the trip.
type ManualExpense struct {
	ID          uuid.UUID       `json:"id"`
	Category    ExpenseCategory `json:"category"`
	Title       string          `json:"title"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description,omitempty"`
}

// ExpenseBreakdown is the categorized sum of all costs on a trip.
// Total is always exactly Transport + Hotel + Rental + Manual.
type ExpenseBreakdown struct {
	Transport decimal.Decimal `json:"transport"`
	Hotel     decimal.Decimal `json:"hotel"`
	Rental    decimal.Decimal `json:"rental"`
	Manual    decimal.Decimal `json:"manual"`
	Total     decimal.Decimal `json:"total"`
}

// BudgetDelta returns Total − budget. A non-negative result means the trip is
// over budget.
func (b ExpenseBreakdown) BudgetDelta(budget decimal.Decimal) decimal.Decimal {
	return b.Total.Sub(budget)
}

// ExpenseLine is one row in a category section of the expenses view,
// e.g. "CDG → CUN  850.00 EUR".
type ExpenseLine struct {
	Title    string          `json:"title"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// ExpenseSection groups the expense lines of one category with their subtotal.
// Sections with no items are omitted from the view entirely.
type ExpenseSection struct {
	Title string          `json:"title"`
	Icon  string          `json:"icon"`
	Items []ExpenseLine   `json:"items"`
	Total decimal.Decimal `json:"total"`
}
