package service

import (
	"fmt"
	"time"

	"github.com/wayko-app/backend/internal/domain"
)

// Countdown returns the departure countdown text shown on a trip card,
// relative to now: "Departure in N days" before the start date, "Departure
// today" on it, and "Trip completed" after.
//
// Partial days count as a full day, matching a traveller's reading of
// "3 days to go" the evening before day 3.
func Countdown(trip domain.Trip, now time.Time) string {
	until := trip.StartDate.Sub(now)
	days := int(until.Hours() / 24)
	if until > 0 && until != time.Duration(days)*24*time.Hour {
		days++ // ceiling
	}

	switch {
	case days > 0:
		return fmt.Sprintf("Departure in %d days", days)
	case days == 0:
		return "Departure today"
	default:
		return "Trip completed"
	}
}

// FormatDateRange renders a compact date range label for trip cards:
// "Dec 15 – 22, 2024" within one month, "Jun 28 – Jul 4, 2024" across months,
// and full dates across years.
func FormatDateRange(start, end time.Time) string {
	switch {
	case start.Year() != end.Year():
		return fmt.Sprintf("%s – %s", start.Format("Jan 2, 2006"), end.Format("Jan 2, 2006"))
	case start.Month() != end.Month():
		return fmt.Sprintf("%s – %s", start.Format("Jan 2"), end.Format("Jan 2, 2006"))
	default:
		return fmt.Sprintf("%s – %s", start.Format("Jan 2"), end.Format("2, 2006"))
	}
}
