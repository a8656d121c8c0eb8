package service

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wayko-app/backend/internal/domain"
)

// Pools of realistic content for generated bookings.
var (
	airlines     = []string{"Air France", "Lufthansa", "British Airways", "KLM", "Emirates", "Turkish Airlines"}
	carrierCodes = []string{"AF", "LH", "BA", "KL", "EK", "TK"}
	hotelChains  = []string{"Marriott", "Hilton", "Hyatt", "InterContinental", "Four Seasons", "Radisson"}
	carRentals   = []string{"Hertz", "Avis", "Enterprise", "Budget", "Sixt", "Europcar"}
)

// airportEntry maps a destination substring to an IATA code. Lookup is by
// substring match in declaration order, so city names take precedence over
// their country aliases.
type airportEntry struct {
	match string
	code  string
}

var airportCodes = []airportEntry{
	{"cancun", "CUN"},
	{"cancún", "CUN"},
	{"mexico", "CUN"},
	{"tokyo", "NRT"},
	{"japan", "NRT"},
	{"paris", "CDG"},
	{"france", "CDG"},
	{"london", "LHR"},
	{"uk", "LHR"},
	{"new york", "JFK"},
	{"usa", "JFK"},
	{"dubai", "DXB"},
	{"barcelona", "BCN"},
	{"spain", "BCN"},
	{"rome", "FCO"},
	{"italy", "FCO"},
}

// fallbackAirport is used when no table entry matches the destination.
const fallbackAirport = "INT"

const (
	referenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	suffixAlphabet    = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// Generator synthesizes complete, internally consistent trips from user form
// input. It stands in for a real booking-import backend: randomness varies the
// generated content, never the outcome — given valid input it always succeeds.
//
// The random source is injected so tests can seed it and assert exact output.
type Generator struct {
	rng         *rand.Rand
	homeAirport string
	emailDomain string
}

// NewGenerator constructs a Generator.
// homeAirport is the departure airport for outbound flights (e.g. "CDG");
// emailDomain is the host part of generated booking-forwarding addresses.
func NewGenerator(rng *rand.Rand, homeAirport, emailDomain string) *Generator {
	return &Generator{rng: rng, homeAirport: homeAirport, emailDomain: emailDomain}
}

// GenerateTrip builds a fully populated trip from the given form:
// one outbound and one return flight on the same airline, one hotel priced per
// night times the trip duration, a car rental with 70% probability, a sorted
// itinerary cache over the generated bookings, and a unique contact email.
//
// TotalSpent is set to a random 80–90% of the budget for demo realism. It is
// deliberately NOT the sum of the generated booking prices — the displayed
// snapshot and the expense breakdown may disagree, matching the demo-data
// behavior this generator replaces.
//
// The form must already be validated (see TripService.Create); GenerateTrip
// assumes valid input and does not re-check it.
func (g *Generator) GenerateTrip(form domain.TripForm) domain.Trip {
	city := cityOf(form.Destination)
	destAirport := destinationAirport(form.Destination)
	duration := int64(form.EndDate.Sub(form.StartDate).Hours() / 24)

	airlineIdx := g.rng.IntN(len(airlines))
	outbound := domain.Flight{
		ID:           uuid.New(),
		Kind:         domain.FlightOutbound,
		FromAirport:  g.homeAirport,
		ToAirport:    destAirport,
		Date:         form.StartDate,
		Time:         g.randomTime(8, 16),
		Airline:      airlines[airlineIdx],
		FlightNumber: g.flightNumber(),
		Reference:    g.reference(),
		Price:        g.price(300, 800),
	}
	returning := domain.Flight{
		ID:           uuid.New(),
		Kind:         domain.FlightReturn,
		FromAirport:  destAirport,
		ToAirport:    g.homeAirport,
		Date:         form.EndDate,
		Time:         g.randomTime(10, 18),
		Airline:      airlines[airlineIdx], // both legs on the same airline
		FlightNumber: g.flightNumber(),
		Reference:    g.reference(),
		Price:        g.price(300, 800),
	}

	hotel := domain.Hotel{
		ID:           uuid.New(),
		Name:         fmt.Sprintf("%s %s", hotelChains[g.rng.IntN(len(hotelChains))], city),
		Address:      fmt.Sprintf("123 %s Avenue, %s", city, form.Destination),
		CheckInDate:  form.StartDate,
		CheckInTime:  "15:00",
		CheckOutDate: form.EndDate,
		CheckOutTime: "11:00",
		Price:        g.price(80, 200).Mul(decimal.NewFromInt(duration)),
		Reference:    g.reference(),
	}

	var rentals []domain.Rental
	if g.rng.Float64() < 0.7 {
		rentals = append(rentals, domain.Rental{
			ID:            uuid.New(),
			Company:       carRentals[g.rng.IntN(len(carRentals))],
			AgencyAddress: fmt.Sprintf("Airport %s, %s", destAirport, form.Destination),
			PickUpDate:    form.StartDate,
			PickUpTime:    "12:00",
			ReturnDate:    form.EndDate,
			ReturnTime:    "09:00",
			Price:         g.price(30, 80).Mul(decimal.NewFromInt(duration)),
			Reference:     g.reference(),
		})
	}

	// 80–90% of budget, floored to whole units. Cosmetic only — see above.
	spentFraction := decimal.NewFromFloat(0.8 + g.rng.Float64()*0.1)
	totalSpent := form.Budget.Mul(spentFraction).Floor()

	trip := domain.Trip{
		ID:          uuid.New(),
		Name:        form.Name,
		Destination: form.Destination,
		StartDate:   form.StartDate,
		EndDate:     form.EndDate,
		Travelers:   form.Travelers,
		Budget:      form.Budget,
		Currency:    form.Currency,
		UniqueEmail: g.uniqueEmail(form.Destination, form.Name),
		TotalSpent:  totalSpent,
		Flights:     []domain.Flight{outbound, returning},
		Hotels:      []domain.Hotel{hotel},
		Rentals:     rentals,
	}
	trip.Itinerary = BuildEvents(trip)

	return trip
}

// destinationAirport resolves a destination string to an IATA code by
// substring match over the lookup table, falling back to a generic code.
func destinationAirport(destination string) string {
	d := strings.ToLower(destination)
	for _, e := range airportCodes {
		if strings.Contains(d, e.match) {
			return e.code
		}
	}
	return fallbackAirport
}

// cityOf extracts the city part of a "City, Region" destination string.
func cityOf(destination string) string {
	city, _, _ := strings.Cut(destination, ",")
	return strings.TrimSpace(city)
}

// randomTime returns an "HH:MM" string with the hour in [base, base+spread)
// and minutes on a ten-minute boundary.
func (g *Generator) randomTime(base, spread int) string {
	return fmt.Sprintf("%02d:%02d", base+g.rng.IntN(spread-base), g.rng.IntN(6)*10)
}

// flightNumber returns a carrier code plus a four-digit number, e.g. "LH4821".
// The carrier code is drawn independently of the airline name, as real
// codeshare listings often are.
func (g *Generator) flightNumber() string {
	return fmt.Sprintf("%s%d", carrierCodes[g.rng.IntN(len(carrierCodes))], 1000+g.rng.IntN(9000))
}

// reference returns a six-character uppercase alphanumeric booking reference.
func (g *Generator) reference() string {
	return g.randomString(referenceAlphabet, 6)
}

// uniqueEmail derives the trip's "forward your booking emails here" address
// from the destination and trip name plus a short random suffix.
func (g *Generator) uniqueEmail(destination, name string) string {
	return fmt.Sprintf("%s-%s-%s@%s",
		sanitizeEmailPart(destination),
		sanitizeEmailPart(name),
		g.randomString(suffixAlphabet, 3),
		g.emailDomain,
	)
}

func (g *Generator) randomString(alphabet string, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[g.rng.IntN(len(alphabet))]
	}
	return string(b)
}

// price returns a whole-unit price uniformly drawn from [min, max].
func (g *Generator) price(min, max int) decimal.Decimal {
	return decimal.NewFromInt(int64(min + g.rng.IntN(max-min+1)))
}

// sanitizeEmailPart lowercases s and strips everything outside [a-z0-9].
func sanitizeEmailPart(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
