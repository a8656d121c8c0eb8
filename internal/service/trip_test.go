package service_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayko-app/backend/internal/domain"
	"github.com/wayko-app/backend/internal/repo"
	"github.com/wayko-app/backend/internal/service"
)

// mockTripRepo is a hand-written test double for repo.TripRepo.
// Each method is a function field — set only the ones your test needs.
// This is idiomatic Go: no mock generation library required for simple cases.
type mockTripRepo struct {
	create        func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID       func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	list          func(ctx context.Context) ([]domain.Trip, error)
	update        func(ctx context.Context, id uuid.UUID, patch domain.TripPatch) (domain.Trip, error)
	appendExpense func(ctx context.Context, id uuid.UUID, exp domain.ManualExpense) (domain.Trip, error)
	delete        func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	return m.list(ctx)
}
func (m *mockTripRepo) Update(ctx context.Context, id uuid.UUID, patch domain.TripPatch) (domain.Trip, error) {
	return m.update(ctx, id, patch)
}
func (m *mockTripRepo) AppendExpense(ctx context.Context, id uuid.UUID, exp domain.ManualExpense) (domain.Trip, error) {
	return m.appendExpense(ctx, id, exp)
}
func (m *mockTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

// compile-time check: mockTripRepo must satisfy repo.TripRepo.
var _ repo.TripRepo = (*mockTripRepo)(nil)

// ---- helpers ---------------------------------------------------------------

// echoRepo echoes whatever it receives back — useful for tests that only care
// about validation logic, not what the store returns.
func echoRepo() *mockTripRepo {
	return &mockTripRepo{
		create: func(_ context.Context, t domain.Trip) (domain.Trip, error) { return t, nil },
		update: func(_ context.Context, _ uuid.UUID, _ domain.TripPatch) (domain.Trip, error) {
			return domain.Trip{}, nil
		},
		appendExpense: func(_ context.Context, _ uuid.UUID, _ domain.ManualExpense) (domain.Trip, error) {
			return domain.Trip{}, nil
		},
	}
}

func newService(r repo.TripRepo) *service.TripService {
	gen := service.NewGenerator(rand.New(rand.NewPCG(1, 1)), "CDG", "wayko.app")
	return service.NewTripService(r, gen)
}

// ---- Create tests ----------------------------------------------------------

func TestTripService_Create_GeneratesFullTrip(t *testing.T) {
	svc := newService(echoRepo())

	got, err := svc.Create(context.Background(), cancunForm())

	require.NoError(t, err)
	assert.Equal(t, "Honeymoon", got.Name)
	assert.Len(t, got.Flights, 2)
	assert.Len(t, got.Hotels, 1)
	assert.NotEmpty(t, got.UniqueEmail)
	assert.False(t, got.CreatedAt.IsZero())
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestTripService_Create_MissingName(t *testing.T) {
	svc := newService(echoRepo())

	form := cancunForm()
	form.Name = "   " // whitespace-only should be treated as empty

	_, err := svc.Create(context.Background(), form)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Create_MissingDestination(t *testing.T) {
	svc := newService(echoRepo())

	form := cancunForm()
	form.Destination = ""

	_, err := svc.Create(context.Background(), form)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Create_EndDateBeforeStartDate(t *testing.T) {
	svc := newService(echoRepo())

	form := cancunForm()
	form.EndDate = form.StartDate.AddDate(0, 0, -1)

	_, err := svc.Create(context.Background(), form)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Create_SameDayTripIsValid(t *testing.T) {
	svc := newService(echoRepo())

	form := cancunForm()
	form.EndDate = form.StartDate

	_, err := svc.Create(context.Background(), form)

	assert.NoError(t, err)
}

func TestTripService_Create_ZeroTravelers(t *testing.T) {
	svc := newService(echoRepo())

	form := cancunForm()
	form.Travelers = 0

	_, err := svc.Create(context.Background(), form)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Create_NegativeBudget(t *testing.T) {
	svc := newService(echoRepo())

	form := cancunForm()
	form.Budget = decimal.NewFromInt(-1)

	_, err := svc.Create(context.Background(), form)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Create_BadCurrency(t *testing.T) {
	svc := newService(echoRepo())

	form := cancunForm()
	form.Currency = "EURO"

	_, err := svc.Create(context.Background(), form)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Create_RepoError(t *testing.T) {
	repoErr := errors.New("store exploded")
	r := echoRepo()
	r.create = func(_ context.Context, _ domain.Trip) (domain.Trip, error) {
		return domain.Trip{}, repoErr
	}
	svc := newService(r)

	_, err := svc.Create(context.Background(), cancunForm())

	// The service should propagate repo errors unchanged.
	assert.ErrorIs(t, err, repoErr)
}

// ---- GetByID / List tests --------------------------------------------------

func TestTripService_GetByID_NotFound(t *testing.T) {
	r := &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
	svc := newService(r)

	_, err := svc.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripService_List_Empty(t *testing.T) {
	r := &mockTripRepo{
		list: func(_ context.Context) ([]domain.Trip, error) { return nil, nil },
	}
	svc := newService(r)

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	// Should return an empty slice, not nil — callers can safely range over it.
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// ---- Update tests ----------------------------------------------------------

func TestTripService_Update_EmptyName(t *testing.T) {
	svc := newService(echoRepo())

	name := ""
	_, err := svc.Update(context.Background(), uuid.New(), domain.TripPatch{Name: &name})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Update_DatesOutOfOrder(t *testing.T) {
	svc := newService(echoRepo())

	form := cancunForm()
	start := form.EndDate
	end := form.StartDate // swapped
	_, err := svc.Update(context.Background(), uuid.New(), domain.TripPatch{StartDate: &start, EndDate: &end})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Update_NotFound(t *testing.T) {
	r := echoRepo()
	r.update = func(_ context.Context, _ uuid.UUID, _ domain.TripPatch) (domain.Trip, error) {
		return domain.Trip{}, domain.ErrNotFound
	}
	svc := newService(r)

	name := "New Name"
	_, err := svc.Update(context.Background(), uuid.New(), domain.TripPatch{Name: &name})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- Delete tests ----------------------------------------------------------

func TestTripService_Delete_OK(t *testing.T) {
	r := &mockTripRepo{
		delete: func(_ context.Context, _ uuid.UUID) error { return nil },
	}
	svc := newService(r)

	err := svc.Delete(context.Background(), uuid.New())

	assert.NoError(t, err)
}

// ---- AddExpense tests ------------------------------------------------------

func TestTripService_AddExpense_FillsIDAndCurrency(t *testing.T) {
	trip := domain.Trip{ID: uuid.New(), Currency: "EUR"}
	var captured domain.ManualExpense
	r := &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) { return trip, nil },
		appendExpense: func(_ context.Context, _ uuid.UUID, exp domain.ManualExpense) (domain.Trip, error) {
			captured = exp
			trip.ManualExpenses = append(trip.ManualExpenses, exp)
			return trip, nil
		},
	}
	svc := newService(r)

	got, err := svc.AddExpense(context.Background(), trip.ID, domain.ManualExpense{
		Category: domain.CategoryFood,
		Title:    "Tacos",
		Amount:   decimal.NewFromFloat(12.50),
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, captured.ID)
	assert.Equal(t, "EUR", captured.Currency)
	assert.Len(t, got.ManualExpenses, 1)
}

func TestTripService_AddExpense_BadCategory(t *testing.T) {
	svc := newService(echoRepo())

	_, err := svc.AddExpense(context.Background(), uuid.New(), domain.ManualExpense{
		Category: "gambling",
		Title:    "Casino",
		Amount:   decimal.NewFromInt(100),
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_AddExpense_NegativeAmount(t *testing.T) {
	svc := newService(echoRepo())

	_, err := svc.AddExpense(context.Background(), uuid.New(), domain.ManualExpense{
		Category: domain.CategoryFood,
		Title:    "Refund?",
		Amount:   decimal.NewFromInt(-5),
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_AddExpense_TripNotFound(t *testing.T) {
	r := &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
	svc := newService(r)

	_, err := svc.AddExpense(context.Background(), uuid.New(), domain.ManualExpense{
		Category: domain.CategoryFood,
		Title:    "Tacos",
		Amount:   decimal.NewFromInt(10),
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
