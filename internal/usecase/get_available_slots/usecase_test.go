package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-BarberBookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error

	// запомненные аргументы последнего вызова
	gotIncludeCancelled bool
}

func (f *fakeBookingRepo) GetByShopAndDateRange(_ context.Context, _ int64, start, end time.Time, includeCancelled bool) ([]*domain.Booking, error) {
	f.gotIncludeCancelled = includeCancelled
	if f.err != nil {
		return nil, f.err
	}

	result := make([]*domain.Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		if b.StartsAt.Before(start) || b.StartsAt.After(end) {
			continue
		}
		if !includeCancelled && b.Cancelled {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

type fakeCatalogRepo struct {
	shop *domain.Barbershop
	err  error
}

func (f *fakeCatalogRepo) GetBarbershopByID(_ context.Context, _ int64) (*domain.Barbershop, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.shop, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func slotStrings(slots []types.TimeString) []string {
	result := make([]string, len(slots))
	for i, s := range slots {
		result[i] = s.String()
	}
	return result
}

func TestExecute_EmptyDayReturnsFullGrid(t *testing.T) {
	t.Parallel()

	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeCatalogRepo{shop: &domain.Barbershop{ID: 1}},
		true,
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:       7,
		BarbershopID: 1,
		Date:         time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 33)
	assert.Equal(t, "09:00", resp.Slots[0].String())
	assert.Equal(t, "18:00", resp.Slots[32].String())
}

func TestExecute_OccupiedSlotExcluded(t *testing.T) {
	t.Parallel()

	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	bookingRepo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{ID: 1, BarbershopID: 1, StartsAt: time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)},
		},
	}

	uc := NewUseCase(bookingRepo, &fakeCatalogRepo{shop: &domain.Barbershop{ID: 1}}, true, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 7, BarbershopID: 1, Date: date})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 32)
	assert.NotContains(t, slotStrings(resp.Slots), "10:00")
	assert.Contains(t, slotStrings(resp.Slots), "09:45")
	assert.Contains(t, slotStrings(resp.Slots), "10:15")

	// Результат - подмножество канонической сетки в её порядке
	grid := domain.GenerateDaySlots()
	gridIdx := 0
	for _, slot := range resp.Slots {
		for gridIdx < len(grid) && grid[gridIdx] != slot {
			gridIdx++
		}
		require.Less(t, gridIdx, len(grid), "slot %q out of grid order", slot)
	}
}

func TestExecute_CancelledBookingOccupiesSlot(t *testing.T) {
	t.Parallel()

	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	cancelled := &domain.Booking{
		ID:           1,
		BarbershopID: 1,
		StartsAt:     time.Date(2025, 6, 10, 11, 30, 0, 0, time.UTC),
		Cancelled:    true,
	}

	// Историческое поведение: отменённое бронирование занимает слот
	bookingRepo := &fakeBookingRepo{bookings: []*domain.Booking{cancelled}}
	uc := NewUseCase(bookingRepo, &fakeCatalogRepo{shop: &domain.Barbershop{ID: 1}}, true, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 7, BarbershopID: 1, Date: date})
	require.NoError(t, err)
	assert.True(t, bookingRepo.gotIncludeCancelled)
	assert.NotContains(t, slotStrings(resp.Slots), "11:30")

	// Выключенный флаг освобождает слот
	bookingRepo = &fakeBookingRepo{bookings: []*domain.Booking{cancelled}}
	uc = NewUseCase(bookingRepo, &fakeCatalogRepo{shop: &domain.Barbershop{ID: 1}}, false, nopLogger{})

	resp, err = uc.Execute(context.Background(), &Request{UserID: 7, BarbershopID: 1, Date: date})
	require.NoError(t, err)
	assert.False(t, bookingRepo.gotIncludeCancelled)
	assert.Contains(t, slotStrings(resp.Slots), "11:30")
}

func TestExecute_BookingOnAnotherDayIgnored(t *testing.T) {
	t.Parallel()

	bookingRepo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{ID: 1, BarbershopID: 1, StartsAt: time.Date(2025, 6, 11, 10, 0, 0, 0, time.UTC)},
		},
	}

	uc := NewUseCase(bookingRepo, &fakeCatalogRepo{shop: &domain.Barbershop{ID: 1}}, true, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:       7,
		BarbershopID: 1,
		Date:         time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 33)
}

func TestExecute_BarbershopNotFound(t *testing.T) {
	t.Parallel()

	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeCatalogRepo{err: catalogRepo.ErrBarbershopNotFound},
		true,
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:       7,
		BarbershopID: 99,
		Date:         time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	})
	require.ErrorIs(t, err, ErrBarbershopNotFound)
}

func TestExecute_Validation(t *testing.T) {
	t.Parallel()

	uc := NewUseCase(&fakeBookingRepo{}, &fakeCatalogRepo{shop: &domain.Barbershop{ID: 1}}, true, nopLogger{})

	testCases := []struct {
		name string
		req  *Request
	}{
		{
			name: "zero barbershop id",
			req:  &Request{UserID: 7, Date: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)},
		},
		{
			name: "negative barbershop id",
			req:  &Request{UserID: 7, BarbershopID: -1, Date: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)},
		},
		{
			name: "zero date",
			req:  &Request{UserID: 7, BarbershopID: 1},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := uc.Execute(context.Background(), tc.req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_RepositoryError(t *testing.T) {
	t.Parallel()

	uc := NewUseCase(
		&fakeBookingRepo{err: errors.New("connection refused")},
		&fakeCatalogRepo{shop: &domain.Barbershop{ID: 1}},
		true,
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:       7,
		BarbershopID: 1,
		Date:         time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	})
	require.ErrorIs(t, err, ErrInternal)
}
