package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/catalog"
)

type fakeBookingRepo struct {
	existing  []*domain.Booking
	createErr error

	created *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}

	created := *booking
	created.ID = 100
	created.CreatedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

func (f *fakeBookingRepo) GetByShopAndDateRange(_ context.Context, _ int64, start, end time.Time, includeCancelled bool) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0, len(f.existing))
	for _, b := range f.existing {
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
	service *domain.BarbershopService
	err     error
}

func (f *fakeCatalogRepo) GetServiceByID(_ context.Context, _ int64) (*domain.BarbershopService, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.service, nil
}

// fakeTxManager выполняет fn без реальной транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestUseCase(repo *fakeBookingRepo, catalog *fakeCatalogRepo, txMgr *fakeTxManager) *UseCase {
	uc := NewUseCase(repo, catalog, txMgr, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func testService() *domain.BarbershopService {
	return &domain.BarbershopService{
		ID:              5,
		BarbershopID:    1,
		Name:            "Мужская стрижка",
		PriceCents:      150000,
		DurationMinutes: 45,
	}
}

func TestExecute_Success(t *testing.T) {
	t.Parallel()

	repo := &fakeBookingRepo{}
	txMgr := &fakeTxManager{}
	uc := newTestUseCase(repo, &fakeCatalogRepo{service: testService()}, txMgr)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    7,
		ServiceID: 5,
		StartsAt:  time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, int64(7), resp.UserID)
	assert.Equal(t, int64(1), resp.BarbershopID)
	assert.Equal(t, int64(5), resp.ServiceID)
	assert.Equal(t, 45, resp.DurationMinutes)
	assert.False(t, resp.Cancelled)
	assert.Equal(t, "Мужская стрижка", resp.ServiceName)
	assert.Equal(t, int64(150000), resp.ServicePriceCents)

	// Вставка шла через сериализуемую транзакцию
	assert.Equal(t, 1, txMgr.calls)
	require.NotNil(t, repo.created)
	assert.False(t, repo.created.Cancelled)
}

func TestExecute_DurationFallback(t *testing.T) {
	t.Parallel()

	service := testService()
	service.DurationMinutes = 0

	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeCatalogRepo{service: service}, &fakeTxManager{})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    7,
		ServiceID: 5,
		StartsAt:  time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultServiceDurationMinutes, resp.DurationMinutes)
}

func TestExecute_InvalidSlotTime(t *testing.T) {
	t.Parallel()

	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogRepo{service: testService()}, &fakeTxManager{})

	testCases := []struct {
		name     string
		startsAt time.Time
	}{
		{name: "not aligned to step", startsAt: time.Date(2025, 6, 10, 10, 10, 0, 0, time.UTC)},
		{name: "before opening", startsAt: time.Date(2025, 6, 10, 8, 45, 0, 0, time.UTC)},
		{name: "after closing", startsAt: time.Date(2025, 6, 10, 18, 15, 0, 0, time.UTC)},
		{name: "non-zero seconds", startsAt: time.Date(2025, 6, 10, 10, 0, 30, 0, time.UTC)},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := uc.Execute(context.Background(), &Request{
				UserID:    7,
				ServiceID: 5,
				StartsAt:  tc.startsAt,
			})
			require.ErrorIs(t, err, ErrInvalidTimeSlot)
		})
	}
}

func TestExecute_DateInPast(t *testing.T) {
	t.Parallel()

	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogRepo{service: testService()}, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    7,
		ServiceID: 5,
		StartsAt:  time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC),
	})
	require.ErrorIs(t, err, ErrDateInPast)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	t.Parallel()

	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogRepo{err: catalogRepo.ErrServiceNotFound}, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    7,
		ServiceID: 99,
		StartsAt:  time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC),
	})
	require.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_SlotAlreadyTaken(t *testing.T) {
	t.Parallel()

	repo := &fakeBookingRepo{
		existing: []*domain.Booking{
			{ID: 1, BarbershopID: 1, StartsAt: time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)},
		},
	}
	uc := newTestUseCase(repo, &fakeCatalogRepo{service: testService()}, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    7,
		ServiceID: 5,
		StartsAt:  time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC),
	})
	require.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, repo.created)
}

func TestExecute_CancelledBookingDoesNotBlockSlot(t *testing.T) {
	t.Parallel()

	// Отменённое бронирование не мешает повторной записи на тот же слот
	repo := &fakeBookingRepo{
		existing: []*domain.Booking{
			{ID: 1, BarbershopID: 1, StartsAt: time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC), Cancelled: true},
		},
	}
	uc := newTestUseCase(repo, &fakeCatalogRepo{service: testService()}, &fakeTxManager{})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    7,
		ServiceID: 5,
		StartsAt:  time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.ID)
}

func TestExecute_ConcurrentInsertMapsToSlotNotAvailable(t *testing.T) {
	t.Parallel()

	// Уникальный индекс в БД вернул конфликт - конкурент успел раньше
	repo := &fakeBookingRepo{createErr: bookingRepo.ErrSlotTaken}
	uc := newTestUseCase(repo, &fakeCatalogRepo{service: testService()}, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    7,
		ServiceID: 5,
		StartsAt:  time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC),
	})
	require.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_Validation(t *testing.T) {
	t.Parallel()

	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogRepo{service: testService()}, &fakeTxManager{})

	testCases := []struct {
		name string
		req  *Request
	}{
		{name: "zero user id", req: &Request{ServiceID: 5, StartsAt: time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)}},
		{name: "zero service id", req: &Request{UserID: 7, StartsAt: time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)}},
		{name: "zero starts at", req: &Request{UserID: 7, ServiceID: 5}},
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
