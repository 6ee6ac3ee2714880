package bookings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
)

func details(id int64, startsAt time.Time, cancelled bool) *domain.BookingDetails {
	return &domain.BookingDetails{
		Booking: domain.Booking{
			ID:        id,
			UserID:    7,
			StartsAt:  startsAt,
			Cancelled: cancelled,
		},
	}
}

func TestPartitionBookings(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	all := []*domain.BookingDetails{
		details(1, now.Add(48*time.Hour), false),  // будущее
		details(2, now.Add(-24*time.Hour), false), // прошлое
		details(3, now.Add(2*time.Hour), false),   // будущее, ближе
		details(4, now.Add(24*time.Hour), true),   // будущее, но отменено
		details(5, now.Add(-72*time.Hour), false), // давнее прошлое
	}

	confirmed, finished := partitionBookings(all, now)

	// Каждое бронирование ровно в одной из частей
	assert.Equal(t, len(all), len(confirmed)+len(finished))

	// confirmed: будущие не отменённые, по возрастанию времени
	require.Len(t, confirmed, 2)
	assert.Equal(t, int64(3), confirmed[0].ID)
	assert.Equal(t, int64(1), confirmed[1].ID)

	// finished: прошедшие или отменённые, по убыванию времени
	require.Len(t, finished, 3)
	assert.Equal(t, int64(4), finished[0].ID)
	assert.Equal(t, int64(2), finished[1].ID)
	assert.Equal(t, int64(5), finished[2].ID)
}

func TestPartitionBookings_BoundaryExactlyNow(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	// Бронирование ровно на текущий момент считается подтверждённым
	confirmed, finished := partitionBookings([]*domain.BookingDetails{details(1, now, false)}, now)
	assert.Len(t, confirmed, 1)
	assert.Empty(t, finished)
}

func TestPartitionBookings_Empty(t *testing.T) {
	t.Parallel()

	confirmed, finished := partitionBookings(nil, time.Now())
	assert.Empty(t, confirmed)
	assert.Empty(t, finished)
}

func TestPartitionBookings_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	all := []*domain.BookingDetails{
		details(1, now.Add(48*time.Hour), false),
		details(2, now.Add(2*time.Hour), false),
	}

	partitionBookings(all, now)

	assert.Equal(t, int64(1), all[0].ID)
	assert.Equal(t, int64(2), all[1].ID)
}
