package bookings

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
)

// partitionBookings разбивает бронирования пользователя на две части
// относительно фиксированного now:
//   - confirmed: не отменённые с временем в будущем (или ровно now),
//     по возрастанию времени - ближайшие первыми
//   - finished: прошедшие или отменённые, по убыванию времени -
//     недавние первыми
//
// Предикаты взаимодополняющие: каждое бронирование попадает ровно в одну
// из частей. Функция чистая, исходный слайс не изменяется.
func partitionBookings(all []*domain.BookingDetails, now time.Time) (confirmed, finished []*domain.BookingDetails) {
	confirmed = make([]*domain.BookingDetails, 0, len(all))
	finished = make([]*domain.BookingDetails, 0, len(all))

	for _, b := range all {
		if b.IsConfirmedAt(now) {
			confirmed = append(confirmed, b)
		} else {
			finished = append(finished, b)
		}
	}

	sort.SliceStable(confirmed, func(i, j int) bool {
		return confirmed[i].StartsAt.Before(confirmed[j].StartsAt)
	})
	sort.SliceStable(finished, func(i, j int) bool {
		return finished[i].StartsAt.After(finished[j].StartsAt)
	})

	return confirmed, finished
}
