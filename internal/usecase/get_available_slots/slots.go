package get_available_slots

import (
	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	"github.com/m04kA/SMC-BarberBookingService/pkg/types"
)

// occupiedSlotSet строит множество занятых слотов: время каждого
// бронирования форматируется в "HH:MM"
func occupiedSlotSet(bookings []*domain.Booking) map[types.TimeString]struct{} {
	occupied := make(map[types.TimeString]struct{}, len(bookings))
	for _, booking := range bookings {
		occupied[types.TimeString(booking.SlotLabel())] = struct{}{}
	}
	return occupied
}

// filterAvailableSlots возвращает слоты дня за вычетом занятых,
// с сохранением исходного порядка генерации
func filterAvailableSlots(allSlots []types.TimeString, occupied map[types.TimeString]struct{}) []types.TimeString {
	available := make([]types.TimeString, 0, len(allSlots))
	for _, slot := range allSlots {
		if _, taken := occupied[slot]; taken {
			continue
		}
		available = append(available, slot)
	}
	return available
}
