package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.StartsAt.IsZero() {
		return fmt.Errorf("%w: startsAt is required", ErrInvalidInput)
	}

	return nil
}

// validateSlotTime проверяет, что время бронирования попадает на границу
// слота канонической сетки. Клиент выбирает слот из выдачи
// get_available_slots, но серверная проверка обязательна.
func validateSlotTime(startsAt time.Time) error {
	if !domain.IsValidSlotTime(startsAt) {
		return fmt.Errorf("%w: %s is not on the slot grid", ErrInvalidTimeSlot, startsAt.Format(domain.TimeFormat))
	}
	return nil
}

// validateNotInPast проверяет, что время бронирования не в прошлом
func validateNotInPast(startsAt, now time.Time) error {
	if startsAt.Before(now) {
		return ErrDateInPast
	}
	return nil
}
