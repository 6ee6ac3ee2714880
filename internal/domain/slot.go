package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBookingService/pkg/types"
)

// GenerateDaySlots генерирует канонический список слотов рабочего дня:
// с 09:00 до 17:45 с шагом 15 минут плюс завершающий слот 18:00.
// Всего 33 слота, строго по возрастанию, без дубликатов.
// Этот список - единственный источник правды для валидных значений слотов.
func GenerateDaySlots() []types.TimeString {
	slots := make([]types.TimeString, 0, (CloseHour-OpenHour)*4+1)

	for hour := OpenHour; hour < CloseHour; hour++ {
		for _, minute := range []int{0, 15, 30, 45} {
			slots = append(slots, types.TimeString(fmt.Sprintf("%02d:%02d", hour, minute)))
		}
	}

	// Завершающий слот ровно в закрытие
	slots = append(slots, types.TimeString(fmt.Sprintf("%02d:00", CloseHour)))

	return slots
}

// IsValidSlotTime проверяет, что время попадает на границу слота:
// минуты кратны 15, час в рабочем окне, 18:00 - последний допустимый слот
func IsValidSlotTime(t time.Time) bool {
	hour, minute := t.Hour(), t.Minute()

	if t.Second() != 0 || t.Nanosecond() != 0 {
		return false
	}
	if minute%SlotStepMinutes != 0 {
		return false
	}
	if hour < OpenHour || hour > CloseHour {
		return false
	}
	if hour == CloseHour && minute != 0 {
		return false
	}
	return true
}

// DayBounds возвращает границы календарного дня [начало, конец] для запроса
// занятых слотов (время суток запроса игнорируется)
func DayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, 999999999, date.Location())
	return start, end
}
