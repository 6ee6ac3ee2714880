package domain

import "time"

// Booking represents a reservation of a barbershop service at a fixed time slot
type Booking struct {
	ID           int64
	UserID       int64
	BarbershopID int64
	ServiceID    int64

	// StartsAt combines the booking date and the slot start time.
	// Its time-of-day always matches one of the generated slot labels.
	StartsAt        time.Time
	DurationMinutes int

	Cancelled   bool
	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SlotLabel returns the booking's time-of-day formatted as "HH:MM"
func (b *Booking) SlotLabel() string {
	return b.StartsAt.Format(TimeFormat)
}

// IsConfirmedAt returns true if the booking is upcoming and not cancelled
func (b *Booking) IsConfirmedAt(now time.Time) bool {
	return !b.Cancelled && !b.StartsAt.Before(now)
}

// IsFinishedAt returns true if the booking is in the past or cancelled
func (b *Booking) IsFinishedAt(now time.Time) bool {
	return b.Cancelled || b.StartsAt.Before(now)
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return !b.Cancelled
}

// BookingDetails бронирование с дозагруженными данными услуги и барбершопа
// (для истории бронирований пользователя)
type BookingDetails struct {
	Booking
	Service    BarbershopService
	Barbershop Barbershop
}
