package domain

// Operating window and slot grid.
// Every barbershop works 09:00-18:00; slots follow a fixed 15-minute grid.
const (
	OpenHour  = 9
	CloseHour = 18

	SlotStepMinutes = 15

	// DefaultServiceDurationMinutes applied when a service has no explicit duration
	DefaultServiceDurationMinutes = 30
)

// Business validation constants
const (
	MinServiceDurationMinutes = 15
	MaxServiceDurationMinutes = 240
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
