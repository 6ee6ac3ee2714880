package domain

import "time"

// Barbershop represents a barbershop with its display metadata
type Barbershop struct {
	ID          int64
	Name        string
	Address     string
	Description string
	ImageURL    string

	// Phones contact phone numbers in display order
	Phones []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BarbershopService represents a single service offered by a barbershop
type BarbershopService struct {
	ID           int64
	BarbershopID int64
	Name         string
	Description  string
	ImageURL     string

	// PriceCents price in minor currency units
	PriceCents int64

	// DurationMinutes how long the service takes; the slot grid stays
	// fixed at SlotStepMinutes regardless of this value
	DurationMinutes int

	CreatedAt time.Time
	UpdatedAt time.Time
}
