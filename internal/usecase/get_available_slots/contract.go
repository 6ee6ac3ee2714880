package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByShopAndDateRange получает бронирования барбершопа в интервале [start, end]
	GetByShopAndDateRange(ctx context.Context, barbershopID int64, start, end time.Time, includeCancelled bool) ([]*domain.Booking, error)
}

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetBarbershopByID(ctx context.Context, id int64) (*domain.Barbershop, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
