package catalog

import (
	"context"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	ListBarbershops(ctx context.Context) ([]*domain.Barbershop, error)
	GetBarbershopByID(ctx context.Context, id int64) (*domain.Barbershop, error)
	GetServicesByBarbershopID(ctx context.Context, barbershopID int64) ([]*domain.BarbershopService, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
