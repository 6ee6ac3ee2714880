package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/catalog"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	bookingRepo BookingRepository
	catalogRepo CatalogRepository
	logger      Logger

	// countCancelledAsOccupied учитывать ли отменённые бронирования
	// как занимающие слот (историческое поведение)
	countCancelledAsOccupied bool
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	countCancelledAsOccupied bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:              bookingRepo,
		catalogRepo:              catalogRepo,
		countCancelledAsOccupied: countCancelledAsOccupied,
		logger:                   logger,
	}
}

// Execute выполняет use case получения доступных слотов.
// Возвращает полную сетку слотов дня за вычетом занятых; пустой список
// означает "свободных слотов нет", а не ошибку.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%d, barbershop=%d, date=%s",
		req.UserID, req.BarbershopID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование барбершопа
	if _, err := uc.catalogRepo.GetBarbershopByID(ctx, req.BarbershopID); err != nil {
		if errors.Is(err, catalogRepo.ErrBarbershopNotFound) {
			uc.logger.Warn("GetAvailableSlots: barbershop id=%d not found", req.BarbershopID)
			return nil, ErrBarbershopNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get barbershop id=%d: %v", req.BarbershopID, err)
		return nil, fmt.Errorf("%w: failed to get barbershop: %v", ErrInternal, err)
	}

	// 3. Получаем бронирования барбершопа в границах календарного дня
	startOfDay, endOfDay := domain.DayBounds(req.Date)
	bookings, err := uc.bookingRepo.GetByShopAndDateRange(
		ctx,
		req.BarbershopID,
		startOfDay,
		endOfDay,
		uc.countCancelledAsOccupied,
	)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Фильтруем сетку слотов по занятым
	allSlots := domain.GenerateDaySlots()
	available := filterAvailableSlots(allSlots, occupiedSlotSet(bookings))

	uc.logger.Info("GetAvailableSlots: %d of %d slots available for barbershop=%d, date=%s",
		len(available), len(allSlots), req.BarbershopID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:         req.Date,
		BarbershopID: req.BarbershopID,
		Slots:        available,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BarbershopID <= 0 {
		return fmt.Errorf("%w: barbershopID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
