package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/catalog"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	catalogRepo  CatalogRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка доступности слота и вставка выполняются в сериализуемой
// транзакции; частичный уникальный индекс в БД закрывает гонку окончательно.
// Любая ошибка оставляет хранилище без изменений.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, service=%d, starts_at=%s",
		req.UserID, req.ServiceID, req.StartsAt.Format(domain.DateFormat+" "+domain.TimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Время должно попадать на границу слота канонической сетки
	if err := validateSlotTime(req.StartsAt); err != nil {
		uc.logger.Warn("CreateBooking: slot time validation failed: %v", err)
		return nil, err
	}

	// 3. Время не в прошлом
	now := uc.timeProvider.Now()
	if err := validateNotInPast(req.StartsAt, now); err != nil {
		uc.logger.Warn("CreateBooking: booking time in the past: user=%d, starts_at=%s",
			req.UserID, req.StartsAt)
		return nil, err
	}

	// 4. Резолвим услугу - по ней определяется барбершоп
	service, err := uc.catalogRepo.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	duration := service.DurationMinutes
	if duration <= 0 {
		duration = domain.DefaultServiceDurationMinutes
	}

	var result *domain.Booking

	// 5. Проверка занятости слота и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Читаем бронирования дня с блокировкой (FOR UPDATE).
		// Отменённые не мешают повторному бронированию слота.
		startOfDay, endOfDay := domain.DayBounds(req.StartsAt)
		bookings, err := uc.bookingRepo.GetByShopAndDateRange(
			txCtx,
			service.BarbershopID,
			startOfDay,
			endOfDay,
			false,
		)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 5.2. Слот занят, если время какого-либо активного бронирования
		// совпадает с запрошенным
		label := req.StartsAt.Format(domain.TimeFormat)
		for _, existing := range bookings {
			if existing.SlotLabel() == label {
				uc.logger.Warn("CreateBooking: slot %s already taken for barbershop=%d",
					label, service.BarbershopID)
				return ErrSlotNotAvailable
			}
		}

		// 5.3. Сохраняем бронирование
		booking := &domain.Booking{
			UserID:          req.UserID,
			BarbershopID:    service.BarbershopID,
			ServiceID:       service.ID,
			StartsAt:        req.StartsAt,
			DurationMinutes: duration,
			Cancelled:       false,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Конкурентная вставка могла успеть раньше - уникальный
			// индекс вернёт ErrSlotTaken
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: slot %s taken concurrently for barbershop=%d",
					label, service.BarbershopID)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:                result.ID,
		UserID:            result.UserID,
		BarbershopID:      result.BarbershopID,
		ServiceID:         result.ServiceID,
		StartsAt:          result.StartsAt,
		DurationMinutes:   result.DurationMinutes,
		Cancelled:         result.Cancelled,
		ServiceName:       service.Name,
		ServicePriceCents: service.PriceCents,
		CreatedAt:         result.CreatedAt,
		UpdatedAt:         result.UpdatedAt,
	}, nil
}
