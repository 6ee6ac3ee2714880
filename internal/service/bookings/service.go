package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями: чтение, история, отмена
type Service struct {
	bookingRepo  BookingRepository
	catalogRepo  CatalogRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID.
// Пользователь видит только собственные бронирования.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя, разбитую на
// подтверждённые и завершённые относительно текущего момента
func (s *Service) GetUserBookings(ctx context.Context, userID int64) (*models.UserBookingsResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d", userID)

	details, err := s.bookingRepo.GetDetailsByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	// Телефоны барбершопов для карточек бронирований
	shopIDs := make([]int64, 0, len(details))
	seen := make(map[int64]struct{}, len(details))
	for _, d := range details {
		if _, ok := seen[d.BarbershopID]; ok {
			continue
		}
		seen[d.BarbershopID] = struct{}{}
		shopIDs = append(shopIDs, d.BarbershopID)
	}

	phones, err := s.catalogRepo.GetPhonesByBarbershopIDs(ctx, shopIDs)
	if err != nil {
		s.logger.Error("GetUserBookings: failed to get phones for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - failed to get phones: %v", ErrInternal, err)
	}

	confirmed, finished := partitionBookings(details, s.timeProvider.Now())

	s.logger.Info("GetUserBookings: user=%d has %d confirmed and %d finished bookings",
		userID, len(confirmed), len(finished))

	return &models.UserBookingsResponse{
		Confirmed: models.FromBookingDetailsList(confirmed, phones),
		Finished:  models.FromBookingDetailsList(finished, phones),
	}, nil
}

// Cancel отменяет бронирование.
// Пользователь может отменить только своё бронирование; запись не
// удаляется - выставляется флаг cancelled и бронирование уходит в
// завершённые в истории.
func (s *Service) Cancel(ctx context.Context, bookingID int64, userID int64) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, userID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем владение до любых изменений
	if booking.UserID != userID {
		s.logger.Warn("Cancel: access denied for user=%d to booking id=%d", userID, bookingID)
		return ErrAccessDenied
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d already cancelled", bookingID)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID); err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrAlreadyCancelled):
			s.logger.Warn("Cancel: booking id=%d cancelled concurrently", bookingID)
			return ErrCannotCancel
		default:
			s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}
