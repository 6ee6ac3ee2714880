package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	"github.com/m04kA/SMC-BarberBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberBookingService/pkg/psqlbuilder"
)

// pqUniqueViolation код ошибки PostgreSQL при нарушении уникального индекса
const pqUniqueViolation = "23505"

// slotUniqueIndex частичный уникальный индекс, гарантирующий не более одного
// неотменённого бронирования на (барбершоп, время)
const slotUniqueIndex = "uniq_bookings_active_slot"

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте передана активная транзакция, использует её.
//
// Уникальность слота обеспечивается на двух уровнях:
// - сериализуемая транзакция вокруг проверки доступности и вставки
// - частичный уникальный индекс (barbershop_id, starts_at) WHERE NOT cancelled,
//   нарушение которого транслируется в ErrSlotTaken
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"barbershop_id",
			"service_id",
			"starts_at",
			"duration_minutes",
			"cancelled",
		).
		Values(
			booking.UserID,
			booking.BarbershopID,
			booking.ServiceID,
			booking.StartsAt,
			booking.DurationMinutes,
			booking.Cancelled,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation && pqErr.Constraint == slotUniqueIndex {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns()...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByShopAndDateRange получает бронирования барбершопа, чьё время попадает
// в интервал [start, end] (границы календарного дня).
// includeCancelled управляет учётом отменённых бронирований.
//
// Внутри транзакции добавляет FOR UPDATE - строки блокируются на время
// проверки доступности слота при создании бронирования.
func (r *Repository) GetByShopAndDateRange(
	ctx context.Context,
	barbershopID int64,
	start, end time.Time,
	includeCancelled bool,
) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns()...).
		From("bookings").
		Where(squirrel.Eq{"barbershop_id": barbershopID}).
		Where(squirrel.GtOrEq{"starts_at": start}).
		Where(squirrel.LtOrEq{"starts_at": end}).
		OrderBy("starts_at ASC")

	if !includeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"cancelled": false})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByShopAndDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByShopAndDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetDetailsByUserID получает бронирования пользователя с данными услуги и
// барбершопа, отсортированные по времени (сначала новые)
func (r *Repository) GetDetailsByUserID(ctx context.Context, userID int64) ([]*domain.BookingDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"b.id",
		"b.user_id",
		"b.barbershop_id",
		"b.service_id",
		"b.starts_at",
		"b.duration_minutes",
		"b.cancelled",
		"b.cancelled_at",
		"b.created_at",
		"b.updated_at",
		"s.name",
		"s.description",
		"s.image_url",
		"s.price_cents",
		"s.duration_minutes",
		"bs.name",
		"bs.address",
		"bs.description",
		"bs.image_url",
	).
		From("bookings b").
		Join("barbershop_services s ON s.id = b.service_id").
		Join("barbershops bs ON bs.id = b.barbershop_id").
		Where(squirrel.Eq{"b.user_id": userID}).
		OrderBy("b.starts_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDetailsByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetDetailsByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	details := make([]*domain.BookingDetails, 0)
	for rows.Next() {
		var d domain.BookingDetails
		var cancelledAt, createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&d.ID,
			&d.UserID,
			&d.BarbershopID,
			&d.ServiceID,
			&d.StartsAt,
			&d.DurationMinutes,
			&d.Cancelled,
			&cancelledAt,
			&createdAt,
			&updatedAt,
			&d.Service.Name,
			&d.Service.Description,
			&d.Service.ImageURL,
			&d.Service.PriceCents,
			&d.Service.DurationMinutes,
			&d.Barbershop.Name,
			&d.Barbershop.Address,
			&d.Barbershop.Description,
			&d.Barbershop.ImageURL,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetDetailsByUserID - scan row: %v", ErrScanRow, err)
		}

		if cancelledAt.Valid {
			d.CancelledAt = &cancelledAt.Time
		}
		d.CreatedAt = createdAt.Time
		d.UpdatedAt = updatedAt.Time
		d.Service.ID = d.ServiceID
		d.Service.BarbershopID = d.BarbershopID
		d.Barbershop.ID = d.BarbershopID

		details = append(details, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetDetailsByUserID - rows error: %v", ErrScanRow, err)
	}

	return details, nil
}

// Cancel помечает бронирование отменённым.
// Бронирования никогда не удаляются физически - история сохраняется.
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("cancelled", true).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "cancelled": false}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Либо бронирования нет, либо оно уже отменено - уточняем
		existing, getErr := r.GetByID(ctx, id)
		if getErr != nil {
			return ErrBookingNotFound
		}
		if existing.Cancelled {
			return ErrAlreadyCancelled
		}
		return ErrBookingNotFound
	}

	return nil
}

// bookingColumns список колонок таблицы bookings в порядке сканирования
func bookingColumns() []string {
	return []string{
		"id",
		"user_id",
		"barbershop_id",
		"service_id",
		"starts_at",
		"duration_minutes",
		"cancelled",
		"cancelled_at",
		"created_at",
		"updated_at",
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку в бронирование
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var cancelledAt, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.BarbershopID,
		&booking.ServiceID,
		&booking.StartsAt,
		&booking.DurationMinutes,
		&booking.Cancelled,
		&cancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if cancelledAt.Valid {
		booking.CancelledAt = &cancelledAt.Time
	}
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
