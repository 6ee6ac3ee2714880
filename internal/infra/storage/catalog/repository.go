package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	"github.com/m04kA/SMC-BarberBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberBookingService/pkg/psqlbuilder"
)

// Repository репозиторий каталога барбершопов и их услуг.
// Каталог для движка бронирования read-only: сервис никогда не мутирует
// барбершопы и услуги.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListBarbershops возвращает все барбершопы с телефонами
func (r *Repository) ListBarbershops(ctx context.Context) ([]*domain.Barbershop, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(barbershopColumns()...).
		From("barbershops").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBarbershops - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBarbershops - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	shops := make([]*domain.Barbershop, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		shop, err := scanBarbershop(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListBarbershops - scan row: %v", ErrScanRow, err)
		}
		shops = append(shops, shop)
		ids = append(ids, shop.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBarbershops - rows error: %v", ErrScanRow, err)
	}

	phones, err := r.GetPhonesByBarbershopIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, shop := range shops {
		shop.Phones = phones[shop.ID]
	}

	return shops, nil
}

// GetBarbershopByID возвращает барбершоп с телефонами
func (r *Repository) GetBarbershopByID(ctx context.Context, id int64) (*domain.Barbershop, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(barbershopColumns()...).
		From("barbershops").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBarbershopByID - build select query: %v", ErrBuildQuery, err)
	}

	shop, err := scanBarbershop(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBarbershopNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBarbershopByID - scan barbershop: %v", ErrScanRow, err)
	}

	phones, err := r.GetPhonesByBarbershopIDs(ctx, []int64{shop.ID})
	if err != nil {
		return nil, err
	}
	shop.Phones = phones[shop.ID]

	return shop, nil
}

// GetPhonesByBarbershopIDs возвращает телефоны барбершопов с сохранением
// порядка отображения
func (r *Repository) GetPhonesByBarbershopIDs(ctx context.Context, ids []int64) (map[int64][]string, error) {
	phones := make(map[int64][]string, len(ids))
	if len(ids) == 0 {
		return phones, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("barbershop_id", "phone").
		From("barbershop_phones").
		Where(squirrel.Eq{"barbershop_id": ids}).
		OrderBy("barbershop_id ASC", "position ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetPhonesByBarbershopIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetPhonesByBarbershopIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var shopID int64
		var phone string
		if err := rows.Scan(&shopID, &phone); err != nil {
			return nil, fmt.Errorf("%w: GetPhonesByBarbershopIDs - scan row: %v", ErrScanRow, err)
		}
		phones[shopID] = append(phones[shopID], phone)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetPhonesByBarbershopIDs - rows error: %v", ErrScanRow, err)
	}

	return phones, nil
}

// GetServicesByBarbershopID возвращает услуги барбершопа
func (r *Repository) GetServicesByBarbershopID(ctx context.Context, barbershopID int64) ([]*domain.BarbershopService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns()...).
		From("barbershop_services").
		Where(squirrel.Eq{"barbershop_id": barbershopID}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetServicesByBarbershopID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetServicesByBarbershopID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.BarbershopService, 0)
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetServicesByBarbershopID - scan row: %v", ErrScanRow, err)
		}
		services = append(services, service)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetServicesByBarbershopID - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// GetServiceByID возвращает услугу по ID.
// Через неё create_booking определяет барбершоп бронирования.
func (r *Repository) GetServiceByID(ctx context.Context, id int64) (*domain.BarbershopService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns()...).
		From("barbershop_services").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - build select query: %v", ErrBuildQuery, err)
	}

	service, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - scan service: %v", ErrScanRow, err)
	}

	return service, nil
}

func barbershopColumns() []string {
	return []string{
		"id",
		"name",
		"address",
		"description",
		"image_url",
		"created_at",
		"updated_at",
	}
}

func serviceColumns() []string {
	return []string{
		"id",
		"barbershop_id",
		"name",
		"description",
		"image_url",
		"price_cents",
		"duration_minutes",
		"created_at",
		"updated_at",
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBarbershop(row rowScanner) (*domain.Barbershop, error) {
	var shop domain.Barbershop
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&shop.ID,
		&shop.Name,
		&shop.Address,
		&shop.Description,
		&shop.ImageURL,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	shop.CreatedAt = createdAt.Time
	shop.UpdatedAt = updatedAt.Time

	return &shop, nil
}

func scanService(row rowScanner) (*domain.BarbershopService, error) {
	var service domain.BarbershopService
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&service.ID,
		&service.BarbershopID,
		&service.Name,
		&service.Description,
		&service.ImageURL,
		&service.PriceCents,
		&service.DurationMinutes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	service.CreatedAt = createdAt.Time
	service.UpdatedAt = updatedAt.Time

	return &service, nil
}
