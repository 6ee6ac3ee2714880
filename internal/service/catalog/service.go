package catalog

import (
	"context"
	"errors"
	"fmt"

	catalogRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/catalog/models"
)

// Service сервис каталога барбершопов (read-only)
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// List возвращает все барбершопы
func (s *Service) List(ctx context.Context) (*models.BarbershopListResponse, error) {
	s.logger.Info("List: fetching barbershops")

	shops, err := s.catalogRepo.ListBarbershops(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &models.BarbershopListResponse{
		Barbershops: make([]models.BarbershopResponse, 0, len(shops)),
	}
	for _, shop := range shops {
		resp.Barbershops = append(resp.Barbershops, models.FromDomainBarbershop(shop))
	}

	s.logger.Info("List: successfully fetched %d barbershops", len(resp.Barbershops))
	return resp, nil
}

// GetByID возвращает барбершоп с услугами
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BarbershopDetailsResponse, error) {
	s.logger.Info("GetByID: fetching barbershop id=%d", id)

	shop, err := s.catalogRepo.GetBarbershopByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrBarbershopNotFound) {
			s.logger.Warn("GetByID: barbershop id=%d not found", id)
			return nil, ErrBarbershopNotFound
		}
		s.logger.Error("GetByID: repository error for barbershop id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	services, err := s.catalogRepo.GetServicesByBarbershopID(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to get services for barbershop id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - failed to get services: %v", ErrInternal, err)
	}

	resp := &models.BarbershopDetailsResponse{
		BarbershopResponse: models.FromDomainBarbershop(shop),
		Services:           make([]models.ServiceResponse, 0, len(services)),
	}
	for _, service := range services {
		resp.Services = append(resp.Services, models.FromDomainService(service))
	}

	s.logger.Info("GetByID: successfully fetched barbershop id=%d with %d services", id, len(resp.Services))
	return resp, nil
}
