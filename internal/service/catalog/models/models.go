package models

import "github.com/m04kA/SMC-BarberBookingService/internal/domain"

// BarbershopResponse барбершоп в списке каталога
type BarbershopResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Phones      []string `json:"phones"`
}

// BarbershopDetailsResponse барбершоп с услугами
type BarbershopDetailsResponse struct {
	BarbershopResponse
	Services []ServiceResponse `json:"services"`
}

// ServiceResponse услуга барбершопа
type ServiceResponse struct {
	ID              int64  `json:"id"`
	BarbershopID    int64  `json:"barbershopId"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	ImageURL        string `json:"imageUrl,omitempty"`
	PriceCents      int64  `json:"priceCents"`
	DurationMinutes int    `json:"durationMinutes"`
}

// BarbershopListResponse список барбершопов
type BarbershopListResponse struct {
	Barbershops []BarbershopResponse `json:"barbershops"`
}

// FromDomainBarbershop конвертирует domain модель в DTO
func FromDomainBarbershop(shop *domain.Barbershop) BarbershopResponse {
	phones := shop.Phones
	if phones == nil {
		phones = []string{}
	}

	return BarbershopResponse{
		ID:          shop.ID,
		Name:        shop.Name,
		Address:     shop.Address,
		Description: shop.Description,
		ImageURL:    shop.ImageURL,
		Phones:      phones,
	}
}

// FromDomainService конвертирует услугу в DTO
func FromDomainService(service *domain.BarbershopService) ServiceResponse {
	return ServiceResponse{
		ID:              service.ID,
		BarbershopID:    service.BarbershopID,
		Name:            service.Name,
		Description:     service.Description,
		ImageURL:        service.ImageURL,
		PriceCents:      service.PriceCents,
		DurationMinutes: service.DurationMinutes,
	}
}
