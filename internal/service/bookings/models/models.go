package models

import (
	"time"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	"github.com/m04kA/SMC-BarberBookingService/pkg/ptr"
)

// BookingResponse бронирование с дозагруженными услугой и барбершопом
type BookingResponse struct {
	ID              int64  `json:"id"`
	UserID          int64  `json:"userId"`
	BarbershopID    int64  `json:"barbershopId"`
	ServiceID       int64  `json:"serviceId"`
	StartsAt        string `json:"startsAt"` // ISO 8601
	DurationMinutes int    `json:"durationMinutes"`
	Cancelled       bool   `json:"cancelled"`

	Service    *ServiceInfo    `json:"service,omitempty"`
	Barbershop *BarbershopInfo `json:"barbershop,omitempty"`

	CancelledAt *string   `json:"cancelledAt,omitempty"` // ISO 8601
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ServiceInfo данные услуги в составе бронирования
type ServiceInfo struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	ImageURL        string `json:"imageUrl,omitempty"`
	PriceCents      int64  `json:"priceCents"`
	DurationMinutes int    `json:"durationMinutes"`
}

// BarbershopInfo данные барбершопа в составе бронирования
type BarbershopInfo struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Address  string   `json:"address"`
	ImageURL string   `json:"imageUrl,omitempty"`
	Phones   []string `json:"phones"`
}

// UserBookingsResponse история бронирований пользователя, разбитая на
// подтверждённые (будущие, не отменённые) и завершённые (прошедшие или
// отменённые)
type UserBookingsResponse struct {
	Confirmed []BookingResponse `json:"confirmed"`
	Finished  []BookingResponse `json:"finished"`
}

// FromBookingDetails конвертирует domain модель в DTO
func FromBookingDetails(d *domain.BookingDetails, phones []string) *BookingResponse {
	if d == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:              d.ID,
		UserID:          d.UserID,
		BarbershopID:    d.BarbershopID,
		ServiceID:       d.ServiceID,
		StartsAt:        d.StartsAt.Format(time.RFC3339),
		DurationMinutes: d.DurationMinutes,
		Cancelled:       d.Cancelled,
		Service: &ServiceInfo{
			ID:              d.Service.ID,
			Name:            d.Service.Name,
			Description:     d.Service.Description,
			ImageURL:        d.Service.ImageURL,
			PriceCents:      d.Service.PriceCents,
			DurationMinutes: d.Service.DurationMinutes,
		},
		Barbershop: &BarbershopInfo{
			ID:       d.Barbershop.ID,
			Name:     d.Barbershop.Name,
			Address:  d.Barbershop.Address,
			ImageURL: d.Barbershop.ImageURL,
			Phones:   phones,
		},
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}

	if resp.Barbershop.Phones == nil {
		resp.Barbershop.Phones = []string{}
	}

	if d.CancelledAt != nil {
		resp.CancelledAt = ptr.Ptr(d.CancelledAt.Format(time.RFC3339))
	}

	return resp
}

// FromBookingDetailsList конвертирует список domain моделей в DTO
func FromBookingDetailsList(details []*domain.BookingDetails, phones map[int64][]string) []BookingResponse {
	result := make([]BookingResponse, 0, len(details))
	for _, d := range details {
		if resp := FromBookingDetails(d, phones[d.BarbershopID]); resp != nil {
			result = append(result, *resp)
		}
	}
	return result
}

// FromDomainBooking конвертирует бронирование без дозагруженных данных
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:              b.ID,
		UserID:          b.UserID,
		BarbershopID:    b.BarbershopID,
		ServiceID:       b.ServiceID,
		StartsAt:        b.StartsAt.Format(time.RFC3339),
		DurationMinutes: b.DurationMinutes,
		Cancelled:       b.Cancelled,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		resp.CancelledAt = ptr.Ptr(b.CancelledAt.Format(time.RFC3339))
	}

	return resp
}
