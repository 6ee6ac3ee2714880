package create_booking

import (
	"time"

	createBooking "github.com/m04kA/SMC-BarberBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID int64  `json:"serviceId"`
	StartsAt  string `json:"startsAt"` // ISO 8601, например 2025-06-10T10:00:00Z
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64  `json:"id"`
	UserID          int64  `json:"userId"`
	BarbershopID    int64  `json:"barbershopId"`
	ServiceID       int64  `json:"serviceId"`
	StartsAt        string `json:"startsAt"`
	DurationMinutes int    `json:"durationMinutes"`
	Cancelled       bool   `json:"cancelled"`

	ServiceName       string `json:"serviceName"`
	ServicePriceCents int64  `json:"servicePriceCents"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	startsAt, err := time.Parse(time.RFC3339, r.StartsAt)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:    userID,
		ServiceID: r.ServiceID,
		StartsAt:  startsAt,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:                resp.ID,
		UserID:            resp.UserID,
		BarbershopID:      resp.BarbershopID,
		ServiceID:         resp.ServiceID,
		StartsAt:          resp.StartsAt.Format(time.RFC3339),
		DurationMinutes:   resp.DurationMinutes,
		Cancelled:         resp.Cancelled,
		ServiceName:       resp.ServiceName,
		ServicePriceCents: resp.ServicePriceCents,
		CreatedAt:         resp.CreatedAt,
		UpdatedAt:         resp.UpdatedAt,
	}
}
