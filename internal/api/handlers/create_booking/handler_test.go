package create_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBookingService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-BarberBookingService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error

	gotReq *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRequest(body string, userID int64) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if userID > 0 {
		req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	}
	return req
}

func TestHandle(t *testing.T) {
	t.Parallel()

	startsAt := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)
	successResp := &createBooking.Response{
		ID:                100,
		UserID:            7,
		BarbershopID:      1,
		ServiceID:         5,
		StartsAt:          startsAt,
		DurationMinutes:   45,
		ServiceName:       "Мужская стрижка",
		ServicePriceCents: 150000,
	}

	testCases := []struct {
		name           string
		body           string
		userID         int64
		useCase        *fakeUseCase
		expectedStatus int
	}{
		{
			name:           "success",
			body:           `{"serviceId": 5, "startsAt": "2025-06-10T10:00:00Z"}`,
			userID:         7,
			useCase:        &fakeUseCase{resp: successResp},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing user id",
			body:           `{"serviceId": 5, "startsAt": "2025-06-10T10:00:00Z"}`,
			userID:         0,
			useCase:        &fakeUseCase{},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid json",
			body:           `not json`,
			userID:         7,
			useCase:        &fakeUseCase{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown field rejected",
			body:           `{"serviceId": 5, "startsAt": "2025-06-10T10:00:00Z", "extra": true}`,
			userID:         7,
			useCase:        &fakeUseCase{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid starts at format",
			body:           `{"serviceId": 5, "startsAt": "10:00"}`,
			userID:         7,
			useCase:        &fakeUseCase{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "service not found",
			body:           `{"serviceId": 99, "startsAt": "2025-06-10T10:00:00Z"}`,
			userID:         7,
			useCase:        &fakeUseCase{err: createBooking.ErrServiceNotFound},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "slot taken",
			body:           `{"serviceId": 5, "startsAt": "2025-06-10T10:00:00Z"}`,
			userID:         7,
			useCase:        &fakeUseCase{err: createBooking.ErrSlotNotAvailable},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "off-grid time",
			body:           `{"serviceId": 5, "startsAt": "2025-06-10T10:10:00Z"}`,
			userID:         7,
			useCase:        &fakeUseCase{err: createBooking.ErrInvalidTimeSlot},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "time in the past",
			body:           `{"serviceId": 5, "startsAt": "2020-01-01T10:00:00Z"}`,
			userID:         7,
			useCase:        &fakeUseCase{err: createBooking.ErrDateInPast},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "internal error",
			body:           `{"serviceId": 5, "startsAt": "2025-06-10T10:00:00Z"}`,
			userID:         7,
			useCase:        &fakeUseCase{err: errors.New("boom")},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			handler := NewHandler(tc.useCase, nopLogger{})
			recorder := httptest.NewRecorder()

			handler.Handle(recorder, newRequest(tc.body, tc.userID))

			assert.Equal(t, tc.expectedStatus, recorder.Code)
		})
	}
}

func TestHandle_SuccessBody(t *testing.T) {
	t.Parallel()

	startsAt := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)
	useCase := &fakeUseCase{resp: &createBooking.Response{
		ID:                100,
		UserID:            7,
		BarbershopID:      1,
		ServiceID:         5,
		StartsAt:          startsAt,
		DurationMinutes:   45,
		ServiceName:       "Мужская стрижка",
		ServicePriceCents: 150000,
	}}

	handler := NewHandler(useCase, nopLogger{})
	recorder := httptest.NewRecorder()

	handler.Handle(recorder, newRequest(`{"serviceId": 5, "startsAt": "2025-06-10T10:00:00Z"}`, 7))

	require.Equal(t, http.StatusCreated, recorder.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, "2025-06-10T10:00:00Z", resp.StartsAt)
	assert.Equal(t, int64(150000), resp.ServicePriceCents)

	// userID берётся из контекста, а не из тела запроса
	require.NotNil(t, useCase.gotReq)
	assert.Equal(t, int64(7), useCase.gotReq.UserID)
	assert.Equal(t, startsAt, useCase.gotReq.StartsAt)
}
