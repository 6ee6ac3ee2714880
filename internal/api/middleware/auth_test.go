package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBookingService/internal/integrations/authservice"
)

type fakeSessionResolver struct {
	session *authservice.Session
	err     error

	gotToken string
}

func (f *fakeSessionResolver) GetSession(_ context.Context, token string) (*authservice.Session, error) {
	f.gotToken = token
	if f.err != nil {
		return nil, f.err
	}
	return f.session, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestAuth(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		authHeader     string
		resolver       *fakeSessionResolver
		expectedStatus int
		expectedUserID int64
	}{
		{
			name:           "valid token",
			authHeader:     "Bearer token-123",
			resolver:       &fakeSessionResolver{session: &authservice.Session{UserID: 7}},
			expectedStatus: http.StatusOK,
			expectedUserID: 7,
		},
		{
			name:           "missing header",
			authHeader:     "",
			resolver:       &fakeSessionResolver{},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong scheme",
			authHeader:     "Basic dXNlcjpwYXNz",
			resolver:       &fakeSessionResolver{},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "session not found",
			authHeader:     "Bearer expired-token",
			resolver:       &fakeSessionResolver{err: authservice.ErrSessionNotFound},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "auth service failure",
			authHeader:     "Bearer token-123",
			resolver:       &fakeSessionResolver{err: errors.New("connection refused")},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var gotUserID int64
			var nextCalled bool

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotUserID, _ = GetUserID(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			recorder := httptest.NewRecorder()

			Auth(tc.resolver, nopLogger{})(next).ServeHTTP(recorder, req)

			assert.Equal(t, tc.expectedStatus, recorder.Code)
			if tc.expectedStatus == http.StatusOK {
				require.True(t, nextCalled)
				assert.Equal(t, tc.expectedUserID, gotUserID)
				assert.Equal(t, "token-123", tc.resolver.gotToken)
			} else {
				assert.False(t, nextCalled)
			}
		})
	}
}

func TestGetUserID_MissingFromContext(t *testing.T) {
	t.Parallel()

	_, ok := GetUserID(context.Background())
	assert.False(t, ok)
}
