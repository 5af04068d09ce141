package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name             string
		mockSetup        func(m *MockLimiter)
		expectedStatus   int
		expectNextCalled bool
	}{
		{
			name: "Allowed",
			mockSetup: func(m *MockLimiter) {
				m.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
		{
			name: "Limited",
			mockSetup: func(m *MockLimiter) {
				m.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			expectedStatus:   http.StatusTooManyRequests,
			expectNextCalled: false,
		},
		{
			name: "BackendDownFailsOpen",
			mockSetup: func(m *MockLimiter) {
				m.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(false, errors.New("redis down"))
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockLimiter := NewMockLimiter(ctrl)
			tt.mockSetup(mockLimiter)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			handler := RateLimitMiddleware(mockLimiter)(next)

			req := httptest.NewRequest(http.MethodGet, "/api/contacts", nil)
			req.Header.Set("Authorization", "Bearer sometoken")
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
		})
	}
}

func TestRateLimitMiddleware_KeyFallsBackToRemoteAddr(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLimiter := NewMockLimiter(ctrl)

	var seenKey string
	mockLimiter.EXPECT().
		Allow(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, key string) (bool, error) {
			seenKey = key
			return true, nil
		})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/contacts", nil)
	rr := httptest.NewRecorder()

	RateLimitMiddleware(mockLimiter)(next).ServeHTTP(rr, req)

	assert.Equal(t, req.RemoteAddr, seenKey)
}
