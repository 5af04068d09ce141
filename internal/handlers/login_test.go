package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/ekovalova/contactbook/internal/services"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func(m *MockLoginer)
		expectedCode int
		expectedBody *TokenPairResponse
	}{
		{
			name: "success",
			inputBody: LoginRequest{
				Email:    "john@example.com",
				Password: "secret123",
			},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john@example.com", "secret123").
					Return("ACCESS_TOKEN", "REFRESH_TOKEN", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &TokenPairResponse{
				AccessToken:  "ACCESS_TOKEN",
				RefreshToken: "REFRESH_TOKEN",
				TokenType:    "bearer",
			},
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func(m *MockLoginer) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "wrong credentials",
			inputBody: LoginRequest{
				Email:    "john@example.com",
				Password: "wrongpass",
			},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john@example.com", "wrongpass").
					Return("", "", services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "unknown user",
			inputBody: LoginRequest{
				Email:    "ghost@example.com",
				Password: "secret123",
			},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "ghost@example.com", "secret123").
					Return("", "", services.ErrUserDoesNotExist)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "internal error",
			inputBody: LoginRequest{
				Email:    "john@example.com",
				Password: "secret123",
			},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john@example.com", "secret123").
					Return("", "", errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			tt.mockSetup(mockSvc)

			var body bytes.Buffer
			switch v := tt.inputBody.(type) {
			case string:
				body.WriteString(v)
			default:
				json.NewEncoder(&body).Encode(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", &body)
			rr := httptest.NewRecorder()

			NewLoginHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedBody != nil {
				var resp TokenPairResponse
				err := json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Equal(t, *tt.expectedBody, resp)
			}
		})
	}
}
