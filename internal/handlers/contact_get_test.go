package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ekovalova/contactbook/internal/models"
	"github.com/ekovalova/contactbook/internal/services"
)

func TestGetContactHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	contactID := uuid.New()

	tests := []struct {
		name         string
		path         string
		mockSetup    func(m *MockContactGetter)
		expectedCode int
	}{
		{
			name: "found",
			path: "/api/contacts/" + contactID.String(),
			mockSetup: func(m *MockContactGetter) {
				m.EXPECT().
					GetByID(gomock.Any(), ownerID, contactID).
					Return(&models.ContactDB{ContactID: contactID, OwnerID: ownerID}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "not found",
			path: "/api/contacts/" + contactID.String(),
			mockSetup: func(m *MockContactGetter) {
				m.EXPECT().
					GetByID(gomock.Any(), ownerID, contactID).
					Return(nil, services.ErrContactNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "malformed id",
			path:         "/api/contacts/not-a-uuid",
			mockSetup:    func(m *MockContactGetter) {},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockContactGetter(ctrl)
			tt.mockSetup(mockSvc)

			r := chi.NewRouter()
			r.Get("/api/contacts/{id}", NewGetContactHandler(mockSvc, authorizedTokener(ctrl, ownerID)))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
