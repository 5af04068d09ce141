package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ekovalova/contactbook/internal/services"
)

func TestDeleteContactHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	contactID := uuid.New()

	tests := []struct {
		name         string
		mockSetup    func(m *MockContactDeleter)
		expectedCode int
	}{
		{
			name: "deleted",
			mockSetup: func(m *MockContactDeleter) {
				m.EXPECT().Delete(gomock.Any(), ownerID, contactID).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "not found",
			mockSetup: func(m *MockContactDeleter) {
				m.EXPECT().Delete(gomock.Any(), ownerID, contactID).
					Return(services.ErrContactNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockContactDeleter(ctrl)
			tt.mockSetup(mockSvc)

			r := chi.NewRouter()
			r.Delete("/api/contacts/{id}", NewDeleteContactHandler(mockSvc, authorizedTokener(ctrl, ownerID)))

			req := httptest.NewRequest(http.MethodDelete, "/api/contacts/"+contactID.String(), nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
