package handlers

import (
	"bytes"
	"encoding/json"
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

func TestUpdateContactHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	contactID := uuid.New()
	newPhone := "+987654321"

	tests := []struct {
		name         string
		body         interface{}
		mockSetup    func(m *MockContactUpdater)
		expectedCode int
	}{
		{
			name: "phone only",
			body: models.ContactPatch{PhoneNumber: &newPhone},
			mockSetup: func(m *MockContactUpdater) {
				m.EXPECT().
					Update(gomock.Any(), ownerID, contactID, models.ContactPatch{PhoneNumber: &newPhone}).
					Return(&models.ContactDB{ContactID: contactID, OwnerID: ownerID, PhoneNumber: newPhone}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "empty patch is a no-op",
			body: models.ContactPatch{},
			mockSetup: func(m *MockContactUpdater) {
				m.EXPECT().
					Update(gomock.Any(), ownerID, contactID, models.ContactPatch{}).
					Return(&models.ContactDB{ContactID: contactID, OwnerID: ownerID}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "not found",
			body: models.ContactPatch{PhoneNumber: &newPhone},
			mockSetup: func(m *MockContactUpdater) {
				m.EXPECT().
					Update(gomock.Any(), ownerID, contactID, gomock.Any()).
					Return(nil, services.ErrContactNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "email conflict",
			body: models.ContactPatch{PhoneNumber: &newPhone},
			mockSetup: func(m *MockContactUpdater) {
				m.EXPECT().
					Update(gomock.Any(), ownerID, contactID, gomock.Any()).
					Return(nil, services.ErrContactEmailExists)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "invalid JSON",
			body:         "{invalid json}",
			mockSetup:    func(m *MockContactUpdater) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockContactUpdater(ctrl)
			tt.mockSetup(mockSvc)

			var body bytes.Buffer
			switch v := tt.body.(type) {
			case string:
				body.WriteString(v)
			default:
				json.NewEncoder(&body).Encode(v)
			}

			r := chi.NewRouter()
			r.Put("/api/contacts/{id}", NewUpdateContactHandler(mockSvc, authorizedTokener(ctrl, ownerID)))

			req := httptest.NewRequest(http.MethodPut, "/api/contacts/"+contactID.String(), &body)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
