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

	"github.com/AfriTokeni/afritokeni-core/internal/errs"
	"github.com/AfriTokeni/afritokeni-core/internal/models"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	phone := "+256700000001"

	tests := []struct {
		name         string
		reqBody      RegisterRequest
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedBody map[string]string
		rawBody      bool // if true, pass raw body (to simulate invalid JSON)
	}{
		{
			name: "success",
			reqBody: RegisterRequest{
				UserType:    "user",
				PhoneNumber: &phone,
				FirstName:   "Amina",
				Pin:         "1234",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), gomock.Any()).
					Return(&models.User{ID: "user1"}, nil)
			},
			expectedCode: 201,
			expectedBody: map[string]string{"user_id": "user1", "message": "User registered successfully"},
		},
		{
			name: "duplicate identifier",
			reqBody: RegisterRequest{
				UserType:    "user",
				PhoneNumber: &phone,
				Pin:         "1234",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), gomock.Any()).
					Return(nil, errs.InvalidInput("A user with this identifier already exists"))
			},
			expectedCode: 400,
			expectedBody: map[string]string{"error": "A user with this identifier already exists"},
		},
		{
			name: "internal server error",
			reqBody: RegisterRequest{
				UserType:    "user",
				PhoneNumber: &phone,
				Pin:         "1234",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]string{"error": "service unavailable, try again"},
		},
		{
			name:         "invalid json",
			rawBody:      true,
			expectedCode: 400,
			expectedBody: map[string]string{"error": "Invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(tt.reqBody)
				req = httptest.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
