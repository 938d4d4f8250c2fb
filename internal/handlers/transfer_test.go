package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/AfriTokeni/afritokeni-core/internal/errs"
	"github.com/AfriTokeni/afritokeni-core/internal/services"
)

// authAs wires the tokener mock to resolve every request to the given user.
func authAs(m *MockTokener, userID uuid.UUID) {
	m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token123", nil)
	m.EXPECT().GetUserID(gomock.Any(), "token123").Return(userID, nil)
}

// authFail wires the tokener mock to reject every request.
func authFail(m *MockTokener) {
	m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("no authorization header"))
}

func TestTransferHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	senderID := uuid.New()

	tests := []struct {
		name         string
		reqBody      TransferRequest
		mockSetup    func(svc *MockTransferrer, tokener *MockTokener)
		expectedCode int
		expectedBody string
		rawBody      bool
	}{
		{
			name:    "success",
			reqBody: TransferRequest{ToUser: "user2", Amount: 100_000, Currency: "UGX", Pin: "1234"},
			mockSetup: func(svc *MockTransferrer, tokener *MockTokener) {
				authAs(tokener, senderID)
				svc.EXPECT().
					TransferFiat(gomock.Any(), senderID.String(), "user2", int64(100_000), "UGX", "1234").
					Return(&services.TransferResult{Fee: 500, SenderNewBalance: 399_500}, nil)
			},
			expectedCode: 200,
			expectedBody: `{"message":"Transfer completed","fee":500,"new_balance":399500}`,
		},
		{
			name:    "insufficient balance",
			reqBody: TransferRequest{ToUser: "user2", Amount: 100_000, Currency: "UGX", Pin: "1234"},
			mockSetup: func(svc *MockTransferrer, tokener *MockTokener) {
				authAs(tokener, senderID)
				svc.EXPECT().
					TransferFiat(gomock.Any(), senderID.String(), "user2", int64(100_000), "UGX", "1234").
					Return(nil, errs.InsufficientBalance(50_000, 100_500))
			},
			expectedCode: 400,
			expectedBody: `{"error":"Insufficient balance. Have: 50000, Need: 100500"}`,
		},
		{
			name:    "blocked by fraud check",
			reqBody: TransferRequest{ToUser: "user2", Amount: 100_000, Currency: "UGX", Pin: "1234"},
			mockSetup: func(svc *MockTransferrer, tokener *MockTokener) {
				authAs(tokener, senderID)
				svc.EXPECT().
					TransferFiat(gomock.Any(), senderID.String(), "user2", int64(100_000), "UGX", "1234").
					Return(nil, errs.Blocked([]string{"Transaction exceeds maximum allowed amount"}))
			},
			expectedCode: 403,
			expectedBody: `{"error":"Transaction blocked by fraud check"}`,
		},
		{
			name:    "unauthorized",
			reqBody: TransferRequest{ToUser: "user2", Amount: 100_000, Currency: "UGX", Pin: "1234"},
			mockSetup: func(svc *MockTransferrer, tokener *MockTokener) {
				authFail(tokener)
			},
			expectedCode: 401,
			expectedBody: `{"error":"Unauthorized"}`,
		},
		{
			name: "invalid json",
			mockSetup: func(svc *MockTransferrer, tokener *MockTokener) {
				authAs(tokener, senderID)
			},
			rawBody:      true,
			expectedCode: 400,
			expectedBody: `{"error":"Invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockTransferrer(ctrl)
			mockTokener := NewMockTokener(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc, mockTokener)
			}

			handler := NewTransferHandler(mockSvc, mockTokener)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/wallet/transfer", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(tt.reqBody)
				req = httptest.NewRequest(http.MethodPost, "/wallet/transfer", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
