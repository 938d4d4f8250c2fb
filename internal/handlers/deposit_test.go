package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/AfriTokeni/afritokeni-core/internal/errs"
	"github.com/AfriTokeni/afritokeni-core/internal/models"
)

func TestCreateDepositHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	expiry := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		reqBody      CreateDepositRequest
		mockSetup    func(svc *MockDepositRequester, tokener *MockTokener)
		expectedCode int
		expectedBody string
	}{
		{
			name:    "success",
			reqBody: CreateDepositRequest{AgentID: "agent1", Amount: 100_000, Currency: "UGX", Pin: "1234"},
			mockSetup: func(svc *MockDepositRequester, tokener *MockTokener) {
				authAs(tokener, userID)
				svc.EXPECT().
					CreateRequest(gomock.Any(), userID.String(), "agent1", int64(100_000), "UGX", "1234").
					Return(&models.DepositRequest{
						Code:            "DEP-agent1-42-1700000000000",
						Amount:          100_000,
						AgentCommission: 10_000,
						ExpiresAt:       expiry,
					}, nil)
			},
			expectedCode: 201,
			expectedBody: `{"code":"DEP-agent1-42-1700000000000","amount":100000,"net_amount":90000,"agent_commission":10000,"expires_at":"2026-08-30T12:00:00Z"}`,
		},
		{
			name:    "below minimum",
			reqBody: CreateDepositRequest{AgentID: "agent1", Amount: 500, Currency: "UGX", Pin: "1234"},
			mockSetup: func(svc *MockDepositRequester, tokener *MockTokener) {
				authAs(tokener, userID)
				svc.EXPECT().
					CreateRequest(gomock.Any(), userID.String(), "agent1", int64(500), "UGX", "1234").
					Return(nil, errs.LimitViolation("Amount is below the minimum deposit of %d UGX", 1_000))
			},
			expectedCode: 400,
			expectedBody: `{"error":"Amount is below the minimum deposit of 1000 UGX"}`,
		},
		{
			name:    "unauthorized",
			reqBody: CreateDepositRequest{AgentID: "agent1", Amount: 100_000, Currency: "UGX", Pin: "1234"},
			mockSetup: func(svc *MockDepositRequester, tokener *MockTokener) {
				authFail(tokener)
			},
			expectedCode: 401,
			expectedBody: `{"error":"Unauthorized"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockDepositRequester(ctrl)
			mockTokener := NewMockTokener(ctrl)
			tt.mockSetup(mockSvc, mockTokener)

			handler := NewCreateDepositHandler(mockSvc, mockTokener)

			bodyBytes, _ := json.Marshal(tt.reqBody)
			req := httptest.NewRequest(http.MethodPost, "/deposits", bytes.NewBuffer(bodyBytes))

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestConfirmDepositHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	agentID := uuid.New()

	tests := []struct {
		name         string
		reqBody      ConfirmDepositRequest
		mockSetup    func(svc *MockDepositRequester, tokener *MockTokener)
		expectedCode int
		expectedBody string
	}{
		{
			name:    "success",
			reqBody: ConfirmDepositRequest{Code: "DEP-agent1-42-1700000000000", Pin: "5678"},
			mockSetup: func(svc *MockDepositRequester, tokener *MockTokener) {
				authAs(tokener, agentID)
				svc.EXPECT().
					Confirm(gomock.Any(), "DEP-agent1-42-1700000000000", agentID.String(), "5678").
					Return(&models.DepositRequest{
						Amount:          100_000,
						AgentCommission: 10_000,
						AgentKeeps:      9_000,
					}, nil)
			},
			expectedCode: 200,
			expectedBody: `{"message":"Deposit confirmed","net_amount":90000,"agent_keeps":9000}`,
		},
		{
			name:    "code belongs to a different agent",
			reqBody: ConfirmDepositRequest{Code: "DEP-agent1-42-1700000000000", Pin: "5678"},
			mockSetup: func(svc *MockDepositRequester, tokener *MockTokener) {
				authAs(tokener, agentID)
				svc.EXPECT().
					Confirm(gomock.Any(), "DEP-agent1-42-1700000000000", agentID.String(), "5678").
					Return(nil, errs.NotAuthorized("Code was issued for a different agent"))
			},
			expectedCode: 403,
			expectedBody: `{"error":"unauthorized"}`,
		},
		{
			name:    "already processed",
			reqBody: ConfirmDepositRequest{Code: "DEP-agent1-42-1700000000000", Pin: "5678"},
			mockSetup: func(svc *MockDepositRequester, tokener *MockTokener) {
				authAs(tokener, agentID)
				svc.EXPECT().
					Confirm(gomock.Any(), "DEP-agent1-42-1700000000000", agentID.String(), "5678").
					Return(nil, errs.AlreadyProcessed("Code has already been processed"))
			},
			expectedCode: 409,
			expectedBody: `{"error":"Code has already been processed"}`,
		},
		{
			name:    "expired",
			reqBody: ConfirmDepositRequest{Code: "DEP-agent1-42-1700000000000", Pin: "5678"},
			mockSetup: func(svc *MockDepositRequester, tokener *MockTokener) {
				authAs(tokener, agentID)
				svc.EXPECT().
					Confirm(gomock.Any(), "DEP-agent1-42-1700000000000", agentID.String(), "5678").
					Return(nil, errs.Expired("Code has expired"))
			},
			expectedCode: 410,
			expectedBody: `{"error":"Code has expired"}`,
		},
		{
			name:    "malformed code",
			reqBody: ConfirmDepositRequest{Code: "garbage", Pin: "5678"},
			mockSetup: func(svc *MockDepositRequester, tokener *MockTokener) {
				authAs(tokener, agentID)
				svc.EXPECT().
					Confirm(gomock.Any(), "garbage", agentID.String(), "5678").
					Return(nil, errs.InvalidInput("Code is not a valid deposit code"))
			},
			expectedCode: 400,
			expectedBody: `{"error":"Code is not a valid deposit code"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockDepositRequester(ctrl)
			mockTokener := NewMockTokener(ctrl)
			tt.mockSetup(mockSvc, mockTokener)

			handler := NewConfirmDepositHandler(mockSvc, mockTokener)

			bodyBytes, _ := json.Marshal(tt.reqBody)
			req := httptest.NewRequest(http.MethodPost, "/deposits/confirm", bytes.NewBuffer(bodyBytes))

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
