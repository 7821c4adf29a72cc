package wallet

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/gitmarket/gitmarket/internal/domain"
	"github.com/gitmarket/gitmarket/pkg/auth"
)

const userID = "7d0b6c8e-3f4a-4e57-9a1c-2b5f0d9e8a11"

func NewMock(t *testing.T) (*WalletHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func TestGetWallet(t *testing.T) {
	handler, service := NewMock(t)
	bountyID := int64(1)
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		authorized   bool
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name:       "Balance with history",
			authorized: true,
			prepareMock: func() {
				service.EXPECT().GetWallet(gomock.Any(), userID).Return(&domain.Wallet{
					Balance: 50,
					Transactions: []domain.Transaction{
						{ID: 2, UserID: userID, Amount: -50, Type: domain.TransactionBountyPlaced, BountyID: &bountyID, CreatedAt: created},
					},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"balance":50,"transactions":[{"id":2,"user_id":"` + userID + `","amount":-50,"type":"bounty_placed","bounty_id":1,"description":null,"created_at":"2024-03-01T10:00:00Z"}]}`,
		},
		{
			name:       "No profile yet",
			authorized: true,
			prepareMock: func() {
				service.EXPECT().GetWallet(gomock.Any(), userID).Return(&domain.Wallet{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"balance":0,"transactions":[]}`,
		},
		{
			name:         "Anonymous caller",
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"detail":"Unauthorized"}`,
		},
		{
			name:       "Store failure",
			authorized: true,
			prepareMock: func() {
				service.EXPECT().GetWallet(gomock.Any(), userID).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"detail":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			ctx := context.Background()
			if tt.authorized {
				ctx = auth.WithIdentity(ctx, domain.Identity{ID: userID})
			}
			req := httptest.NewRequest(http.MethodGet, "/api/wallet", nil).WithContext(ctx)
			rec := httptest.NewRecorder()
			handler.GetWallet(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
		})
	}
}
