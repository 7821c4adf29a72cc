package walletservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/gitmarket/gitmarket/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockProfileRepo, *MockTransactionRepo) {
	ctrl := gomock.NewController(t)
	profileRepo := NewMockProfileRepo(ctrl)
	transactionRepo := NewMockTransactionRepo(ctrl)
	return New(profileRepo, transactionRepo), profileRepo, transactionRepo
}

func TestGetWallet(t *testing.T) {
	service, profileRepo, transactionRepo := NewMock(t)
	history := []domain.Transaction{
		{ID: 2, UserID: "u1", Amount: -50, Type: domain.TransactionBountyPlaced},
		{ID: 1, UserID: "u1", Amount: 100, Type: domain.TransactionSignupBonus},
	}

	tests := []struct {
		name           string
		prepareMock    func()
		expectedWallet *domain.Wallet
		expectedError  error
	}{
		{
			name: "Balance with history",
			prepareMock: func() {
				profileRepo.EXPECT().Get(gomock.Any(), "u1").Return(&domain.Profile{ID: "u1", Balance: 50}, nil)
				transactionRepo.EXPECT().ListByUser(gomock.Any(), "u1").Return(history, nil)
			},
			expectedWallet: &domain.Wallet{Balance: 50, Transactions: history},
		},
		{
			name: "Unknown profile has an empty wallet",
			prepareMock: func() {
				profileRepo.EXPECT().Get(gomock.Any(), "u1").Return(nil, nil)
				transactionRepo.EXPECT().ListByUser(gomock.Any(), "u1").Return([]domain.Transaction{}, nil)
			},
			expectedWallet: &domain.Wallet{Balance: 0, Transactions: []domain.Transaction{}},
		},
		{
			name: "Profile lookup fails",
			prepareMock: func() {
				profileRepo.EXPECT().Get(gomock.Any(), "u1").Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
		{
			name: "History lookup fails",
			prepareMock: func() {
				profileRepo.EXPECT().Get(gomock.Any(), "u1").Return(&domain.Profile{ID: "u1"}, nil)
				transactionRepo.EXPECT().ListByUser(gomock.Any(), "u1").Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			wallet, err := service.GetWallet(context.Background(), "u1")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedWallet, wallet)
		})
	}
}
