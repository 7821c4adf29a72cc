package walletservice

//go:generate mockgen -source=walletservice.go -destination=mock_walletservice.go -package=walletservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/gitmarket/gitmarket/internal/domain"
)

type ProfileRepo interface {
	Get(ctx context.Context, id string) (*domain.Profile, error)
}

type TransactionRepo interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Transaction, error)
}

type Service struct {
	profileRepo     ProfileRepo
	transactionRepo TransactionRepo
}

func New(profileRepo ProfileRepo, transactionRepo TransactionRepo) *Service {
	return &Service{
		profileRepo:     profileRepo,
		transactionRepo: transactionRepo,
	}
}

// GetWallet returns the balance and full ledger, newest first. A user without
// a profile has an empty wallet.
func (s *Service) GetWallet(ctx context.Context, userID string) (*domain.Wallet, error) {
	profile, err := s.profileRepo.Get(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return nil, err
	}

	transactions, err := s.transactionRepo.ListByUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}

	wallet := &domain.Wallet{Transactions: transactions}
	if profile != nil {
		wallet.Balance = profile.Balance
	}
	return wallet, nil
}
