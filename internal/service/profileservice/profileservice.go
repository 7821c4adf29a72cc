package profileservice

//go:generate mockgen -source=profileservice.go -destination=mock_profileservice.go -package=profileservice

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/gitmarket/gitmarket/internal/domain"
	"github.com/gitmarket/gitmarket/internal/pg"
)

type ProfileRepo interface {
	Get(ctx context.Context, id string) (*domain.Profile, error)
	Create(ctx context.Context, p *domain.Profile) (bool, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error)
}

type Service struct {
	profileRepo     ProfileRepo
	transactionRepo TransactionRepo
	txManager       pg.TXManager
	signupBonus     int64
}

func New(profileRepo ProfileRepo, transactionRepo TransactionRepo, txManager pg.TXManager, signupBonus int64) *Service {
	return &Service{
		profileRepo:     profileRepo,
		transactionRepo: transactionRepo,
		txManager:       txManager,
		signupBonus:     signupBonus,
	}
}

// GetOrCreate returns the caller's profile, creating it on first sight with
// the signup bonus and its ledger row.
func (s *Service) GetOrCreate(ctx context.Context, identity domain.Identity) (*domain.Profile, error) {
	var profile *domain.Profile
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		existing, err := s.profileRepo.Get(ctx, identity.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			profile = existing
			return nil
		}

		p := &domain.Profile{
			ID:       identity.ID,
			Username: usernameFromEmail(identity.Email),
			Balance:  s.signupBonus,
		}
		created, err := s.profileRepo.Create(ctx, p)
		if err != nil {
			return err
		}
		if !created {
			// Another request created it first.
			profile, err = s.profileRepo.Get(ctx, identity.ID)
			return err
		}

		if s.signupBonus > 0 {
			description := "Signup bonus"
			_, err = s.transactionRepo.Create(ctx, &domain.Transaction{
				UserID:      p.ID,
				Amount:      s.signupBonus,
				Type:        domain.TransactionSignupBonus,
				Description: &description,
			})
			if err != nil {
				return err
			}
		}
		zap.L().Info("profile created", zap.String("id", p.ID))
		profile = p
		return nil
	})
	if err != nil {
		zap.L().Error("failed to load profile", zap.String("id", identity.ID), zap.Error(err))
		return nil, err
	}
	return profile, nil
}

func usernameFromEmail(email string) *string {
	local, _, _ := strings.Cut(email, "@")
	if local == "" {
		return nil
	}
	return &local
}
