package bountyservice

//go:generate mockgen -source=bountyservice.go -destination=mock_bountyservice.go -package=bountyservice

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/gitmarket/gitmarket/internal/domain"
	"github.com/gitmarket/gitmarket/internal/pg"
)

type BountyRepo interface {
	ListOpen(ctx context.Context) ([]domain.BountyDetails, error)
	GetDetails(ctx context.Context, id int64) (*domain.BountyDetails, error)
	Get(ctx context.Context, id int64) (*domain.Bounty, error)
	GetForUpdate(ctx context.Context, id int64) (*domain.Bounty, error)
	Place(ctx context.Context, nb *domain.NewBounty) (int64, error)
	ApproveSubmission(ctx context.Context, approverID string, bountyID, submissionID int64) error
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type SubmissionRepo interface {
	ListByBounty(ctx context.Context, bountyID int64) ([]domain.SubmissionDetails, error)
	Get(ctx context.Context, id int64) (*domain.Submission, error)
	FindByBountyAndSolver(ctx context.Context, bountyID int64, solverID string) (*domain.Submission, error)
	Create(ctx context.Context, s *domain.Submission) (*domain.Submission, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type ProfileRepo interface {
	AdjustBalance(ctx context.Context, id string, delta int64) (int64, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error)
}

type Service struct {
	bountyRepo      BountyRepo
	submissionRepo  SubmissionRepo
	profileRepo     ProfileRepo
	transactionRepo TransactionRepo
	txManager       pg.TXManager
}

func New(
	bountyRepo BountyRepo,
	submissionRepo SubmissionRepo,
	profileRepo ProfileRepo,
	transactionRepo TransactionRepo,
	txManager pg.TXManager,
) *Service {
	return &Service{
		bountyRepo:      bountyRepo,
		submissionRepo:  submissionRepo,
		profileRepo:     profileRepo,
		transactionRepo: transactionRepo,
		txManager:       txManager,
	}
}

var (
	errBountyNotFound     = domain.NewError(domain.ErrNotFound, "Bounty not found")
	errSubmissionNotFound = domain.NewError(domain.ErrNotFound, "Submission not found")
	errBountyNotOpen      = domain.NewError(domain.ErrInvalidState, "Bounty is not open")
)

func (s *Service) ListOpen(ctx context.Context) ([]domain.BountyDetails, error) {
	bounties, err := s.bountyRepo.ListOpen(ctx)
	if err != nil {
		zap.L().Error("failed to list open bounties", zap.Error(err))
		return nil, err
	}
	return bounties, nil
}

// GetBounty returns the bounty with its submissions, oldest first.
func (s *Service) GetBounty(ctx context.Context, id int64) (*domain.BountyDetails, []domain.SubmissionDetails, error) {
	bounty, err := s.bountyRepo.GetDetails(ctx, id)
	if err != nil {
		zap.L().Error("failed to get bounty", zap.Int64("id", id), zap.Error(err))
		return nil, nil, err
	}
	if bounty == nil {
		return nil, nil, errBountyNotFound
	}

	submissions, err := s.submissionRepo.ListByBounty(ctx, id)
	if err != nil {
		zap.L().Error("failed to list submissions", zap.Int64("bounty_id", id), zap.Error(err))
		return nil, nil, err
	}
	return bounty, submissions, nil
}

// CreateBounty escrows nb.Amount from the creator and returns the new bounty id.
// Balance checks belong to place_bounty.
func (s *Service) CreateBounty(ctx context.Context, nb *domain.NewBounty) (int64, error) {
	if err := domain.CheckBountyAmount(nb.Amount); err != nil {
		return 0, err
	}

	id, err := s.bountyRepo.Place(ctx, nb)
	if err != nil {
		return 0, err
	}
	zap.L().Info("bounty placed",
		zap.Int64("id", id),
		zap.Int64("repo_id", nb.RepoID),
		zap.Int("issue", nb.IssueNumber),
		zap.Int64("amount", nb.Amount),
	)
	return id, nil
}

// CancelBounty refunds the escrow to the creator. The refund, the status
// change and the ledger row commit together.
func (s *Service) CancelBounty(ctx context.Context, actorID string, bountyID int64) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		bounty, err := s.bountyRepo.GetForUpdate(ctx, bountyID)
		if err != nil {
			return err
		}
		if bounty == nil {
			return errBountyNotFound
		}
		if bounty.CreatorID != actorID {
			return domain.NewError(domain.ErrForbidden, "Not your bounty")
		}
		if bounty.Status != domain.BountyStatusOpen {
			return errBountyNotOpen
		}

		if _, err := s.profileRepo.AdjustBalance(ctx, bounty.CreatorID, bounty.Amount); err != nil {
			return err
		}
		if err := s.bountyRepo.UpdateStatus(ctx, bounty.ID, domain.BountyStatusCancelled); err != nil {
			return err
		}

		description := fmt.Sprintf("Cancelled bounty on %s", bounty.IssueTitle)
		_, err = s.transactionRepo.Create(ctx, &domain.Transaction{
			UserID:      bounty.CreatorID,
			Amount:      bounty.Amount,
			Type:        domain.TransactionBountyCancelled,
			BountyID:    &bounty.ID,
			Description: &description,
		})
		return err
	})
}

func (s *Service) CreateSubmission(ctx context.Context, solverID string, bountyID int64, prURL string, comment *string) (*domain.Submission, error) {
	bounty, err := s.bountyRepo.Get(ctx, bountyID)
	if err != nil {
		return nil, err
	}
	if bounty == nil {
		return nil, errBountyNotFound
	}
	if bounty.Status != domain.BountyStatusOpen {
		return nil, errBountyNotOpen
	}
	if bounty.CreatorID == solverID {
		return nil, domain.NewError(domain.ErrForbidden, "Cannot submit to your own bounty")
	}

	existing, err := s.submissionRepo.FindByBountyAndSolver(ctx, bountyID, solverID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewError(domain.ErrDuplicateSubmission, "You already submitted to this bounty")
	}

	// A concurrent duplicate still trips the unique index inside Create.
	return s.submissionRepo.Create(ctx, &domain.Submission{
		BountyID: bountyID,
		SolverID: solverID,
		PRURL:    prURL,
		Comment:  comment,
		Status:   domain.SubmissionStatusPending,
	})
}

// ApproveSubmission pays the solver through approve_submission, which owns
// every check.
func (s *Service) ApproveSubmission(ctx context.Context, approverID string, bountyID, submissionID int64) error {
	if err := s.bountyRepo.ApproveSubmission(ctx, approverID, bountyID, submissionID); err != nil {
		return err
	}
	zap.L().Info("submission approved", zap.Int64("bounty_id", bountyID), zap.Int64("submission_id", submissionID))
	return nil
}

func (s *Service) RejectSubmission(ctx context.Context, approverID string, bountyID, submissionID int64) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		bounty, err := s.bountyRepo.GetForUpdate(ctx, bountyID)
		if err != nil {
			return err
		}
		if bounty == nil {
			return errBountyNotFound
		}
		if bounty.CreatorID != approverID {
			return domain.NewError(domain.ErrForbidden, "Only the creator can reject")
		}

		submission, err := s.submissionRepo.Get(ctx, submissionID)
		if err != nil {
			return err
		}
		if submission == nil || submission.BountyID != bountyID {
			return errSubmissionNotFound
		}
		if submission.Status != domain.SubmissionStatusPending {
			return domain.NewError(domain.ErrInvalidState, "Submission is not pending")
		}

		return s.submissionRepo.UpdateStatus(ctx, submission.ID, domain.SubmissionStatusRejected)
	})
}
