package submissionrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/gitmarket/gitmarket/internal/domain"
	"github.com/gitmarket/gitmarket/internal/pg"
)

const submissionColumns = `id, bounty_id, solver_id, pr_url, comment, status, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) ListByBounty(ctx context.Context, bountyID int64) ([]domain.SubmissionDetails, error) {
	query := `
        SELECT s.id, s.bounty_id, s.solver_id, s.pr_url, s.comment, s.status, s.created_at, s.updated_at,
               p.id, p.username, p.avatar_url, p.github_username
        FROM submissions s
        JOIN profiles p ON p.id = s.solver_id
        WHERE s.bounty_id = $1
        ORDER BY s.created_at ASC, s.id ASC
    `
	rows, err := r.db.Query(ctx, query, bountyID)
	if err != nil {
		zap.L().Error("failed to list submissions", zap.Int64("bounty_id", bountyID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	submissions := make([]domain.SubmissionDetails, 0)
	for rows.Next() {
		var s domain.SubmissionDetails
		err := rows.Scan(
			&s.ID, &s.BountyID, &s.SolverID, &s.PRURL, &s.Comment, &s.Status, &s.CreatedAt, &s.UpdatedAt,
			&s.Solver.ID, &s.Solver.Username, &s.Solver.AvatarURL, &s.Solver.GitHubUsername,
		)
		if err != nil {
			zap.L().Error("failed to scan submission row", zap.Error(err))
			return nil, err
		}
		submissions = append(submissions, s)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate submission rows", zap.Error(err))
		return nil, err
	}
	return submissions, nil
}

func (r *Repository) Get(ctx context.Context, id int64) (*domain.Submission, error) {
	query := `SELECT ` + submissionColumns + `
        FROM submissions
        WHERE id = $1
    `
	return r.getOne(ctx, query, id)
}

func (r *Repository) FindByBountyAndSolver(ctx context.Context, bountyID int64, solverID string) (*domain.Submission, error) {
	query := `SELECT ` + submissionColumns + `
        FROM submissions
        WHERE bounty_id = $1 AND solver_id = $2
    `
	return r.getOne(ctx, query, bountyID, solverID)
}

func (r *Repository) getOne(ctx context.Context, query string, args ...any) (*domain.Submission, error) {
	var s domain.Submission
	err := r.db.QueryRow(ctx, query, args...).
		Scan(&s.ID, &s.BountyID, &s.SolverID, &s.PRURL, &s.Comment, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get submission", zap.Error(err))
		return nil, err
	}
	return &s, nil
}

func (r *Repository) Create(ctx context.Context, s *domain.Submission) (*domain.Submission, error) {
	query := `
        INSERT INTO submissions (bounty_id, solver_id, pr_url, comment, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query, s.BountyID, s.SolverID, s.PRURL, s.Comment, s.Status).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if pg.HasCode(err, pg.CodeUniqueViolation) {
			return nil, domain.NewError(domain.ErrDuplicateSubmission, "You already submitted to this bounty")
		}
		if pg.HasCode(err, pg.CodeForeignKeyViolation) {
			return nil, domain.NewError(domain.ErrInvalidRequest, "Profile not found")
		}
		zap.L().Error("can't save submission", zap.Error(err))
		return nil, err
	}
	return s, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `
        UPDATE submissions
        SET status = $1, updated_at = now()
        WHERE id = $2
    `
	tag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		zap.L().Error("failed to update submission status", zap.Int64("id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NewError(domain.ErrNotFound, "Submission not found")
	}
	return nil
}
