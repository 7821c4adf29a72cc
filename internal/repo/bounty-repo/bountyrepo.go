package bountyrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/gitmarket/gitmarket/internal/domain"
	"github.com/gitmarket/gitmarket/internal/pg"
)

const bountyColumns = `b.id, b.repo_id, b.issue_number, b.issue_title, b.issue_url, b.creator_id, b.amount, b.status, b.created_at, b.updated_at`

const detailsQuery = `
        SELECT b.id, b.repo_id, b.issue_number, b.issue_title, b.issue_url, b.creator_id, b.amount, b.status, b.created_at, b.updated_at,
               r.id, r.github_id, r.owner, r.name, r.full_name, r.description, r.stars, r.language, r.url, r.created_at,
               p.id, p.username, p.avatar_url, p.github_username
        FROM bounties b
        JOIN repos r ON r.id = b.repo_id
        JOIN profiles p ON p.id = b.creator_id
`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) ListOpen(ctx context.Context) ([]domain.BountyDetails, error) {
	query := detailsQuery + `
        WHERE b.status = $1
        ORDER BY b.created_at DESC
    `
	rows, err := r.db.Query(ctx, query, domain.BountyStatusOpen)
	if err != nil {
		zap.L().Error("failed to list open bounties", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	bounties := make([]domain.BountyDetails, 0)
	for rows.Next() {
		var d domain.BountyDetails
		if err := scanDetails(rows, &d); err != nil {
			zap.L().Error("failed to scan bounty row", zap.Error(err))
			return nil, err
		}
		bounties = append(bounties, d)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate bounty rows", zap.Error(err))
		return nil, err
	}
	return bounties, nil
}

func (r *Repository) GetDetails(ctx context.Context, id int64) (*domain.BountyDetails, error) {
	query := detailsQuery + `
        WHERE b.id = $1
    `
	var d domain.BountyDetails
	if err := scanDetails(r.db.QueryRow(ctx, query, id), &d); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get bounty details", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return &d, nil
}

func (r *Repository) Get(ctx context.Context, id int64) (*domain.Bounty, error) {
	query := `SELECT ` + bountyColumns + `
        FROM bounties b
        WHERE b.id = $1
    `
	return r.getOne(ctx, query, id)
}

// GetForUpdate locks the bounty row until the surrounding transaction ends.
func (r *Repository) GetForUpdate(ctx context.Context, id int64) (*domain.Bounty, error) {
	query := `SELECT ` + bountyColumns + `
        FROM bounties b
        WHERE b.id = $1
        FOR UPDATE
    `
	return r.getOne(ctx, query, id)
}

func (r *Repository) getOne(ctx context.Context, query string, id int64) (*domain.Bounty, error) {
	var b domain.Bounty
	if err := scanBounty(r.db.QueryRow(ctx, query, id), &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get bounty", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return &b, nil
}

func (r *Repository) ListOpenByRepo(ctx context.Context, repoID int64) ([]domain.Bounty, error) {
	query := `SELECT ` + bountyColumns + `
        FROM bounties b
        WHERE b.repo_id = $1 AND b.status = $2
    `
	rows, err := r.db.Query(ctx, query, repoID, domain.BountyStatusOpen)
	if err != nil {
		zap.L().Error("failed to list repo bounties", zap.Int64("repo_id", repoID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bounties []domain.Bounty
	for rows.Next() {
		var b domain.Bounty
		if err := scanBounty(rows, &b); err != nil {
			zap.L().Error("failed to scan bounty row", zap.Error(err))
			return nil, err
		}
		bounties = append(bounties, b)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate bounty rows", zap.Error(err))
		return nil, err
	}
	return bounties, nil
}

// Place escrows the amount and creates the bounty through place_bounty.
func (r *Repository) Place(ctx context.Context, b *domain.NewBounty) (int64, error) {
	query := `SELECT place_bounty($1, $2, $3, $4, $5, $6)`

	var id int64
	err := r.db.QueryRow(ctx, query, b.CreatorID, b.RepoID, b.IssueNumber, b.IssueTitle, b.IssueURL, b.Amount).Scan(&id)
	if err != nil {
		if pgErr, ok := pg.AsPgError(err); ok {
			if pgErr.Code == pg.CodeInsufficientBalance {
				return 0, domain.NewError(domain.ErrInsufficientBalance, "Insufficient balance")
			}
			return 0, domain.NewError(domain.ErrInvalidRequest, pgErr.Message)
		}
		zap.L().Error("failed to place bounty", zap.Error(err))
		return 0, err
	}
	return id, nil
}

// ApproveSubmission pays the solver and closes the bounty through
// approve_submission. Every rejection by the procedure is an invalid request.
func (r *Repository) ApproveSubmission(ctx context.Context, approverID string, bountyID, submissionID int64) error {
	query := `SELECT approve_submission($1, $2, $3)`

	_, err := r.db.Exec(ctx, query, approverID, bountyID, submissionID)
	if err != nil {
		if pgErr, ok := pg.AsPgError(err); ok {
			return domain.NewError(domain.ErrInvalidRequest, pgErr.Message)
		}
		zap.L().Error("failed to approve submission", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `
        UPDATE bounties
        SET status = $1, updated_at = now()
        WHERE id = $2
    `
	tag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		zap.L().Error("failed to update bounty status", zap.Int64("id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NewError(domain.ErrNotFound, "Bounty not found")
	}
	return nil
}

func scanBounty(row pgx.Row, b *domain.Bounty) error {
	return row.Scan(
		&b.ID, &b.RepoID, &b.IssueNumber, &b.IssueTitle, &b.IssueURL,
		&b.CreatorID, &b.Amount, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
}

func scanDetails(row pgx.Row, d *domain.BountyDetails) error {
	return row.Scan(
		&d.ID, &d.RepoID, &d.IssueNumber, &d.IssueTitle, &d.IssueURL,
		&d.CreatorID, &d.Amount, &d.Status, &d.CreatedAt, &d.UpdatedAt,
		&d.Repo.ID, &d.Repo.GitHubID, &d.Repo.Owner, &d.Repo.Name, &d.Repo.FullName,
		&d.Repo.Description, &d.Repo.Stars, &d.Repo.Language, &d.Repo.URL, &d.Repo.CreatedAt,
		&d.Creator.ID, &d.Creator.Username, &d.Creator.AvatarURL, &d.Creator.GitHubUsername,
	)
}
