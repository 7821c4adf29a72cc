package profilerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/gitmarket/gitmarket/internal/domain"
	"github.com/gitmarket/gitmarket/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Get(ctx context.Context, id string) (*domain.Profile, error) {
	query := `
        SELECT id, username, avatar_url, github_username, balance, created_at, updated_at
        FROM profiles
        WHERE id = $1
    `
	var p domain.Profile
	err := r.db.QueryRow(ctx, query, id).
		Scan(&p.ID, &p.Username, &p.AvatarURL, &p.GitHubUsername, &p.Balance, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get profile", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return &p, nil
}

// Create inserts the profile unless one with the same id exists. It reports
// whether a row was written; on true, p is filled with the stored values.
func (r *Repository) Create(ctx context.Context, p *domain.Profile) (bool, error) {
	query := `
        INSERT INTO profiles (id, username, avatar_url, github_username, balance)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (id) DO NOTHING
        RETURNING created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query, p.ID, p.Username, p.AvatarURL, p.GitHubUsername, p.Balance).
		Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		zap.L().Error("failed to create profile", zap.String("id", p.ID), zap.Error(err))
		return false, err
	}
	return true, nil
}

// AdjustBalance adds delta (which may be negative) to the balance and returns
// the new value.
func (r *Repository) AdjustBalance(ctx context.Context, id string, delta int64) (int64, error) {
	query := `
        UPDATE profiles
        SET balance = balance + $1, updated_at = now()
        WHERE id = $2
        RETURNING balance
    `
	var balance int64
	err := r.db.QueryRow(ctx, query, delta, id).Scan(&balance)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return 0, domain.NewError(domain.ErrNotFound, "Profile not found")
		case pg.HasCode(err, pg.CodeCheckViolation):
			return 0, domain.NewError(domain.ErrInsufficientBalance, "Insufficient balance")
		}
		zap.L().Error("failed to adjust balance", zap.String("id", id), zap.Int64("delta", delta), zap.Error(err))
		return 0, err
	}
	return balance, nil
}
