package gitreporepo

import (
	"context"

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

// Upsert stores the repo keyed by its code-host id, refreshing the mutable
// metadata when the row already exists.
func (r *Repository) Upsert(ctx context.Context, repo *domain.Repo) (*domain.Repo, error) {
	query := `
        INSERT INTO repos (github_id, owner, name, full_name, description, stars, language, url)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (github_id) DO UPDATE
        SET owner = EXCLUDED.owner,
            name = EXCLUDED.name,
            full_name = EXCLUDED.full_name,
            description = EXCLUDED.description,
            stars = EXCLUDED.stars,
            language = EXCLUDED.language,
            url = EXCLUDED.url
        RETURNING id, github_id, owner, name, full_name, description, stars, language, url, created_at
    `
	var stored domain.Repo
	err := r.db.QueryRow(ctx, query,
		repo.GitHubID, repo.Owner, repo.Name, repo.FullName, repo.Description, repo.Stars, repo.Language, repo.URL,
	).Scan(
		&stored.ID, &stored.GitHubID, &stored.Owner, &stored.Name, &stored.FullName,
		&stored.Description, &stored.Stars, &stored.Language, &stored.URL, &stored.CreatedAt,
	)
	if err != nil {
		zap.L().Error("failed to upsert repo", zap.String("full_name", repo.FullName), zap.Error(err))
		return nil, err
	}
	return &stored, nil
}
