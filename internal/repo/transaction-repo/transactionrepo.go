package transactionrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/gitmarket/gitmarket/internal/domain"
	"github.com/gitmarket/gitmarket/internal/pg"
)

// Repository appends to and reads the ledger. Rows are never updated or
// deleted.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	query := `
        INSERT INTO transactions (user_id, amount, type, bounty_id, description)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, t.UserID, t.Amount, t.Type, t.BountyID, t.Description).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		zap.L().Error("can't save transaction", zap.String("type", t.Type), zap.Error(err))
		return nil, err
	}
	return t, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	query := `
        SELECT id, user_id, amount, type, bounty_id, description, created_at
        FROM transactions
        WHERE user_id = $1
        ORDER BY created_at DESC, id DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	transactions := make([]domain.Transaction, 0)
	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Amount, &t.Type, &t.BountyID, &t.Description, &t.CreatedAt); err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate transaction rows", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}
