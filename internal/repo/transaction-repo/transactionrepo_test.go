package transactionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/gitmarket/gitmarket/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	bountyID := int64(1)
	desc := "Cancelled bounty on Fix crash"
	query := regexp.QuoteMeta(`INSERT INTO transactions (user_id, amount, type, bounty_id, description) VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Appends ledger row",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("creator", int64(50), domain.TransactionBountyCancelled, &bountyID, &desc).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(5), now))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("creator", int64(50), domain.TransactionBountyCancelled, &bountyID, &desc).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), &domain.Transaction{
				UserID:      "creator",
				Amount:      50,
				Type:        domain.TransactionBountyCancelled,
				BountyID:    &bountyID,
				Description: &desc,
			})

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(5), result.ID)
				assert.Equal(t, now, result.CreatedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ListByUser(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	bountyID := int64(1)
	query := regexp.QuoteMeta(`WHERE user_id = $1 ORDER BY created_at DESC, id DESC`)
	cols := []string{"id", "user_id", "amount", "type", "bounty_id", "description", "created_at"}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.Transaction
	}{
		{
			name: "Newest first",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("u1").
					WillReturnRows(pgxmock.NewRows(cols).
						AddRow(int64(2), "u1", int64(-50), domain.TransactionBountyPlaced, &bountyID, (*string)(nil), now).
						AddRow(int64(1), "u1", int64(100), domain.TransactionSignupBonus, (*int64)(nil), (*string)(nil), now.Add(-time.Hour)))
			},
			result: []domain.Transaction{
				{ID: 2, UserID: "u1", Amount: -50, Type: domain.TransactionBountyPlaced, BountyID: &bountyID, CreatedAt: now},
				{ID: 1, UserID: "u1", Amount: 100, Type: domain.TransactionSignupBonus, CreatedAt: now.Add(-time.Hour)},
			},
		},
		{
			name: "Empty history",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("u1").WillReturnRows(pgxmock.NewRows(cols))
			},
			result: []domain.Transaction{},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("u1").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.ListByUser(context.Background(), "u1")

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
