package dto

import "time"

type TransactionDTO struct {
	ID          int64     `json:"id" example:"5"`
	UserID      string    `json:"user_id" example:"7d0b6c8e-3f4a-4e57-9a1c-2b5f0d9e8a11"`
	Amount      int64     `json:"amount" example:"-50"`
	Type        string    `json:"type" example:"bounty_placed"`
	BountyID    *int64    `json:"bounty_id" example:"1"`
	Description *string   `json:"description" example:"Placed bounty on Crash on start"`
	CreatedAt   time.Time `json:"created_at" example:"2024-03-01T10:00:00Z"`
}

type WalletResponseDTO struct {
	Balance      int64            `json:"balance" example:"50"`
	Transactions []TransactionDTO `json:"transactions"`
}
