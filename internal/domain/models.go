package domain

import (
	"fmt"
	"time"
)

// MinBountyAmount is the smallest amount a bounty can escrow.
const MinBountyAmount int64 = 5

func CheckBountyAmount(amount int64) error {
	if amount < MinBountyAmount {
		return NewError(ErrInvalidAmount, fmt.Sprintf("Minimum bounty is $%d", MinBountyAmount))
	}
	return nil
}

const (
	BountyStatusOpen      = "open"
	BountyStatusFulfilled = "fulfilled"
	BountyStatusCancelled = "cancelled"
)

const (
	SubmissionStatusPending  = "pending"
	SubmissionStatusApproved = "approved"
	SubmissionStatusRejected = "rejected"
)

const (
	TransactionSignupBonus     = "signup_bonus"
	TransactionBountyPlaced    = "bounty_placed"
	TransactionBountyCancelled = "bounty_cancelled"
	TransactionBountyPaid      = "bounty_paid"
)

// Identity is the caller as confirmed by the auth provider.
type Identity struct {
	ID    string
	Email string
}

type Profile struct {
	ID             string    `db:"id"`
	Username       *string   `db:"username"`
	AvatarURL      *string   `db:"avatar_url"`
	GitHubUsername *string   `db:"github_username"`
	Balance        int64     `db:"balance"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

type Repo struct {
	ID          int64     `db:"id"`
	GitHubID    int64     `db:"github_id"`
	Owner       string    `db:"owner"`
	Name        string    `db:"name"`
	FullName    string    `db:"full_name"`
	Description *string   `db:"description"`
	Stars       int       `db:"stars"`
	Language    *string   `db:"language"`
	URL         string    `db:"url"`
	CreatedAt   time.Time `db:"created_at"`
}

type Bounty struct {
	ID          int64     `db:"id"`
	RepoID      int64     `db:"repo_id"`
	IssueNumber int       `db:"issue_number"`
	IssueTitle  string    `db:"issue_title"`
	IssueURL    string    `db:"issue_url"`
	CreatorID   string    `db:"creator_id"`
	Amount      int64     `db:"amount"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// BountyDetails is a bounty joined with its repo and the creator's public profile.
type BountyDetails struct {
	Bounty
	Repo    Repo
	Creator Profile
}

// NewBounty carries the fields needed to escrow a new bounty.
type NewBounty struct {
	CreatorID   string
	RepoID      int64
	IssueNumber int
	IssueTitle  string
	IssueURL    string
	Amount      int64
}

type Submission struct {
	ID        int64     `db:"id"`
	BountyID  int64     `db:"bounty_id"`
	SolverID  string    `db:"solver_id"`
	PRURL     string    `db:"pr_url"`
	Comment   *string   `db:"comment"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// SubmissionDetails is a submission joined with the solver's public profile.
type SubmissionDetails struct {
	Submission
	Solver Profile
}

type Transaction struct {
	ID          int64     `db:"id"`
	UserID      string    `db:"user_id"`
	Amount      int64     `db:"amount"`
	Type        string    `db:"type"`
	BountyID    *int64    `db:"bounty_id"`
	Description *string   `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

type Wallet struct {
	Balance      int64
	Transactions []Transaction
}

type Label struct {
	Name  string
	Color string
}

type IssueAuthor struct {
	Login     string
	AvatarURL string
}

// Issue is an open issue from the code host, optionally carrying the open
// bounty placed on it.
type Issue struct {
	Number    int
	Title     string
	URL       string
	State     string
	Labels    []Label
	Author    IssueAuthor
	CreatedAt time.Time
	Comments  int
	Bounty    *Bounty
}

type RepoSearchResult struct {
	Repo   Repo
	Issues []Issue
}
