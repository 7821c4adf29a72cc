package dto

import "time"

type BountyDTO struct {
	ID          int64     `json:"id" example:"1"`
	RepoID      int64     `json:"repo_id" example:"3"`
	IssueNumber int       `json:"issue_number" example:"7"`
	IssueTitle  string    `json:"issue_title" example:"Crash on start"`
	IssueURL    string    `json:"issue_url" example:"https://github.com/acme/widget/issues/7"`
	CreatorID   string    `json:"creator_id" example:"7d0b6c8e-3f4a-4e57-9a1c-2b5f0d9e8a11"`
	Amount      int64     `json:"amount" example:"50"`
	Status      string    `json:"status" example:"open"`
	CreatedAt   time.Time `json:"created_at" example:"2024-03-01T10:00:00Z"`
	UpdatedAt   time.Time `json:"updated_at" example:"2024-03-01T10:00:00Z"`
}

// BountyListItemDTO embeds the repo and the creator's public profile.
type BountyListItemDTO struct {
	BountyDTO
	Repos    RepoDTO          `json:"repos"`
	Profiles PublicProfileDTO `json:"profiles"`
}

type BountyDetailResponseDTO struct {
	Bounty      BountyListItemDTO `json:"bounty"`
	Submissions []SubmissionDTO   `json:"submissions"`
}

type CreateBountyRequestDTO struct {
	RepoID      int64  `json:"repo_id" example:"3"`
	IssueNumber int    `json:"issue_number" example:"7"`
	IssueTitle  string `json:"issue_title" example:"Crash on start"`
	IssueURL    string `json:"issue_url" example:"https://github.com/acme/widget/issues/7"`
	Amount      int64  `json:"amount" example:"50"`
}

type CreateBountyResponseDTO struct {
	ID int64 `json:"id" example:"1"`
}

type SubmissionDTO struct {
	ID        int64             `json:"id" example:"9"`
	BountyID  int64             `json:"bounty_id" example:"1"`
	SolverID  string            `json:"solver_id" example:"0c4f1d2e-8b7a-4c3d-9e6f-1a2b3c4d5e6f"`
	PRURL     string            `json:"pr_url" example:"https://github.com/acme/widget/pull/8"`
	Comment   *string           `json:"comment" example:"Fixes the nil check"`
	Status    string            `json:"status" example:"pending"`
	CreatedAt time.Time         `json:"created_at" example:"2024-03-02T10:00:00Z"`
	UpdatedAt time.Time         `json:"updated_at" example:"2024-03-02T10:00:00Z"`
	Profiles  *PublicProfileDTO `json:"profiles,omitempty"`
}

type CreateSubmissionRequestDTO struct {
	PRURL   string  `json:"pr_url" example:"https://github.com/acme/widget/pull/8"`
	Comment *string `json:"comment" example:"Fixes the nil check"`
}

type OKResponseDTO struct {
	OK bool `json:"ok" example:"true"`
}

type HealthResponseDTO struct {
	Status string `json:"status" example:"ok"`
}
