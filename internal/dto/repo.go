package dto

import "time"

type RepoDTO struct {
	ID          int64     `json:"id" example:"3"`
	GitHubID    int64     `json:"github_id" example:"42"`
	Owner       string    `json:"owner" example:"acme"`
	Name        string    `json:"name" example:"widget"`
	FullName    string    `json:"full_name" example:"acme/widget"`
	Description *string   `json:"description" example:"A widget"`
	Stars       int       `json:"stars" example:"17"`
	Language    *string   `json:"language" example:"Go"`
	URL         string    `json:"url" example:"https://github.com/acme/widget"`
	CreatedAt   time.Time `json:"created_at" example:"2024-03-01T10:00:00Z"`
}

type LabelDTO struct {
	Name  string `json:"name" example:"bug"`
	Color string `json:"color" example:"d73a4a"`
}

type IssueUserDTO struct {
	Login     string `json:"login" example:"alice"`
	AvatarURL string `json:"avatar_url" example:"https://avatars.githubusercontent.com/u/1"`
}

type IssueDTO struct {
	Number    int          `json:"number" example:"7"`
	Title     string       `json:"title" example:"Crash on start"`
	HTMLURL   string       `json:"html_url" example:"https://github.com/acme/widget/issues/7"`
	State     string       `json:"state" example:"open"`
	Labels    []LabelDTO   `json:"labels"`
	User      IssueUserDTO `json:"user"`
	CreatedAt time.Time    `json:"created_at" example:"2024-03-01T10:00:00Z"`
	Comments  int          `json:"comments" example:"3"`
	Bounty    *BountyDTO   `json:"bounty"`
}

type RepoSearchResponseDTO struct {
	Repo   RepoDTO    `json:"repo"`
	Issues []IssueDTO `json:"issues"`
}
