package dto

import "time"

type ProfileResponseDTO struct {
	ID             string    `json:"id" example:"7d0b6c8e-3f4a-4e57-9a1c-2b5f0d9e8a11"`
	Username       *string   `json:"username" example:"alice"`
	AvatarURL      *string   `json:"avatar_url" example:"https://avatars.githubusercontent.com/u/1"`
	GitHubUsername *string   `json:"github_username" example:"alice-dev"`
	Balance        int64     `json:"balance" example:"100"`
	CreatedAt      time.Time `json:"created_at" example:"2024-03-01T10:00:00Z"`
	UpdatedAt      time.Time `json:"updated_at" example:"2024-03-01T10:00:00Z"`
}

// PublicProfileDTO is what other users may see of a profile.
type PublicProfileDTO struct {
	ID             string  `json:"id" example:"7d0b6c8e-3f4a-4e57-9a1c-2b5f0d9e8a11"`
	Username       *string `json:"username" example:"alice"`
	AvatarURL      *string `json:"avatar_url" example:"https://avatars.githubusercontent.com/u/1"`
	GitHubUsername *string `json:"github_username" example:"alice-dev"`
}
