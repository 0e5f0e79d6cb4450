package projects

import "time"

type Project struct {
	ID           string    `json:"_id"`
	Title        string    `json:"title" validate:"required"`
	Description  string    `json:"description" validate:"required"`
	Technologies []string  `json:"technologies"`
	LiveURL      string    `json:"liveUrl" validate:"omitempty,url"`
	GithubURL    string    `json:"githubUrl" validate:"omitempty,url"`
	Featured     bool      `json:"featured"`
	SnapshotURL  string    `json:"snapshotUrl"`
	ImageURL     string    `json:"imageUrl" validate:"omitempty,url"`
	Order        int       `json:"order"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Patch holds the fields of a partial update; nil means "leave as is".
type Patch struct {
	Title        *string
	Description  *string
	Technologies *[]string
	LiveURL      *string
	GithubURL    *string
	Featured     *bool
	SnapshotURL  *string
	ImageURL     *string
	Order        *int
}
