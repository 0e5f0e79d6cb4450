package reviews

import "time"

// Review is a visitor testimonial. Only IsApproved changes after creation.
type Review struct {
	ID         string    `json:"_id"`
	Name       string    `json:"name" validate:"required"`
	Review     string    `json:"review" validate:"required"`
	Rating     int       `json:"rating" validate:"min=1,max=5"`
	IsApproved bool      `json:"isApproved"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
