package experience

import "time"

// Experience is one entry of the career timeline.
type Experience struct {
	ID          string    `json:"_id"`
	Role        string    `json:"role" validate:"required"`
	Company     string    `json:"company" validate:"required"`
	Duration    string    `json:"duration"`
	Description []string  `json:"description"`
	Type        string    `json:"type"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Patch struct {
	Role        *string
	Company     *string
	Duration    *string
	Description *[]string
	Type        *string
}
