package models

import "time"

const minInstructionsLen = 50

type Recipe struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Title             string    `gorm:"size:255;not null" json:"title"`
	Instructions      string    `gorm:"type:text;not null" json:"instructions"`
	MinutesToComplete *int      `json:"minutes_to_complete"`
	UserID            uint      `gorm:"index;not null" json:"user_id"`
	User              *User     `json:"user,omitempty"`
	CreatedAt         time.Time `json:"-"`
	UpdatedAt         time.Time `json:"-"`
}

// Validate runs before persistence; a recipe that fails here is never
// handed to the store.
func (r *Recipe) Validate() error {
	var errs []string
	if r.Title == "" {
		errs = append(errs, "Title must be present.")
	}
	if len(r.Instructions) < minInstructionsLen {
		errs = append(errs, "Instructions must be present and at least 50 characters long.")
	}
	if len(errs) > 0 {
		return &ValidationError{Messages: errs}
	}
	return nil
}

// ValidationError carries the per-field messages of a rejected write.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	if len(e.Messages) == 0 {
		return "validation failed"
	}
	return e.Messages[0]
}
