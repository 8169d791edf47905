// Package domain holds DTOs for reflections http and service contracts
package domain

import "time"

// CreateInput is a new journal entry
type CreateInput struct {
	PromptText     string  `json:"prompt_text" validate:"required,max=1000" example:"What are you grateful for?"`
	ReflectionText string  `json:"reflection_text" validate:"required,max=20000" example:"The walk home in the rain."`
	Mood           *string `json:"mood,omitempty" validate:"omitempty,mood" example:"grateful"`
	// Date is the calendar day the entry belongs to, today when empty
	Date string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2025-06-01"`
}

// EligibilityInput toggles whether an entry may be resurfaced
type EligibilityInput struct {
	Eligible *bool `json:"eligible" validate:"required" example:"false"`
}

// Reflection is an entry as its owner sees it
type Reflection struct {
	ID                  string    `json:"id"`
	EntryDate           string    `json:"entry_date" example:"2025-06-01"`
	PromptText          string    `json:"prompt_text"`
	ReflectionText      string    `json:"reflection_text"`
	Mood                *string   `json:"mood"`
	WordCount           int       `json:"word_count"`
	ResurfacingEligible bool      `json:"resurfacing_eligible"`
	CreatedAt           time.Time `json:"created_at"`
}
