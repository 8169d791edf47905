// Package domain holds DTOs for memories http and service contracts
package domain

import "time"

// Memory is a past reflection shown to its owner again
type Memory struct {
	ID             string  `json:"id" example:"0b6f5f5e-8a53-4a43-9e1b-3f1c2a7d9e10"`
	EntryDate      string  `json:"date" example:"2025-01-14"`
	PromptText     string  `json:"prompt_text" example:"What surprised you today?"`
	ReflectionText string  `json:"reflection_text"`
	Mood           *string `json:"mood" example:"calm"`
	WordCount      int     `json:"word_count" example:"142"`
}

// TodayResult is the answer of the daily resurfacing call
type TodayResult struct {
	Surfaced bool    `json:"surfaced"`
	Memory   *Memory `json:"memory"`
}

// SurfacedMemory is a memory with the moment it was shown
type SurfacedMemory struct {
	Memory
	SurfacedAt time.Time `json:"surfaced_at"`
}
