package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkoutPlan is a training program offered by a gym.
type WorkoutPlan struct {
	ID           string          `json:"id"`
	GymID        string          `json:"gym_id"`
	InstructorID string          `json:"instructor_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Difficulty   string          `json:"difficulty"`
	Schedule     []string        `json:"schedule"`
	Price        decimal.Decimal `json:"price"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// Known difficulty levels.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// ValidDifficulty reports whether d is a known difficulty level.
func ValidDifficulty(d string) bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}
