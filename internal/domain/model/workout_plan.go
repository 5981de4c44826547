package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WorkoutPlan represents a training program record.
type WorkoutPlan struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	GymID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"gym_id"`
	InstructorID uuid.UUID       `gorm:"type:uuid;not null;index" json:"instructor_id"`
	Name         string          `gorm:"size:100;not null" json:"name"`
	Description  string          `gorm:"type:text" json:"description"`
	Difficulty   string          `gorm:"size:20;not null" json:"difficulty"`
	Schedule     StringList      `gorm:"type:jsonb" json:"schedule"`
	Price        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	CreatedAt    time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (WorkoutPlan) TableName() string {
	return "workout_plans"
}
