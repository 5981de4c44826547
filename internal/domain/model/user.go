package model

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated account.
type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string     `gorm:"size:100;not null;uniqueIndex" json:"email"`
	Name         string     `gorm:"size:100;not null" json:"name"`
	PasswordHash string     `gorm:"size:100;not null" json:"-"`
	Role         string     `gorm:"size:20;not null" json:"role"`
	GymID        *uuid.UUID `gorm:"type:uuid;index" json:"gym_id,omitempty"`
	CreatedAt    time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}
