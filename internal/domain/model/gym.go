package model

import (
	"time"

	"github.com/google/uuid"
)

// Gym represents a gym profile record.
type Gym struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Address     string    `gorm:"size:255" json:"address"`
	Phone       string    `gorm:"size:30" json:"phone"`
	Email       string    `gorm:"size:100" json:"email"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Gym) TableName() string {
	return "gyms"
}
