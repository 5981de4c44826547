package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment represents a payment ledger record.
type Payment struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	MemberID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"member_id"`
	GymID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"gym_id"`
	Plan          string          `gorm:"size:50;not null" json:"plan"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Currency      string          `gorm:"size:3;not null;default:'USD'" json:"currency"`
	Method        string          `gorm:"size:30;not null" json:"method"`
	Status        PaymentStatus   `gorm:"size:20;not null;index" json:"status"`
	TransactionID *string         `gorm:"size:100" json:"transaction_id,omitempty"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Payment) TableName() string {
	return "payments"
}
